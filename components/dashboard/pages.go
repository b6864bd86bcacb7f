package dashboard

import (
	"context"
	"fmt"
)

// SettingView is one rendered settings row.
type SettingView struct {
	SettingDefinition
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

// SettingsSection is one settings card.
type SettingsSection struct {
	Key      string        `json:"key"`
	Title    string        `json:"title"`
	Icon     string        `json:"icon"`
	Settings []SettingView `json:"settings"`
}

// ModalView exposes a dialog to templates.
type ModalView[T any] struct {
	Open bool `json:"open"`
	Form T    `json:"form"`
}

// UsageMeterView carries the bar width computed from a UsageMeter.
type UsageMeterView struct {
	UsageMeter
	Percent   int  `json:"percent"`
	Unlimited bool `json:"unlimited"`
}

func usageViews(meters []UsageMeter) []UsageMeterView {
	out := make([]UsageMeterView, 0, len(meters))
	for _, m := range meters {
		out = append(out, UsageMeterView{UsageMeter: m, Percent: m.Percent(), Unlimited: m.Unlimited()})
	}
	return out
}

var ratingStars = []int{1, 2, 3, 4, 5}

func modalView[T any](m *Modal[T]) ModalView[T] {
	form, open := m.Draft()
	return ModalView[T]{Open: open, Form: form}
}

// SettingsSections joins the settings layout with the current values.
func SettingsSections(settings Settings) []SettingsSection {
	sections := make([]SettingsSection, 0, len(settingsSchema))
	for _, cat := range settingsSchema {
		section := SettingsSection{Key: cat.Key, Title: cat.Title, Icon: cat.Icon}
		for _, def := range cat.Settings {
			value, _ := settings.Get(cat.Key, def.Key)
			section.Settings = append(section.Settings, SettingView{
				SettingDefinition: def,
				Value:             value.String(),
				Enabled:           value.Enabled(),
			})
		}
		sections = append(sections, section)
	}
	return sections
}

// Navigate closes the mobile sidebar, like following a nav link, and builds
// the page for route.
func (s *Service) Navigate(ctx context.Context, id string, route Route) (PageView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return PageView{}, err
	}
	sess.Shell.CloseSidebar()
	return s.Page(ctx, id, route)
}

// Page builds the full view model for route.
func (s *Service) Page(ctx context.Context, id string, route Route) (PageView, error) {
	spec, ok := RouteFor(route)
	if !ok {
		return PageView{}, fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	sess, err := s.session(ctx, id)
	if err != nil {
		return PageView{}, err
	}
	language := sess.Language()
	shell := ShellView{
		Title:       AppTitle,
		Nav:         NavItems(route, language),
		SidebarOpen: sess.Shell.SidebarOpen(),
		UnreadCount: sess.Inbox.UnreadCount(),
	}
	if sess.Shell.OnboardingVisible() && !sess.Wizard.Completed() {
		shell.Onboarding = newOnboardingView(sess.Wizard)
	}
	view := PageView{
		Route: route,
		Title: ResolveLocalizedValue(navLabels[route], language, spec.Label),
		Shell: shell,
		Theme: sess.Theme(),
	}
	content, err := s.pageContent(ctx, sess, route)
	if err != nil {
		return PageView{}, err
	}
	view.Content = content
	return view, nil
}

func (s *Service) pageContent(ctx context.Context, sess *Session, route Route) (map[string]any, error) {
	switch route {
	case RouteDashboard:
		chart, err := s.UsageChart(ctx, sess.ID)
		if err != nil {
			chart = ""
		}
		recent, err := s.opts.Activity.Recent(ctx, 0)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"stats":         Stats(),
			"recent":        recent,
			"usage_figures": UsageFigures(),
			"chart_html":    chart,
		}, nil
	case RoutePersonas:
		q := sess.PersonaQuery()
		filtered := FilterPersonas(defaultPersonas, q)
		return map[string]any{
			"groups":          GroupByProvider(filtered, providerOrder),
			"result_count":    len(filtered),
			"search":          q.Search,
			"provider":        q.Provider.String(),
			"specialization":  q.Specialization.String(),
			"providers":       ProviderOrder(),
			"specializations": SpecializationOrder(),
		}, nil
	case RouteConversations:
		content := map[string]any{
			"conversations": sess.Conversations.List(),
			"search":        sess.Conversations.Search(),
			"feedback":      modalView(&sess.Conversations.Feedback),
			"stars":         ratingStars,
		}
		if selected, ok := sess.Conversations.Selected(); ok {
			content["selected"] = selected
		}
		return content, nil
	case RouteSettings:
		return map[string]any{
			"sections": SettingsSections(sess.Settings()),
		}, nil
	case RouteProfile:
		return map[string]any{"profile": CurrentProfile()}, nil
	case RouteBilling:
		return map[string]any{
			"current_plan":  sess.Billing.CurrentPlan(),
			"usage":         usageViews(sess.Billing.Usage()),
			"plans":         sess.Billing.Plans(),
			"selected_plan": sess.Billing.SelectedPlan(),
			"invoices":      sess.Billing.Invoices(),
			"payment":       modalView(&sess.Billing.Payment),
		}, nil
	case RouteHelp:
		q := sess.Help.Query()
		expanded, hasExpanded := sess.Help.Expanded()
		if !hasExpanded {
			expanded = 0
		}
		return map[string]any{
			"faqs":       sess.Help.List(),
			"categories": sess.Help.Categories(),
			"search":     q.Search,
			"category":   q.Category.String(),
			"expanded":   expanded,
			"channels":   sess.Help.Channels(),
			"contact":    modalView(&sess.Help.Contact),
			"priorities": SupportPriorities(),
		}, nil
	case RouteNotifications:
		category := sess.NotificationFilter()
		return map[string]any{
			"items":      sess.Inbox.Views(category),
			"categories": sess.Inbox.Categories(),
			"category":   category.String(),
			"unread":     sess.Inbox.UnreadCount(),
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, route)
}
