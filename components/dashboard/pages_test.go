package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBuildsShell(t *testing.T) {
	svc, id, _, _ := newTestService(t)
	view, err := svc.Page(context.Background(), id, RouteNotifications)
	require.NoError(t, err)

	assert.Equal(t, RouteNotifications, view.Route)
	assert.Equal(t, "Notifications", view.Title)
	assert.Equal(t, AppTitle, view.Shell.Title)
	assert.Equal(t, 2, view.Shell.UnreadCount)
	assert.Nil(t, view.Shell.Onboarding)
	require.Len(t, view.Shell.Nav, 8)
	assert.True(t, view.Shell.Nav[7].Active)
	require.NotNil(t, view.Theme)
}

func TestPageUnknownRoute(t *testing.T) {
	svc, id, _, _ := newTestService(t)
	_, err := svc.Page(context.Background(), id, Route("admin"))
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestPageContentPerRoute(t *testing.T) {
	svc, id, _, _ := newTestService(t)
	ctx := context.Background()
	expected := map[Route][]string{
		RouteDashboard:     {"stats", "recent", "usage_figures", "chart_html"},
		RoutePersonas:      {"groups", "result_count", "providers", "specializations"},
		RouteConversations: {"conversations", "search", "feedback", "stars"},
		RouteSettings:      {"sections"},
		RouteProfile:       {"profile"},
		RouteBilling:       {"current_plan", "usage", "plans", "selected_plan", "invoices", "payment"},
		RouteHelp:          {"faqs", "categories", "expanded", "channels", "contact", "priorities"},
		RouteNotifications: {"items", "categories", "category", "unread"},
	}
	for route, keys := range expected {
		view, err := svc.Page(ctx, id, route)
		require.NoError(t, err, route)
		for _, key := range keys {
			assert.Contains(t, view.Content, key, "route %s", route)
		}
	}
}

func TestPageReflectsSessionState(t *testing.T) {
	svc, id, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.FilterPersonas(ctx, id, PersonaQuery{Provider: Only("Ollama"), Specialization: AnyFilter()})
	require.NoError(t, err)
	view, err := svc.Page(ctx, id, RoutePersonas)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Content["result_count"])
	assert.Equal(t, "Ollama", view.Content["provider"])

	_, err = svc.SelectConversation(ctx, id, 2)
	require.NoError(t, err)
	view, err = svc.Page(ctx, id, RouteConversations)
	require.NoError(t, err)
	selected, ok := view.Content["selected"].(Conversation)
	require.True(t, ok)
	assert.Equal(t, 2, selected.ID)

	_, err = svc.UpdateSetting(ctx, id, "display", "language", "fr")
	require.NoError(t, err)
	view, err = svc.Page(ctx, id, RouteSettings)
	require.NoError(t, err)
	assert.Equal(t, "Paramètres", view.Title)
}

func TestPageShowsOnboardingOverlay(t *testing.T) {
	svc := NewService(Options{ShowOnboarding: true})
	sess, _, err := svc.OpenSession(context.Background(), "")
	require.NoError(t, err)

	view, err := svc.Page(context.Background(), sess.ID, RouteDashboard)
	require.NoError(t, err)
	require.NotNil(t, view.Shell.Onboarding)
	assert.Equal(t, 5, view.Shell.Onboarding.Total)
	assert.Equal(t, 20, view.Shell.Onboarding.Progress)
}

func TestSettingsSectionsFollowLayout(t *testing.T) {
	settings, err := DefaultSettings().Update("display", "theme", Choice("system"))
	require.NoError(t, err)
	sections := SettingsSections(settings)
	require.Len(t, sections, 4)
	assert.Equal(t, "notifications", sections[0].Key)
	assert.Equal(t, "system", sections[1].Settings[0].Value)
	assert.True(t, sections[0].Settings[0].Enabled)
}
