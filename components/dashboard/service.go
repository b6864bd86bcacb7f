package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Modal names accepted by OpenModal/CloseModal.
const (
	ModalPayment  = "payment"
	ModalFeedback = "feedback"
	ModalContact  = "contact"
)

// Subscription actions offered on the billing page.
const (
	SubscriptionUpdate = "update"
	SubscriptionCancel = "cancel"
)

// OnboardingAction is a wizard button.
type OnboardingAction string

const (
	OnboardingNext     OnboardingAction = "next"
	OnboardingPrevious OnboardingAction = "previous"
	OnboardingSkip     OnboardingAction = "skip"
	OnboardingStart    OnboardingAction = "start"
)

// Options configures the dashboard Service. Every collaborator is an
// interface so applications can swap implementations.
type Options struct {
	Sessions       SessionStore
	Validator      FormValidator
	RefreshHook    RefreshHook
	Telemetry      Telemetry
	Charts         *ChartRenderer
	Activity       ActivityFeed
	ShowOnboarding bool
	Now            func() time.Time
}

// Service owns every per-session UI operation of the dashboard.
type Service struct {
	opts Options
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	if opts.Sessions == nil {
		opts.Sessions = NewInMemorySessionStore(opts.ShowOnboarding)
	}
	if opts.Validator == nil {
		opts.Validator = NewJSONSchemaValidator()
	}
	if opts.RefreshHook == nil {
		opts.RefreshHook = noopRefreshHook{}
	}
	if opts.Charts == nil {
		opts.Charts = NewChartRenderer(WithChartCache(NewChartCache(5 * time.Minute)))
	}
	if opts.Activity == nil {
		opts.Activity = DefaultActivityFeed()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	return &Service{opts: opts}
}

// OpenSession returns the session for id, creating a new one when id is
// empty or unknown. The boolean reports whether a session was created.
func (s *Service) OpenSession(ctx context.Context, id string) (*Session, bool, error) {
	if id != "" {
		sess, err := s.opts.Sessions.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, err
		}
	}
	sess, err := s.opts.Sessions.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	s.recordTelemetry(ctx, "dashboard.session.create", map[string]any{"session_id": sess.ID})
	return sess, true, nil
}

// ResetSession restores every default for the session.
func (s *Service) ResetSession(ctx context.Context, id string) error {
	if _, err := s.opts.Sessions.Reset(ctx, id); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.session.reset", map[string]any{"session_id": id})
	return s.notify(ctx, id, "session", "reset", nil)
}

func (s *Service) session(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrMissingSession
	}
	return s.opts.Sessions.Get(ctx, id)
}

// --- personas ---

// FilterPersonas stores the persona filters for the session and returns the
// grouped result.
func (s *Service) FilterPersonas(ctx context.Context, id string, q PersonaQuery) ([]PersonaGroup, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.SetPersonaQuery(q)
	return GroupByProvider(FilterPersonas(defaultPersonas, q), providerOrder), nil
}

// --- conversations ---

// SearchConversations stores the search term and returns matching conversations.
func (s *Service) SearchConversations(ctx context.Context, id, search string) ([]Conversation, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Conversations.SetSearch(search)
	return sess.Conversations.List(), nil
}

// SelectConversation shows conversationID in the detail pane.
func (s *Service) SelectConversation(ctx context.Context, id string, conversationID int) (Conversation, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return Conversation{}, err
	}
	conv, err := sess.Conversations.Select(conversationID)
	if err != nil {
		return Conversation{}, err
	}
	s.recordTelemetry(ctx, "dashboard.conversation.select", map[string]any{"conversation_id": conversationID})
	return conv, nil
}

// ReactToConversation records a "Helpful" / "Not helpful" click.
func (s *Service) ReactToConversation(ctx context.Context, id string, conversationID int, helpful bool) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	if _, err := sess.Conversations.Find(conversationID); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.conversation.reaction", map[string]any{
		"conversation_id": conversationID,
		"helpful":         helpful,
	})
	return nil
}

// SubmitFeedback validates and logs the feedback dialog, then closes it.
func (s *Service) SubmitFeedback(ctx context.Context, id string, form FeedbackForm) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	if draft, open := sess.Conversations.Feedback.Draft(); open && form.ConversationID == 0 {
		form.ConversationID = draft.ConversationID
	}
	if err := sess.Conversations.Feedback.Submit(form, validateWith[FeedbackForm](s.opts.Validator, FormFeedback)); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.feedback.submit", map[string]any{
		"conversation_id": form.ConversationID,
		"rating":          form.Rating,
		"feedback":        form.Feedback,
	})
	return nil
}

// --- notifications ---

// Notifications selects a category filter and lists the matching inbox items.
func (s *Service) Notifications(ctx context.Context, id string, category Filter) ([]NotificationView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.SetNotificationFilter(category)
	return sess.Inbox.Views(category), nil
}

// MarkNotificationRead marks one notification read. Already-read and unknown
// ids are no-ops.
func (s *Service) MarkNotificationRead(ctx context.Context, id string, notificationID int) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	if !sess.Inbox.MarkRead(notificationID) {
		return nil
	}
	s.recordTelemetry(ctx, "dashboard.notification.read", map[string]any{"notification_id": notificationID})
	return s.notify(ctx, id, "notifications", "read", map[string]any{
		"ids":    []int{notificationID},
		"unread": sess.Inbox.UnreadCount(),
	})
}

// MarkAllNotificationsRead marks every notification read and returns the ids
// that changed.
func (s *Service) MarkAllNotificationsRead(ctx context.Context, id string) ([]int, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	flipped := sess.Inbox.MarkAllRead()
	s.recordTelemetry(ctx, "dashboard.notification.read_all", map[string]any{"count": len(flipped)})
	if len(flipped) == 0 {
		return flipped, nil
	}
	return flipped, s.notify(ctx, id, "notifications", "read_all", map[string]any{"ids": flipped, "unread": 0})
}

// DeleteNotification removes a notification; deleting an absent one is a no-op.
func (s *Service) DeleteNotification(ctx context.Context, id string, notificationID int) (bool, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return false, err
	}
	removed := sess.Inbox.Delete(notificationID)
	if !removed {
		return false, nil
	}
	s.recordTelemetry(ctx, "dashboard.notification.delete", map[string]any{"notification_id": notificationID})
	return true, s.notify(ctx, id, "notifications", "delete", map[string]any{
		"ids":    []int{notificationID},
		"unread": sess.Inbox.UnreadCount(),
	})
}

// --- settings ---

// Settings returns the session settings snapshot.
func (s *Service) Settings(ctx context.Context, id string) (Settings, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return Settings{}, err
	}
	return sess.Settings(), nil
}

// UpdateSetting replaces one leaf. raw is a bool or a string (form input).
func (s *Service) UpdateSetting(ctx context.Context, id, category, key string, raw any) (Settings, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return Settings{}, err
	}
	def, ok := LookupSetting(category, key)
	if !ok {
		return sess.Settings(), fmt.Errorf("%w: %s.%s", ErrUnknownSetting, category, key)
	}
	value, err := SettingValueFrom(def, raw)
	if err != nil {
		return sess.Settings(), err
	}
	next, err := sess.UpdateSetting(category, key, value)
	if err != nil {
		return next, err
	}
	category = NormalizeSettingKey(category)
	s.recordTelemetry(ctx, "dashboard.settings.update", map[string]any{
		"category": category,
		"setting":  def.Key,
		"value":    value.Interface(),
	})
	return next, s.notify(ctx, id, "settings", "update", map[string]any{
		"category": category,
		"setting":  def.Key,
		"value":    value.Interface(),
	})
}

// PatchSettings applies several leaves at once. The patch is validated as a
// whole; on any error nothing changes.
func (s *Service) PatchSettings(ctx context.Context, id string, patch map[string]map[string]any) (Settings, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return Settings{}, err
	}
	normalized := make(map[string]map[string]any, len(patch))
	for cat, leaves := range patch {
		inner := make(map[string]any, len(leaves))
		for k, v := range leaves {
			inner[NormalizeSettingKey(k)] = v
		}
		normalized[NormalizeSettingKey(cat)] = inner
	}
	if err := s.opts.Validator.Validate(FormSettings, normalized); err != nil {
		return sess.Settings(), err
	}
	next, err := sess.MutateSettings(func(current Settings) (Settings, error) {
		for _, cat := range sortedKeys(normalized) {
			for _, key := range sortedKeys(normalized[cat]) {
				def, ok := LookupSetting(cat, key)
				if !ok {
					return current, fmt.Errorf("%w: %s.%s", ErrUnknownSetting, cat, key)
				}
				value, err := SettingValueFrom(def, normalized[cat][key])
				if err != nil {
					return current, err
				}
				if current, err = current.Update(cat, key, value); err != nil {
					return current, err
				}
			}
		}
		return current, nil
	})
	if err != nil {
		return next, err
	}
	s.recordTelemetry(ctx, "dashboard.settings.patch", map[string]any{"categories": len(normalized)})
	return next, s.notify(ctx, id, "settings", "patch", nil)
}

// SaveSettings logs the current settings. There is no persistence.
func (s *Service) SaveSettings(ctx context.Context, id string) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.settings.save", map[string]any{"settings": sess.Settings().Map()})
	return nil
}

// ExportData writes settings and conversation history in format.
func (s *Service) ExportData(ctx context.Context, id, format string, w io.Writer) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	format, err = ParseExportFormat(format)
	if err != nil {
		return err
	}
	export := NewDataExport(sess.Settings(), sess.Conversations.All(), s.opts.Now())
	if err := export.Write(w, format); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.settings.export", map[string]any{"format": format})
	return nil
}

// --- billing ---

// SelectPlan highlights a plan on the billing page.
func (s *Service) SelectPlan(ctx context.Context, id, planID string) (Plan, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return Plan{}, err
	}
	plan, err := sess.Billing.SelectPlan(planID)
	if err != nil {
		return Plan{}, err
	}
	s.recordTelemetry(ctx, "dashboard.billing.select_plan", map[string]any{"plan_id": planID})
	return plan, nil
}

// SubmitPayment validates the payment dialog, logs it without card data and
// closes it.
func (s *Service) SubmitPayment(ctx context.Context, id string, form PaymentForm) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	if err := sess.Billing.Payment.Submit(form, validateWith[PaymentForm](s.opts.Validator, FormPayment)); err != nil {
		return err
	}
	s.recordTelemetry(ctx, "dashboard.billing.payment", form.LogFields())
	return nil
}

// Subscription logs the "Update" / "Cancel" subscription buttons.
func (s *Service) Subscription(ctx context.Context, id, action string) error {
	if _, err := s.session(ctx, id); err != nil {
		return err
	}
	switch action {
	case SubscriptionUpdate, SubscriptionCancel:
	default:
		return fmt.Errorf("%w: unknown subscription action %q", ErrValidation, action)
	}
	s.recordTelemetry(ctx, "dashboard.billing.subscription", map[string]any{"action": action})
	return nil
}

// DownloadInvoice logs an invoice download request.
func (s *Service) DownloadInvoice(ctx context.Context, id string, invoiceID int) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	for _, inv := range sess.Billing.Invoices() {
		if inv.ID == invoiceID {
			s.recordTelemetry(ctx, "dashboard.billing.invoice_download", map[string]any{"invoice_id": invoiceID})
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrInvoiceNotFound, invoiceID)
}

// --- help ---

// SearchFAQs stores the help page query and returns matching FAQs.
func (s *Service) SearchFAQs(ctx context.Context, id string, q FAQQuery) ([]FAQ, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Help.SetQuery(q)
	return sess.Help.List(), nil
}

// ToggleFAQ expands or collapses an answer.
func (s *Service) ToggleFAQ(ctx context.Context, id string, faqID int) (bool, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return false, err
	}
	return sess.Help.Toggle(faqID)
}

// SubmitSupport validates the contact dialog, logs it with a ticket reference
// and closes it.
func (s *Service) SubmitSupport(ctx context.Context, id string, req SupportRequest) (string, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Priority) == "" {
		req.Priority = PriorityMedium
	}
	if err := sess.Help.Contact.Submit(req, validateWith[SupportRequest](s.opts.Validator, FormSupport)); err != nil {
		return "", err
	}
	ticket := uuid.NewString()
	s.recordTelemetry(ctx, "dashboard.support.submit", map[string]any{
		"ticket":   ticket,
		"email":    req.Email,
		"subject":  req.Subject,
		"priority": req.Priority,
	})
	return ticket, nil
}

// --- modals ---

// OpenModal shows a dialog. Feedback needs the conversation id as subject.
func (s *Service) OpenModal(ctx context.Context, id, modal string, subject int) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	switch modal {
	case ModalPayment:
		sess.Billing.Payment.Open(PaymentForm{})
	case ModalContact:
		sess.Help.Contact.Open(NewSupportRequest())
	case ModalFeedback:
		if _, err := sess.Conversations.OpenFeedback(subject); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownModal, modal)
	}
	return nil
}

// CloseModal dismisses a dialog without submitting.
func (s *Service) CloseModal(ctx context.Context, id, modal string) error {
	sess, err := s.session(ctx, id)
	if err != nil {
		return err
	}
	switch modal {
	case ModalPayment:
		sess.Billing.Payment.Close()
	case ModalContact:
		sess.Help.Contact.Close()
	case ModalFeedback:
		sess.Conversations.Feedback.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownModal, modal)
	}
	return nil
}

// --- shell ---

// ToggleSidebar flips the mobile sidebar.
func (s *Service) ToggleSidebar(ctx context.Context, id string) (bool, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return false, err
	}
	return sess.Shell.ToggleSidebar(), nil
}

// Onboarding applies a wizard button and returns the overlay state, or nil
// when the overlay is hidden.
func (s *Service) Onboarding(ctx context.Context, id string, action OnboardingAction) (*OnboardingView, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	switch action {
	case OnboardingStart:
		sess.Wizard.Reset()
		sess.Shell.StartOnboarding()
	case OnboardingNext:
		err = sess.Wizard.Next()
	case OnboardingPrevious:
		sess.Wizard.Previous()
	case OnboardingSkip:
		err = sess.Wizard.Skip()
	default:
		return nil, fmt.Errorf("%w: unknown onboarding action %q", ErrValidation, action)
	}
	if err != nil {
		return nil, err
	}
	finishing := action == OnboardingNext || action == OnboardingSkip
	if finishing && sess.Wizard.Completed() {
		s.recordTelemetry(ctx, "dashboard.onboarding.complete", map[string]any{"action": string(action)})
		return nil, s.notify(ctx, id, "onboarding", "complete", nil)
	}
	if !sess.Shell.OnboardingVisible() || sess.Wizard.Completed() {
		return nil, nil
	}
	return newOnboardingView(sess.Wizard), nil
}

// --- dashboard home ---

// UsageChart renders the weekly usage chart in the session theme.
func (s *Service) UsageChart(ctx context.Context, id string) (string, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := s.opts.Charts.Render(ChartRequest{
		Title:  "Conversations this week",
		Series: "Conversations",
		Points: UsageSeries(),
		Theme:  sess.Theme().ChartTheme,
	})
	if err != nil {
		s.recordTelemetry(ctx, "dashboard.chart.error", map[string]any{"error": err.Error()})
		return "", err
	}
	return html, nil
}

func validateWith[T any](v FormValidator, form string) func(T) error {
	return func(payload T) error {
		return v.Validate(form, payload)
	}
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

func (s *Service) notify(ctx context.Context, id, topic, reason string, payload map[string]any) error {
	return s.opts.RefreshHook.SessionUpdated(ctx, SessionEvent{
		SessionID: id,
		Topic:     topic,
		Reason:    reason,
		Payload:   payload,
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
