package commands

import (
	"context"
	"errors"
	"testing"

	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

func TestResetSessionCommand(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewResetSessionCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), ResetSessionInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.calls["reset"] != 1 {
		t.Fatalf("expected reset call")
	}
	if telemetry.last != "dashboard.command.session_reset" {
		t.Fatalf("unexpected telemetry event %q", telemetry.last)
	}
}

func TestCommandsRequireService(t *testing.T) {
	ctx := context.Background()
	if err := NewResetSessionCommand(nil, nil).Execute(ctx, ResetSessionInput{}); err == nil {
		t.Fatalf("expected error without service")
	}
	if err := NewSubmitSupportCommand(nil, nil).Execute(ctx, SubmitSupportInput{}); err == nil {
		t.Fatalf("expected error without service")
	}
	if err := NewPatchSettingsCommand(nil, nil).Execute(ctx, PatchSettingsInput{}); err == nil {
		t.Fatalf("expected error without service")
	}
}

func TestToggleSidebarCommandReportsState(t *testing.T) {
	service := &stubService{sidebar: true}
	var open bool
	cmd := NewToggleSidebarCommand(service, nil)
	if err := cmd.Execute(context.Background(), ToggleSidebarInput{SessionID: "s1", Open: &open}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !open {
		t.Fatalf("expected sidebar state to be propagated")
	}
}

func TestOnboardingCommandRequiresAction(t *testing.T) {
	service := &stubService{}
	cmd := NewOnboardingCommand(service, nil)
	if err := cmd.Execute(context.Background(), OnboardingInput{SessionID: "s1"}); err == nil {
		t.Fatalf("expected error for missing action")
	}
	if service.calls["onboarding"] != 0 {
		t.Fatalf("service should not be called without an action")
	}
}

func TestFilterPersonasInputQuery(t *testing.T) {
	q := FilterPersonasInput{Search: "gen", Provider: "all", Specialization: "Coding"}.Query()
	if !q.Provider.IsAll() {
		t.Fatalf("expected all providers")
	}
	if v, ok := q.Specialization.Value(); !ok || v != "Coding" {
		t.Fatalf("expected Coding specialization, got %q", v)
	}
}

func TestSubmitFeedbackCommandPropagatesValidation(t *testing.T) {
	service := &stubService{err: dashboard.ErrValidation}
	telemetry := &stubTelemetry{}
	cmd := NewSubmitFeedbackCommand(service, telemetry)
	err := cmd.Execute(context.Background(), SubmitFeedbackInput{SessionID: "s1"})
	if !errors.Is(err, dashboard.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if telemetry.calls != 0 {
		t.Fatalf("failed commands must not record telemetry")
	}
}

func TestUpdateSettingCommandRequiresKey(t *testing.T) {
	service := &stubService{}
	cmd := NewUpdateSettingCommand(service, nil)
	if err := cmd.Execute(context.Background(), UpdateSettingInput{SessionID: "s1", Category: "display"}); err == nil {
		t.Fatalf("expected error for missing key")
	}
	if err := cmd.Execute(context.Background(), UpdateSettingInput{SessionID: "s1", Category: "display", Key: "theme", Value: "dark"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.calls["update_setting"] != 1 {
		t.Fatalf("expected one update call, got %d", service.calls["update_setting"])
	}
}

func TestPatchSettingsCommandSkipsEmptyPatch(t *testing.T) {
	service := &stubService{}
	cmd := NewPatchSettingsCommand(service, nil)
	if err := cmd.Execute(context.Background(), PatchSettingsInput{SessionID: "s1"}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if service.calls["patch_settings"] != 0 {
		t.Fatalf("expected empty patch to be skipped")
	}
}

func TestSubmitPaymentCommandOmitsCardData(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewSubmitPaymentCommand(service, telemetry)
	form := dashboard.PaymentForm{NameOnCard: "Ada", CardNumber: "4242424242424242", Expiry: "12/30", CVV: "123"}
	if err := cmd.Execute(context.Background(), SubmitPaymentInput{SessionID: "s1", Form: form}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if _, ok := telemetry.payload["card_number"]; ok {
		t.Fatalf("card number leaked into telemetry")
	}
	if _, ok := telemetry.payload["cvv"]; ok {
		t.Fatalf("cvv leaked into telemetry")
	}
	if telemetry.payload["card_last4"] != "4242" {
		t.Fatalf("expected last4, got %v", telemetry.payload["card_last4"])
	}
}

func TestSubmitSupportCommandReturnsTicket(t *testing.T) {
	service := &stubService{ticket: "T-1"}
	var ticket string
	cmd := NewSubmitSupportCommand(service, nil)
	if err := cmd.Execute(context.Background(), SubmitSupportInput{SessionID: "s1", Ticket: &ticket}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if ticket != "T-1" {
		t.Fatalf("expected ticket propagation, got %q", ticket)
	}
}

func TestDeleteNotificationCommandIgnoresUnknown(t *testing.T) {
	service := &stubService{}
	telemetry := &stubTelemetry{}
	cmd := NewDeleteNotificationCommand(service, telemetry)
	if err := cmd.Execute(context.Background(), NotificationInput{SessionID: "s1", NotificationID: 99}); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if telemetry.payload["removed"] != false {
		t.Fatalf("expected removed=false, got %v", telemetry.payload["removed"])
	}
}

func TestCommandsAgainstService(t *testing.T) {
	ctx := context.Background()
	service := dashboard.NewService(dashboard.Options{})
	sess, _, err := service.OpenSession(ctx, "")
	if err != nil {
		t.Fatalf("OpenSession returned error: %v", err)
	}
	telemetry := &stubTelemetry{}

	if err := NewMarkAllReadCommand(service, telemetry).Execute(ctx, NotificationInput{SessionID: sess.ID}); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if sess.Inbox.UnreadCount() != 0 {
		t.Fatalf("expected no unread notifications, got %d", sess.Inbox.UnreadCount())
	}

	if err := NewUpdateSettingCommand(service, telemetry).Execute(ctx, UpdateSettingInput{
		SessionID: sess.ID, Category: "display", Key: "theme", Value: "dark",
	}); err != nil {
		t.Fatalf("update setting: %v", err)
	}
	if v, _ := sess.Settings().Get("display", "theme"); v.String() != "dark" {
		t.Fatalf("expected dark theme, got %q", v.String())
	}

	if err := NewSelectConversationCommand(service, telemetry).Execute(ctx, SelectConversationInput{
		SessionID: sess.ID, ConversationID: 999,
	}); !errors.Is(err, dashboard.ErrConversationNotFound) {
		t.Fatalf("expected conversation not found, got %v", err)
	}

	if err := NewResetSessionCommand(service, telemetry).Execute(ctx, ResetSessionInput{SessionID: sess.ID}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if telemetry.calls != 3 {
		t.Fatalf("expected 3 telemetry events, got %d", telemetry.calls)
	}
}

type stubService struct {
	calls   map[string]int
	err     error
	sidebar bool
	ticket  string
}

func (s *stubService) hit(name string) error {
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[name]++
	return s.err
}

func (s *stubService) ResetSession(context.Context, string) error { return s.hit("reset") }

func (s *stubService) ToggleSidebar(context.Context, string) (bool, error) {
	return s.sidebar, s.hit("sidebar")
}

func (s *stubService) Onboarding(context.Context, string, dashboard.OnboardingAction) (*dashboard.OnboardingView, error) {
	return nil, s.hit("onboarding")
}

func (s *stubService) SubmitFeedback(context.Context, string, dashboard.FeedbackForm) error {
	return s.hit("feedback")
}

func (s *stubService) UpdateSetting(context.Context, string, string, string, any) (dashboard.Settings, error) {
	return dashboard.DefaultSettings(), s.hit("update_setting")
}

func (s *stubService) PatchSettings(context.Context, string, map[string]map[string]any) (dashboard.Settings, error) {
	return dashboard.DefaultSettings(), s.hit("patch_settings")
}

func (s *stubService) SubmitPayment(context.Context, string, dashboard.PaymentForm) error {
	return s.hit("payment")
}

func (s *stubService) SubmitSupport(context.Context, string, dashboard.SupportRequest) (string, error) {
	return s.ticket, s.hit("support")
}

func (s *stubService) DeleteNotification(context.Context, string, int) (bool, error) {
	return false, s.hit("delete_notification")
}

type stubTelemetry struct {
	calls   int
	last    string
	payload map[string]any
}

func (s *stubTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	s.calls++
	s.last = event
	s.payload = payload
}
