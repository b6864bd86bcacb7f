package httpapi

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/commands"
)

// Executor runs dashboard mutations. Transports depend on this interface so
// tests and alternative backends can replace the command set.
type Executor interface {
	ResetSession(ctx context.Context, msg commands.ResetSessionInput) error
	ToggleSidebar(ctx context.Context, msg commands.ToggleSidebarInput) error
	Onboarding(ctx context.Context, msg commands.OnboardingInput) error
	OpenModal(ctx context.Context, msg commands.ModalInput) error
	CloseModal(ctx context.Context, msg commands.ModalInput) error

	FilterPersonas(ctx context.Context, msg commands.FilterPersonasInput) error
	SearchConversations(ctx context.Context, msg commands.SearchConversationsInput) error
	SelectConversation(ctx context.Context, msg commands.SelectConversationInput) error
	React(ctx context.Context, msg commands.ReactInput) error
	SubmitFeedback(ctx context.Context, msg commands.SubmitFeedbackInput) error

	MarkRead(ctx context.Context, msg commands.NotificationInput) error
	MarkAllRead(ctx context.Context, msg commands.NotificationInput) error
	DeleteNotification(ctx context.Context, msg commands.NotificationInput) error

	UpdateSetting(ctx context.Context, msg commands.UpdateSettingInput) error
	PatchSettings(ctx context.Context, msg commands.PatchSettingsInput) error
	SaveSettings(ctx context.Context, msg commands.SaveSettingsInput) error

	SelectPlan(ctx context.Context, msg commands.SelectPlanInput) error
	SubmitPayment(ctx context.Context, msg commands.SubmitPaymentInput) error
	Subscription(ctx context.Context, msg commands.SubscriptionInput) error
	DownloadInvoice(ctx context.Context, msg commands.InvoiceInput) error

	SearchFAQs(ctx context.Context, msg commands.SearchFAQsInput) error
	ToggleFAQ(ctx context.Context, msg commands.ToggleFAQInput) error
	SubmitSupport(ctx context.Context, msg commands.SubmitSupportInput) error
}

// CommandExecutor adapts go-command commanders to Executor. A nil commander
// yields ErrCommandNotConfigured.
type CommandExecutor struct {
	ResetSessionCommander  gocommand.Commander[commands.ResetSessionInput]
	SidebarCommander       gocommand.Commander[commands.ToggleSidebarInput]
	OnboardingCommander    gocommand.Commander[commands.OnboardingInput]
	OpenModalCommander     gocommand.Commander[commands.ModalInput]
	CloseModalCommander    gocommand.Commander[commands.ModalInput]
	FilterCommander        gocommand.Commander[commands.FilterPersonasInput]
	SearchCommander        gocommand.Commander[commands.SearchConversationsInput]
	SelectCommander        gocommand.Commander[commands.SelectConversationInput]
	ReactCommander         gocommand.Commander[commands.ReactInput]
	FeedbackCommander      gocommand.Commander[commands.SubmitFeedbackInput]
	MarkReadCommander      gocommand.Commander[commands.NotificationInput]
	MarkAllReadCommander   gocommand.Commander[commands.NotificationInput]
	DeleteCommander        gocommand.Commander[commands.NotificationInput]
	UpdateSettingCommander gocommand.Commander[commands.UpdateSettingInput]
	PatchCommander         gocommand.Commander[commands.PatchSettingsInput]
	SaveCommander          gocommand.Commander[commands.SaveSettingsInput]
	PlanCommander          gocommand.Commander[commands.SelectPlanInput]
	PaymentCommander       gocommand.Commander[commands.SubmitPaymentInput]
	SubscriptionCommander  gocommand.Commander[commands.SubscriptionInput]
	InvoiceCommander       gocommand.Commander[commands.InvoiceInput]
	FAQSearchCommander     gocommand.Commander[commands.SearchFAQsInput]
	FAQToggleCommander     gocommand.Commander[commands.ToggleFAQInput]
	SupportCommander       gocommand.Commander[commands.SubmitSupportInput]
}

// ErrCommandNotConfigured is returned when an Executor method has no commander.
var ErrCommandNotConfigured = errors.New("httpapi: command not configured")

var _ Executor = (*CommandExecutor)(nil)

// NewCommandExecutor wires every dashboard command against service.
func NewCommandExecutor(service *dashboard.Service, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		ResetSessionCommander:  commands.NewResetSessionCommand(service, telemetry),
		SidebarCommander:       commands.NewToggleSidebarCommand(service, telemetry),
		OnboardingCommander:    commands.NewOnboardingCommand(service, telemetry),
		OpenModalCommander:     commands.NewOpenModalCommand(service, telemetry),
		CloseModalCommander:    commands.NewCloseModalCommand(service, telemetry),
		FilterCommander:        commands.NewFilterPersonasCommand(service, telemetry),
		SearchCommander:        commands.NewSearchConversationsCommand(service, telemetry),
		SelectCommander:        commands.NewSelectConversationCommand(service, telemetry),
		ReactCommander:         commands.NewReactCommand(service, telemetry),
		FeedbackCommander:      commands.NewSubmitFeedbackCommand(service, telemetry),
		MarkReadCommander:      commands.NewMarkReadCommand(service, telemetry),
		MarkAllReadCommander:   commands.NewMarkAllReadCommand(service, telemetry),
		DeleteCommander:        commands.NewDeleteNotificationCommand(service, telemetry),
		UpdateSettingCommander: commands.NewUpdateSettingCommand(service, telemetry),
		PatchCommander:         commands.NewPatchSettingsCommand(service, telemetry),
		SaveCommander:          commands.NewSaveSettingsCommand(service, telemetry),
		PlanCommander:          commands.NewSelectPlanCommand(service, telemetry),
		PaymentCommander:       commands.NewSubmitPaymentCommand(service, telemetry),
		SubscriptionCommander:  commands.NewSubscriptionCommand(service, telemetry),
		InvoiceCommander:       commands.NewDownloadInvoiceCommand(service, telemetry),
		FAQSearchCommander:     commands.NewSearchFAQsCommand(service, telemetry),
		FAQToggleCommander:     commands.NewToggleFAQCommand(service, telemetry),
		SupportCommander:       commands.NewSubmitSupportCommand(service, telemetry),
	}
}

func execute[T any](ctx context.Context, cmd gocommand.Commander[T], msg T) error {
	if cmd == nil {
		return ErrCommandNotConfigured
	}
	return cmd.Execute(ctx, msg)
}

func (e *CommandExecutor) ResetSession(ctx context.Context, msg commands.ResetSessionInput) error {
	return execute(ctx, e.ResetSessionCommander, msg)
}

func (e *CommandExecutor) ToggleSidebar(ctx context.Context, msg commands.ToggleSidebarInput) error {
	return execute(ctx, e.SidebarCommander, msg)
}

func (e *CommandExecutor) Onboarding(ctx context.Context, msg commands.OnboardingInput) error {
	return execute(ctx, e.OnboardingCommander, msg)
}

func (e *CommandExecutor) OpenModal(ctx context.Context, msg commands.ModalInput) error {
	return execute(ctx, e.OpenModalCommander, msg)
}

func (e *CommandExecutor) CloseModal(ctx context.Context, msg commands.ModalInput) error {
	return execute(ctx, e.CloseModalCommander, msg)
}

func (e *CommandExecutor) FilterPersonas(ctx context.Context, msg commands.FilterPersonasInput) error {
	return execute(ctx, e.FilterCommander, msg)
}

func (e *CommandExecutor) SearchConversations(ctx context.Context, msg commands.SearchConversationsInput) error {
	return execute(ctx, e.SearchCommander, msg)
}

func (e *CommandExecutor) SelectConversation(ctx context.Context, msg commands.SelectConversationInput) error {
	return execute(ctx, e.SelectCommander, msg)
}

func (e *CommandExecutor) React(ctx context.Context, msg commands.ReactInput) error {
	return execute(ctx, e.ReactCommander, msg)
}

func (e *CommandExecutor) SubmitFeedback(ctx context.Context, msg commands.SubmitFeedbackInput) error {
	return execute(ctx, e.FeedbackCommander, msg)
}

func (e *CommandExecutor) MarkRead(ctx context.Context, msg commands.NotificationInput) error {
	return execute(ctx, e.MarkReadCommander, msg)
}

func (e *CommandExecutor) MarkAllRead(ctx context.Context, msg commands.NotificationInput) error {
	return execute(ctx, e.MarkAllReadCommander, msg)
}

func (e *CommandExecutor) DeleteNotification(ctx context.Context, msg commands.NotificationInput) error {
	return execute(ctx, e.DeleteCommander, msg)
}

func (e *CommandExecutor) UpdateSetting(ctx context.Context, msg commands.UpdateSettingInput) error {
	return execute(ctx, e.UpdateSettingCommander, msg)
}

func (e *CommandExecutor) PatchSettings(ctx context.Context, msg commands.PatchSettingsInput) error {
	return execute(ctx, e.PatchCommander, msg)
}

func (e *CommandExecutor) SaveSettings(ctx context.Context, msg commands.SaveSettingsInput) error {
	return execute(ctx, e.SaveCommander, msg)
}

func (e *CommandExecutor) SelectPlan(ctx context.Context, msg commands.SelectPlanInput) error {
	return execute(ctx, e.PlanCommander, msg)
}

func (e *CommandExecutor) SubmitPayment(ctx context.Context, msg commands.SubmitPaymentInput) error {
	return execute(ctx, e.PaymentCommander, msg)
}

func (e *CommandExecutor) Subscription(ctx context.Context, msg commands.SubscriptionInput) error {
	return execute(ctx, e.SubscriptionCommander, msg)
}

func (e *CommandExecutor) DownloadInvoice(ctx context.Context, msg commands.InvoiceInput) error {
	return execute(ctx, e.InvoiceCommander, msg)
}

func (e *CommandExecutor) SearchFAQs(ctx context.Context, msg commands.SearchFAQsInput) error {
	return execute(ctx, e.FAQSearchCommander, msg)
}

func (e *CommandExecutor) ToggleFAQ(ctx context.Context, msg commands.ToggleFAQInput) error {
	return execute(ctx, e.FAQToggleCommander, msg)
}

func (e *CommandExecutor) SubmitSupport(ctx context.Context, msg commands.SubmitSupportInput) error {
	return execute(ctx, e.SupportCommander, msg)
}
