package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// SelectPlanInput highlights a plan card.
type SelectPlanInput struct {
	SessionID string `json:"session_id"`
	PlanID    string `json:"plan_id"`
}

type planSelector interface {
	SelectPlan(ctx context.Context, id, planID string) (dashboard.Plan, error)
}

// SelectPlanCommand marks a plan as the selected upgrade target.
type SelectPlanCommand struct {
	service   planSelector
	telemetry Telemetry
}

// NewSelectPlanCommand creates the command.
func NewSelectPlanCommand(service planSelector, telemetry Telemetry) *SelectPlanCommand {
	return &SelectPlanCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectPlanInput] = (*SelectPlanCommand)(nil)

func (c *SelectPlanCommand) Execute(ctx context.Context, msg SelectPlanInput) error {
	if c.service == nil {
		return errors.New("select plan command requires service")
	}
	plan, err := c.service.SelectPlan(ctx, msg.SessionID, msg.PlanID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("plan_select"), map[string]any{
		"session_id": msg.SessionID,
		"plan_id":    plan.ID,
	})
	return nil
}

// SubmitPaymentInput submits the payment dialog.
type SubmitPaymentInput struct {
	SessionID string                `json:"session_id"`
	Form      dashboard.PaymentForm `json:"form"`
}

type paymentSubmitter interface {
	SubmitPayment(ctx context.Context, id string, form dashboard.PaymentForm) error
}

// SubmitPaymentCommand validates the card form. Card data never reaches telemetry.
type SubmitPaymentCommand struct {
	service   paymentSubmitter
	telemetry Telemetry
}

// NewSubmitPaymentCommand creates the command.
func NewSubmitPaymentCommand(service paymentSubmitter, telemetry Telemetry) *SubmitPaymentCommand {
	return &SubmitPaymentCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SubmitPaymentInput] = (*SubmitPaymentCommand)(nil)

func (c *SubmitPaymentCommand) Execute(ctx context.Context, msg SubmitPaymentInput) error {
	if c.service == nil {
		return errors.New("submit payment command requires service")
	}
	if err := c.service.SubmitPayment(ctx, msg.SessionID, msg.Form); err != nil {
		return err
	}
	payload := msg.Form.LogFields()
	payload["session_id"] = msg.SessionID
	c.telemetry.Record(ctx, commandEvent("payment_submit"), payload)
	return nil
}

// SubscriptionInput carries the "update" or "cancel" subscription action.
type SubscriptionInput struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
}

type subscriptionManager interface {
	Subscription(ctx context.Context, id, action string) error
}

// SubscriptionCommand logs subscription button presses.
type SubscriptionCommand struct {
	service   subscriptionManager
	telemetry Telemetry
}

// NewSubscriptionCommand creates the command.
func NewSubscriptionCommand(service subscriptionManager, telemetry Telemetry) *SubscriptionCommand {
	return &SubscriptionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SubscriptionInput] = (*SubscriptionCommand)(nil)

func (c *SubscriptionCommand) Execute(ctx context.Context, msg SubscriptionInput) error {
	if c.service == nil {
		return errors.New("subscription command requires service")
	}
	if err := c.service.Subscription(ctx, msg.SessionID, msg.Action); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("subscription"), map[string]any{
		"session_id": msg.SessionID,
		"action":     msg.Action,
	})
	return nil
}

// InvoiceInput requests an invoice download.
type InvoiceInput struct {
	SessionID string `json:"session_id"`
	InvoiceID int    `json:"invoice_id"`
}

type invoiceDownloader interface {
	DownloadInvoice(ctx context.Context, id string, invoiceID int) error
}

// DownloadInvoiceCommand logs an invoice download.
type DownloadInvoiceCommand struct {
	service   invoiceDownloader
	telemetry Telemetry
}

// NewDownloadInvoiceCommand creates the command.
func NewDownloadInvoiceCommand(service invoiceDownloader, telemetry Telemetry) *DownloadInvoiceCommand {
	return &DownloadInvoiceCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[InvoiceInput] = (*DownloadInvoiceCommand)(nil)

func (c *DownloadInvoiceCommand) Execute(ctx context.Context, msg InvoiceInput) error {
	if c.service == nil {
		return errors.New("download invoice command requires service")
	}
	if err := c.service.DownloadInvoice(ctx, msg.SessionID, msg.InvoiceID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("invoice_download"), map[string]any{
		"session_id": msg.SessionID,
		"invoice_id": msg.InvoiceID,
	})
	return nil
}
