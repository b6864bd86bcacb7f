package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// SearchFAQsInput sets the help page search and category.
type SearchFAQsInput struct {
	SessionID string `json:"session_id"`
	Search    string `json:"search"`
	Category  string `json:"category"`
}

// Query converts the raw form values.
func (in SearchFAQsInput) Query() dashboard.FAQQuery {
	return dashboard.FAQQuery{Search: in.Search, Category: dashboard.ParseFilter(in.Category)}
}

type faqSearcher interface {
	SearchFAQs(ctx context.Context, id string, q dashboard.FAQQuery) ([]dashboard.FAQ, error)
}

// SearchFAQsCommand filters the FAQ list.
type SearchFAQsCommand struct {
	service   faqSearcher
	telemetry Telemetry
}

// NewSearchFAQsCommand creates the command.
func NewSearchFAQsCommand(service faqSearcher, telemetry Telemetry) *SearchFAQsCommand {
	return &SearchFAQsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SearchFAQsInput] = (*SearchFAQsCommand)(nil)

func (c *SearchFAQsCommand) Execute(ctx context.Context, msg SearchFAQsInput) error {
	if c.service == nil {
		return errors.New("search faqs command requires service")
	}
	faqs, err := c.service.SearchFAQs(ctx, msg.SessionID, msg.Query())
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("faq_search"), map[string]any{
		"session_id": msg.SessionID,
		"results":    len(faqs),
	})
	return nil
}

// ToggleFAQInput expands or collapses one answer.
type ToggleFAQInput struct {
	SessionID string `json:"session_id"`
	FAQID     int    `json:"faq_id"`
}

type faqToggler interface {
	ToggleFAQ(ctx context.Context, id string, faqID int) (bool, error)
}

// ToggleFAQCommand keeps at most one answer expanded.
type ToggleFAQCommand struct {
	service   faqToggler
	telemetry Telemetry
}

// NewToggleFAQCommand creates the command.
func NewToggleFAQCommand(service faqToggler, telemetry Telemetry) *ToggleFAQCommand {
	return &ToggleFAQCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleFAQInput] = (*ToggleFAQCommand)(nil)

func (c *ToggleFAQCommand) Execute(ctx context.Context, msg ToggleFAQInput) error {
	if c.service == nil {
		return errors.New("toggle faq command requires service")
	}
	expanded, err := c.service.ToggleFAQ(ctx, msg.SessionID, msg.FAQID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("faq_toggle"), map[string]any{
		"session_id": msg.SessionID,
		"faq_id":     msg.FAQID,
		"expanded":   expanded,
	})
	return nil
}

// SubmitSupportInput submits the contact dialog.
type SubmitSupportInput struct {
	SessionID string                   `json:"session_id"`
	Request   dashboard.SupportRequest `json:"request"`
	// Ticket receives the reference shown to the user when set.
	Ticket *string `json:"-"`
}

type supportSubmitter interface {
	SubmitSupport(ctx context.Context, id string, req dashboard.SupportRequest) (string, error)
}

// SubmitSupportCommand validates a support request and issues a ticket.
type SubmitSupportCommand struct {
	service   supportSubmitter
	telemetry Telemetry
}

// NewSubmitSupportCommand creates the command.
func NewSubmitSupportCommand(service supportSubmitter, telemetry Telemetry) *SubmitSupportCommand {
	return &SubmitSupportCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SubmitSupportInput] = (*SubmitSupportCommand)(nil)

func (c *SubmitSupportCommand) Execute(ctx context.Context, msg SubmitSupportInput) error {
	if c.service == nil {
		return errors.New("submit support command requires service")
	}
	ticket, err := c.service.SubmitSupport(ctx, msg.SessionID, msg.Request)
	if err != nil {
		return err
	}
	if msg.Ticket != nil {
		*msg.Ticket = ticket
	}
	c.telemetry.Record(ctx, commandEvent("support_submit"), map[string]any{
		"session_id": msg.SessionID,
		"ticket":     ticket,
	})
	return nil
}
