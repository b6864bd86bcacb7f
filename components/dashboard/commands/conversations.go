package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// FilterPersonasInput stores the persona page filters for a session.
type FilterPersonasInput struct {
	SessionID      string `json:"session_id"`
	Search         string `json:"search"`
	Provider       string `json:"provider"`
	Specialization string `json:"specialization"`
}

// Query converts the raw form values, treating "" and "all" as no filter.
func (in FilterPersonasInput) Query() dashboard.PersonaQuery {
	return dashboard.PersonaQuery{
		Search:         in.Search,
		Provider:       dashboard.ParseFilter(in.Provider),
		Specialization: dashboard.ParseFilter(in.Specialization),
	}
}

type personaFilterer interface {
	FilterPersonas(ctx context.Context, id string, q dashboard.PersonaQuery) ([]dashboard.PersonaGroup, error)
}

// FilterPersonasCommand applies the persona search and dropdowns.
type FilterPersonasCommand struct {
	service   personaFilterer
	telemetry Telemetry
}

// NewFilterPersonasCommand creates the command.
func NewFilterPersonasCommand(service personaFilterer, telemetry Telemetry) *FilterPersonasCommand {
	return &FilterPersonasCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[FilterPersonasInput] = (*FilterPersonasCommand)(nil)

func (c *FilterPersonasCommand) Execute(ctx context.Context, msg FilterPersonasInput) error {
	if c.service == nil {
		return errors.New("filter personas command requires service")
	}
	groups, err := c.service.FilterPersonas(ctx, msg.SessionID, msg.Query())
	if err != nil {
		return err
	}
	total := 0
	for _, g := range groups {
		total += len(g.Personas)
	}
	c.telemetry.Record(ctx, commandEvent("personas_filter"), map[string]any{
		"session_id": msg.SessionID,
		"results":    total,
	})
	return nil
}

// SearchConversationsInput sets the conversation search text.
type SearchConversationsInput struct {
	SessionID string `json:"session_id"`
	Search    string `json:"search"`
}

type conversationSearcher interface {
	SearchConversations(ctx context.Context, id, search string) ([]dashboard.Conversation, error)
}

// SearchConversationsCommand filters the conversation list.
type SearchConversationsCommand struct {
	service   conversationSearcher
	telemetry Telemetry
}

// NewSearchConversationsCommand creates the command.
func NewSearchConversationsCommand(service conversationSearcher, telemetry Telemetry) *SearchConversationsCommand {
	return &SearchConversationsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SearchConversationsInput] = (*SearchConversationsCommand)(nil)

func (c *SearchConversationsCommand) Execute(ctx context.Context, msg SearchConversationsInput) error {
	if c.service == nil {
		return errors.New("search conversations command requires service")
	}
	found, err := c.service.SearchConversations(ctx, msg.SessionID, msg.Search)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("conversations_search"), map[string]any{
		"session_id": msg.SessionID,
		"results":    len(found),
	})
	return nil
}

// SelectConversationInput opens a conversation in the detail pane.
type SelectConversationInput struct {
	SessionID      string `json:"session_id"`
	ConversationID int    `json:"conversation_id"`
}

type conversationSelector interface {
	SelectConversation(ctx context.Context, id string, conversationID int) (dashboard.Conversation, error)
}

// SelectConversationCommand marks a conversation as selected.
type SelectConversationCommand struct {
	service   conversationSelector
	telemetry Telemetry
}

// NewSelectConversationCommand creates the command.
func NewSelectConversationCommand(service conversationSelector, telemetry Telemetry) *SelectConversationCommand {
	return &SelectConversationCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectConversationInput] = (*SelectConversationCommand)(nil)

func (c *SelectConversationCommand) Execute(ctx context.Context, msg SelectConversationInput) error {
	if c.service == nil {
		return errors.New("select conversation command requires service")
	}
	conv, err := c.service.SelectConversation(ctx, msg.SessionID, msg.ConversationID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("conversation_select"), map[string]any{
		"session_id":      msg.SessionID,
		"conversation_id": conv.ID,
	})
	return nil
}

// ReactInput records a thumbs up/down on a conversation.
type ReactInput struct {
	SessionID      string `json:"session_id"`
	ConversationID int    `json:"conversation_id"`
	Helpful        bool   `json:"helpful"`
}

type conversationReactor interface {
	ReactToConversation(ctx context.Context, id string, conversationID int, helpful bool) error
}

// ReactCommand logs a quick reaction. Conversation data is unchanged.
type ReactCommand struct {
	service   conversationReactor
	telemetry Telemetry
}

// NewReactCommand creates the command.
func NewReactCommand(service conversationReactor, telemetry Telemetry) *ReactCommand {
	return &ReactCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ReactInput] = (*ReactCommand)(nil)

func (c *ReactCommand) Execute(ctx context.Context, msg ReactInput) error {
	if c.service == nil {
		return errors.New("react command requires service")
	}
	if err := c.service.ReactToConversation(ctx, msg.SessionID, msg.ConversationID, msg.Helpful); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("conversation_react"), map[string]any{
		"session_id":      msg.SessionID,
		"conversation_id": msg.ConversationID,
		"helpful":         msg.Helpful,
	})
	return nil
}

// SubmitFeedbackInput submits the feedback dialog.
type SubmitFeedbackInput struct {
	SessionID string                 `json:"session_id"`
	Form      dashboard.FeedbackForm `json:"form"`
}

type feedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, id string, form dashboard.FeedbackForm) error
}

// SubmitFeedbackCommand validates and logs conversation feedback.
type SubmitFeedbackCommand struct {
	service   feedbackSubmitter
	telemetry Telemetry
}

// NewSubmitFeedbackCommand creates the command.
func NewSubmitFeedbackCommand(service feedbackSubmitter, telemetry Telemetry) *SubmitFeedbackCommand {
	return &SubmitFeedbackCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SubmitFeedbackInput] = (*SubmitFeedbackCommand)(nil)

// Execute leaves the dialog open when validation fails.
func (c *SubmitFeedbackCommand) Execute(ctx context.Context, msg SubmitFeedbackInput) error {
	if c.service == nil {
		return errors.New("submit feedback command requires service")
	}
	if err := c.service.SubmitFeedback(ctx, msg.SessionID, msg.Form); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("feedback_submit"), map[string]any{
		"session_id":      msg.SessionID,
		"conversation_id": msg.Form.ConversationID,
		"rating":          msg.Form.Rating,
	})
	return nil
}
