package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// PersonasInput carries the persona search and dropdown values.
type PersonasInput struct {
	SessionID      string
	Search         string
	Provider       string
	Specialization string
}

type personaService interface {
	FilterPersonas(ctx context.Context, id string, q dashboard.PersonaQuery) ([]dashboard.PersonaGroup, error)
}

// PersonasQuery returns personas grouped by provider. The filters are kept on
// the session so the HTML page shows the same selection.
type PersonasQuery struct {
	service personaService
}

// NewPersonasQuery builds the query.
func NewPersonasQuery(service personaService) *PersonasQuery {
	return &PersonasQuery{service: service}
}

var _ gocommand.Querier[PersonasInput, []dashboard.PersonaGroup] = (*PersonasQuery)(nil)

func (q *PersonasQuery) Query(ctx context.Context, in PersonasInput) ([]dashboard.PersonaGroup, error) {
	return q.service.FilterPersonas(ctx, in.SessionID, dashboard.PersonaQuery{
		Search:         in.Search,
		Provider:       dashboard.ParseFilter(in.Provider),
		Specialization: dashboard.ParseFilter(in.Specialization),
	})
}

// ConversationsInput carries the conversation search text.
type ConversationsInput struct {
	SessionID string
	Search    string
}

type conversationService interface {
	SearchConversations(ctx context.Context, id, search string) ([]dashboard.Conversation, error)
}

// ConversationsQuery lists conversations matching the search.
type ConversationsQuery struct {
	service conversationService
}

// NewConversationsQuery builds the query.
func NewConversationsQuery(service conversationService) *ConversationsQuery {
	return &ConversationsQuery{service: service}
}

var _ gocommand.Querier[ConversationsInput, []dashboard.Conversation] = (*ConversationsQuery)(nil)

func (q *ConversationsQuery) Query(ctx context.Context, in ConversationsInput) ([]dashboard.Conversation, error) {
	return q.service.SearchConversations(ctx, in.SessionID, in.Search)
}

// NotificationsInput carries the category filter.
type NotificationsInput struct {
	SessionID string
	Category  string
}

type notificationService interface {
	Notifications(ctx context.Context, id string, category dashboard.Filter) ([]dashboard.NotificationView, error)
}

// NotificationsQuery lists notifications newest first.
type NotificationsQuery struct {
	service notificationService
}

// NewNotificationsQuery builds the query.
func NewNotificationsQuery(service notificationService) *NotificationsQuery {
	return &NotificationsQuery{service: service}
}

var _ gocommand.Querier[NotificationsInput, []dashboard.NotificationView] = (*NotificationsQuery)(nil)

func (q *NotificationsQuery) Query(ctx context.Context, in NotificationsInput) ([]dashboard.NotificationView, error) {
	return q.service.Notifications(ctx, in.SessionID, dashboard.ParseFilter(in.Category))
}

// FAQsInput carries the help page search and category.
type FAQsInput struct {
	SessionID string
	Search    string
	Category  string
}

type faqService interface {
	SearchFAQs(ctx context.Context, id string, q dashboard.FAQQuery) ([]dashboard.FAQ, error)
}

// FAQsQuery lists FAQs matching the help page filters.
type FAQsQuery struct {
	service faqService
}

// NewFAQsQuery builds the query.
func NewFAQsQuery(service faqService) *FAQsQuery {
	return &FAQsQuery{service: service}
}

var _ gocommand.Querier[FAQsInput, []dashboard.FAQ] = (*FAQsQuery)(nil)

func (q *FAQsQuery) Query(ctx context.Context, in FAQsInput) ([]dashboard.FAQ, error) {
	return q.service.SearchFAQs(ctx, in.SessionID, dashboard.FAQQuery{
		Search:   in.Search,
		Category: dashboard.ParseFilter(in.Category),
	})
}
