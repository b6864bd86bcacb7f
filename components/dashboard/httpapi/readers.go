package httpapi

import (
	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/queries"
)

// Readers groups the read-side queriers used by the JSON API.
type Readers struct {
	Page          gocommand.Querier[queries.PageInput, dashboard.PageView]
	Personas      gocommand.Querier[queries.PersonasInput, []dashboard.PersonaGroup]
	Conversations gocommand.Querier[queries.ConversationsInput, []dashboard.Conversation]
	Notifications gocommand.Querier[queries.NotificationsInput, []dashboard.NotificationView]
	Settings      gocommand.Querier[queries.SettingsInput, dashboard.Settings]
	FAQs          gocommand.Querier[queries.FAQsInput, []dashboard.FAQ]
	Export        gocommand.Querier[queries.ExportInput, queries.ExportResult]
}

// NewReaders wires every query against service.
func NewReaders(service *dashboard.Service) *Readers {
	return &Readers{
		Page:          queries.NewPageQuery(service),
		Personas:      queries.NewPersonasQuery(service),
		Conversations: queries.NewConversationsQuery(service),
		Notifications: queries.NewNotificationsQuery(service),
		Settings:      queries.NewSettingsQuery(service),
		FAQs:          queries.NewFAQsQuery(service),
		Export:        queries.NewExportQuery(service),
	}
}
