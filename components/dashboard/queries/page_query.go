package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// PageInput addresses one page of one session.
type PageInput struct {
	SessionID string
	Route     dashboard.Route
}

type pageService interface {
	Page(ctx context.Context, id string, route dashboard.Route) (dashboard.PageView, error)
}

// PageQuery builds the full page view model.
type PageQuery struct {
	service pageService
}

// NewPageQuery builds the query.
func NewPageQuery(service pageService) *PageQuery {
	return &PageQuery{service: service}
}

var _ gocommand.Querier[PageInput, dashboard.PageView] = (*PageQuery)(nil)

// Query resolves the page for the session.
func (q *PageQuery) Query(ctx context.Context, in PageInput) (dashboard.PageView, error) {
	return q.service.Page(ctx, in.SessionID, in.Route)
}

// SettingsInput addresses a session's settings.
type SettingsInput struct {
	SessionID string
}

type settingsReader interface {
	Settings(ctx context.Context, id string) (dashboard.Settings, error)
}

// SettingsQuery returns the settings snapshot.
type SettingsQuery struct {
	service settingsReader
}

func NewSettingsQuery(service settingsReader) *SettingsQuery {
	return &SettingsQuery{service: service}
}

var _ gocommand.Querier[SettingsInput, dashboard.Settings] = (*SettingsQuery)(nil)

func (q *SettingsQuery) Query(ctx context.Context, in SettingsInput) (dashboard.Settings, error) {
	return q.service.Settings(ctx, in.SessionID)
}
