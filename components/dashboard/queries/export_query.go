package queries

import (
	"bytes"
	"context"
	"io"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// ExportInput selects the export format (json or yaml).
type ExportInput struct {
	SessionID string
	Format    string
}

// ExportResult is an encoded export ready to be sent as a download.
type ExportResult struct {
	Format      string
	ContentType string
	Filename    string
	Body        []byte
}

type exportService interface {
	ExportData(ctx context.Context, id, format string, w io.Writer) error
}

// ExportQuery encodes the session's settings and conversation history.
type ExportQuery struct {
	service exportService
}

// NewExportQuery builds the query.
func NewExportQuery(service exportService) *ExportQuery {
	return &ExportQuery{service: service}
}

var _ gocommand.Querier[ExportInput, ExportResult] = (*ExportQuery)(nil)

func (q *ExportQuery) Query(ctx context.Context, in ExportInput) (ExportResult, error) {
	format, err := dashboard.ParseExportFormat(in.Format)
	if err != nil {
		return ExportResult{}, err
	}
	var buf bytes.Buffer
	if err := q.service.ExportData(ctx, in.SessionID, format, &buf); err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Format:      format,
		ContentType: dashboard.ExportContentType(format),
		Filename:    "persona-dashboard-export." + format,
		Body:        buf.Bytes(),
	}, nil
}
