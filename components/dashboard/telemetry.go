package dashboard

import (
	"context"

	"github.com/rs/zerolog"
)

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry writes telemetry events as structured zerolog entries.
type LogTelemetry struct {
	Logger zerolog.Logger
}

// NewLogTelemetry wraps logger so every event is logged at info level.
func NewLogTelemetry(logger zerolog.Logger) *LogTelemetry {
	return &LogTelemetry{Logger: logger}
}

// Record logs the event name with its payload fields.
func (t *LogTelemetry) Record(ctx context.Context, event string, payload map[string]any) {
	entry := t.Logger.Info().Str("event", event)
	if meta := activityContextFrom(ctx); meta.SessionID != "" {
		entry = entry.Str("session_id", meta.SessionID)
	}
	if len(payload) > 0 {
		entry = entry.Fields(payload)
	}
	entry.Msg("dashboard event")
}
