package dashboard

import (
	"context"
	"errors"
)

// MultiRefreshHook forwards session events to every hook in order. All hooks
// run even when one fails; the errors are joined.
type MultiRefreshHook []RefreshHook

// SessionUpdated fans the event out.
func (hooks MultiRefreshHook) SessionUpdated(ctx context.Context, event SessionEvent) error {
	var errs []error
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		if err := hook.SessionUpdated(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TelemetryRefreshHook records session events through Telemetry so pushes
// show up in the event log.
type TelemetryRefreshHook struct {
	Telemetry Telemetry
}

// SessionUpdated records "dashboard.refresh.<topic>".
func (h TelemetryRefreshHook) SessionUpdated(ctx context.Context, event SessionEvent) error {
	if h.Telemetry == nil {
		return nil
	}
	h.Telemetry.Record(ctx, "dashboard.refresh."+event.Topic, map[string]any{
		"session_id": event.SessionID,
		"reason":     event.Reason,
	})
	return nil
}
