package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLogTelemetryIncludesActivitySession(t *testing.T) {
	var buf bytes.Buffer
	telemetry := NewLogTelemetry(zerolog.New(&buf))
	ctx := ContextWithActivity(context.Background(), ActivityContext{SessionID: "sess-1"})

	telemetry.Record(ctx, "dashboard.settings.save", map[string]any{"category": "display"})

	out := buf.String()
	for _, want := range []string{`"event":"dashboard.settings.save"`, `"session_id":"sess-1"`, `"category":"display"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestNormalizeTelemetryDefaultsToNoop(t *testing.T) {
	if _, ok := normalizeTelemetry(nil).(noopTelemetry); !ok {
		t.Fatalf("expected noop telemetry for nil input")
	}
}
