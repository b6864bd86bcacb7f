package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	ExportJSON = "json"
	ExportYAML = "yaml"
)

// DataExport is the "Export Data" download: settings plus conversation history.
type DataExport struct {
	ExportedAt    time.Time                 `json:"exported_at" yaml:"exported_at"`
	Settings      map[string]map[string]any `json:"settings" yaml:"settings"`
	Conversations []Conversation            `json:"conversations" yaml:"conversations"`
}

// NewDataExport snapshots settings and conversations.
func NewDataExport(settings Settings, conversations []Conversation, at time.Time) DataExport {
	return DataExport{
		ExportedAt:    at.UTC(),
		Settings:      settings.Map(),
		Conversations: conversations,
	}
}

// ParseExportFormat accepts json, yaml and yml (case-insensitive).
func ParseExportFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ExportJSON:
		return ExportJSON, nil
	case ExportYAML, "yml":
		return ExportYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, raw)
	}
}

// Write encodes the export. YAML output uses snake_case setting keys.
func (e DataExport) Write(w io.Writer, format string) error {
	format, err := ParseExportFormat(format)
	if err != nil {
		return err
	}
	if format == ExportYAML {
		e.Settings = snakeSettingKeys(e.Settings)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("dashboard: encode yaml export: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("dashboard: encode json export: %w", err)
	}
	return nil
}

// ExportContentType returns the MIME type for an export format.
func ExportContentType(format string) string {
	if format == ExportYAML {
		return "application/yaml"
	}
	return "application/json"
}

func snakeSettingKeys(in map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(in))
	for cat, leaves := range in {
		inner := make(map[string]any, len(leaves))
		for k, v := range leaves {
			inner[strcase.ToSnake(k)] = v
		}
		out[strcase.ToSnake(cat)] = inner
	}
	return out
}
