package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// UpdateSettingInput replaces one settings leaf. Value is a bool for toggles
// and a string for selects and form posts.
type UpdateSettingInput struct {
	SessionID string `json:"session_id"`
	Category  string `json:"category"`
	Key       string `json:"key"`
	Value     any    `json:"value"`
}

type settingUpdater interface {
	UpdateSetting(ctx context.Context, id, category, key string, raw any) (dashboard.Settings, error)
}

// UpdateSettingCommand handles a single toggle or select change.
type UpdateSettingCommand struct {
	service   settingUpdater
	telemetry Telemetry
}

// NewUpdateSettingCommand creates the command.
func NewUpdateSettingCommand(service settingUpdater, telemetry Telemetry) *UpdateSettingCommand {
	return &UpdateSettingCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateSettingInput] = (*UpdateSettingCommand)(nil)

// Execute leaves settings untouched when the key or value is rejected.
func (c *UpdateSettingCommand) Execute(ctx context.Context, msg UpdateSettingInput) error {
	if c.service == nil {
		return errors.New("update setting command requires service")
	}
	if msg.Category == "" || msg.Key == "" {
		return errors.New("setting category and key are required")
	}
	if _, err := c.service.UpdateSetting(ctx, msg.SessionID, msg.Category, msg.Key, msg.Value); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("setting_update"), map[string]any{
		"session_id": msg.SessionID,
		"category":   msg.Category,
		"key":        msg.Key,
	})
	return nil
}

// PatchSettingsInput replaces several leaves as one change.
type PatchSettingsInput struct {
	SessionID string                    `json:"session_id"`
	Settings  map[string]map[string]any `json:"settings"`
}

type settingsPatcher interface {
	PatchSettings(ctx context.Context, id string, patch map[string]map[string]any) (dashboard.Settings, error)
}

// PatchSettingsCommand applies a partial settings document atomically.
type PatchSettingsCommand struct {
	service   settingsPatcher
	telemetry Telemetry
}

// NewPatchSettingsCommand creates the command.
func NewPatchSettingsCommand(service settingsPatcher, telemetry Telemetry) *PatchSettingsCommand {
	return &PatchSettingsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[PatchSettingsInput] = (*PatchSettingsCommand)(nil)

func (c *PatchSettingsCommand) Execute(ctx context.Context, msg PatchSettingsInput) error {
	if c.service == nil {
		return errors.New("patch settings command requires service")
	}
	if len(msg.Settings) == 0 {
		return nil
	}
	if _, err := c.service.PatchSettings(ctx, msg.SessionID, msg.Settings); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("settings_patch"), map[string]any{
		"session_id": msg.SessionID,
		"categories": len(msg.Settings),
	})
	return nil
}

// SaveSettingsInput backs the "Save Changes" button.
type SaveSettingsInput struct {
	SessionID string `json:"session_id"`
}

type settingsSaver interface {
	SaveSettings(ctx context.Context, id string) error
}

// SaveSettingsCommand logs the current settings. Nothing is persisted.
type SaveSettingsCommand struct {
	service   settingsSaver
	telemetry Telemetry
}

// NewSaveSettingsCommand creates the command.
func NewSaveSettingsCommand(service settingsSaver, telemetry Telemetry) *SaveSettingsCommand {
	return &SaveSettingsCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveSettingsInput] = (*SaveSettingsCommand)(nil)

func (c *SaveSettingsCommand) Execute(ctx context.Context, msg SaveSettingsInput) error {
	if c.service == nil {
		return errors.New("save settings command requires service")
	}
	if err := c.service.SaveSettings(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("settings_save"), map[string]any{
		"session_id": msg.SessionID,
	})
	return nil
}
