package dashboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ettle/strcase"
)

// SettingKind distinguishes boolean toggles from enumerated selects.
type SettingKind string

const (
	SettingToggle SettingKind = "toggle"
	SettingSelect SettingKind = "select"
)

// SettingValue is a settings leaf: a bool for toggles or one of the
// enumerated option values for selects.
type SettingValue struct {
	kind    SettingKind
	enabled bool
	choice  string
}

// Toggle builds a toggle value.
func Toggle(enabled bool) SettingValue {
	return SettingValue{kind: SettingToggle, enabled: enabled}
}

// Choice builds a select value.
func Choice(value string) SettingValue {
	return SettingValue{kind: SettingSelect, choice: value}
}

// Kind reports whether the value is a toggle or a select.
func (v SettingValue) Kind() SettingKind {
	return v.kind
}

// Enabled returns the toggle state; it is false for select values.
func (v SettingValue) Enabled() bool {
	return v.kind == SettingToggle && v.enabled
}

// String returns the select value or the toggle state as "true"/"false".
func (v SettingValue) String() string {
	if v.kind == SettingToggle {
		return strconv.FormatBool(v.enabled)
	}
	return v.choice
}

// Interface returns the plain Go value (bool or string).
func (v SettingValue) Interface() any {
	if v.kind == SettingToggle {
		return v.enabled
	}
	return v.choice
}

func (v SettingValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v SettingValue) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// SettingOption is a select entry.
type SettingOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SettingDefinition describes one configurable leaf.
type SettingDefinition struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Kind        SettingKind     `json:"kind"`
	Options     []SettingOption `json:"options,omitempty"`
	Default     SettingValue    `json:"default"`
}

// SettingCategory groups settings under a page section.
type SettingCategory struct {
	Key      string              `json:"key"`
	Title    string              `json:"title"`
	Icon     string              `json:"icon"`
	Settings []SettingDefinition `json:"settings"`
}

var settingsSchema = []SettingCategory{
	{
		Key: "notifications", Title: "Notifications", Icon: "bell",
		Settings: []SettingDefinition{
			{Key: "email", Label: "Email Notifications", Description: "Receive updates via email", Kind: SettingToggle, Default: Toggle(true)},
			{Key: "push", Label: "Push Notifications", Description: "Get instant alerts", Kind: SettingToggle, Default: Toggle(false)},
			{Key: "updates", Label: "Product Updates", Description: "New features and improvements", Kind: SettingToggle, Default: Toggle(true)},
			{Key: "marketing", Label: "Marketing", Description: "Promotional content", Kind: SettingToggle, Default: Toggle(false)},
		},
	},
	{
		Key: "display", Title: "Display", Icon: "eye",
		Settings: []SettingDefinition{
			{Key: "theme", Label: "Theme", Kind: SettingSelect, Default: Choice("light"), Options: []SettingOption{
				{Value: "light", Label: "Light"}, {Value: "dark", Label: "Dark"}, {Value: "system", Label: "System"},
			}},
			{Key: "language", Label: "Language", Kind: SettingSelect, Default: Choice("en"), Options: []SettingOption{
				{Value: "en", Label: "English"}, {Value: "es", Label: "Spanish"}, {Value: "fr", Label: "French"}, {Value: "de", Label: "German"},
			}},
			{Key: "timezone", Label: "Timezone", Kind: SettingSelect, Default: Choice("UTC-5"), Options: []SettingOption{
				{Value: "UTC-5", Label: "UTC-5 (EST)"}, {Value: "UTC-8", Label: "UTC-8 (PST)"}, {Value: "UTC+0", Label: "UTC+0 (GMT)"}, {Value: "UTC+1", Label: "UTC+1 (CET)"},
			}},
		},
	},
	{
		Key: "privacy", Title: "Privacy & Security", Icon: "shield",
		Settings: []SettingDefinition{
			{Key: "analytics", Label: "Analytics", Description: "Help improve our service", Kind: SettingToggle, Default: Toggle(true)},
			{Key: "cookies", Label: "Cookies", Description: "Essential for functionality", Kind: SettingToggle, Default: Toggle(true)},
			{Key: "dataSharing", Label: "Data Sharing", Description: "Share with partners", Kind: SettingToggle, Default: Toggle(false)},
		},
	},
	{
		Key: "ai", Title: "AI Preferences", Icon: "settings",
		Settings: []SettingDefinition{
			{Key: "responseStyle", Label: "Response Style", Kind: SettingSelect, Default: Choice("balanced"), Options: []SettingOption{
				{Value: "formal", Label: "Formal"}, {Value: "balanced", Label: "Balanced"}, {Value: "casual", Label: "Casual"},
			}},
			{Key: "verbosity", Label: "Verbosity", Kind: SettingSelect, Default: Choice("medium"), Options: []SettingOption{
				{Value: "concise", Label: "Concise"}, {Value: "medium", Label: "Medium"}, {Value: "detailed", Label: "Detailed"},
			}},
			{Key: "autoSave", Label: "Auto-save Conversations", Description: "Automatically save your chats", Kind: SettingToggle, Default: Toggle(true)},
		},
	},
}

// SettingsSchema returns the settings page layout with defaults and options.
func SettingsSchema() []SettingCategory {
	out := make([]SettingCategory, len(settingsSchema))
	for i, cat := range settingsSchema {
		cat.Settings = append([]SettingDefinition(nil), cat.Settings...)
		out[i] = cat
	}
	return out
}

// LookupSetting finds a definition by category and key. Keys are accepted in
// camel, snake or kebab case.
func LookupSetting(category, key string) (SettingDefinition, bool) {
	category = NormalizeSettingKey(category)
	key = NormalizeSettingKey(key)
	for _, cat := range settingsSchema {
		if cat.Key != category {
			continue
		}
		for _, def := range cat.Settings {
			if def.Key == key {
				return def, true
			}
		}
	}
	return SettingDefinition{}, false
}

// NormalizeSettingKey converts form/query keys (response_style, response-style)
// into the camelCase keys used by the settings map.
func NormalizeSettingKey(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return strcase.ToCamel(raw)
}

// Settings is an immutable category → setting → value map. Update returns a
// new value and never mutates the receiver.
type Settings struct {
	values map[string]map[string]SettingValue
}

// DefaultSettings builds the settings state used at session start.
func DefaultSettings() Settings {
	values := make(map[string]map[string]SettingValue, len(settingsSchema))
	for _, cat := range settingsSchema {
		leaves := make(map[string]SettingValue, len(cat.Settings))
		for _, def := range cat.Settings {
			leaves[def.Key] = def.Default
		}
		values[cat.Key] = leaves
	}
	return Settings{values: values}
}

// Get returns a single leaf.
func (s Settings) Get(category, key string) (SettingValue, bool) {
	leaves, ok := s.values[category]
	if !ok {
		return SettingValue{}, false
	}
	v, ok := leaves[key]
	return v, ok
}

// Categories lists the category keys in sorted order.
func (s Settings) Categories() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Update replaces the (category, key) leaf. All sibling leaves and other
// categories keep their values.
func (s Settings) Update(category, key string, value SettingValue) (Settings, error) {
	def, ok := LookupSetting(category, key)
	if !ok {
		return s, fmt.Errorf("%w: %s.%s", ErrUnknownSetting, category, key)
	}
	category = NormalizeSettingKey(category)
	if err := checkSettingValue(def, value); err != nil {
		return s, err
	}
	next := make(map[string]map[string]SettingValue, len(s.values))
	for cat, leaves := range s.values {
		next[cat] = leaves
	}
	updated := make(map[string]SettingValue, len(s.values[category]))
	for k, v := range s.values[category] {
		updated[k] = v
	}
	updated[def.Key] = value
	next[category] = updated
	return Settings{values: next}, nil
}

// Map returns the settings as plain nested maps for templates and exports.
func (s Settings) Map() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.values))
	for cat, leaves := range s.values {
		inner := make(map[string]any, len(leaves))
		for k, v := range leaves {
			inner[k] = v.Interface()
		}
		out[cat] = inner
	}
	return out
}

func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

func (s Settings) MarshalYAML() (any, error) {
	return s.Map(), nil
}

// ParseSettingValue converts raw transport input into a value of the kind
// the definition expects. Checkbox input "on"/"off" is accepted for toggles.
func ParseSettingValue(def SettingDefinition, raw string) (SettingValue, error) {
	raw = strings.TrimSpace(raw)
	if def.Kind == SettingToggle {
		switch strings.ToLower(raw) {
		case "on", "yes":
			return Toggle(true), nil
		case "off", "no", "":
			return Toggle(false), nil
		}
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("%w: %s expects a boolean, got %q", ErrInvalidSettingValue, def.Key, raw)
		}
		return Toggle(enabled), nil
	}
	value := Choice(raw)
	if err := checkSettingValue(def, value); err != nil {
		return SettingValue{}, err
	}
	return value, nil
}

// SettingValueFrom converts a decoded JSON value (bool or string).
func SettingValueFrom(def SettingDefinition, raw any) (SettingValue, error) {
	switch v := raw.(type) {
	case bool:
		value := Toggle(v)
		return value, checkSettingValue(def, value)
	case string:
		return ParseSettingValue(def, v)
	default:
		return SettingValue{}, fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidSettingValue, def.Key, raw)
	}
}

func checkSettingValue(def SettingDefinition, value SettingValue) error {
	if value.kind != def.Kind {
		return fmt.Errorf("%w: %s expects a %s value", ErrInvalidSettingValue, def.Key, def.Kind)
	}
	if def.Kind == SettingToggle {
		return nil
	}
	for _, opt := range def.Options {
		if opt.Value == value.choice {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not an option for %s", ErrInvalidSettingValue, value.choice, def.Key)
}
