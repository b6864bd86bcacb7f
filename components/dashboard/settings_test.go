package dashboard

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsUpdateReplacesOnlyTargetLeaf(t *testing.T) {
	before := DefaultSettings()
	snapshot, err := json.Marshal(before)
	require.NoError(t, err)

	after, err := before.Update("ai", "verbosity", Choice("detailed"))
	require.NoError(t, err)

	verbosity, _ := after.Get("ai", "verbosity")
	assert.Equal(t, "detailed", verbosity.String())

	for _, key := range []string{"responseStyle", "autoSave"} {
		was, _ := before.Get("ai", key)
		now, _ := after.Get("ai", key)
		assert.Equal(t, was, now, "ai.%s changed", key)
	}
	beforeMap, afterMap := before.Map(), after.Map()
	for _, cat := range []string{"notifications", "display", "privacy"} {
		want, err := json.Marshal(beforeMap[cat])
		require.NoError(t, err)
		got, err := json.Marshal(afterMap[cat])
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "category %s changed", cat)
	}

	untouched, err := json.Marshal(before)
	require.NoError(t, err)
	assert.Equal(t, string(snapshot), string(untouched), "receiver must not be mutated")
}

func TestSettingsUpdateRejectsUnknownAndInvalid(t *testing.T) {
	settings := DefaultSettings()

	_, err := settings.Update("ai", "temperature", Choice("hot"))
	if !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
	_, err = settings.Update("ai", "verbosity", Choice("loud"))
	if !errors.Is(err, ErrInvalidSettingValue) {
		t.Fatalf("expected ErrInvalidSettingValue for out-of-range option, got %v", err)
	}
	_, err = settings.Update("notifications", "email", Choice("yes"))
	if !errors.Is(err, ErrInvalidSettingValue) {
		t.Fatalf("expected ErrInvalidSettingValue for wrong kind, got %v", err)
	}
}

func TestSettingsUpdateNormalizesKeys(t *testing.T) {
	settings, err := DefaultSettings().Update("ai", "response_style", Choice("casual"))
	require.NoError(t, err)
	value, ok := settings.Get("ai", "responseStyle")
	require.True(t, ok)
	assert.Equal(t, "casual", value.String())

	settings, err = settings.Update("privacy", "data-sharing", Toggle(true))
	require.NoError(t, err)
	value, _ = settings.Get("privacy", "dataSharing")
	assert.True(t, value.Enabled())
}

func TestDefaultSettingsMatchLayout(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, []string{"ai", "display", "notifications", "privacy"}, settings.Categories())

	cases := map[[2]string]any{
		{"notifications", "email"}: true,
		{"notifications", "push"}:  false,
		{"display", "theme"}:       "light",
		{"display", "timezone"}:    "UTC-5",
		{"privacy", "dataSharing"}: false,
		{"ai", "responseStyle"}:    "balanced",
		{"ai", "verbosity"}:        "medium",
		{"ai", "autoSave"}:         true,
	}
	for key, want := range cases {
		value, ok := settings.Get(key[0], key[1])
		require.True(t, ok, "%s.%s missing", key[0], key[1])
		assert.Equal(t, want, value.Interface(), "%s.%s", key[0], key[1])
	}
}

func TestParseSettingValue(t *testing.T) {
	email, _ := LookupSetting("notifications", "email")
	for raw, want := range map[string]bool{"on": true, "off": false, "true": true, "0": false, "yes": true, "": false} {
		value, err := ParseSettingValue(email, raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, value.Enabled(), raw)
	}
	_, err := ParseSettingValue(email, "maybe")
	assert.ErrorIs(t, err, ErrInvalidSettingValue)

	theme, _ := LookupSetting("display", "theme")
	value, err := ParseSettingValue(theme, "dark")
	require.NoError(t, err)
	assert.Equal(t, SettingSelect, value.Kind())
	_, err = ParseSettingValue(theme, "neon")
	assert.ErrorIs(t, err, ErrInvalidSettingValue)
}

func TestSettingValueFrom(t *testing.T) {
	email, _ := LookupSetting("notifications", "email")
	value, err := SettingValueFrom(email, false)
	require.NoError(t, err)
	assert.False(t, value.Enabled())

	_, err = SettingValueFrom(email, 3.0)
	assert.ErrorIs(t, err, ErrInvalidSettingValue)

	verbosity, _ := LookupSetting("ai", "verbosity")
	_, err = SettingValueFrom(verbosity, true)
	assert.ErrorIs(t, err, ErrInvalidSettingValue)
}

func TestSettingsMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(DefaultSettings())
	require.NoError(t, err)
	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["ai"]["autoSave"])
	assert.Equal(t, "en", decoded["display"]["language"])
}

func TestSettingsSchemaReturnsCopy(t *testing.T) {
	schema := SettingsSchema()
	require.Len(t, schema, 4)
	schema[0].Settings[0].Label = "changed"
	assert.Equal(t, "Email Notifications", SettingsSchema()[0].Settings[0].Label)
}
