package dashboard

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveTheme(t *testing.T) {
	dark := ResolveTheme("dark")
	assert.Equal(t, ThemeDark, dark.Variant)
	assert.Equal(t, types.ThemeChalk, dark.ChartTheme)
	assert.Empty(t, dark.DarkVariables())

	system := ResolveTheme("system")
	assert.Equal(t, ThemeSystem, system.Name)
	assert.Equal(t, ThemeLight, system.Variant)
	assert.Contains(t, system.DarkVariables(), "--bg: #111827;")

	fallback := ResolveTheme("sepia")
	assert.Equal(t, ThemeLight, fallback.Name)
	assert.Equal(t, types.ThemeWesteros, fallback.ChartTheme)
}

func TestCSSVariablesInlineIsSorted(t *testing.T) {
	theme := &ThemeSelection{Tokens: map[string]string{"text": "#000", "bg": "#fff", "--accent": "red"}}
	assert.Equal(t, "--accent: red; --bg: #fff; --text: #000;", theme.CSSVariablesInline())

	var empty *ThemeSelection
	assert.Empty(t, empty.CSSVariablesInline())
}
