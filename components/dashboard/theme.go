package dashboard

import (
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/types"
)

// Theme names accepted by display.theme.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// ThemeSelection carries the resolved CSS tokens and chart theme for a viewer.
type ThemeSelection struct {
	Name       string
	Variant    string
	Tokens     map[string]string
	ChartTheme string
}

var themeTokens = map[string]map[string]string{
	ThemeLight: {
		"bg":        "#f9fafb",
		"surface":   "#ffffff",
		"text":      "#111827",
		"muted":     "#6b7280",
		"border":    "#e5e7eb",
		"accent":    "#2563eb",
		"accent-fg": "#ffffff",
	},
	ThemeDark: {
		"bg":        "#111827",
		"surface":   "#1f2937",
		"text":      "#f9fafb",
		"muted":     "#9ca3af",
		"border":    "#374151",
		"accent":    "#3b82f6",
		"accent-fg": "#ffffff",
	},
}

// ResolveTheme maps a display.theme value to a selection. "system" keeps the
// light tokens and lets the page opt into dark mode with prefers-color-scheme.
func ResolveTheme(name string) *ThemeSelection {
	name = strings.ToLower(strings.TrimSpace(name))
	variant := name
	switch name {
	case ThemeDark:
	case ThemeSystem:
		variant = ThemeLight
	default:
		name, variant = ThemeLight, ThemeLight
	}
	chartTheme := types.ThemeWesteros
	if variant == ThemeDark {
		chartTheme = types.ThemeChalk
	}
	tokens := make(map[string]string, len(themeTokens[variant]))
	for k, v := range themeTokens[variant] {
		tokens[k] = v
	}
	return &ThemeSelection{Name: name, Variant: variant, Tokens: tokens, ChartTheme: chartTheme}
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme *ThemeSelection) CSSVariables() map[string]string {
	if theme == nil || len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		if name := normalizeCSSVariable(key); name != "" {
			vars[name] = value
		}
	}
	return vars
}

// CSSVariablesInline renders the CSS variables as a style attribute value in
// a stable order.
func (theme *ThemeSelection) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		if vars[key] == "" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(vars[key])
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

// DarkVariables returns the dark token set used for the "system" media query.
func (theme *ThemeSelection) DarkVariables() string {
	if theme == nil || theme.Name != ThemeSystem {
		return ""
	}
	return (&ThemeSelection{Tokens: themeTokens[ThemeDark]}).CSSVariablesInline()
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
