package dashboard

import "strings"

// ResolveLocalizedValue selects the best translation for the provided locale
// and falls back to the supplied value. Keys are matched case-insensitively and
// language-region pairs (`es-mx`) fall back to their base language (`es`).
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if strings.EqualFold(key, candidate) && value != "" {
				return value
			}
		}
	}
	return fallback
}

func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	return append(candidates, "default")
}

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(locale))
}

// Cosmetic navigation labels for the languages offered by display.language.
var navLabels = map[Route]map[string]string{
	RouteDashboard:     {"es": "Panel", "fr": "Tableau de bord", "de": "Übersicht"},
	RoutePersonas:      {"es": "Personas IA", "fr": "Personas IA", "de": "KI-Personas"},
	RouteConversations: {"es": "Conversaciones", "fr": "Conversations", "de": "Unterhaltungen"},
	RouteSettings:      {"es": "Configuración", "fr": "Paramètres", "de": "Einstellungen"},
	RouteProfile:       {"es": "Perfil", "fr": "Profil", "de": "Profil"},
	RouteBilling:       {"es": "Facturación", "fr": "Facturation", "de": "Abrechnung"},
	RouteHelp:          {"es": "Ayuda y soporte", "fr": "Aide et support", "de": "Hilfe & Support"},
	RouteNotifications: {"es": "Notificaciones", "fr": "Notifications", "de": "Benachrichtigungen"},
}
