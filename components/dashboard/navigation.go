package dashboard

import "strings"

// Route identifies one of the dashboard pages.
type Route string

const (
	RouteDashboard     Route = "dashboard"
	RoutePersonas      Route = "personas"
	RouteConversations Route = "conversations"
	RouteSettings      Route = "settings"
	RouteProfile       Route = "profile"
	RouteBilling       Route = "billing"
	RouteHelp          Route = "help"
	RouteNotifications Route = "notifications"
)

// AppTitle is the sidebar heading.
const AppTitle = "AI Platform"

// RouteSpec binds a path to a page.
type RouteSpec struct {
	Route    Route  `json:"route"`
	Path     string `json:"path"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Template string `json:"template"`
}

var routeTable = []RouteSpec{
	{Route: RouteDashboard, Path: "/", Label: "Dashboard", Icon: "home", Template: "dashboard.html"},
	{Route: RoutePersonas, Path: "/personas", Label: "AI Personas", Icon: "users", Template: "personas.html"},
	{Route: RouteConversations, Path: "/conversations", Label: "Conversations", Icon: "message-circle", Template: "conversations.html"},
	{Route: RouteSettings, Path: "/settings", Label: "Settings", Icon: "settings", Template: "settings.html"},
	{Route: RouteProfile, Path: "/profile", Label: "Profile", Icon: "user", Template: "profile.html"},
	{Route: RouteBilling, Path: "/billing", Label: "Billing", Icon: "credit-card", Template: "billing.html"},
	{Route: RouteHelp, Path: "/help", Label: "Help & Support", Icon: "help-circle", Template: "help.html"},
	{Route: RouteNotifications, Path: "/notifications", Label: "Notifications", Icon: "bell", Template: "notifications.html"},
}

// Routes returns the fixed page table in sidebar order.
func Routes() []RouteSpec {
	return append([]RouteSpec(nil), routeTable...)
}

// RouteFor returns the table entry for a route id.
func RouteFor(route Route) (RouteSpec, bool) {
	for _, spec := range routeTable {
		if spec.Route == route {
			return spec, true
		}
	}
	return RouteSpec{}, false
}

// RouteForPath matches a request path exactly; there is no catch-all.
func RouteForPath(path string) (RouteSpec, bool) {
	if path != "/" {
		path = strings.TrimRight(path, "/")
	}
	if path == "" {
		path = "/"
	}
	for _, spec := range routeTable {
		if spec.Path == path {
			return spec, true
		}
	}
	return RouteSpec{}, false
}

// NavItem is a rendered sidebar link.
type NavItem struct {
	Route  Route  `json:"route"`
	Path   string `json:"path"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// NavItems builds the sidebar for the active route using labels for language.
func NavItems(active Route, language string) []NavItem {
	items := make([]NavItem, 0, len(routeTable))
	for _, spec := range routeTable {
		items = append(items, NavItem{
			Route:  spec.Route,
			Path:   spec.Path,
			Label:  ResolveLocalizedValue(navLabels[spec.Route], language, spec.Label),
			Icon:   spec.Icon,
			Active: spec.Route == active,
		})
	}
	return items
}
