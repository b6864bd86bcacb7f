package dashboard

// Stats returns the dashboard headline metrics.
func Stats() []Stat {
	return append([]Stat(nil), defaultStats...)
}

// RecentConversations returns the dashboard activity list.
func RecentConversations() []RecentConversation {
	return append([]RecentConversation(nil), defaultRecentConversations...)
}

// UsageFigures returns the usage analytics rows.
func UsageFigures() []UsageFigure {
	return append([]UsageFigure(nil), defaultUsageFigures...)
}

// UsageSeries returns the weekly conversation volume plotted on the dashboard.
func UsageSeries() []ChartPoint {
	return append([]ChartPoint(nil), defaultUsageSeries...)
}
