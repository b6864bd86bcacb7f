package analytics

import (
	"context"

	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// ActivityClient fetches recent conversation activity from an upstream
// analytics service.
type ActivityClient interface {
	FetchRecent(ctx context.Context, limit int) ([]dashboard.RecentConversation, error)
}
