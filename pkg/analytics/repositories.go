package analytics

import (
	"context"

	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// NewActivityFeed adapts an analytics client into a dashboard.ActivityFeed.
// When the client fails and fallback is set, the fallback feed answers.
func NewActivityFeed(client ActivityClient, fallback dashboard.ActivityFeed) dashboard.ActivityFeed {
	return &activityFeed{client: client, fallback: fallback}
}

type activityFeed struct {
	client   ActivityClient
	fallback dashboard.ActivityFeed
}

func (f *activityFeed) Recent(ctx context.Context, limit int) ([]dashboard.RecentConversation, error) {
	items, err := f.client.FetchRecent(ctx, limit)
	if err != nil && f.fallback != nil {
		return f.fallback.Recent(ctx, limit)
	}
	return items, err
}
