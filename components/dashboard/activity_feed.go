package dashboard

import "context"

// ActivityFeed supplies the "Recent Conversations" card on the dashboard home.
type ActivityFeed interface {
	Recent(ctx context.Context, limit int) ([]RecentConversation, error)
}

// StaticActivityFeed returns fixed entries.
type StaticActivityFeed struct {
	Items []RecentConversation
}

// Recent returns up to limit items from the static list. A non-positive limit
// returns everything.
func (f StaticActivityFeed) Recent(_ context.Context, limit int) ([]RecentConversation, error) {
	if limit <= 0 || limit >= len(f.Items) {
		return append([]RecentConversation{}, f.Items...), nil
	}
	return append([]RecentConversation{}, f.Items[:limit]...), nil
}

// DefaultActivityFeed serves the sample activity list.
func DefaultActivityFeed() ActivityFeed {
	return StaticActivityFeed{Items: RecentConversations()}
}
