package dashboard

import "sync"

// Presentation maps a notification type to its icon identifier and badge
// style. Unknown types render as info.
func Presentation(kind NotificationType) (icon, class string) {
	switch kind {
	case NotificationSuccess:
		return "check-circle", "bg-green-100 text-green-600"
	case NotificationWarning:
		return "alert-circle", "bg-yellow-100 text-yellow-600"
	default:
		return "info", "bg-blue-100 text-blue-600"
	}
}

// NotificationView pairs a notification with its presentation for templates.
type NotificationView struct {
	Notification
	Icon  string `json:"icon"`
	Class string `json:"class"`
}

// Inbox is the per-session notification list. Read flags only move from
// false to true and deleted items never come back until a session reset.
type Inbox struct {
	mu    sync.RWMutex
	items []Notification
}

// NewInbox seeds an inbox with a copy of items.
func NewInbox(items []Notification) *Inbox {
	return &Inbox{items: append([]Notification(nil), items...)}
}

// List returns the notifications matching the category filter in their
// original order.
func (b *Inbox) List(category Filter) []Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterNotifications(b.items, category)
}

// Views decorates List with icon and class pairs.
func (b *Inbox) Views(category Filter) []NotificationView {
	items := b.List(category)
	out := make([]NotificationView, 0, len(items))
	for _, n := range items {
		icon, class := Presentation(n.Type)
		out = append(out, NotificationView{Notification: n, Icon: icon, Class: class})
	}
	return out
}

// Categories returns the filter sidebar entries with live counts. The first
// entry covers every notification.
func (b *Inbox) Categories() []NotificationCategory {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]NotificationCategory, 0, len(notificationCategoryNames)+1)
	out = append(out, NotificationCategory{ID: "all", Name: "All Notifications", Count: len(b.items)})
	for _, cat := range notificationCategoryNames {
		count := 0
		for _, n := range b.items {
			if n.Category == cat.ID {
				count++
			}
		}
		out = append(out, NotificationCategory{ID: cat.ID, Name: cat.Name, Count: count})
	}
	return out
}

// Len returns the number of notifications still in the inbox.
func (b *Inbox) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.items)
}

// UnreadCount counts unread notifications.
func (b *Inbox) UnreadCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	count := 0
	for _, n := range b.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips the read flag of id. It reports whether the flag changed;
// unknown ids and already-read items are no-ops.
func (b *Inbox) MarkRead(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			if b.items[i].Read {
				return false
			}
			b.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead marks every notification read and returns the ids that were
// unread before the call.
func (b *Inbox) MarkAllRead() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var flipped []int
	for i := range b.items {
		if !b.items[i].Read {
			b.items[i].Read = true
			flipped = append(flipped, b.items[i].ID)
		}
	}
	return flipped
}

// Delete removes the notification with id. Deleting an absent id is a no-op
// and returns false.
func (b *Inbox) Delete(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}
