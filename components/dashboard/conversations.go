package dashboard

import (
	"fmt"
	"sync"
)

// ConversationBrowser backs the conversation history page: a search term and
// at most one selected conversation.
type ConversationBrowser struct {
	mu            sync.RWMutex
	conversations []Conversation
	search        string
	selected      int
	hasSelection  bool
	Feedback      Modal[FeedbackForm]
}

// NewConversationBrowser wraps conversations without a selection.
func NewConversationBrowser(conversations []Conversation) *ConversationBrowser {
	return &ConversationBrowser{conversations: conversations}
}

// SetSearch stores the search term.
func (b *ConversationBrowser) SetSearch(search string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.search = search
}

// Search returns the current search term.
func (b *ConversationBrowser) Search() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.search
}

// All returns every conversation.
func (b *ConversationBrowser) All() []Conversation {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Conversation(nil), b.conversations...)
}

// List returns the conversations matching the current search.
func (b *ConversationBrowser) List() []Conversation {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterConversations(b.conversations, b.search)
}

// Find looks a conversation up by id.
func (b *ConversationBrowser) Find(id int) (Conversation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.findLocked(id)
}

// Select replaces the selection with id.
func (b *ConversationBrowser) Select(id int) (Conversation, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	conv, err := b.findLocked(id)
	if err != nil {
		return Conversation{}, err
	}
	b.selected = id
	b.hasSelection = true
	return conv, nil
}

// Selected returns the selected conversation, if any.
func (b *ConversationBrowser) Selected() (Conversation, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.hasSelection {
		return Conversation{}, false
	}
	conv, err := b.findLocked(b.selected)
	return conv, err == nil
}

// OpenFeedback opens the feedback dialog for id seeded with its rating.
func (b *ConversationBrowser) OpenFeedback(id int) (FeedbackForm, error) {
	conv, err := b.Find(id)
	if err != nil {
		return FeedbackForm{}, err
	}
	form := FeedbackForm{ConversationID: conv.ID, Rating: conv.Rating}
	b.Feedback.Open(form)
	return form, nil
}

func (b *ConversationBrowser) findLocked(id int) (Conversation, error) {
	for _, c := range b.conversations {
		if c.ID == id {
			return c, nil
		}
	}
	return Conversation{}, fmt.Errorf("%w: %d", ErrConversationNotFound, id)
}
