package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationBrowserSelectionReplaces(t *testing.T) {
	b := NewConversationBrowser(DefaultConversations())
	_, ok := b.Selected()
	require.False(t, ok)

	_, err := b.Select(1)
	require.NoError(t, err)
	conv, err := b.Select(2)
	require.NoError(t, err)
	assert.Equal(t, "Claude", conv.Persona)

	selected, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, selected.ID)
	assert.Len(t, selected.Messages, 2)
}

func TestConversationBrowserSelectUnknownKeepsSelection(t *testing.T) {
	b := NewConversationBrowser(DefaultConversations())
	_, err := b.Select(3)
	require.NoError(t, err)
	if _, err := b.Select(42); !errors.Is(err, ErrConversationNotFound) {
		t.Fatalf("expected ErrConversationNotFound, got %v", err)
	}
	selected, _ := b.Selected()
	assert.Equal(t, 3, selected.ID)
}

func TestConversationBrowserSearch(t *testing.T) {
	b := NewConversationBrowser(DefaultConversations())
	b.SetSearch("data")
	require.Len(t, b.List(), 1)
	assert.Equal(t, "data", b.Search())
	assert.Len(t, b.All(), 3)
}

func TestConversationBrowserOpenFeedbackSeedsRating(t *testing.T) {
	b := NewConversationBrowser(DefaultConversations())
	form, err := b.OpenFeedback(2)
	require.NoError(t, err)
	assert.Equal(t, 5, form.Rating)
	draft, open := b.Feedback.Draft()
	require.True(t, open)
	assert.Equal(t, 2, draft.ConversationID)

	_, err = b.OpenFeedback(9)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}
