package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalSubmitClosesOnSuccess(t *testing.T) {
	var m Modal[PaymentForm]
	assert.False(t, m.IsOpen())

	m.Open(PaymentForm{})
	require.True(t, m.IsOpen())

	err := m.Submit(PaymentForm{NameOnCard: "A", CardNumber: "4242", Expiry: "12/30", CVV: "123"}, nil)
	require.NoError(t, err)
	assert.False(t, m.IsOpen())
	draft, open := m.Draft()
	assert.False(t, open)
	assert.Equal(t, PaymentForm{}, draft)
}

func TestModalSubmitStaysOpenOnValidationFailure(t *testing.T) {
	var m Modal[SupportRequest]
	m.Open(NewSupportRequest())
	invalid := errors.New("name is required")
	payload := SupportRequest{Subject: "Help", Priority: PriorityHigh}

	err := m.Submit(payload, func(SupportRequest) error { return invalid })
	require.ErrorIs(t, err, invalid)
	require.True(t, m.IsOpen())
	draft, _ := m.Draft()
	assert.Equal(t, payload, draft)
}

func TestModalSubmitRequiresOpen(t *testing.T) {
	var m Modal[FeedbackForm]
	if err := m.Submit(FeedbackForm{}, nil); !errors.Is(err, ErrModalClosed) {
		t.Fatalf("expected ErrModalClosed, got %v", err)
	}
}

func TestModalCloseDiscardsDraft(t *testing.T) {
	var m Modal[FeedbackForm]
	m.Open(FeedbackForm{ConversationID: 1, Rating: 4})
	m.Close()
	assert.False(t, m.IsOpen())
	draft, _ := m.Draft()
	assert.Zero(t, draft.Rating)
}

func TestPaymentFormLogFieldsMaskCard(t *testing.T) {
	fields := PaymentForm{NameOnCard: "Ada", CardNumber: "4242424242424242", CVV: "999"}.LogFields()
	assert.Equal(t, "4242", fields["card_last4"])
	assert.NotContains(t, fields, "cvv")
	assert.NotContains(t, fields, "card_number")
}

func TestNewSupportRequestDefaultsPriority(t *testing.T) {
	assert.Equal(t, PriorityMedium, NewSupportRequest().Priority)
	assert.Equal(t, []string{"low", "medium", "high", "urgent"}, SupportPriorities())
}
