package dashboard

import "sync"

// Modal is a two-state dialog: closed, or open with a form draft. Cancel and
// successful submits close it.
type Modal[T any] struct {
	mu    sync.Mutex
	open  bool
	draft T
}

// Open shows the dialog seeded with draft, replacing any previous draft.
func (m *Modal[T]) Open(draft T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	m.draft = draft
}

// Close returns the modal to the closed state. Closing a closed modal is a no-op.
func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	m.open = false
	m.draft = zero
}

// IsOpen reports whether the dialog is shown.
func (m *Modal[T]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Draft returns the current form values and whether the dialog is open.
func (m *Modal[T]) Draft() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, m.open
}

// Submit validates payload (when validate is non-nil) and closes the modal.
// A validation failure keeps the modal open with payload as the new draft.
// Submitting a closed modal returns ErrModalClosed.
func (m *Modal[T]) Submit(payload T, validate func(T) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return ErrModalClosed
	}
	if validate != nil {
		if err := validate(payload); err != nil {
			m.draft = payload
			return err
		}
	}
	var zero T
	m.open = false
	m.draft = zero
	return nil
}

// PaymentForm is the "Update Payment Method" dialog payload.
type PaymentForm struct {
	NameOnCard string `json:"name_on_card"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// LogFields omits card data so telemetry never carries it.
func (f PaymentForm) LogFields() map[string]any {
	last4 := ""
	if n := len(f.CardNumber); n >= 4 {
		last4 = f.CardNumber[n-4:]
	}
	return map[string]any{"name_on_card": f.NameOnCard, "card_last4": last4}
}

// FeedbackForm is the conversation feedback dialog payload.
type FeedbackForm struct {
	ConversationID int    `json:"conversation_id"`
	Rating         int    `json:"rating"`
	Feedback       string `json:"feedback"`
}

// Support request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// SupportPriorities lists the contact form priority options.
func SupportPriorities() []string {
	return []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

// SupportRequest is the contact support dialog payload.
type SupportRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// NewSupportRequest returns the blank contact form.
func NewSupportRequest() SupportRequest {
	return SupportRequest{Priority: PriorityMedium}
}
