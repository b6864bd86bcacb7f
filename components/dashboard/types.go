package dashboard

import "context"

// Persona is an AI assistant listed in the persona catalog.
type Persona struct {
	ID             int     `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Provider       string  `json:"provider" yaml:"provider"`
	Specialization string  `json:"specialization" yaml:"specialization"`
	Description    string  `json:"description" yaml:"description"`
	Rating         float64 `json:"rating" yaml:"rating"`
	Active         bool    `json:"active" yaml:"active"`
	Icon           string  `json:"icon" yaml:"icon"`
	Color          string  `json:"color" yaml:"color"`
}

// PersonaGroup is a provider heading with the personas rendered under it.
type PersonaGroup struct {
	Provider string    `json:"provider"`
	Personas []Persona `json:"personas"`
}

// Sender identifies who wrote a conversation message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is a single turn inside a conversation transcript.
type Message struct {
	Sender    Sender `json:"sender" yaml:"sender"`
	Content   string `json:"content" yaml:"content"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Conversation is a past chat session with a persona. Persona references the
// persona by display name.
type Conversation struct {
	ID       int       `json:"id" yaml:"id"`
	Persona  string    `json:"persona" yaml:"persona"`
	Title    string    `json:"title" yaml:"title"`
	Date     string    `json:"date" yaml:"date"`
	Time     string    `json:"time" yaml:"time"`
	Duration string    `json:"duration" yaml:"duration"`
	Status   string    `json:"status" yaml:"status"`
	Rating   int       `json:"rating" yaml:"rating"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Invoice is a billing history row.
type Invoice struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Status string `json:"status"`
	Plan   string `json:"plan"`
}

// Plan is a subscription tier offered on the billing page.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// CurrentPlan summarizes the active subscription.
type CurrentPlan struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Period      string `json:"period"`
	NextBilling string `json:"next_billing"`
	Status      string `json:"status"`
}

// UsageMeter is a usage bar on the billing page. A zero Limit means unlimited.
type UsageMeter struct {
	Label string `json:"label"`
	Used  int    `json:"used"`
	Limit int    `json:"limit"`
}

// NotificationType tags a notification for icon/color dispatch.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is an inbox entry. Read and membership in the inbox are the
// only mutable parts.
type Notification struct {
	ID       int              `json:"id"`
	Type     NotificationType `json:"type"`
	Title    string           `json:"title"`
	Message  string           `json:"message"`
	Time     string           `json:"time"`
	Read     bool             `json:"read"`
	Category string           `json:"category"`
}

// NotificationCategory is a sidebar filter entry with its live count.
type NotificationCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FAQ is a help center question.
type FAQ struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Category is a selectable filter option.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupportChannel is a contact card shown on the help page.
type SupportChannel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Action      string `json:"action"`
}

// OnboardingHighlight is a titled bullet inside an onboarding step body.
type OnboardingHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// OnboardingStep is one page of the onboarding wizard.
type OnboardingStep struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Subtitle   string                `json:"subtitle"`
	Body       string                `json:"body,omitempty"`
	Heading    string                `json:"heading,omitempty"`
	Highlights []OnboardingHighlight `json:"highlights,omitempty"`
	Tip        string                `json:"tip,omitempty"`
}

// Stat is a dashboard headline metric.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// RecentConversation is a compact row of the dashboard activity list.
type RecentConversation struct {
	Persona string `json:"persona"`
	Topic   string `json:"topic"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

// UsageFigure is a label/value row of the usage analytics card.
type UsageFigure struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

// Profile is the read-only account card.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Plan        string `json:"plan"`
	MemberSince string `json:"member_since"`
	Avatar      string `json:"avatar"`
}

// PageView is the payload handed to page templates.
type PageView struct {
	Route   Route           `json:"route"`
	Title   string          `json:"title"`
	Shell   ShellView       `json:"shell"`
	Theme   *ThemeSelection `json:"-"`
	Content map[string]any  `json:"content"`
}

// RefreshHook notifies transports (SSE/WebSocket) about session changes.
type RefreshHook interface {
	SessionUpdated(ctx context.Context, event SessionEvent) error
}

// SessionEvent describes changes that transports might care about.
type SessionEvent struct {
	SessionID string         `json:"session_id"`
	Topic     string         `json:"topic"`
	Reason    string         `json:"reason"`
	Payload   map[string]any `json:"payload,omitempty"`
}

type noopRefreshHook struct{}

func (noopRefreshHook) SessionUpdated(context.Context, SessionEvent) error {
	return nil
}
