package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the UI state of one viewer. Every piece of state a page owns
// lives here and is reset to the literal defaults on Reset.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu            sync.RWMutex
	personas      PersonaQuery
	notifications Filter
	settings      Settings
	flash         map[string]any
	flashPending  bool

	Shell         *Shell
	Wizard        *Wizard
	Conversations *ConversationBrowser
	Inbox         *Inbox
	Billing       *Billing
	Help          *HelpCenter
}

// NewSession builds a session holding fresh copies of every dataset.
// Finishing the wizard hides the onboarding overlay.
func NewSession(id string, createdAt time.Time, showOnboarding bool) *Session {
	shell := NewShell(showOnboarding)
	return &Session{
		ID:            id,
		CreatedAt:     createdAt,
		personas:      PersonaQuery{Provider: AnyFilter(), Specialization: AnyFilter()},
		notifications: AnyFilter(),
		settings:      DefaultSettings(),
		Shell:         shell,
		Wizard:        NewWizard(DefaultOnboardingSteps(), shell.FinishOnboarding),
		Conversations: NewConversationBrowser(DefaultConversations()),
		Inbox:         NewInbox(DefaultNotifications()),
		Billing:       NewBilling(DefaultPlans()),
		Help:          NewHelpCenter(DefaultFAQs()),
	}
}

// PersonaQuery returns the persona page filters.
func (s *Session) PersonaQuery() PersonaQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.personas
}

// SetPersonaQuery replaces the persona page filters.
func (s *Session) SetPersonaQuery(q PersonaQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.personas = q
}

// NotificationFilter returns the selected notification category.
func (s *Session) NotificationFilter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications
}

// SetNotificationFilter selects a notification category.
func (s *Session) SetNotificationFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = f
}

// Settings returns the current settings snapshot.
func (s *Session) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSetting swaps in a settings value with one leaf replaced.
func (s *Session) UpdateSetting(category, key string, value SettingValue) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.settings.Update(category, key, value)
	if err != nil {
		return s.settings, err
	}
	s.settings = next
	return next, nil
}

// MutateSettings applies fn to the current settings and stores the result
// only when fn succeeds.
func (s *Session) MutateSettings(fn func(Settings) (Settings, error)) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.settings)
	if err != nil {
		return s.settings, err
	}
	s.settings = next
	return next, nil
}

// SetFlash stores the outcome of a form post for the next rendered page.
// A nil flash still marks the next render as the result of a post.
func (s *Session) SetFlash(flash map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = flash
	s.flashPending = true
}

// TakeFlash returns the stored flash and clears it. ok is false when no
// post happened since the last call.
func (s *Session) TakeFlash() (flash map[string]any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flash, ok = s.flash, s.flashPending
	s.flash, s.flashPending = nil, false
	return flash, ok
}

// Language is the display.language setting.
func (s *Session) Language() string {
	if v, ok := s.Settings().Get("display", "language"); ok {
		return v.String()
	}
	return "en"
}

// Theme resolves the display.theme setting.
func (s *Session) Theme() *ThemeSelection {
	name := ThemeLight
	if v, ok := s.Settings().Get("display", "theme"); ok {
		name = v.String()
	}
	return ResolveTheme(name)
}

// SessionStore keeps sessions addressed by id.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Create(ctx context.Context) (*Session, error)
	Reset(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// DefaultSessionIdleTTL is how long an untouched session survives.
const DefaultSessionIdleTTL = 30 * time.Minute

// InMemorySessionStore is a concurrency-safe SessionStore. Sessions are lost
// on restart and expire after the idle TTL without a Get.
type InMemorySessionStore struct {
	mu             sync.Mutex
	sessions       map[string]*storedSession
	showOnboarding bool
	idleTTL        time.Duration
	nextSweep      time.Time
	now            func() time.Time
	newID          func() string
}

type storedSession struct {
	session  *Session
	lastSeen time.Time
}

// SessionStoreOption customizes an InMemorySessionStore.
type SessionStoreOption func(*InMemorySessionStore)

// WithSessionIdleTTL sets the idle expiry. Zero or negative keeps sessions
// until they are deleted.
func WithSessionIdleTTL(ttl time.Duration) SessionStoreOption {
	return func(s *InMemorySessionStore) {
		s.idleTTL = ttl
	}
}

// NewInMemorySessionStore creates an empty store. showOnboarding controls
// whether new sessions start with the onboarding overlay visible.
func NewInMemorySessionStore(showOnboarding bool, opts ...SessionStoreOption) *InMemorySessionStore {
	store := &InMemorySessionStore{
		sessions:       make(map[string]*storedSession),
		showOnboarding: showOnboarding,
		idleTTL:        DefaultSessionIdleTTL,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

func (s *InMemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	entry, ok := s.sessions[id]
	if ok && s.expired(entry, now) {
		delete(s.sessions, id)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	entry.lastSeen = now
	return entry.session, nil
}

func (s *InMemorySessionStore) Create(_ context.Context) (*Session, error) {
	now := s.now()
	sess := NewSession(s.newID(), now, s.showOnboarding)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idleTTL > 0 && !now.Before(s.nextSweep) {
		s.sweepLocked(now)
	}
	s.sessions[sess.ID] = &storedSession{session: sess, lastSeen: now}
	return sess, nil
}

// Reset replaces the session with fresh defaults under the same id.
func (s *InMemorySessionStore) Reset(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	entry, ok := s.sessions[id]
	if !ok || s.expired(entry, now) {
		delete(s.sessions, id)
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess := NewSession(id, now, s.showOnboarding)
	s.sessions[id] = &storedSession{session: sess, lastSeen: now}
	return sess, nil
}

func (s *InMemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Sweep evicts every idle session and returns how many were dropped.
func (s *InMemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

// Len counts stored sessions, including idle ones not yet swept.
func (s *InMemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *InMemorySessionStore) sweepLocked(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}
	dropped := 0
	for id, entry := range s.sessions {
		if s.expired(entry, now) {
			delete(s.sessions, id)
			dropped++
		}
	}
	// Creates sweep at most once per half TTL.
	s.nextSweep = now.Add(s.idleTTL / 2)
	return dropped
}

func (s *InMemorySessionStore) expired(entry *storedSession, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(entry.lastSeen) > s.idleTTL
}
