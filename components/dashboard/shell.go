package dashboard

import "sync"

// Shell owns the layout flags shared by every page: the mobile sidebar and
// the onboarding overlay.
type Shell struct {
	mu             sync.RWMutex
	sidebarOpen    bool
	showOnboarding bool
}

// NewShell initializes the layout flags at session start.
func NewShell(showOnboarding bool) *Shell {
	return &Shell{showOnboarding: showOnboarding}
}

func (s *Shell) OpenSidebar()  { s.setSidebar(true) }
func (s *Shell) CloseSidebar() { s.setSidebar(false) }

// ToggleSidebar flips the sidebar and returns the new state.
func (s *Shell) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

func (s *Shell) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}

// StartOnboarding shows the onboarding overlay.
func (s *Shell) StartOnboarding() { s.setOnboarding(true) }

// FinishOnboarding hides the onboarding overlay.
func (s *Shell) FinishOnboarding() { s.setOnboarding(false) }

func (s *Shell) OnboardingVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showOnboarding
}

func (s *Shell) setSidebar(open bool) {
	s.mu.Lock()
	s.sidebarOpen = open
	s.mu.Unlock()
}

func (s *Shell) setOnboarding(show bool) {
	s.mu.Lock()
	s.showOnboarding = show
	s.mu.Unlock()
}

// ShellView is the layout payload rendered around every page.
type ShellView struct {
	Title       string          `json:"title"`
	Nav         []NavItem       `json:"nav"`
	SidebarOpen bool            `json:"sidebar_open"`
	UnreadCount int             `json:"unread_count"`
	Onboarding  *OnboardingView `json:"onboarding,omitempty"`
}

// OnboardingView is the overlay state; nil when the overlay is hidden.
type OnboardingView struct {
	Step      OnboardingStep `json:"step"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Progress  int            `json:"progress"`
	CanGoBack bool           `json:"can_go_back"`
	IsLast    bool           `json:"is_last"`
}

func newOnboardingView(w *Wizard) *OnboardingView {
	return &OnboardingView{
		Step:      w.Current(),
		Index:     w.Index(),
		Total:     w.Len(),
		Progress:  w.Progress(),
		CanGoBack: w.CanGoBack(),
		IsLast:    w.IsLast(),
	}
}
