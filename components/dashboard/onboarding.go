package dashboard

import (
	"math"
	"sync"
)

// Wizard walks a fixed list of onboarding steps. The index always stays in
// [0, len(steps)-1]; Next on the last step or Skip completes the wizard and
// invokes the completion callback once.
type Wizard struct {
	mu         sync.Mutex
	steps      []OnboardingStep
	index      int
	completed  bool
	onComplete func()
}

// NewWizard builds a wizard over steps. onComplete may be nil.
func NewWizard(steps []OnboardingStep, onComplete func()) *Wizard {
	if len(steps) == 0 {
		steps = DefaultOnboardingSteps()
	}
	return &Wizard{steps: steps, onComplete: onComplete}
}

// OnComplete replaces the completion callback.
func (w *Wizard) OnComplete(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onComplete = fn
}

// Len returns the number of steps.
func (w *Wizard) Len() int {
	return len(w.steps)
}

// Index returns the current step index.
func (w *Wizard) Index() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index
}

// Current returns the step being displayed.
func (w *Wizard) Current() OnboardingStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.steps[w.index]
}

// Completed reports whether the wizard has been finished or skipped.
func (w *Wizard) Completed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.completed
}

// Progress is the rounded completion percentage shown in the progress bar.
func (w *Wizard) Progress() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return int(math.Round(float64(w.index+1) / float64(len(w.steps)) * 100))
}

// CanGoBack is false on the first step.
func (w *Wizard) CanGoBack() bool {
	return w.Index() > 0
}

// IsLast reports whether Next will complete the wizard.
func (w *Wizard) IsLast() bool {
	return w.Index() == len(w.steps)-1
}

// Next advances one step or completes on the last step. It returns
// ErrWizardCompleted once the wizard is done.
func (w *Wizard) Next() error {
	w.mu.Lock()
	if w.completed {
		w.mu.Unlock()
		return ErrWizardCompleted
	}
	if w.index < len(w.steps)-1 {
		w.index++
		w.mu.Unlock()
		return nil
	}
	return w.completeLocked()
}

// Previous moves back one step; it is a no-op on the first step.
func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.completed || w.index == 0 {
		return
	}
	w.index--
}

// Skip completes the wizard from any step.
func (w *Wizard) Skip() error {
	w.mu.Lock()
	if w.completed {
		w.mu.Unlock()
		return ErrWizardCompleted
	}
	return w.completeLocked()
}

// Reset rewinds to the first step so the overlay can be shown again.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index = 0
	w.completed = false
}

// completeLocked must be called with mu held; it releases the lock before
// running the callback.
func (w *Wizard) completeLocked() error {
	w.completed = true
	fn := w.onComplete
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}
