package dashboard

import (
	"fmt"
	"sync"
)

// Billing holds the plan selection and the payment dialog of the billing page.
// The plan catalog, invoices and usage are read-only.
type Billing struct {
	mu       sync.RWMutex
	plans    []Plan
	selected string
	Payment  Modal[PaymentForm]
}

// NewBilling starts with the default plan selected.
func NewBilling(plans []Plan) *Billing {
	if len(plans) == 0 {
		plans = DefaultPlans()
	}
	return &Billing{plans: plans, selected: defaultPlanID}
}

// Plans returns the plan catalog.
func (b *Billing) Plans() []Plan {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]Plan(nil), b.plans...)
}

// SelectedPlan returns the id of the highlighted plan.
func (b *Billing) SelectedPlan() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

// SelectPlan highlights plan id.
func (b *Billing) SelectPlan(id string) (Plan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.plans {
		if p.ID == id {
			b.selected = id
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
}

// CurrentPlan returns the active subscription summary.
func (b *Billing) CurrentPlan() CurrentPlan {
	return defaultCurrentPlan
}

// Usage returns the usage meters shown next to the current plan.
func (b *Billing) Usage() []UsageMeter {
	return append([]UsageMeter(nil), defaultUsageMeters...)
}

// Invoices returns the billing history.
func (b *Billing) Invoices() []Invoice {
	return DefaultInvoices()
}

// Percent reports meter usage as a 0..100 value; unlimited meters report 0.
func (m UsageMeter) Percent() int {
	if m.Limit <= 0 {
		return 0
	}
	pct := m.Used * 100 / m.Limit
	if pct > 100 {
		return 100
	}
	return pct
}

// Unlimited reports whether the meter has no cap.
func (m UsageMeter) Unlimited() bool {
	return m.Limit <= 0
}
