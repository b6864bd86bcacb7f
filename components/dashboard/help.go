package dashboard

import (
	"fmt"
	"sync"
)

// HelpCenter backs the help page: FAQ search and category, one expanded
// answer at a time and the contact support dialog.
type HelpCenter struct {
	mu          sync.RWMutex
	faqs        []FAQ
	query       FAQQuery
	expanded    int
	hasExpanded bool
	Contact     Modal[SupportRequest]
}

// NewHelpCenter wraps faqs with every category visible.
func NewHelpCenter(faqs []FAQ) *HelpCenter {
	return &HelpCenter{faqs: faqs, query: FAQQuery{Category: AnyFilter()}}
}

// SetQuery replaces the search term and category filter.
func (h *HelpCenter) SetQuery(q FAQQuery) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.query = q
}

// Query returns the active FAQ query.
func (h *HelpCenter) Query() FAQQuery {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.query
}

// List returns the FAQs matching the active query.
func (h *HelpCenter) List() []FAQ {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return FilterFAQs(h.faqs, h.query)
}

// Categories returns the category filter options.
func (h *HelpCenter) Categories() []Category {
	return DefaultFAQCategories()
}

// Channels returns the support channel cards.
func (h *HelpCenter) Channels() []SupportChannel {
	return append([]SupportChannel(nil), defaultSupportChannels...)
}

// Toggle expands id, or collapses it when it is already expanded. It returns
// whether id is expanded afterwards.
func (h *HelpCenter) Toggle(id int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	found := false
	for _, f := range h.faqs {
		if f.ID == id {
			found = true
			break
		}
	}
	if !found {
		return false, fmt.Errorf("%w: %d", ErrFAQNotFound, id)
	}
	if h.hasExpanded && h.expanded == id {
		h.hasExpanded = false
		return false, nil
	}
	h.expanded = id
	h.hasExpanded = true
	return true, nil
}

// Expanded returns the expanded FAQ id, if any.
func (h *HelpCenter) Expanded() (int, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.expanded, h.hasExpanded
}
