package dashboard

import "strings"

const allFilterToken = "all"

// Filter is a categorical constraint: either All (no constraint) or a single
// specific value. A category literally named "all" is still a Specific value.
type Filter struct {
	value    string
	specific bool
}

// AnyFilter returns the unconstrained filter.
func AnyFilter() Filter {
	return Filter{}
}

// Only constrains matches to exactly value.
func Only(value string) Filter {
	return Filter{value: value, specific: true}
}

// ParseFilter maps transport input to a Filter. Empty input and the "all"
// token select AnyFilter.
func ParseFilter(raw string) Filter {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == allFilterToken {
		return AnyFilter()
	}
	return Only(raw)
}

// IsAll reports whether the filter is unconstrained.
func (f Filter) IsAll() bool {
	return !f.specific
}

// Value returns the specific value and whether one is set.
func (f Filter) Value() (string, bool) {
	return f.value, f.specific
}

// Matches reports whether candidate satisfies the filter.
func (f Filter) Matches(candidate string) bool {
	if !f.specific {
		return true
	}
	return candidate == f.value
}

// String renders the filter for forms and query strings.
func (f Filter) String() string {
	if !f.specific {
		return allFilterToken
	}
	return f.value
}

// ContainsFold reports whether needle is a case-insensitive substring of haystack.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterItems returns the ordered subsequence of items accepted by keep.
func FilterItems[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// PersonaQuery narrows the persona catalog.
type PersonaQuery struct {
	Search         string
	Provider       Filter
	Specialization Filter
}

// FilterPersonas matches Search against name or specialization and applies
// the provider and specialization filters.
func FilterPersonas(personas []Persona, q PersonaQuery) []Persona {
	return FilterItems(personas, func(p Persona) bool {
		matchesSearch := ContainsFold(p.Name, q.Search) || ContainsFold(p.Specialization, q.Search)
		return matchesSearch && q.Provider.Matches(p.Provider) && q.Specialization.Matches(p.Specialization)
	})
}

// GroupByProvider partitions personas by provider following order. Empty
// groups are omitted and personas from providers outside order are dropped.
func GroupByProvider(personas []Persona, order []string) []PersonaGroup {
	groups := make([]PersonaGroup, 0, len(order))
	for _, provider := range order {
		members := FilterItems(personas, func(p Persona) bool { return p.Provider == provider })
		if len(members) == 0 {
			continue
		}
		groups = append(groups, PersonaGroup{Provider: provider, Personas: members})
	}
	return groups
}

// FilterConversations matches search against title or persona name.
func FilterConversations(conversations []Conversation, search string) []Conversation {
	return FilterItems(conversations, func(c Conversation) bool {
		return ContainsFold(c.Title, search) || ContainsFold(c.Persona, search)
	})
}

// FAQQuery narrows the FAQ list.
type FAQQuery struct {
	Search   string
	Category Filter
}

// FilterFAQs matches search against question or answer and applies the category filter.
func FilterFAQs(faqs []FAQ, q FAQQuery) []FAQ {
	return FilterItems(faqs, func(f FAQ) bool {
		matchesSearch := ContainsFold(f.Question, q.Search) || ContainsFold(f.Answer, q.Search)
		return matchesSearch && q.Category.Matches(f.Category)
	})
}

// FilterNotifications applies the category filter.
func FilterNotifications(items []Notification, category Filter) []Notification {
	return FilterItems(items, func(n Notification) bool {
		return category.Matches(n.Category)
	})
}
