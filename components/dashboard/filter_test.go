package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personaIDs(items []Persona) []int {
	ids := make([]int, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterSumTypeKeepsLiteralAllDistinct(t *testing.T) {
	all := AnyFilter()
	if !all.IsAll() || !all.Matches("anything") {
		t.Fatalf("expected AnyFilter to match everything")
	}
	literal := Only("all")
	if literal.IsAll() {
		t.Fatalf("Only(\"all\") must stay a specific filter")
	}
	if literal.Matches("billing") {
		t.Fatalf("Only(\"all\") should not match other categories")
	}
	if !literal.Matches("all") {
		t.Fatalf("Only(\"all\") should match a category literally named all")
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]bool{"": true, "all": true, "  all ": true, "OpenAI": false}
	for raw, wantAll := range cases {
		if got := ParseFilter(raw).IsAll(); got != wantAll {
			t.Fatalf("ParseFilter(%q).IsAll() = %v, want %v", raw, got, wantAll)
		}
	}
	value, ok := ParseFilter("OpenAI").Value()
	require.True(t, ok)
	assert.Equal(t, "OpenAI", value)
	assert.Equal(t, "all", AnyFilter().String())
}

func TestFilterPersonasMatchesGenExample(t *testing.T) {
	q := PersonaQuery{Search: "gen", Provider: AnyFilter(), Specialization: AnyFilter()}
	got := FilterPersonas(DefaultPersonas(), q)
	require.Len(t, got, 3)
	// "Llama 2" matches through "Code Generation".
	assert.Equal(t, []int{1, 4, 6}, []int{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "General AI", got[0].Specialization)
	assert.Equal(t, "Code Generation", got[1].Specialization)
	assert.Equal(t, "Image Generation", got[2].Specialization)
}

func TestFilterPersonasIsOrderedSubsequence(t *testing.T) {
	all := DefaultPersonas()
	queries := []PersonaQuery{
		{Provider: AnyFilter(), Specialization: AnyFilter()},
		{Search: "a", Provider: AnyFilter(), Specialization: AnyFilter()},
		{Search: "", Provider: Only("Ollama"), Specialization: AnyFilter()},
		{Search: "AI", Provider: Only("OpenAI"), Specialization: AnyFilter()},
		{Search: "zzz", Provider: AnyFilter(), Specialization: AnyFilter()},
		{Search: "", Provider: AnyFilter(), Specialization: Only("Research")},
	}
	for _, q := range queries {
		got := FilterPersonas(all, q)
		cursor := 0
		for _, p := range got {
			for cursor < len(all) && all[cursor].ID != p.ID {
				cursor++
			}
			if cursor == len(all) {
				t.Fatalf("query %+v: result %v is not an ordered subsequence", q, personaIDs(got))
			}
			cursor++
		}
		expected := 0
		for _, p := range all {
			matches := (ContainsFold(p.Name, q.Search) || ContainsFold(p.Specialization, q.Search)) &&
				q.Provider.Matches(p.Provider) && q.Specialization.Matches(p.Specialization)
			if matches {
				expected++
			}
		}
		assert.Len(t, got, expected, "query %+v", q)
	}
}

func TestGroupByProviderOmitsEmptyGroupsAndCoversResult(t *testing.T) {
	filtered := FilterPersonas(DefaultPersonas(), PersonaQuery{Search: "o", Provider: AnyFilter(), Specialization: AnyFilter()})
	groups := GroupByProvider(filtered, ProviderOrder())

	seen := map[int]bool{}
	for _, g := range groups {
		require.NotEmpty(t, g.Personas, "group %s rendered empty", g.Provider)
		for _, p := range g.Personas {
			assert.Equal(t, g.Provider, p.Provider)
			seen[p.ID] = true
		}
	}
	assert.Len(t, seen, len(filtered))
	for _, p := range filtered {
		assert.True(t, seen[p.ID], "persona %d missing from groups", p.ID)
	}
}

func TestGroupByProviderFollowsEnumerationOrder(t *testing.T) {
	groups := GroupByProvider(DefaultPersonas(), ProviderOrder())
	var providers []string
	for _, g := range groups {
		providers = append(providers, g.Provider)
	}
	assert.Equal(t, []string{"OpenAI", "Anthropic", "Google", "Ollama"}, providers)

	onlyOllama := FilterPersonas(DefaultPersonas(), PersonaQuery{Provider: Only("Ollama"), Specialization: AnyFilter()})
	groups = GroupByProvider(onlyOllama, ProviderOrder())
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Personas, 2)
}

func TestGroupByProviderDropsUnknownProviders(t *testing.T) {
	personas := append(DefaultPersonas(), Persona{ID: 99, Name: "Custom", Provider: "Local"})
	groups := GroupByProvider(personas, ProviderOrder())
	for _, g := range groups {
		if g.Provider == "Local" {
			t.Fatalf("unexpected group for provider outside enumeration")
		}
	}
}

func TestFilterConversationsMatchesTitleOrPersona(t *testing.T) {
	got := FilterConversations(DefaultConversations(), "claude")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = FilterConversations(DefaultConversations(), "SESSION")
	require.Len(t, got, 1)
	assert.Equal(t, "Code Review Session", got[0].Title)

	assert.Len(t, FilterConversations(DefaultConversations(), ""), 3)
}

func TestFilterFAQs(t *testing.T) {
	got := FilterFAQs(DefaultFAQs(), FAQQuery{Category: Only("billing")})
	require.Len(t, got, 2)
	assert.Equal(t, []int{4, 5}, []int{got[0].ID, got[1].ID})

	got = FilterFAQs(DefaultFAQs(), FAQQuery{Search: "password", Category: AnyFilter()})
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)

	got = FilterFAQs(DefaultFAQs(), FAQQuery{Search: "password", Category: Only("billing")})
	assert.Empty(t, got)
}

func TestFilterNotificationsByCategory(t *testing.T) {
	got := FilterNotifications(DefaultNotifications(), Only("product"))
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
	assert.Len(t, FilterNotifications(DefaultNotifications(), AnyFilter()), 6)
}

func TestDatasetAccessorsReturnCopies(t *testing.T) {
	first := DefaultPersonas()
	first[0].Name = "mutated"
	if DefaultPersonas()[0].Name == "mutated" {
		t.Fatalf("DefaultPersonas should return a defensive copy")
	}
}
