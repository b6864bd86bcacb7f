package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

func TestHTTPClientFetchRecent(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/conversations/recent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "2" {
			t.Fatalf("expected limit=2, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("expected auth header, got %s", got)
		}
		_ = json.NewEncoder(w).Encode(recentResponse{
			Now: now,
			Items: []recentItem{
				{Persona: "Code Assistant", Topic: "React hooks", StartedAt: now.Add(-2 * time.Hour)},
				{Persona: "Writer", Topic: "Blog post", StartedAt: now.Add(-24 * time.Hour), Completed: true},
				{Persona: "Analyst", Topic: "Sales", StartedAt: now.Add(-time.Minute)},
			},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL, APIKey: "secret"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	items, err := client.FetchRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("fetch recent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Time != "2 hours ago" || items[0].Status != "active" {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].Time != "1 day ago" || items[1].Status != "completed" {
		t.Fatalf("unexpected second item %+v", items[1])
	}
}

func TestHTTPClientRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client, err := NewHTTPClient(HTTPConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FetchRecent(context.Background(), 0); err == nil {
		t.Fatalf("expected remote error")
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient(HTTPConfig{}); err == nil {
		t.Fatalf("expected base url error")
	}
}

type failingClient struct{}

func (failingClient) FetchRecent(context.Context, int) ([]dashboard.RecentConversation, error) {
	return nil, errors.New("offline")
}

func TestActivityFeedFallsBack(t *testing.T) {
	fallback := dashboard.StaticActivityFeed{Items: []dashboard.RecentConversation{{Persona: "Local", Topic: "cached", Time: "now", Status: "active"}}}
	feed := NewActivityFeed(failingClient{}, fallback)
	items, err := feed.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("expected fallback, got %v", err)
	}
	if len(items) != 1 || items[0].Persona != "Local" {
		t.Fatalf("unexpected fallback items %+v", items)
	}

	if _, err := NewActivityFeed(failingClient{}, nil).Recent(context.Background(), 0); err == nil {
		t.Fatalf("expected error without fallback")
	}
}

func TestRelativeTime(t *testing.T) {
	cases := map[time.Duration]string{
		10 * time.Second: "just now",
		time.Minute:      "1 minute ago",
		5 * time.Minute:  "5 minutes ago",
		3 * time.Hour:    "3 hours ago",
		72 * time.Hour:   "3 days ago",
	}
	for d, want := range cases {
		if got := relativeTime(d); got != want {
			t.Fatalf("relativeTime(%s) = %q, want %q", d, got, want)
		}
	}
}
