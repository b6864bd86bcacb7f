package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// HTTPConfig configures the HTTP analytics client.
type HTTPConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// HTTPClient reads conversation activity from a REST endpoint.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient builds a client for a live analytics API.
func NewHTTPClient(cfg HTTPConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("analytics: base url is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  httpClient,
	}, nil
}

// FetchRecent implements ActivityClient via GET /conversations/recent.
func (c *HTTPClient) FetchRecent(ctx context.Context, limit int) ([]dashboard.RecentConversation, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var resp recentResponse
	if err := c.get(ctx, "/conversations/recent", query, &resp); err != nil {
		return nil, err
	}
	return resp.toItems(limit), nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, target any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("analytics: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("analytics: http request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("analytics: remote error %d: %s", resp.StatusCode, buf.String())
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("analytics: decode response: %w", err)
	}
	return nil
}

type recentItem struct {
	Persona   string    `json:"persona"`
	Topic     string    `json:"topic"`
	StartedAt time.Time `json:"started_at"`
	Completed bool      `json:"completed"`
}

type recentResponse struct {
	Items []recentItem `json:"items"`
	// Now anchors relative times; the server clock is used when missing.
	Now time.Time `json:"now"`
}

func (r recentResponse) toItems(limit int) []dashboard.RecentConversation {
	now := r.Now
	if now.IsZero() {
		now = time.Now()
	}
	items := r.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]dashboard.RecentConversation, len(items))
	for i, item := range items {
		status := "active"
		if item.Completed {
			status = "completed"
		}
		out[i] = dashboard.RecentConversation{
			Persona: item.Persona,
			Topic:   item.Topic,
			Time:    relativeTime(now.Sub(item.StartedAt)),
			Status:  status,
		}
	}
	return out
}

// relativeTime renders the "2 hours ago" style labels used on the home page.
func relativeTime(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return strconv.Itoa(n) + " " + unit + "s ago"
}
