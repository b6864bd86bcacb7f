package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHookSubscribe(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe("")
	defer cancel()
	event := SessionEvent{SessionID: "s1", Topic: "notifications"}
	if err := hook.SessionUpdated(context.Background(), event); err != nil {
		t.Fatalf("SessionUpdated returned error: %v", err)
	}
	select {
	case e := <-ch:
		if e.Topic != event.Topic {
			t.Fatalf("expected topic %s, got %s", event.Topic, e.Topic)
		}
	default:
		t.Fatalf("expected event to be delivered")
	}
}

func TestBroadcastHookFiltersBySession(t *testing.T) {
	hook := NewBroadcastHook()
	mine, cancelMine := hook.Subscribe("s1")
	defer cancelMine()
	other, cancelOther := hook.Subscribe("s2")
	defer cancelOther()

	require.NoError(t, hook.SessionUpdated(context.Background(), SessionEvent{SessionID: "s1", Topic: "settings"}))

	select {
	case e := <-mine:
		assert.Equal(t, "settings", e.Topic)
	default:
		t.Fatalf("expected s1 subscriber to receive event")
	}
	select {
	case e := <-other:
		t.Fatalf("s2 subscriber received foreign event %+v", e)
	default:
	}
}

func TestBroadcastHookDropsWhenSubscriberIsFull(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe("")
	defer cancel()
	for i := 0; i < subscriberBuffer+3; i++ {
		require.NoError(t, hook.SessionUpdated(context.Background(), SessionEvent{SessionID: "s1"}))
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestBroadcastHookCancelIsIdempotent(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe("s1")
	require.Equal(t, 1, hook.Subscribers())
	cancel()
	cancel()
	assert.Equal(t, 0, hook.Subscribers())
	_, open := <-ch
	assert.False(t, open)
}

func TestBroadcastHookServeSSE(t *testing.T) {
	hook := NewBroadcastHook()
	ctx, stop := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events?session=s1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		hook.ServeSSE(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return hook.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, hook.SessionUpdated(context.Background(), SessionEvent{SessionID: "s1", Topic: "notifications", Reason: "read"}))
	require.NoError(t, hook.SessionUpdated(context.Background(), SessionEvent{SessionID: "s2", Topic: "ignored"}))
	require.Eventually(t, func() bool { return pendingEvents(hook) == 0 }, time.Second, 5*time.Millisecond)
	stop()
	<-done

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "event: notifications\ndata: {"), body)
	assert.Contains(t, body, `"reason":"read"`)
	assert.NotContains(t, body, "ignored")
}

func TestEncodeSSEWithoutTopic(t *testing.T) {
	frame, err := EncodeSSE(SessionEvent{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "data: {\"session_id\":\"s1\",\"topic\":\"\",\"reason\":\"\"}\n\n", string(frame))
}

func pendingEvents(hook *BroadcastHook) int {
	hook.mu.RLock()
	defer hook.mu.RUnlock()
	total := 0
	for _, sub := range hook.subs {
		total += len(sub.ch)
	}
	return total
}
