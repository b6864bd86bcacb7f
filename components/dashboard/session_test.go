package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)
}

func TestInMemorySessionStoreLifecycle(t *testing.T) {
	store := NewInMemorySessionStore(false)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(ctx, sess.ID))
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestInMemorySessionStoreResetRestoresDefaults(t *testing.T) {
	store := NewInMemorySessionStore(false)
	ctx := context.Background()
	sess, err := store.Create(ctx)
	require.NoError(t, err)

	sess.Inbox.MarkAllRead()
	sess.Inbox.Delete(1)
	_, err = sess.UpdateSetting("display", "theme", Choice("dark"))
	require.NoError(t, err)
	_, err = sess.Billing.SelectPlan("basic")
	require.NoError(t, err)

	fresh, err := store.Reset(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, fresh.ID)
	assert.NotSame(t, sess, fresh)
	assert.Equal(t, 2, fresh.Inbox.UnreadCount())
	assert.Equal(t, 6, fresh.Inbox.Len())
	assert.Equal(t, ThemeLight, fresh.Theme().Name)
	assert.Equal(t, "pro", fresh.Billing.SelectedPlan())

	_, err = store.Reset(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewInMemorySessionStore(false)
	ctx := context.Background()
	a, _ := store.Create(ctx)
	b, _ := store.Create(ctx)
	require.NotEqual(t, a.ID, b.ID)

	a.Inbox.MarkAllRead()
	assert.Equal(t, 0, a.Inbox.UnreadCount())
	assert.Equal(t, 2, b.Inbox.UnreadCount())
}

func TestSessionDefaults(t *testing.T) {
	sess := NewSession("s1", fixedNow(), false)
	assert.True(t, sess.PersonaQuery().Provider.IsAll())
	assert.True(t, sess.NotificationFilter().IsAll())
	assert.Equal(t, "en", sess.Language())
	assert.False(t, sess.Shell.SidebarOpen())
	assert.False(t, sess.Shell.OnboardingVisible())
}

func TestSessionMutateSettingsIsAtomic(t *testing.T) {
	sess := NewSession("s1", fixedNow(), false)
	_, err := sess.MutateSettings(func(current Settings) (Settings, error) {
		next, err := current.Update("ai", "verbosity", Choice("concise"))
		if err != nil {
			return current, err
		}
		return next.Update("ai", "verbosity", Choice("shouting"))
	})
	require.ErrorIs(t, err, ErrInvalidSettingValue)
	value, _ := sess.Settings().Get("ai", "verbosity")
	assert.Equal(t, "medium", value.String())
}

func TestInMemorySessionStoreExpiresIdleSessions(t *testing.T) {
	now := fixedNow()
	store := NewInMemorySessionStore(false, WithSessionIdleTTL(10*time.Minute))
	store.now = func() time.Time { return now }
	ctx := context.Background()

	idle, err := store.Create(ctx)
	require.NoError(t, err)
	active, err := store.Create(ctx)
	require.NoError(t, err)

	now = now.Add(8 * time.Minute)
	_, err = store.Get(ctx, active.ID)
	require.NoError(t, err)

	now = now.Add(3 * time.Minute)
	_, err = store.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	got, err := store.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Same(t, active, got)
	assert.Equal(t, 1, store.Len())
}

func TestInMemorySessionStoreSweepsOnCreate(t *testing.T) {
	now := fixedNow()
	store := NewInMemorySessionStore(false, WithSessionIdleTTL(time.Minute))
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, err := store.Create(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 50, store.Len())

	now = now.Add(2 * time.Minute)
	_, err := store.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestInMemorySessionStoreZeroTTLKeepsSessions(t *testing.T) {
	now := fixedNow()
	store := NewInMemorySessionStore(false, WithSessionIdleTTL(0))
	store.now = func() time.Time { return now }
	ctx := context.Background()
	sess, err := store.Create(ctx)
	require.NoError(t, err)

	now = now.Add(24 * time.Hour)
	assert.Equal(t, 0, store.Sweep())
	_, err = store.Get(ctx, sess.ID)
	assert.NoError(t, err)
}

func TestSessionFlashIsTakenOnce(t *testing.T) {
	sess := NewSession("s1", fixedNow(), false)
	_, ok := sess.TakeFlash()
	assert.False(t, ok)

	sess.SetFlash(map[string]any{"message": "Saved"})
	flash, ok := sess.TakeFlash()
	require.True(t, ok)
	assert.Equal(t, "Saved", flash["message"])
	_, ok = sess.TakeFlash()
	assert.False(t, ok)

	sess.SetFlash(nil)
	flash, ok = sess.TakeFlash()
	assert.True(t, ok)
	assert.Nil(t, flash)
}
