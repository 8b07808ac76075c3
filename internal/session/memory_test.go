package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := New("sess-1", "林小姐", time.Now())
	require.NoError(t, store.Put(ctx, s))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.ID)
	assert.Equal(t, "林小姐", got.UserName)
	assert.Equal(t, StepChoosingService, got.Step)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreHandsOutCopies(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := New("sess-1", "林小姐", time.Now())
	require.NoError(t, store.Put(ctx, s))

	// Mutating the caller's copy must not leak into the store.
	require.NoError(t, s.SelectService("h1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepChoosingService, got.Step)
	assert.Empty(t, got.ServiceID)

	// Same for a copy handed out by Get.
	require.NoError(t, got.SelectService("h2"))
	again, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, again.ServiceID)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	current := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	s := New("sess-1", "林小姐", current)
	require.NoError(t, store.Put(ctx, s))

	current = current.Add(29 * time.Minute)
	_, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)

	// Put refreshes the TTL.
	require.NoError(t, store.Put(ctx, s))
	current = current.Add(29 * time.Minute)
	_, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := New("sess-1", "林小姐", time.Now())
	require.NoError(t, store.Put(ctx, s))

	updated, err := store.Update(ctx, "sess-1", func(s *Session) error {
		return s.SelectService("h1")
	})
	require.NoError(t, err)
	assert.Equal(t, StepChoosingStylist, updated.Step)

	stored, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "h1", stored.ServiceID)
}

func TestMemoryStoreUpdateMissing(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)

	_, err := store.Update(context.Background(), "nope", func(*Session) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUpdateErrorLeavesSessionUntouched(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := New("sess-1", "林小姐", time.Now())
	require.NoError(t, store.Put(ctx, s))

	_, err := store.Update(ctx, "sess-1", func(s *Session) error {
		s.ServiceID = "h1"
		return ErrWrongStep
	})
	assert.ErrorIs(t, err, ErrWrongStep)

	stored, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, stored.ServiceID)
}

func TestMemoryStoreUpdateLatchIsAtomic(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := newTestSession()
	advanceToConfirming(t, s)
	require.NoError(t, store.Put(ctx, s))

	// Many simultaneous confirms; exactly one may take the latch.
	const attempts = 16
	var wg sync.WaitGroup
	latched := make(chan struct{}, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, s.ID, func(s *Session) error {
				return s.BeginConfirm()
			})
			if err == nil {
				latched <- struct{}{}
			} else {
				assert.ErrorIs(t, err, ErrConfirmInFlight)
			}
		}()
	}
	wg.Wait()
	close(latched)

	assert.Len(t, latched, 1)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(30 * time.Minute)
	ctx := context.Background()

	s := New("sess-1", "林小姐", time.Now())
	require.NoError(t, store.Put(ctx, s))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting a missing session is fine.
	require.NoError(t, store.Delete(ctx, "sess-1"))
}
