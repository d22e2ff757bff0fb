package analytics

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu      sync.Mutex
	visits  []Visit
	block   chan struct{}
	blocked bool
}

func (r *recordingStore) Record(v Visit) error {
	if r.blocked {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visits = append(r.visits, v)
	return nil
}

func (r *recordingStore) recorded() []Visit {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Visit, len(r.visits))
	copy(out, r.visits)
	return out
}

func TestDispatcher_RecordsVisits(t *testing.T) {
	store := &recordingStore{}
	d := NewDispatcher(store, zerolog.Nop())

	d.Dispatch(Visit{TenantID: "t1", PagePath: "/glow-salon"})
	d.Dispatch(Visit{TenantID: "t1", PagePath: "/glow-salon/book"})

	require.Eventually(t, func() bool {
		return len(store.recorded()) == 2
	}, time.Second, 10*time.Millisecond)

	visits := store.recorded()
	assert.Equal(t, "/glow-salon", visits[0].PagePath)
	assert.Equal(t, "/glow-salon/book", visits[1].PagePath)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	store := &recordingStore{block: make(chan struct{}), blocked: true}
	d := NewDispatcher(store, zerolog.Nop())

	// The worker parks on the first visit; everything past the queue
	// capacity must be dropped without blocking the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(d.queue)+10; i++ {
			d.Dispatch(Visit{TenantID: "t1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	// Depending on whether the worker had already taken a visit off the
	// queue, between cap and cap+1 visits survive; the rest were dropped.
	close(store.block)
	require.Eventually(t, func() bool {
		return len(store.recorded()) >= cap(d.queue)
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, len(store.recorded()), cap(d.queue)+1)
}
