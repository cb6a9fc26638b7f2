package view_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
)

var loadedAt = time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)

func jobs(n int) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, n)
	for i := range n {
		out = append(out, domain.JobPosting{
			ID:       string(rune('a' + i)),
			Title:    "Engineer",
			Company:  "Acme",
			PostedAt: loadedAt,
		})
	}
	return out
}

func resolved(list []domain.JobPosting) view.Event {
	return view.FetchResolved{Result: catalog.LoadResult{Jobs: list, LoadedAt: loadedAt}}
}

func waitSettled(t *testing.T, h interface{ Wait(context.Context) error }) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.Wait(ctx))
}

// ── host lifecycle ────────────────────────────────────────────────────────

func TestHost_MountLoadsThenResolves(t *testing.T) {
	release := make(chan struct{})
	h := view.NewHost(view.NewList(), view.ReduceList, nil)

	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		<-release
		return resolved(jobs(3))
	})

	assert.True(t, h.State().Loading)
	assert.True(t, h.IsMounted())

	close(release)
	waitSettled(t, h)

	state := h.State()
	assert.False(t, state.Loading)
	assert.Len(t, state.Jobs, 3)
}

func TestHost_ResultAfterUnmountIsDropped(t *testing.T) {
	release := make(chan struct{})
	h := view.NewHost(view.NewList(), view.ReduceList, nil)

	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		<-release
		return resolved(jobs(3))
	})
	h.Unmount()
	close(release)
	waitSettled(t, h)

	state := h.State()
	assert.False(t, h.IsMounted())
	assert.Empty(t, state.Jobs)
	assert.True(t, state.Loading)
}

func TestHost_RemountDropsEarlierFetch(t *testing.T) {
	first := make(chan struct{})
	h := view.NewHost(view.NewList(), view.ReduceList, nil)

	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		<-first
		return resolved(jobs(7))
	})
	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		return resolved(jobs(2))
	})
	waitSettled(t, h)
	close(first)

	// give the first goroutine a chance to deliver its stale result
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, h.State().Jobs, 2)
}

func TestHost_UnmountCancelsFetchContext(t *testing.T) {
	h := view.NewHost(view.NewList(), view.ReduceList, nil)
	done := make(chan error, 1)

	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		<-ctx.Done()
		done <- ctx.Err()
		return resolved(nil)
	})
	h.Unmount()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch context was not cancelled")
	}
}

func TestHost_FetchOutlivesRequestContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	h := view.NewHost(view.NewList(), view.ReduceList, nil)

	h.Mount(ctx, func(fetchCtx context.Context) view.Event {
		<-release
		assert.NoError(t, fetchCtx.Err())
		return resolved(jobs(1))
	})
	cancel()
	close(release)
	waitSettled(t, h)

	assert.Len(t, h.State().Jobs, 1)
}

func TestHost_DispatchAppliesInOrder(t *testing.T) {
	h := view.NewHost(view.NewList(), view.ReduceList, nil)
	h.Dispatch(resolved(jobs(25)))

	h.Dispatch(view.NextPage{})
	h.Dispatch(view.NextPage{})
	got := h.Dispatch(view.PrevPage{})

	assert.Equal(t, 2, got.Cursor.Page())
}

func TestHost_WaitHonoursContext(t *testing.T) {
	h := view.NewHost(view.NewList(), view.ReduceList, nil)
	h.Mount(context.Background(), func(ctx context.Context) view.Event {
		<-ctx.Done()
		return resolved(nil)
	})
	defer h.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, h.Wait(ctx), context.DeadlineExceeded)
}

func TestHost_IDsAreUnique(t *testing.T) {
	a := view.NewHost(view.NewList(), view.ReduceList, nil)
	b := view.NewHost(view.NewList(), view.ReduceList, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}

// ── registry ──────────────────────────────────────────────────────────────

func TestRegistry_EvictsOldest(t *testing.T) {
	r := view.NewRegistry[view.List](2)
	a := view.NewHost(view.NewList(), view.ReduceList, nil)
	b := view.NewHost(view.NewList(), view.ReduceList, nil)
	c := view.NewHost(view.NewList(), view.ReduceList, nil)
	a.Mount(context.Background(), func(context.Context) view.Event { return resolved(nil) })

	r.Add(a)
	r.Add(b)
	r.Add(c)

	assert.Equal(t, 2, r.Len())
	_, ok := r.Get(a.ID())
	assert.False(t, ok)
	assert.False(t, a.IsMounted())

	assert.True(t, r.Remove(b.ID()))
	assert.False(t, r.Remove(b.ID()))

	r.Close()
	assert.Equal(t, 0, r.Len())
}
