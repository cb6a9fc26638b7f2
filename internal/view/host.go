package view

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobportal/pkg/logging"
)

// Reducer applies one event to a state and returns the next state
type Reducer[S any] func(S, Event) S

// FetchFunc performs a view's single fetch and reports it as an event
type FetchFunc func(ctx context.Context) Event

// Host owns one view state. Events are applied one at a time in arrival
// order, and a fetch result that arrives after Unmount or a later Mount is
// dropped.
type Host[S any] struct {
	id     string
	reduce Reducer[S]
	logger *logging.Logger

	mu      sync.Mutex
	state   S
	gen     uint64
	mounted bool
	cancel  context.CancelFunc
	settled chan struct{}
}

func NewHost[S any](initial S, reduce Reducer[S], logger *logging.Logger) *Host[S] {
	if logger == nil {
		logger = logging.Nop()
	}
	id := uuid.NewString()
	settled := make(chan struct{})
	close(settled)

	return &Host[S]{
		id:      id,
		reduce:  reduce,
		logger:  logger.With("view_id", id),
		state:   initial,
		settled: settled,
	}
}

// ID identifies the view instance
func (h *Host[S]) ID() string {
	return h.id
}

// Mount marks the view loading and starts its fetch in the background
func (h *Host[S]) Mount(ctx context.Context, fetch FetchFunc) {
	h.mu.Lock()
	if h.cancel != nil {
		h.cancel()
	}
	h.gen++
	gen := h.gen
	h.mounted = true
	h.state = h.reduce(h.state, Mounted{})

	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	h.cancel = cancel
	settled := make(chan struct{})
	h.settled = settled
	h.mu.Unlock()

	go func() {
		defer close(settled)
		defer cancel()
		ev := fetch(fetchCtx)
		h.resolve(gen, ev)
	}()
}

func (h *Host[S]) resolve(gen uint64, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.mounted || gen != h.gen {
		h.logger.Debug("dropping stale fetch result", "event", Name(ev), "generation", gen, "current", h.gen)
		return
	}
	h.state = h.reduce(h.state, ev)
}

// Wait blocks until the latest fetch has settled or ctx is done
func (h *Host[S]) Wait(ctx context.Context) error {
	h.mu.Lock()
	settled := h.settled
	h.mu.Unlock()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Dispatch applies an event and returns the resulting state
func (h *Host[S]) Dispatch(ev Event) S {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.state = h.reduce(h.state, ev)
	return h.state
}

// State returns the current state
func (h *Host[S]) State() S {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Unmount discards any in-flight fetch
func (h *Host[S]) Unmount() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.gen++
	h.mounted = false
	if h.cancel != nil {
		h.cancel()
		h.cancel = nil
	}
}

// IsMounted reports whether the view is mounted
func (h *Host[S]) IsMounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounted
}
