package view

import (
	"sync"
)

// Registry keeps mounted views by id so clients can send them events
// across requests
type Registry[S any] struct {
	mu    sync.RWMutex
	hosts map[string]*Host[S]
	limit int
	order []string
}

// NewRegistry creates a registry that unmounts the oldest view once more
// than limit are open. A limit of zero keeps every view.
func NewRegistry[S any](limit int) *Registry[S] {
	return &Registry[S]{hosts: make(map[string]*Host[S]), limit: limit}
}

func (r *Registry[S]) Add(h *Host[S]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hosts[h.ID()] = h
	r.order = append(r.order, h.ID())

	for r.limit > 0 && len(r.order) > r.limit {
		oldest := r.order[0]
		r.order = r.order[1:]
		if old, ok := r.hosts[oldest]; ok {
			old.Unmount()
			delete(r.hosts, oldest)
		}
	}
}

func (r *Registry[S]) Get(id string) (*Host[S], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hosts[id]
	return h, ok
}

// Remove unmounts and forgets a view
func (r *Registry[S]) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hosts[id]
	if !ok {
		return false
	}
	h.Unmount()
	delete(r.hosts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry[S]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hosts)
}

// Close unmounts every view
func (r *Registry[S]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.hosts {
		h.Unmount()
		delete(r.hosts, id)
	}
	r.order = nil
}
