// Package session keeps the signed-in user's tokens and keeps the access
// token fresh.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// ErrNoSession is returned by Load when nobody is signed in
var ErrNoSession = errors.New("session: no active session")

// Store persists the current session
type Store interface {
	Save(ctx context.Context, s domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	current *domain.Session
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &s
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return domain.Session{}, ErrNoSession
	}
	return *m.current, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return nil
}

// TokenSource exposes a store's access token to the API client
type TokenSource struct {
	store Store
}

var _ portalapi.TokenSource = TokenSource{}

func NewTokenSource(store Store) TokenSource {
	return TokenSource{store: store}
}

// AccessToken returns the stored access token, or "" when signed out
func (t TokenSource) AccessToken(ctx context.Context) string {
	if t.store == nil {
		return ""
	}
	s, err := t.store.Load(ctx)
	if err != nil {
		return ""
	}
	return s.Access
}
