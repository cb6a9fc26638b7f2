package session_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/session"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

type fakeRefresh struct {
	tokens portalapi.Tokens
	err    error
	seen   []string
}

func (f *fakeRefresh) RefreshToken(_ context.Context, refresh string) (portalapi.Tokens, error) {
	f.seen = append(f.seen, refresh)
	return f.tokens, f.err
}

// ── stores ────────────────────────────────────────────────────────────────

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	s := domain.Session{Username: "asha", Role: domain.RoleJobSeeker, Access: "a1", Refresh: "r1"}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestTokenSource(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	src := session.NewTokenSource(store)

	assert.Equal(t, "", src.AccessToken(ctx))

	require.NoError(t, store.Save(ctx, domain.Session{Access: "a1"}))
	assert.Equal(t, "a1", src.AccessToken(ctx))

	assert.Equal(t, "", session.NewTokenSource(nil).AccessToken(ctx))
}

func TestRedisStoreIntegration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rdb, err := session.NewRedisClient(ctx, url)
	require.NoError(t, err)

	store := session.NewRedisStore(rdb, "jobportal:test:"+t.Name(), time.Minute)
	defer func() { _ = store.Shutdown(ctx) }()

	s := domain.Session{Username: "acme-hr", Role: domain.RoleEmployer, Access: "a", Refresh: "r"}
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.Access, got.Access)
	assert.Equal(t, s.Role, got.Role)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

// ── refresher ─────────────────────────────────────────────────────────────

func TestRefresh_RotatesStoredTokens(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, domain.Session{Username: "asha", Access: "old", Refresh: "r1"}))

	api := &fakeRefresh{tokens: portalapi.Tokens{Access: "new", Refresh: "r2"}}
	r := session.NewRefresher(api, store, "", nil)

	require.NoError(t, r.Refresh(ctx))
	assert.Equal(t, []string{"r1"}, api.seen)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Access)
	assert.Equal(t, "r2", got.Refresh)
	assert.Equal(t, "asha", got.Username)
}

func TestRefresh_NoSession(t *testing.T) {
	api := &fakeRefresh{}
	r := session.NewRefresher(api, session.NewMemoryStore(), "", nil)

	err := r.Refresh(context.Background())
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Empty(t, api.seen)
}

func TestRefresh_FailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, domain.Session{Access: "old", Refresh: "r1"}))

	r := session.NewRefresher(&fakeRefresh{err: errors.New("expired")}, store, "", nil)
	assert.Error(t, r.Refresh(ctx))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Access)
}

func TestRefresher_StartAndShutdown(t *testing.T) {
	r := session.NewRefresher(&fakeRefresh{}, session.NewMemoryStore(), "@every 1h", nil)
	require.NoError(t, r.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, r.Shutdown(ctx))
}

func TestRefresher_BadSpec(t *testing.T) {
	r := session.NewRefresher(&fakeRefresh{}, session.NewMemoryStore(), "not a spec", nil)
	assert.Error(t, r.Start(context.Background()))
}
