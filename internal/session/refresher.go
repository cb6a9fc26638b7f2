package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// DefaultRefreshSpec renews the access token well inside its lifetime
const DefaultRefreshSpec = "@every 4m"

// RefreshAPI exchanges a refresh token for a new pair
type RefreshAPI interface {
	RefreshToken(ctx context.Context, refresh string) (portalapi.Tokens, error)
}

// Refresher renews the stored access token on a cron schedule
type Refresher struct {
	api    RefreshAPI
	store  Store
	spec   string
	cron   *cron.Cron
	logger *logging.Logger
	cancel context.CancelFunc
}

func NewRefresher(api RefreshAPI, store Store, spec string, logger *logging.Logger) *Refresher {
	if spec == "" {
		spec = DefaultRefreshSpec
	}
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.Named("refresher")

	return &Refresher{
		api:    api,
		store:  store,
		spec:   spec,
		cron:   cron.New(cron.WithLogger(cronLogger{logger})),
		logger: logger,
	}
}

// Start registers the refresh job and starts the scheduler
func (r *Refresher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	_, err := r.cron.AddFunc(r.spec, func() {
		if err := r.Refresh(ctx); err != nil && !errors.Is(err, ErrNoSession) {
			r.logger.Warn("token refresh failed", "err", err)
		}
	})
	if err != nil {
		cancel()
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	r.cancel = cancel
	r.cron.Start()
	r.logger.Info("token refresher started", "spec", r.spec)
	return nil
}

// Refresh renews the stored tokens once. It returns ErrNoSession when
// nobody is signed in.
func (r *Refresher) Refresh(ctx context.Context) error {
	s, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	if s.Refresh == "" {
		return ErrNoSession
	}

	tokens, err := r.api.RefreshToken(ctx, s.Refresh)
	if err != nil {
		return fmt.Errorf("session: refresh: %w", err)
	}

	s.Access = tokens.Access
	s.Refresh = tokens.Refresh
	if err := r.store.Save(ctx, s); err != nil {
		return err
	}

	r.logger.Debug("access token refreshed", "username", s.Username)
	return nil
}

// Shutdown stops the scheduler and waits for a running refresh
func (r *Refresher) Shutdown(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	done := r.cron.Stop()

	select {
	case <-done.Done():
		r.logger.Info("token refresher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger routes cron's logr-style output to the zap logger
type cronLogger struct {
	log *logging.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error(msg, append(keysAndValues, "err", err)...)
}
