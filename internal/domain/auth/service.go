// Package auth runs the sign-in, sign-up and password reset flows. Forms
// are validated before any request is made, and server rejections come
// back as FieldErrors ready to show under the form.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/session"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// API is the subset of the portal API used by the auth flows
type API interface {
	Login(ctx context.Context, in portalapi.LoginRequest) (portalapi.Tokens, error)
	EmployerLogin(ctx context.Context, in portalapi.EmployerLoginRequest) (portalapi.Tokens, error)
	Logout(ctx context.Context, refresh string) error
	RegisterJobSeeker(ctx context.Context, in portalapi.JobSeekerSignup) (string, error)
	RegisterEmployer(ctx context.Context, in portalapi.EmployerSignup) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, newPassword string) (string, error)
}

var _ API = (*portalapi.Client)(nil)

type Service struct {
	api    API
	store  session.Store
	clock  func() time.Time
	logger *logging.Logger
}

func NewService(api API, store session.Store, logger *logging.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("auth.Service: api is required")
	}
	if store == nil {
		store = session.NewMemoryStore()
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{api: api, store: store, clock: time.Now, logger: logger.Named("auth")}, nil
}

// Login signs a job seeker in and stores the session
func (s *Service) Login(ctx context.Context, in Credentials) (domain.Session, error) {
	if errs := ValidateLogin(in, false); !errs.Empty() {
		return domain.Session{}, errs
	}

	tokens, err := s.api.Login(ctx, portalapi.LoginRequest{Email: in.Identifier, Password: in.Password})
	if err != nil {
		s.logger.Info("job seeker login rejected", "err", err)
		return domain.Session{}, FieldErrors{"password": "Invalid email or password"}
	}
	return s.start(ctx, tokens, domain.RoleJobSeeker, in.Identifier)
}

// EmployerLogin signs an employer in and stores the session
func (s *Service) EmployerLogin(ctx context.Context, in Credentials) (domain.Session, error) {
	if errs := ValidateLogin(in, true); !errs.Empty() {
		return domain.Session{}, errs
	}

	tokens, err := s.api.EmployerLogin(ctx, portalapi.EmployerLoginRequest{Username: in.Identifier, Password: in.Password})
	if err != nil {
		s.logger.Info("employer login rejected", "err", err)
		return domain.Session{}, FieldErrors{General: "Invalid username or password"}
	}
	return s.start(ctx, tokens, domain.RoleEmployer, in.Identifier)
}

func (s *Service) start(ctx context.Context, tokens portalapi.Tokens, role domain.Role, identifier string) (domain.Session, error) {
	username := tokens.Username
	if username == "" {
		username = identifier
	}

	sess := domain.Session{
		Username: username,
		Role:     role,
		Access:   tokens.Access,
		Refresh:  tokens.Refresh,
		IssuedAt: s.clock(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("auth: save session: %w", err)
	}

	s.logger.Info("signed in", "username", username, "role", role)
	return sess, nil
}

// Logout forgets the session. The server-side logout is best effort.
func (s *Service) Logout(ctx context.Context) error {
	sess, err := s.store.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("auth: load session: %w", err)
	}

	if sess.Refresh != "" {
		if err := s.api.Logout(ctx, sess.Refresh); err != nil {
			s.logger.Warn("server logout failed", "err", err)
		}
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("auth: clear session: %w", err)
	}
	return nil
}

// Current returns the stored session
func (s *Service) Current(ctx context.Context) (domain.Session, error) {
	return s.store.Load(ctx)
}

// RegisterJobSeeker creates a job seeker account and returns the server message
func (s *Service) RegisterJobSeeker(ctx context.Context, in JobSeekerSignup) (string, error) {
	if errs := ValidateJobSeekerSignup(in); !errs.Empty() {
		return "", errs
	}

	msg, err := s.api.RegisterJobSeeker(ctx, portalapi.JobSeekerSignup{
		Username:        in.Username,
		Email:           in.Email,
		Phone:           in.Phone,
		Password:        in.Password,
		PasswordConfirm: in.ConfirmPassword,
	})
	if err != nil {
		s.logger.Info("job seeker signup rejected", "err", err)
		return "", fieldErrors(err, FieldErrors{General: "Signup failed"})
	}
	return msg, nil
}

// RegisterEmployer creates an employer account and returns the server message
func (s *Service) RegisterEmployer(ctx context.Context, in EmployerSignup) (string, error) {
	if errs := ValidateEmployerSignup(in); !errs.Empty() {
		return "", errs
	}

	msg, err := s.api.RegisterEmployer(ctx, portalapi.EmployerSignup{
		CompanyName: in.CompanyName,
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		Phone:       in.Phone,
	})
	if err != nil {
		s.logger.Info("employer signup rejected", "err", err)
		return "", fieldErrors(err, FieldErrors{General: "Signup failed"})
	}
	return msg, nil
}

// ForgotPassword requests a reset link
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	if errs := ValidateForgotPassword(email); !errs.Empty() {
		return "", errs
	}

	msg, err := s.api.ForgotPassword(ctx, email)
	if err != nil {
		return "", FieldErrors{"email": messageOr(err, "Something went wrong. Please try again.")}
	}
	return msg, nil
}

// ResetPassword sets the new password of the account named by the reset link
func (s *Service) ResetPassword(ctx context.Context, in PasswordReset) (string, error) {
	if errs := ValidateResetPassword(in); !errs.Empty() {
		return "", errs
	}

	msg, err := s.api.ResetPassword(ctx, in.Email, in.NewPassword)
	if err != nil {
		return "", FieldErrors{"confirmPassword": messageOr(err, "Something went wrong")}
	}
	return msg, nil
}

// fieldErrors keeps the first message of every field the server
// rejected, or returns fallback when the rejection had no field map
func fieldErrors(err error, fallback FieldErrors) FieldErrors {
	var se *portalapi.StatusError
	if !errors.As(err, &se) || len(se.Fields) == 0 {
		return fallback
	}

	out := make(FieldErrors, len(se.Fields))
	for field, msgs := range se.Fields {
		if len(msgs) > 0 {
			out[field] = msgs[0]
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func messageOr(err error, fallback string) string {
	var se *portalapi.StatusError
	if errors.As(err, &se) {
		if msgs := se.Fields["error"]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return fallback
}
