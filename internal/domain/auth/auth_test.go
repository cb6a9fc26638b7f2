package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/auth"
	"github.com/honeycarbs/jobportal/internal/session"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

type fakeAPI struct {
	tokens  portalapi.Tokens
	message string
	err     error

	calls     int
	loggedIn  portalapi.LoginRequest
	signup    portalapi.JobSeekerSignup
	loggedOut string
}

func (f *fakeAPI) Login(_ context.Context, in portalapi.LoginRequest) (portalapi.Tokens, error) {
	f.calls++
	f.loggedIn = in
	return f.tokens, f.err
}

func (f *fakeAPI) EmployerLogin(_ context.Context, _ portalapi.EmployerLoginRequest) (portalapi.Tokens, error) {
	f.calls++
	return f.tokens, f.err
}

func (f *fakeAPI) Logout(_ context.Context, refresh string) error {
	f.calls++
	f.loggedOut = refresh
	return f.err
}

func (f *fakeAPI) RegisterJobSeeker(_ context.Context, in portalapi.JobSeekerSignup) (string, error) {
	f.calls++
	f.signup = in
	return f.message, f.err
}

func (f *fakeAPI) RegisterEmployer(_ context.Context, _ portalapi.EmployerSignup) (string, error) {
	f.calls++
	return f.message, f.err
}

func (f *fakeAPI) ForgotPassword(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.message, f.err
}

func (f *fakeAPI) ResetPassword(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.message, f.err
}

func newService(t *testing.T, api *fakeAPI) (*auth.Service, session.Store) {
	t.Helper()
	store := session.NewMemoryStore()
	svc, err := auth.NewService(api, store, nil)
	require.NoError(t, err)
	return svc, store
}

func fieldErrs(t *testing.T, err error) auth.FieldErrors {
	t.Helper()
	var fe auth.FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %v", err)
	return fe
}

// ── validation ────────────────────────────────────────────────────────────

func TestValidateJobSeekerSignup(t *testing.T) {
	valid := auth.JobSeekerSignup{
		Username: "asha_k", Email: "asha@example.com",
		Password: "Secret#12", ConfirmPassword: "Secret#12",
	}

	cases := []struct {
		name  string
		edit  func(*auth.JobSeekerSignup)
		field string
		msg   string
	}{
		{"blank username", func(s *auth.JobSeekerSignup) { s.Username = "  " }, "username", "Username is required"},
		{"short username", func(s *auth.JobSeekerSignup) { s.Username = "abc" }, "username", "Username must be at least 4 characters"},
		{"long username", func(s *auth.JobSeekerSignup) { s.Username = strings.Repeat("a", 21) }, "username", "Username should not exceed 20 characters"},
		{"digit first", func(s *auth.JobSeekerSignup) { s.Username = "1asha" }, "username", "Invalid username Format"},
		{"space inside", func(s *auth.JobSeekerSignup) { s.Username = "asha k" }, "username", "Invalid username Format"},
		{"blank email", func(s *auth.JobSeekerSignup) { s.Email = "" }, "email", "Email is required"},
		{"bad email", func(s *auth.JobSeekerSignup) { s.Email = "asha@example" }, "email", "Invalid email format"},
		{"short password", func(s *auth.JobSeekerSignup) { s.Password = "Ab#1"; s.ConfirmPassword = "Ab#1" }, "password", "Password must be at least 8 characters"},
		{"no upper", func(s *auth.JobSeekerSignup) { s.Password = "secret#12"; s.ConfirmPassword = "secret#12" }, "password", "Password must contain at least one uppercase letter"},
		{"no digit", func(s *auth.JobSeekerSignup) { s.Password = "Secret#ab"; s.ConfirmPassword = "Secret#ab" }, "password", "Password must contain at least one number"},
		{"no special", func(s *auth.JobSeekerSignup) { s.Password = "Secret123"; s.ConfirmPassword = "Secret123" }, "password", "Password must contain at least one special character"},
		{"mismatch", func(s *auth.JobSeekerSignup) { s.ConfirmPassword = "Secret#13" }, "confirmpassword", "Passwords do not match"},
		{"blank confirm", func(s *auth.JobSeekerSignup) { s.ConfirmPassword = "" }, "confirmpassword", "Confirm Password is required"},
		{"bad phone", func(s *auth.JobSeekerSignup) { s.Phone = "12345" }, "phone", "Invalid format"},
	}

	assert.True(t, auth.ValidateJobSeekerSignup(valid).Empty())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.edit(&in)
			errs := auth.ValidateJobSeekerSignup(in)
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.msg, errs[tc.field])
		})
	}
}

func TestValidateEmployerSignup(t *testing.T) {
	errs := auth.ValidateEmployerSignup(auth.EmployerSignup{Password: "a", ConfirmPassword: "b"})
	assert.Equal(t, auth.FieldErrors{
		"companyname":     "Company name required",
		"username":        "Username required",
		"email":           "Email required",
		"confirmpassword": "Passwords do not match",
	}, errs)
}

func TestValidateResetPassword(t *testing.T) {
	errs := auth.ValidateResetPassword(auth.PasswordReset{Email: "a@b.co", NewPassword: "longenough", ConfirmPassword: "different1"})
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])

	errs = auth.ValidateResetPassword(auth.PasswordReset{NewPassword: "longenough", ConfirmPassword: "longenough"})
	assert.Equal(t, auth.FieldErrors{"confirmPassword": "Invalid or expired reset link"}, errs)
}

// ── service ───────────────────────────────────────────────────────────────

func TestLogin_StoresSession(t *testing.T) {
	api := &fakeAPI{tokens: portalapi.Tokens{Access: "a1", Refresh: "r1"}}
	svc, store := newService(t, api)

	sess, err := svc.Login(context.Background(), auth.Credentials{Identifier: "asha@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleJobSeeker, sess.Role)
	assert.Equal(t, "asha@example.com", api.loggedIn.Email)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", stored.Access)
}

func TestLogin_ValidationBlocksRequest(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newService(t, api)

	_, err := svc.Login(context.Background(), auth.Credentials{})
	fe := fieldErrs(t, err)
	assert.Equal(t, "Username or Email is required", fe["username"])
	assert.Equal(t, "Password is required", fe["password"])
	assert.Zero(t, api.calls)
}

func TestLogin_Rejected(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{err: &portalapi.StatusError{StatusCode: 401}})

	_, err := svc.Login(context.Background(), auth.Credentials{Identifier: "x", Password: "y"})
	assert.Equal(t, auth.FieldErrors{"password": "Invalid email or password"}, fieldErrs(t, err))

	_, err = svc.EmployerLogin(context.Background(), auth.Credentials{Identifier: "x", Password: "y"})
	assert.Equal(t, auth.FieldErrors{auth.General: "Invalid username or password"}, fieldErrs(t, err))
}

func TestEmployerLogin_UsesServerUsername(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{tokens: portalapi.Tokens{Access: "a", Refresh: "r", Username: "acme"}})

	sess, err := svc.EmployerLogin(context.Background(), auth.Credentials{Identifier: "hr", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "acme", sess.Username)
	assert.Equal(t, domain.RoleEmployer, sess.Role)
}

func TestRegisterJobSeeker_ServerFieldErrors(t *testing.T) {
	api := &fakeAPI{err: &portalapi.StatusError{
		StatusCode: 400,
		Fields: map[string][]string{
			"email":    {"user with this email already exists.", "second"},
			"username": {"taken"},
		},
	}}
	svc, _ := newService(t, api)

	_, err := svc.RegisterJobSeeker(context.Background(), auth.JobSeekerSignup{
		Username: "asha_k", Email: "asha@example.com", Password: "Secret#12", ConfirmPassword: "Secret#12",
	})
	assert.Equal(t, auth.FieldErrors{
		"email":    "user with this email already exists.",
		"username": "taken",
	}, fieldErrs(t, err))
	assert.Equal(t, "Secret#12", api.signup.PasswordConfirm)
}

func TestRegisterEmployer_UnknownShapeIsGeneral(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{err: errors.New("connection refused")})

	_, err := svc.RegisterEmployer(context.Background(), auth.EmployerSignup{
		CompanyName: "Acme", Username: "hr", Email: "hr@acme.io", Password: "pw", ConfirmPassword: "pw",
	})
	assert.Equal(t, auth.FieldErrors{auth.General: "Signup failed"}, fieldErrs(t, err))
}

func TestForgotPassword(t *testing.T) {
	svc, _ := newService(t, &fakeAPI{message: "Reset link sent"})
	msg, err := svc.ForgotPassword(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Reset link sent", msg)

	svc, _ = newService(t, &fakeAPI{err: &portalapi.StatusError{StatusCode: 404, Fields: map[string][]string{"error": {"No account"}}}})
	_, err = svc.ForgotPassword(context.Background(), "asha@example.com")
	assert.Equal(t, auth.FieldErrors{"email": "No account"}, fieldErrs(t, err))
}

func TestResetPassword_MissingEmailBlocksRequest(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newService(t, api)

	_, err := svc.ResetPassword(context.Background(), auth.PasswordReset{NewPassword: "Secret#12", ConfirmPassword: "Secret#12"})
	assert.Equal(t, "Invalid or expired reset link", fieldErrs(t, err)["confirmPassword"])
	assert.Zero(t, api.calls)
}

func TestLogout(t *testing.T) {
	api := &fakeAPI{tokens: portalapi.Tokens{Access: "a", Refresh: "r9"}}
	svc, store := newService(t, api)
	ctx := context.Background()

	require.NoError(t, svc.Logout(ctx))

	_, err := svc.Login(ctx, auth.Credentials{Identifier: "x", Password: "y"})
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, "r9", api.loggedOut)
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestFieldErrors_Error(t *testing.T) {
	err := auth.FieldErrors{"b": "two", "a": "one"}
	assert.Equal(t, "auth: a: one; b: two", err.Error())
}
