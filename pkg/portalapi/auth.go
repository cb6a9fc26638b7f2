package portalapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Login signs a job seeker in with email and password
func (c *Client) Login(ctx context.Context, in LoginRequest) (Tokens, error) {
	return c.tokensCall(ctx, "/login/", in)
}

// EmployerLogin signs an employer in with username and password
func (c *Client) EmployerLogin(ctx context.Context, in EmployerLoginRequest) (Tokens, error) {
	return c.tokensCall(ctx, "/employer/login/", in)
}

// RefreshToken exchanges a refresh token for a new access token. The
// refresh token is kept when the response does not rotate it.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (Tokens, error) {
	tokens, err := c.tokensCall(ctx, "/token/refresh/", map[string]string{"refresh": refresh})
	if err != nil {
		return Tokens{}, err
	}
	if tokens.Refresh == "" {
		tokens.Refresh = refresh
	}
	return tokens, nil
}

// Logout invalidates a refresh token
func (c *Client) Logout(ctx context.Context, refresh string) error {
	_, err := c.do(ctx, http.MethodPost, "/logout/", map[string]string{"refresh": refresh})
	return err
}

// RegisterJobSeeker creates a job seeker account and returns the server message
func (c *Client) RegisterJobSeeker(ctx context.Context, in JobSeekerSignup) (string, error) {
	return c.messageCall(ctx, "/register/jobseeker/", in)
}

// RegisterEmployer creates an employer account and returns the server message
func (c *Client) RegisterEmployer(ctx context.Context, in EmployerSignup) (string, error) {
	return c.messageCall(ctx, "/employer/signup/", in)
}

// ForgotPassword asks the server to send a reset link
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	return c.messageCall(ctx, "/forgot-password/", map[string]string{"email": email})
}

// ResetPassword sets a new password for the account behind a reset link
func (c *Client) ResetPassword(ctx context.Context, email, newPassword string) (string, error) {
	return c.messageCall(ctx, "/reset-password/", map[string]string{
		"email":       email,
		"newPassword": newPassword,
	})
}

func (c *Client) tokensCall(ctx context.Context, path string, in any) (Tokens, error) {
	body, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return Tokens{}, err
	}

	var tokens Tokens
	if err := json.Unmarshal(body, &tokens); err != nil {
		return Tokens{}, fmt.Errorf("portalapi: decode tokens: %w", err)
	}
	if tokens.Access == "" {
		return Tokens{}, fmt.Errorf("portalapi: response carried no access token")
	}
	return tokens, nil
}

func (c *Client) messageCall(ctx context.Context, path string, in any) (string, error) {
	body, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return "", err
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", nil
	}
	return out.Message, nil
}
