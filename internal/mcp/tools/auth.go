package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/auth"
)

// LoginParams signs a job seeker or an employer in
type LoginParams struct {
	Role       string `json:"role,omitempty" jsonschema:"jobseeker (default) or employer"`
	Identifier string `json:"identifier" jsonschema:"Email for job seekers, username for employers"`
	Password   string `json:"password"`
}

// RegisterParams creates an account
type RegisterParams struct {
	Role            string `json:"role,omitempty" jsonschema:"jobseeker (default) or employer"`
	CompanyName     string `json:"company_name,omitempty" jsonschema:"Employers only"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone,omitempty"`
}

type authHandler struct {
	svc *auth.Service
}

// WithLogin registers the login tool
func WithLogin(svc *auth.Service) Option {
	return func(reg *registry) {
		h := &authHandler{svc: svc}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "login",
			Description: "Sign in as a job seeker or employer; the session is used by my_jobs",
		}, h.login)
	}
}

// WithRegister registers the register tool
func WithRegister(svc *auth.Service) Option {
	return func(reg *registry) {
		h := &authHandler{svc: svc}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "register",
			Description: "Create a job seeker or employer account",
		}, h.register)
	}
}

func parseRole(s string) (domain.Role, error) {
	switch domain.Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", domain.RoleJobSeeker:
		return domain.RoleJobSeeker, nil
	case domain.RoleEmployer:
		return domain.RoleEmployer, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (h *authHandler) login(ctx context.Context, _ *sdkmcp.CallToolRequest, params *LoginParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &LoginParams{}
	}
	role, err := parseRole(params.Role)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	creds := auth.Credentials{Identifier: params.Identifier, Password: params.Password}
	var sess domain.Session
	if role == domain.RoleEmployer {
		sess, err = h.svc.EmployerLogin(ctx, creds)
	} else {
		sess, err = h.svc.Login(ctx, creds)
	}
	if res, out, ok := formErrors(err); ok {
		return res, out, nil
	}
	if err != nil {
		return nil, nil, err
	}

	out := map[string]any{"username": sess.Username, "role": sess.Role}
	return textResult(fmt.Sprintf("Signed in as %s (%s)", sess.Username, sess.Role)), out, nil
}

func (h *authHandler) register(ctx context.Context, _ *sdkmcp.CallToolRequest, params *RegisterParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &RegisterParams{}
	}
	role, err := parseRole(params.Role)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	var msg string
	if role == domain.RoleEmployer {
		msg, err = h.svc.RegisterEmployer(ctx, auth.EmployerSignup{
			CompanyName:     params.CompanyName,
			Username:        params.Username,
			Email:           params.Email,
			Password:        params.Password,
			ConfirmPassword: params.ConfirmPassword,
			Phone:           params.Phone,
		})
	} else {
		msg, err = h.svc.RegisterJobSeeker(ctx, auth.JobSeekerSignup{
			Username:        params.Username,
			Email:           params.Email,
			Password:        params.Password,
			ConfirmPassword: params.ConfirmPassword,
			Phone:           params.Phone,
		})
	}
	if res, out, ok := formErrors(err); ok {
		return res, out, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if msg == "" {
		msg = "Registration successful! Please login."
	}
	return textResult(msg), map[string]any{"message": msg}, nil
}

// formErrors turns validation or server rejections into a tool error
// result listing each field message
func formErrors(err error) (*sdkmcp.CallToolResult, any, bool) {
	var fe auth.FieldErrors
	if !errors.As(err, &fe) {
		return nil, nil, false
	}

	lines := strings.Split(strings.TrimPrefix(fe.Error(), "auth: "), "; ")
	return errorResult(strings.Join(lines, "\n")), map[string]any{"errors": fe}, true
}
