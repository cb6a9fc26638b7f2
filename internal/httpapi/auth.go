package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/auth"
)

type loginRequest struct {
	Role       domain.Role `json:"role"`
	Identifier string      `json:"identifier"`
	Password   string      `json:"password"`
}

type registerRequest struct {
	Role            domain.Role `json:"role"`
	CompanyName     string      `json:"companyName"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	Password        string      `json:"password"`
	ConfirmPassword string      `json:"confirmPassword"`
	Phone           string      `json:"phone"`
}

// writeAuthError sends field errors as 422 and anything else as 500
func (h *Handler) writeAuthError(c *gin.Context, err error) {
	var fe auth.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fe})
		return
	}
	h.logger.Error("auth request failed", "path", c.FullPath(), "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	creds := auth.Credentials{Identifier: req.Identifier, Password: req.Password}
	var (
		sess domain.Session
		err  error
	)
	switch req.Role {
	case "", domain.RoleJobSeeker:
		sess, err = h.auth.Login(c.Request.Context(), creds)
	case domain.RoleEmployer:
		sess, err = h.auth.EmployerLogin(c.Request.Context(), creds)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": sess.Username, "role": sess.Role})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var (
		msg string
		err error
	)
	switch req.Role {
	case "", domain.RoleJobSeeker:
		msg, err = h.auth.RegisterJobSeeker(c.Request.Context(), auth.JobSeekerSignup{
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Phone:           req.Phone,
		})
	case domain.RoleEmployer:
		msg, err = h.auth.RegisterEmployer(c.Request.Context(), auth.EmployerSignup{
			CompanyName:     req.CompanyName,
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			Phone:           req.Phone,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	if msg == "" {
		msg = "Registration successful! Please login."
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) forgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.auth.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var req auth.PasswordReset
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.auth.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
