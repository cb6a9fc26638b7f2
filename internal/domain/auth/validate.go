package auth

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// FieldErrors maps a form field to the message shown under it. The
// general key holds errors that belong to no single field.
type FieldErrors map[string]string

// General is the key of form-wide errors
const General = "general"

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "auth: " + strings.Join(parts, "; ")
}

// Empty reports whether the form passed validation
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

func (f FieldErrors) orNil() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z]\S*$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`\d`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*]`)
	phoneRe    = regexp.MustCompile(`^\d{10}$`)
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// JobSeekerSignup is the job seeker registration form
type JobSeekerSignup struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone,omitempty"`
}

// ValidateJobSeekerSignup reports at most one message per field
func ValidateJobSeekerSignup(in JobSeekerSignup) FieldErrors {
	errs := FieldErrors{}

	n := utf8.RuneCountInString(in.Username)
	switch {
	case blank(in.Username):
		errs["username"] = "Username is required"
	case n < 4:
		errs["username"] = "Username must be at least 4 characters"
	case n > 20:
		errs["username"] = "Username should not exceed 20 characters"
	case !usernameRe.MatchString(in.Username):
		errs["username"] = "Invalid username Format"
	}

	if msg := checkEmail(in.Email, "Email is required"); msg != "" {
		errs["email"] = msg
	}

	switch {
	case blank(in.Password):
		errs["password"] = "Password is required"
	case len(in.Password) < 8:
		errs["password"] = "Password must be at least 8 characters"
	case !upperRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one uppercase letter"
	case !digitRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one number"
	case !specialRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one special character"
	}

	switch {
	case blank(in.ConfirmPassword):
		errs["confirmpassword"] = "Confirm Password is required"
	case in.ConfirmPassword != in.Password:
		errs["confirmpassword"] = "Passwords do not match"
	}

	if in.Phone != "" && !phoneRe.MatchString(in.Phone) {
		errs["phone"] = "Invalid format"
	}

	return errs
}

// EmployerSignup is the employer registration form
type EmployerSignup struct {
	CompanyName     string `json:"companyName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone,omitempty"`
}

func ValidateEmployerSignup(in EmployerSignup) FieldErrors {
	errs := FieldErrors{}
	if in.CompanyName == "" {
		errs["companyname"] = "Company name required"
	}
	if in.Username == "" {
		errs["username"] = "Username required"
	}
	if in.Email == "" {
		errs["email"] = "Email required"
	}
	if in.Password == "" {
		errs["password"] = "Password required"
	}
	if in.Password != in.ConfirmPassword {
		errs["confirmpassword"] = "Passwords do not match"
	}
	return errs
}

// Credentials is a login form. Identifier is the email of a job seeker
// or the username of an employer.
type Credentials struct {
	Identifier string `json:"username"`
	Password   string `json:"password"`
}

// ValidateLogin checks a login form for the given role
func ValidateLogin(in Credentials, employer bool) FieldErrors {
	errs := FieldErrors{}
	if blank(in.Identifier) {
		if employer {
			errs["username"] = "Username is required"
		} else {
			errs["username"] = "Username or Email is required"
		}
	}
	if blank(in.Password) {
		errs["password"] = "Password is required"
	}
	return errs
}

func ValidateForgotPassword(email string) FieldErrors {
	errs := FieldErrors{}
	if msg := checkEmail(email, "email is required"); msg != "" {
		errs["email"] = msg
	}
	return errs
}

// PasswordReset is the new-password form reached from a reset link
type PasswordReset struct {
	Email           string `json:"email"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func ValidateResetPassword(in PasswordReset) FieldErrors {
	errs := FieldErrors{}

	switch {
	case blank(in.NewPassword):
		errs["newPassword"] = "Password is required"
	case len(in.NewPassword) < 8:
		errs["newPassword"] = "Password must be at least 8 characters"
	}

	switch {
	case blank(in.ConfirmPassword):
		errs["confirmPassword"] = "Confirm Password is required"
	case len(in.ConfirmPassword) < 8:
		errs["confirmPassword"] = "Password must be at least 8 characters"
	case in.ConfirmPassword != in.NewPassword:
		errs["confirmPassword"] = "Passwords do not match"
	}

	if errs.Empty() && blank(in.Email) {
		errs["confirmPassword"] = "Invalid or expired reset link"
	}
	return errs
}

func checkEmail(email, required string) string {
	switch {
	case blank(email):
		return required
	case !emailRe.MatchString(email):
		return "Invalid email format"
	}
	return ""
}
