package handler

import "github.com/boipoka/storefront/internal/core/domain"

// Request/response types for the account handler. Validation mirrors the
// original storefront forms: required-field presence plus basic shape checks,
// nothing stricter — the upstream is the authority on everything else.

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	User domain.User `json:"user"`
	Next string      `json:"next"`
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required,len=6"`
}

type resendCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type forgotPasswordRequest struct {
	// Identifier is the account's email or username.
	Identifier string `json:"identifier" validate:"required"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Code        string `json:"code"         validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required"`
}

// detailResponse carries a human-readable outcome message, optionally with
// the view the storefront should move to next.
type detailResponse struct {
	Detail string `json:"detail"`
	Next   string `json:"next,omitempty"`
	Email  string `json:"email,omitempty"`
}

type profileRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language"`
}

type addressRequest struct {
	FullName   string `json:"full_name"   validate:"required"`
	Line1      string `json:"line1"       validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city"        validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"     validate:"required"`
	IsDefault  bool   `json:"is_default"`
}
