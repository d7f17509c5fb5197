package ports

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
)

// AccountGateway is the upstream auth/profile API as seen by the services.
// The bearer token for authenticated calls travels inside ctx.
type AccountGateway interface {
	Login(ctx context.Context, username, password string) (*domain.AuthPayload, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, email, code string) (string, error)
	ResendCode(ctx context.Context, email string) (string, error)
	ForgotPassword(ctx context.Context, identifier string) (*domain.ResetRequest, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
	Me(ctx context.Context) (*domain.Account, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (*domain.Account, error)
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, input AddressInput) (*domain.Address, error)
	UpdateAddress(ctx context.Context, id int64, input AddressInput) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}

// RegisterInput carries the fields for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// ProfileInput carries the editable profile fields for a partial update.
type ProfileInput struct {
	FirstName         string
	LastName          string
	Phone             string
	PreferredLanguage string
}

// AddressInput carries a billing address for create/update.
type AddressInput struct {
	FullName   string
	Line1      string
	Line2      string
	City       string
	PostalCode string
	Country    string
	IsDefault  bool
}

// LoginResult is returned after a successful login: a locally minted session
// token wrapping the upstream access token, the session id, and the user.
type LoginResult struct {
	SessionID string
	Token     string
	User      domain.User
}

// AccountService defines the account-facing use cases.
type AccountService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyEmail(ctx context.Context, email, code string) (string, error)
	ResendCode(ctx context.Context, email string) (string, error)
	ForgotPassword(ctx context.Context, identifier string) (*domain.ResetRequest, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
	Me(ctx context.Context) (*domain.Account, error)
	UpdateProfile(ctx context.Context, input ProfileInput) (*domain.Account, error)
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, input AddressInput) (*domain.Address, error)
	UpdateAddress(ctx context.Context, id int64, input AddressInput) (*domain.Address, error)
	DeleteAddress(ctx context.Context, id int64) error
}
