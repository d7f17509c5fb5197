package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// AccountService implements login, registration, email verification, password
// reset, profile management, and address CRUD. Credentials are never stored or
// hashed here: the upstream owns all account authority, this service only
// wraps its access token in a locally signed session token.
type AccountService struct {
	gateway   ports.AccountGateway
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAccountService(gateway ports.AccountGateway, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AccountService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AccountService{gateway: gateway, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AccountService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	payload, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sid := uuid.NewString()
	token, err := s.mintSessionToken(sid, payload)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", payload.User.Username).Str("sid", sid).Msg("login succeeded")

	return &ports.LoginResult{
		SessionID: sid,
		Token:     token,
		User:      payload.User,
	}, nil
}

// mintSessionToken signs a session JWT carrying the session id and the
// upstream access token, so later requests can forward it without the gateway
// holding any server-side credential state.
func (s *AccountService) mintSessionToken(sid string, payload *domain.AuthPayload) (string, error) {
	claims := jwt.MapClaims{
		"sid":      sid,
		"sub":      payload.User.Username,
		"upstream": payload.Token,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.gateway.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", user.Username).Msg("account registered, verification pending")
	return user, nil
}

func (s *AccountService) VerifyEmail(ctx context.Context, email, code string) (string, error) {
	detail, err := s.gateway.VerifyEmail(ctx, email, code)
	if err != nil {
		return "", err
	}
	if detail == "" {
		detail = "Email verified! You can now log in."
	}
	return detail, nil
}

func (s *AccountService) ResendCode(ctx context.Context, email string) (string, error) {
	detail, err := s.gateway.ResendCode(ctx, email)
	if err != nil {
		return "", err
	}
	if detail == "" {
		detail = "New code sent to your email."
	}
	return detail, nil
}

func (s *AccountService) ForgotPassword(ctx context.Context, identifier string) (*domain.ResetRequest, error) {
	res, err := s.gateway.ForgotPassword(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if res.Detail == "" {
		res.Detail = "If an account exists, a code was sent."
	}
	return res, nil
}

func (s *AccountService) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	detail, err := s.gateway.ResetPassword(ctx, email, code, newPassword)
	if err != nil {
		return "", err
	}
	if detail == "" {
		detail = "Password has been reset. You can now log in."
	}
	return detail, nil
}

func (s *AccountService) Me(ctx context.Context) (*domain.Account, error) {
	return s.gateway.Me(ctx)
}

func (s *AccountService) UpdateProfile(ctx context.Context, input ports.ProfileInput) (*domain.Account, error) {
	return s.gateway.UpdateProfile(ctx, input)
}

// ListAddresses returns the account's billing addresses. The gateway already
// normalises the paginated-or-plain listing shape; the result is never nil.
func (s *AccountService) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	addrs, err := s.gateway.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if addrs == nil {
		addrs = []domain.Address{}
	}
	return addrs, nil
}

func (s *AccountService) CreateAddress(ctx context.Context, input ports.AddressInput) (*domain.Address, error) {
	return s.gateway.CreateAddress(ctx, input)
}

func (s *AccountService) UpdateAddress(ctx context.Context, id int64, input ports.AddressInput) (*domain.Address, error) {
	return s.gateway.UpdateAddress(ctx, id, input)
}

func (s *AccountService) DeleteAddress(ctx context.Context, id int64) error {
	return s.gateway.DeleteAddress(ctx, id)
}
