package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// AccountGateway implements ports.AccountGateway against the upstream auth
// endpoints.
type AccountGateway struct {
	client *Client
}

func NewAccountGateway(client *Client) *AccountGateway {
	return &AccountGateway{client: client}
}

func (g *AccountGateway) Login(ctx context.Context, username, password string) (*domain.AuthPayload, error) {
	in := map[string]string{"username": username, "password": password}
	var payload domain.AuthPayload
	if err := g.client.postJSON(ctx, "/auth/login/", in, &payload); err != nil {
		if status(err) == http.StatusUnauthorized || status(err) == http.StatusBadRequest {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return &payload, nil
}

func (g *AccountGateway) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	in := map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
	}
	var user domain.User
	if err := g.client.postJSON(ctx, "/auth/register/", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *AccountGateway) VerifyEmail(ctx context.Context, email, code string) (string, error) {
	return g.detailPost(ctx, "/auth/verify-email/", map[string]string{"email": email, "code": code})
}

func (g *AccountGateway) ResendCode(ctx context.Context, email string) (string, error) {
	return g.detailPost(ctx, "/auth/resend-otp/", map[string]string{"email": email})
}

func (g *AccountGateway) ForgotPassword(ctx context.Context, identifier string) (*domain.ResetRequest, error) {
	in := map[string]string{"identifier": identifier}
	var res domain.ResetRequest
	if err := g.client.postJSON(ctx, "/auth/forgot-password/", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *AccountGateway) ResetPassword(ctx context.Context, email, code, newPassword string) (string, error) {
	in := map[string]string{"email": email, "code": code, "new_password": newPassword}
	return g.detailPost(ctx, "/auth/reset-password/", in)
}

func (g *AccountGateway) Me(ctx context.Context) (*domain.Account, error) {
	var account domain.Account
	if err := g.client.getJSON(ctx, "/auth/me/", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (g *AccountGateway) UpdateProfile(ctx context.Context, input ports.ProfileInput) (*domain.Account, error) {
	in := map[string]string{
		"first_name":         input.FirstName,
		"last_name":          input.LastName,
		"phone":              input.Phone,
		"preferred_language": input.PreferredLanguage,
	}
	var account domain.Account
	if err := g.client.patchJSON(ctx, "/auth/me/", in, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (g *AccountGateway) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	body, err := g.client.get(ctx, "/auth/addresses/", nil)
	if err != nil {
		return nil, err
	}
	return Collection[domain.Address](body), nil
}

type addressRequest struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

func toAddressRequest(input ports.AddressInput) addressRequest {
	return addressRequest{
		FullName:   input.FullName,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	}
}

func (g *AccountGateway) CreateAddress(ctx context.Context, input ports.AddressInput) (*domain.Address, error) {
	var addr domain.Address
	if err := g.client.postJSON(ctx, "/auth/addresses/", toAddressRequest(input), &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func (g *AccountGateway) UpdateAddress(ctx context.Context, id int64, input ports.AddressInput) (*domain.Address, error) {
	var addr domain.Address
	path := fmt.Sprintf("/auth/addresses/%d/", id)
	if err := g.client.patchJSON(ctx, path, toAddressRequest(input), &addr); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return &addr, nil
}

func (g *AccountGateway) DeleteAddress(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/auth/addresses/%d/", id)
	if err := g.client.deleteJSON(ctx, path, nil); err != nil {
		if status(err) == http.StatusNotFound {
			return domain.ErrAddressNotFound
		}
		return err
	}
	return nil
}

// detailPost posts a payload and returns the upstream's detail string.
func (g *AccountGateway) detailPost(ctx context.Context, path string, in map[string]string) (string, error) {
	var res struct {
		Detail string `json:"detail"`
	}
	if err := g.client.postJSON(ctx, path, in, &res); err != nil {
		return "", err
	}
	return res.Detail, nil
}
