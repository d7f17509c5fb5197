package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
	"github.com/boipoka/storefront/internal/store"
)

// AccountHandler serves the auth, profile, and address pages.
type AccountHandler struct {
	service  ports.AccountService
	sessions *store.Store
}

func NewAccountHandler(service ports.AccountService, sessions *store.Store) *AccountHandler {
	return &AccountHandler{service: service, sessions: sessions}
}

// Login authenticates against the upstream and opens a storefront session.
//
// @Summary      Log in
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	// Hydrate the auth slice so the session endpoint can answer without an
	// upstream round-trip.
	h.sessions.GetOrCreate(res.SessionID).SetAuth(res.User, nil)

	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, User: res.User})
}

// Logout clears the session state. The upstream token simply ages out; there
// is no upstream logout call to make.
func (h *AccountHandler) Logout(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	sess.ClearAuth()
	sess.ClearCart()
	h.sessions.Delete(sess.ID())
	return c.NoContent(http.StatusNoContent)
}

// SessionInfo renders the current session snapshot from the store.
func (h *AccountHandler) SessionInfo(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess.Snapshot())
}

// Register creates an account; the upstream emails a 6-digit verification
// code and the account stays unusable until it is confirmed.
//
// @Summary      Register a new account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{User: *user, Next: "/verify-email"})
}

// VerifyEmail confirms the 6-digit code. On success the storefront redirects
// to the login view.
func (h *AccountHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.VerifyEmail(c.Request().Context(), req.Email, req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: detail, Next: "/login"})
}

func (h *AccountHandler) ResendCode(c echo.Context) error {
	var req resendCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.ResendCode(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: detail})
}

// ForgotPassword starts a reset: the upstream emails a code to the matched
// account. The response echoes the email (when matched) so the storefront
// can pre-fill the reset form.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.ForgotPassword(c.Request().Context(), req.Identifier)
	if err != nil {
		return err
	}

	out := detailResponse{Detail: res.Detail, Email: res.Email}
	if res.Email != "" {
		out.Next = "/reset-password"
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.ResetPassword(c.Request().Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailResponse{Detail: detail, Next: "/login"})
}

// Me returns the combined user+profile record and refreshes the auth slice.
func (h *AccountHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	account, err := h.service.Me(c.Request().Context())
	if err != nil {
		return err
	}

	sess.SetAuth(account.User, &account.Profile)
	return c.JSON(http.StatusOK, account)
}

// UpdateMe patches profile fields only; the username and email are fixed.
func (h *AccountHandler) UpdateMe(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.service.UpdateProfile(c.Request().Context(), ports.ProfileInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		return err
	}

	sess.SetAuth(account.User, &account.Profile)
	return c.JSON(http.StatusOK, account)
}

// ListAddresses always returns a JSON array, whatever shape the upstream
// served the listing in.
func (h *AccountHandler) ListAddresses(c echo.Context) error {
	addrs, err := h.service.ListAddresses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addrs)
}

func (h *AccountHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	addr, err := h.service.CreateAddress(c.Request().Context(), toAddressInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, addr)
}

func (h *AccountHandler) UpdateAddress(c echo.Context) error {
	id, err := addressID(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	addr, err := h.service.UpdateAddress(c.Request().Context(), id, toAddressInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addr)
}

func (h *AccountHandler) DeleteAddress(c echo.Context) error {
	id, err := addressID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteAddress(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toAddressInput(req addressRequest) ports.AddressInput {
	return ports.AddressInput{
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
	}
}

// addressID parses the address id path parameter. A malformed id behaves
// like a missing record, matching how the upstream routes unknown ids.
func addressID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrAddressNotFound
	}
	return id, nil
}
