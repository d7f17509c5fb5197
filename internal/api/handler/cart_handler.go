package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CartHandler serves the cart page. Every response carries the full upstream
// cart plus the display summary, and re-hydrates the session's cart slice.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addItemRequest struct {
	BookID   int64 `json:"book_id"  validate:"required"`
	Quantity int   `json:"quantity"`
}

type updateItemRequest struct {
	// Pointer so an explicit zero survives binding; zero or below removes
	// the line, which is the upstream's call to make.
	Quantity *int `json:"quantity" validate:"required"`
}

type cartSummaryResponse struct {
	Total          string  `json:"total"`
	ItemCount      int     `json:"item_count"`
	InvalidItemIDs []int64 `json:"invalid_item_ids,omitempty"`
}

type cartResponse struct {
	Cart    *domain.Cart        `json:"cart"`
	Summary cartSummaryResponse `json:"summary"`
}

func toCartResponse(view *ports.CartView) cartResponse {
	return cartResponse{
		Cart: view.Cart,
		Summary: cartSummaryResponse{
			Total:          view.Summary.Total.StringFixed(2),
			ItemCount:      view.Summary.ItemCount,
			InvalidItemIDs: view.Summary.InvalidItems,
		},
	}
}

// Get loads the cart.
//
// @Summary      Load the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	view, err := h.service.Load(c.Request().Context())
	if err != nil {
		return err
	}

	sess.SetCart(view.Cart)
	return c.JSON(http.StatusOK, toCartResponse(view))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddItem(c.Request().Context(), req.BookID, req.Quantity)
	if err != nil {
		return err
	}

	sess.SetCart(view.Cart)
	return c.JSON(http.StatusCreated, toCartResponse(view))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := cartItemID(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateItem(c.Request().Context(), id, *req.Quantity)
	if err != nil {
		return err
	}

	sess.SetCart(view.Cart)
	return c.JSON(http.StatusOK, toCartResponse(view))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := cartItemID(c)
	if err != nil {
		return err
	}

	view, err := h.service.RemoveItem(c.Request().Context(), id)
	if err != nil {
		return err
	}

	sess.SetCart(view.Cart)
	return c.JSON(http.StatusOK, toCartResponse(view))
}

func cartItemID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrCartItemNotFound
	}
	return id, nil
}
