package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// LibraryHandler serves the buyer's purchased-book shelf.
type LibraryHandler struct {
	service ports.LibraryService
}

func NewLibraryHandler(service ports.LibraryService) *LibraryHandler {
	return &LibraryHandler{service: service}
}

func (h *LibraryHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// DownloadLink mints a short-lived download link for one purchase.
//
// @Summary      Request a download link
// @Tags         library
// @Produce      json
// @Param        id   path      int  true  "purchase id"
// @Success      201  {object}  domain.DownloadLink
// @Failure      404  {object}  errorResponse
// @Router       /library/{id}/download-link [post]
func (h *LibraryHandler) DownloadLink(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return domain.ErrPurchaseNotFound
	}

	link, err := h.service.CreateDownloadLink(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, link)
}
