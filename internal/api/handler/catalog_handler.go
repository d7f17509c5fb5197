package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/boipoka/storefront/internal/core/ports"
)

// CatalogHandler serves the public book catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// ListBooks lists catalog books, filtered by query parameters.
//
// @Summary      Browse the catalog
// @Tags         catalog
// @Produce      json
// @Param        search    query  string  false  "free-text search"
// @Param        category  query  string  false  "category slug"
// @Param        tag       query  string  false  "tag slug"
// @Param        ordering  query  string  false  "sort field"
// @Param        page      query  int     false  "page number"
// @Success      200  {array}  domain.BookSummary
// @Router       /books [get]
func (h *CatalogHandler) ListBooks(c echo.Context) error {
	// Malformed page values fall back to the first page rather than erroring.
	page, _ := strconv.Atoi(c.QueryParam("page"))

	filter := ports.BookFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Ordering: c.QueryParam("ordering"),
		Page:     page,
	}

	books, err := h.service.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook returns one book by slug.
//
// @Summary      Book detail
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "book slug"
// @Success      200   {object}  domain.Book
// @Failure      404   {object}  errorResponse
// @Router       /books/{slug} [get]
func (h *CatalogHandler) GetBook(c echo.Context) error {
	book, err := h.service.GetBook(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}
