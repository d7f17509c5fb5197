package ports

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
)

// BookFilter carries the catalog listing query. All fields are optional and
// passed through to the upstream unchanged.
type BookFilter struct {
	Search   string
	Category string
	Tag      string
	Ordering string
	Page     int
}

// CatalogGateway is the upstream read-only catalog API.
type CatalogGateway interface {
	ListBooks(ctx context.Context, filter BookFilter) ([]domain.BookSummary, error)
	GetBook(ctx context.Context, slug string) (*domain.Book, error)
}

// CatalogService defines the catalog browsing use cases.
type CatalogService interface {
	ListBooks(ctx context.Context, filter BookFilter) ([]domain.BookSummary, error)
	GetBook(ctx context.Context, slug string) (*domain.Book, error)
}
