package ports

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
)

// LibraryGateway is the upstream owned-ebooks API.
type LibraryGateway interface {
	List(ctx context.Context) ([]domain.PurchaseItem, error)
	CreateDownloadLink(ctx context.Context, purchaseID int64) (*domain.DownloadLink, error)
}

// LibraryService defines the "my library" use cases.
type LibraryService interface {
	List(ctx context.Context) ([]domain.PurchaseItem, error)
	CreateDownloadLink(ctx context.Context, purchaseID int64) (*domain.DownloadLink, error)
}
