package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// LibraryService serves the buyer's owned ebooks.
type LibraryService struct {
	gateway ports.LibraryGateway
	log     zerolog.Logger
}

func NewLibraryService(gateway ports.LibraryGateway, log zerolog.Logger) *LibraryService {
	return &LibraryService{gateway: gateway, log: log}
}

func (s *LibraryService) List(ctx context.Context) ([]domain.PurchaseItem, error) {
	items, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.PurchaseItem{}
	}
	return items, nil
}

// CreateDownloadLink requests a short-lived token for an owned ebook. The
// upstream enforces download limits; its detail message passes through on
// rejection.
func (s *LibraryService) CreateDownloadLink(ctx context.Context, purchaseID int64) (*domain.DownloadLink, error) {
	if purchaseID <= 0 {
		return nil, domain.ErrPurchaseNotFound
	}
	link, err := s.gateway.CreateDownloadLink(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("purchase_id", purchaseID).Time("expires_at", link.ExpiresAt).Msg("download link issued")
	return link, nil
}
