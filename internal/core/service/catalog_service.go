package service

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CatalogService is a thin pass-through over the read-only catalog gateway.
type CatalogService struct {
	gateway ports.CatalogGateway
}

func NewCatalogService(gateway ports.CatalogGateway) *CatalogService {
	return &CatalogService{gateway: gateway}
}

func (s *CatalogService) ListBooks(ctx context.Context, filter ports.BookFilter) ([]domain.BookSummary, error) {
	books, err := s.gateway.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []domain.BookSummary{}
	}
	return books, nil
}

func (s *CatalogService) GetBook(ctx context.Context, slug string) (*domain.Book, error) {
	if slug == "" {
		return nil, domain.ErrBookNotFound
	}
	return s.gateway.GetBook(ctx, slug)
}
