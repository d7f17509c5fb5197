package service

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// BlogService serves the read-only blog pages.
type BlogService struct {
	gateway ports.BlogGateway
}

func NewBlogService(gateway ports.BlogGateway) *BlogService {
	return &BlogService{gateway: gateway}
}

// ListPosts always returns a renderable slice: the gateway normalises the
// paginated-or-plain listing shape and unexpected bodies come back empty.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.gateway.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}
	return posts, nil
}

func (s *BlogService) GetPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	if id <= 0 {
		return nil, domain.ErrPostNotFound
	}
	return s.gateway.GetPost(ctx, id)
}
