package ports

import (
	"context"

	"github.com/boipoka/storefront/internal/core/domain"
)

// BlogGateway is the upstream read-only blog API.
type BlogGateway interface {
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, id int64) (*domain.BlogPost, error)
}

// BlogService defines the blog browsing use cases.
type BlogService interface {
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, id int64) (*domain.BlogPost, error)
}
