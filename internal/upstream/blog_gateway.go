package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boipoka/storefront/internal/core/domain"
)

// BlogGateway implements ports.BlogGateway.
type BlogGateway struct {
	client *Client
}

func NewBlogGateway(client *Client) *BlogGateway {
	return &BlogGateway{client: client}
}

func (g *BlogGateway) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	body, err := g.client.get(ctx, "/blog/", nil)
	if err != nil {
		return nil, err
	}
	return Collection[domain.BlogPost](body), nil
}

func (g *BlogGateway) GetPost(ctx context.Context, id int64) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := g.client.getJSON(ctx, fmt.Sprintf("/blog/%d/", id), nil, &post); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}
