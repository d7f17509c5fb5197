package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

// CatalogGateway implements ports.CatalogGateway against the read-only book
// endpoints.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) ListBooks(ctx context.Context, filter ports.BookFilter) ([]domain.BookSummary, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Category != "" {
		query.Set("categories__slug", filter.Category)
	}
	if filter.Tag != "" {
		query.Set("tags__slug", filter.Tag)
	}
	if filter.Ordering != "" {
		query.Set("ordering", filter.Ordering)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}

	body, err := g.client.get(ctx, "/books/", query)
	if err != nil {
		return nil, err
	}
	return Collection[domain.BookSummary](body), nil
}

func (g *CatalogGateway) GetBook(ctx context.Context, slug string) (*domain.Book, error) {
	var book domain.Book
	if err := g.client.getJSON(ctx, "/books/"+url.PathEscape(slug)+"/", nil, &book); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}
