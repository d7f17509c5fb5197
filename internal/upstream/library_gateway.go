package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boipoka/storefront/internal/core/domain"
)

// LibraryGateway implements ports.LibraryGateway against the owned-ebooks
// endpoints.
type LibraryGateway struct {
	client *Client
}

func NewLibraryGateway(client *Client) *LibraryGateway {
	return &LibraryGateway{client: client}
}

func (g *LibraryGateway) List(ctx context.Context) ([]domain.PurchaseItem, error) {
	body, err := g.client.get(ctx, "/library/", nil)
	if err != nil {
		return nil, err
	}
	return Collection[domain.PurchaseItem](body), nil
}

func (g *LibraryGateway) CreateDownloadLink(ctx context.Context, purchaseID int64) (*domain.DownloadLink, error) {
	var link domain.DownloadLink
	path := fmt.Sprintf("/library/%d/download-link/", purchaseID)
	if err := g.client.postJSON(ctx, path, struct{}{}, &link); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, err
	}
	return &link, nil
}
