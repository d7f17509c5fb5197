package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/boipoka/storefront/internal/core/domain"
)

// CartGateway implements ports.CartGateway. The upstream returns the whole
// cart after every mutation; nothing is recomputed here.
type CartGateway struct {
	client *Client
}

func NewCartGateway(client *Client) *CartGateway {
	return &CartGateway{client: client}
}

func (g *CartGateway) Get(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := g.client.getJSON(ctx, "/cart/", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (g *CartGateway) AddItem(ctx context.Context, bookID int64, quantity int) (*domain.Cart, error) {
	in := map[string]any{"book_id": bookID, "quantity": quantity}
	var cart domain.Cart
	if err := g.client.postJSON(ctx, "/cart/items/", in, &cart); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (g *CartGateway) UpdateItem(ctx context.Context, itemID int64, quantity int) (*domain.Cart, error) {
	in := map[string]any{"quantity": quantity}
	var cart domain.Cart
	path := fmt.Sprintf("/cart/items/%d/", itemID)
	if err := g.client.patchJSON(ctx, path, in, &cart); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (g *CartGateway) RemoveItem(ctx context.Context, itemID int64) (*domain.Cart, error) {
	var cart domain.Cart
	path := fmt.Sprintf("/cart/items/%d/", itemID)
	if err := g.client.deleteJSON(ctx, path, &cart); err != nil {
		if status(err) == http.StatusNotFound {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return &cart, nil
}
