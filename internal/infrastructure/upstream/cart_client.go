package upstream

import (
	"context"
	"net/http"

	appcart "github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

var _ appcart.Submitter = (*CartClient)(nil)

// CartClient implementa cart.Submitter contra POST actions/cart.
type CartClient struct {
	client *Client
}

// NewCartClient construye el adaptador de carrito.
func NewCartClient(client *Client) *CartClient {
	return &CartClient{client: client}
}

// SubmitLine envía una línea. Cualquier 4xx se reporta como rechazo de la
// línea; el agregado del lote lo decide el composer.
func (c *CartClient) SubmitLine(ctx context.Context, token string, line entity.CartLine) error {
	err := c.client.DoJSON(ctx, http.MethodPost, "/actions/cart", token, line, nil)
	if err != nil {
		if _, ok := err.(*StatusError); ok {
			return domain.ErrInvalidInput
		}
		return err
	}
	return nil
}
