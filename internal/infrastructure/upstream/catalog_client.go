package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

var _ appcatalog.Fetcher = (*CatalogClient)(nil)

// CatalogClient implementa catalog.Fetcher contra la pasarela: trae el payload
// crudo por fuente y lo entrega normalizado.
type CatalogClient struct {
	client *Client
}

// NewCatalogClient construye el adaptador de catálogo.
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// FetchProduct GET product-details/{source}/{id}, decodificado según la fuente
// y normalizado a la forma canónica.
func (c *CatalogClient) FetchProduct(ctx context.Context, token string, source entity.Source, id string) (entity.ProductBundle, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/product-details/%s/%s", source, id)
	if err := c.client.DoJSON(ctx, http.MethodGet, path, token, nil, &raw); err != nil {
		return entity.ProductBundle{}, err
	}
	payload, err := DecodePayload(raw, source)
	if err != nil {
		return entity.ProductBundle{}, err
	}
	return Normalize(payload)
}

// FetchRelated GET product-related/{source}/{id}.
func (c *CatalogClient) FetchRelated(ctx context.Context, token string, source entity.Source, id string) ([]entity.ProductCard, error) {
	return c.fetchSummaries(ctx, token, fmt.Sprintf("/product-related/%s/%s", source, id), source)
}

// FetchLike GET product-like/{source}/{id}.
func (c *CatalogClient) FetchLike(ctx context.Context, token string, source entity.Source, id string) ([]entity.ProductCard, error) {
	return c.fetchSummaries(ctx, token, fmt.Sprintf("/product-like/%s/%s", source, id), source)
}

func (c *CatalogClient) fetchSummaries(ctx context.Context, token, path string, source entity.Source) ([]entity.ProductCard, error) {
	var items []summaryItem
	if err := c.client.DoJSON(ctx, http.MethodGet, path, token, nil, &items); err != nil {
		return nil, err
	}
	cards := make([]entity.ProductCard, 0, len(items))
	for _, item := range items {
		card := normalizeSummary(item, source)
		if card.ID == "" {
			// Ítem sin identidad: se omite del listado, no tumba la respuesta.
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}
