package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	appwishlist "github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var _ appwishlist.Remote = (*WishlistClient)(nil)

// WishlistClient implementa wishlist.Remote contra la pasarela de cuenta.
type WishlistClient struct {
	client *Client
}

// NewWishlistClient construye el adaptador de wishlist.
func NewWishlistClient(client *Client) *WishlistClient {
	return &WishlistClient{client: client}
}

type wishlistItem struct {
	PID string `json:"pid"`
	ID  int64  `json:"id"`
}

// List GET account/wishlist?offset&limit.
func (c *WishlistClient) List(ctx context.Context, token string, offset, limit int) ([]entity.WishlistEntry, error) {
	var items []wishlistItem
	path := fmt.Sprintf("/account/wishlist?offset=%d&limit=%d", offset, limit)
	if err := c.client.DoJSON(ctx, http.MethodGet, path, token, nil, &items); err != nil {
		return nil, err
	}
	entries := make([]entity.WishlistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, entity.WishlistEntry{ProductID: it.PID, RemoteID: it.ID})
	}
	return entries, nil
}

type wishlistAddBody struct {
	Src   entity.Source   `json:"src"`
	PID   string          `json:"pid"`
	Img   string          `json:"img"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type wishlistAddReply struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// Add POST actions/wishlist. Una respuesta "already_exists" trae el id del
// registro existente: se devuelve con AlreadyExists=true, no como error.
func (c *WishlistClient) Add(ctx context.Context, token string, item appwishlist.AddItem) (appwishlist.AddResult, error) {
	body := wishlistAddBody{
		Src:   item.Source,
		PID:   item.ProductID,
		Img:   item.Image,
		Title: item.Title,
		Price: item.Price,
	}
	var reply wishlistAddReply
	err := c.client.DoJSON(ctx, http.MethodPost, "/actions/wishlist", token, body, &reply)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusConflict {
			if jsonErr := json.Unmarshal(se.Body, &reply); jsonErr == nil && reply.ID != 0 {
				return appwishlist.AddResult{RemoteID: reply.ID, AlreadyExists: true}, nil
			}
		}
		return appwishlist.AddResult{}, err
	}
	return appwishlist.AddResult{
		RemoteID:      reply.ID,
		AlreadyExists: reply.Code == "already_exists",
	}, nil
}

type wishlistDeleteBody struct {
	ID int64 `json:"id"`
}

// Remove DELETE actions/wishlist por id remoto.
func (c *WishlistClient) Remove(ctx context.Context, token string, remoteID int64) error {
	return c.client.DoJSON(ctx, http.MethodDelete, "/actions/wishlist", token, wishlistDeleteBody{ID: remoteID}, nil)
}
