package dto

import "github.com/shopspring/decimal"

// WishlistToggleRequest alterna la membresía de un producto en la wishlist.
// Título, imagen y precio acompañan el alta remota; en un retiro se ignoran.
type WishlistToggleRequest struct {
	Source string          `json:"source" validate:"required"`
	ID     string          `json:"id" validate:"required"`
	Title  string          `json:"title,omitempty"`
	Image  string          `json:"image,omitempty"`
	Price  decimal.Decimal `json:"price,omitempty"`
}

// WishlistToggleResponse estado resultante tras el toggle.
type WishlistToggleResponse struct {
	ProductID  string `json:"product_id"`
	InWishlist bool   `json:"in_wishlist"`
	RemoteID   int64  `json:"remote_id,omitempty"`
}

// WishlistResponse membresía completa de la cuenta.
type WishlistResponse struct {
	Items map[string]int64 `json:"items"` // product_id -> remote_id
}
