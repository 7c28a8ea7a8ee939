package dto

import "github.com/shopspring/decimal"

// VariantResponse una variante canónica del producto.
type VariantResponse struct {
	Key        string          `json:"key"`
	FirstAttr  string          `json:"first_attr"`
	SecondAttr string          `json:"second_attr,omitempty"`
	Label      string          `json:"label"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Image      string          `json:"image,omitempty"`
}

// GroupResponse un grupo de primer atributo con su miniatura representativa.
type GroupResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Image string `json:"image,omitempty"`
}

// ProductResponse ficha normalizada del producto con grupos y variantes.
type ProductResponse struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Title  string          `json:"title"`
	Images []string        `json:"images"`
	Price  decimal.Decimal `json:"price"`
	// ConvertedPrice precio en la moneda pedida (query currency=); omitido si
	// no se pidió conversión.
	ConvertedPrice *decimal.Decimal `json:"converted_price,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Stock          int              `json:"stock"`
	MinOrderQty    int              `json:"min_order_qty"`
	WeightKg       decimal.Decimal  `json:"weight_kg"`
	Seller         string           `json:"seller"`
	Groups         []GroupResponse  `json:"groups"`
	// SingleGroup: solo hay un grupo; las variantes se exponen directamente sin
	// paso de desambiguación de segundo nivel.
	SingleGroup bool              `json:"single_group"`
	Variants    []VariantResponse `json:"variants"`
	InWishlist  bool              `json:"in_wishlist"`
}

// ProductCardResponse resumen de listados related/like.
type ProductCardResponse struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Title  string          `json:"title"`
	Price  decimal.Decimal `json:"price"`
	Image  string          `json:"image,omitempty"`
}
