package dto

import "github.com/shopspring/decimal"

// AdjustSelectionRequest incremento/decremento de cantidad sobre una variante.
type AdjustSelectionRequest struct {
	SpecID string `json:"spec_id" validate:"required"`
	Delta  int    `json:"delta" validate:"required"`
}

// SetGroupRequest cambia el grupo de primer atributo activo.
type SetGroupRequest struct {
	Group string `json:"group" validate:"required"`
}

// SelectionResponse estado agregado de la selección actual.
type SelectionResponse struct {
	ActiveGroup   string                   `json:"active_group"`
	TotalQuantity int                      `json:"total_quantity"`
	Subtotal      decimal.Decimal          `json:"subtotal"`
	Entries       map[string]EntryResponse `json:"entries"`
}

// EntryResponse una entrada de cantidad por clave compuesta.
type EntryResponse struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	SpecID   string          `json:"spec_id"`
	Image    string          `json:"image,omitempty"`
}

// CartSubmitResponse resultado agregado del lote de envíos al carrito.
type CartSubmitResponse struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}
