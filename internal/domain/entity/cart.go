package entity

import "github.com/shopspring/decimal"

// CartLine es la petición de una línea de carrito contra la pasarela de cuenta
// (POST actions/cart). Una línea por variante con cantidad > 0.
type CartLine struct {
	Source      Source          `json:"src"`
	ProductID   string          `json:"pid"`
	Title       string          `json:"title"`
	Image       string          `json:"image"`
	Price       string          `json:"price"` // decimal serializado como string
	Quantity    int             `json:"quantity"`
	Variant     string          `json:"variant"` // etiqueta legible de la variante
	SpecID      string          `json:"vinfo"`   // id de spec/SKU de la fuente
	WeightG     int             `json:"weight"`
	VolumeCm3   int             `json:"volume"`
	MinQuantity int             `json:"min_quantity"`
	DomShipping decimal.Decimal `json:"dom_shipping"`
	Tax         decimal.Decimal `json:"tax"`
	Country     string          `json:"country"`
	Seller      string          `json:"seller"`
}

// BatchResult agrega el resultado de un lote de envíos independientes.
// No hay rollback parcial: ambas cuentas se exponen por separado.
type BatchResult struct {
	Successful int
	Failed     int
}
