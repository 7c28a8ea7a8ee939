package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Product es la forma canónica de un producto, ya independiente de la fuente.
// Es inmutable una vez construido por el adaptador; se reconstruye completo
// cuando cambia el par (id, fuente).
type Product struct {
	ID          string
	Source      Source
	Title       string
	Images      []string
	WeightKg    decimal.Decimal
	MinOrderQty int
	SellerKey   string

	// Price y Stock son agregados de solo lectura para la ficha del producto
	// (local/chinese: mínimo precio positivo y suma de stocks de las variantes).
	// La compra siempre opera sobre variantes individuales.
	Price decimal.Decimal
	Stock int

	// DomesticShipping y Tax vienen del registro del producto cuando la fuente
	// los expone; cero en caso contrario.
	DomesticShipping decimal.Decimal
	Tax              decimal.Decimal
}

// WeightGrams devuelve el peso del producto en gramos, redondeado.
func (p Product) WeightGrams() int {
	g, _ := p.WeightKg.Mul(decimal.NewFromInt(1000)).Float64()
	return int(math.Round(g))
}

// Variant es una unidad comprable de un producto (combinación de atributos).
// Vive lo que vive el fetch del producto al que pertenece.
type Variant struct {
	// Key es el id de spec/SKU estable que asigna la fuente.
	Key        string
	FirstAttr  string
	SecondAttr string // vacío cuando la fuente solo tiene un nivel de atributo
	// Label es la etiqueta legible construida por el adaptador
	// (ej. "Color: Rojo / Talla: M").
	Label    string
	Price    decimal.Decimal // siempre en unidades mayores de la moneda
	Stock    int
	ImageURL string

	// ShippingWeightG: peso de envío por SKU en gramos cuando la fuente lo
	// expone (solo mayorista); 0 = usar el peso del producto.
	ShippingWeightG int
	// VolumeCm3: volumen del paquete round(l*w*h); 0 cuando no hay medidas.
	VolumeCm3 int
}

// ProductBundle agrupa el producto canónico con sus variantes, tal como lo
// entrega el adaptador de fuente.
type ProductBundle struct {
	Product  Product
	Variants []Variant
}

// VariantByKey busca una variante por su id de spec. Devuelve false si no existe.
func (b ProductBundle) VariantByKey(key string) (Variant, bool) {
	for _, v := range b.Variants {
		if v.Key == key {
			return v, true
		}
	}
	return Variant{}, false
}

// ProductCard es el resumen normalizado que comparten los listados de
// recomendados (related/like): título, precio e imagen.
type ProductCard struct {
	ID     string
	Source Source
	Title  string
	Price  decimal.Decimal
	Image  string
}
