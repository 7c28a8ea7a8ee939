package exchange

import (
	"fmt"
	"strings"

	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	"github.com/shopspring/decimal"
)

var _ appcatalog.PriceConverter = (*StaticConverter)(nil)

// StaticConverter conversión de precios con tasas fijas desde la moneda base
// del catálogo, cargadas de configuración. La fórmula de conversión es un
// colaborador inyectado: el núcleo no sabe de tasas.
type StaticConverter struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewStaticConverter parsea las tasas (moneda -> tasa como string). Tasas
// ilegibles o no positivas se descartan.
func NewStaticConverter(base string, pairs map[string]string) *StaticConverter {
	rates := make(map[string]decimal.Decimal, len(pairs))
	for cur, raw := range pairs {
		rate, err := decimal.NewFromString(raw)
		if err != nil || !rate.IsPositive() {
			continue
		}
		rates[strings.ToUpper(cur)] = rate
	}
	return &StaticConverter{base: strings.ToUpper(base), rates: rates}
}

// Convert convierte desde la moneda base a la moneda destino.
func (c *StaticConverter) Convert(price decimal.Decimal, to string) (decimal.Decimal, error) {
	to = strings.ToUpper(to)
	if to == c.base {
		return price, nil
	}
	rate, ok := c.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("exchange: sin tasa para %s", to)
	}
	return price.Mul(rate).Round(2), nil
}
