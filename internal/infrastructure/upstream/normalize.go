package upstream

import (
	"math"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

// Normalize convierte el payload etiquetado a la forma canónica
// Product + Variant[], con un caso exhaustivo por fuente. Invariante único de
// normalización de unidades: todo precio sale en unidades mayores de la moneda
// (los centavos del marketplace se dividen entre 100 aquí y en ningún otro sitio).
// Si falta el campo de identidad de la fuente devuelve domain.ErrMalformedPayload:
// el caller marca el producto como no disponible, nunca truena.
func Normalize(p SourcePayload) (entity.ProductBundle, error) {
	switch p.Source {
	case entity.SourceWholesale:
		return normalizeWholesale(p.Wholesale)
	case entity.SourceMarketplace:
		return normalizeMarket(p.Market)
	case entity.SourceLocal, entity.SourceChinese:
		return normalizeMerchant(p.Merchant, p.Source)
	}
	return entity.ProductBundle{}, domain.ErrUnknownSource
}

func normalizeWholesale(p *wholesalePayload) (entity.ProductBundle, error) {
	if p == nil || p.ProductID == "" {
		return entity.ProductBundle{}, domain.ErrMalformedPayload
	}
	product := entity.Product{
		ID:               p.ProductID,
		Source:           entity.SourceWholesale,
		Title:            p.Subject,
		Images:           p.Images,
		WeightKg:         p.WeightKg,
		MinOrderQty:      p.MinOrderQty,
		SellerKey:        p.SellerID,
		DomesticShipping: p.Freight,
		Tax:              p.TaxRate,
	}
	variants := make([]entity.Variant, 0, len(p.SKUs))
	for _, sku := range p.SKUs {
		var first, second, label string
		if len(sku.Attributes) > 0 {
			first = sku.Attributes[0].Value
			label = sku.Attributes[0].Name + ": " + sku.Attributes[0].Value
		}
		if len(sku.Attributes) > 1 {
			second = sku.Attributes[1].Value
			label += " / " + sku.Attributes[1].Name + ": " + sku.Attributes[1].Value
		}
		variants = append(variants, entity.Variant{
			Key:             sku.SpecID,
			FirstAttr:       first,
			SecondAttr:      second,
			Label:           label,
			Price:           sku.Price, // ya en unidades mayores
			Stock:           sku.AmountOnSale,
			ImageURL:        sku.ImageURL,
			ShippingWeightG: sku.ShippingWeightG,
			VolumeCm3:       volume(sku.Size),
		})
	}
	return entity.ProductBundle{Product: product, Variants: variants}, nil
}

func normalizeMarket(p *marketPayload) (entity.ProductBundle, error) {
	if p == nil || p.ItemID == "" {
		return entity.ProductBundle{}, domain.ErrMalformedPayload
	}
	product := entity.Product{
		ID:          p.ItemID,
		Source:      entity.SourceMarketplace,
		Title:       p.Title,
		Images:      p.Images,
		WeightKg:    p.WeightKg,
		MinOrderQty: p.MinQuantity,
		SellerKey:   p.VendorID,
	}
	variants := make([]entity.Variant, 0, len(p.SKUs))
	for _, sku := range p.SKUs {
		variants = append(variants, entity.Variant{
			Key:       sku.SKUID,
			FirstAttr: sku.Attribute.Value,
			// Solo existe un nivel de atributo en esta fuente.
			SecondAttr: "",
			Label:      sku.Attribute.Name + ": " + sku.Attribute.Value,
			Price:      decimal.NewFromInt(sku.PriceCents).Div(cien),
			Stock:      sku.Quantity,
			ImageURL:   sku.Image,
		})
	}
	return entity.ProductBundle{Product: product, Variants: variants}, nil
}

// normalizeMerchant: local y chinese. El precio mostrado del producto es el
// mínimo precio positivo entre variantes y el stock mostrado la suma de todas;
// es una conveniencia de display de una sola vía: la compra sigue operando
// sobre variantes individuales.
func normalizeMerchant(p *merchantPayload, source entity.Source) (entity.ProductBundle, error) {
	if p == nil || p.ID == "" {
		return entity.ProductBundle{}, domain.ErrMalformedPayload
	}
	product := entity.Product{
		ID:          p.ID,
		Source:      source,
		Title:       p.Name,
		Images:      p.Images,
		WeightKg:    p.WeightKg,
		MinOrderQty: p.MOQ,
		SellerKey:   p.SellerKey,
	}
	variants := make([]entity.Variant, 0, len(p.Variants))
	minPrice := decimal.Zero
	totalStock := 0
	for _, v := range p.Variants {
		variants = append(variants, entity.Variant{
			Key:       v.ID,
			FirstAttr: v.Label, // una sola etiqueta de variante actúa de primer atributo
			Label:     "Variante: " + v.Label,
			Price:     v.Price,
			Stock:     v.Stock,
			ImageURL:  v.Image,
		})
		totalStock += v.Stock
		if v.Price.IsPositive() && (minPrice.IsZero() || v.Price.LessThan(minPrice)) {
			minPrice = v.Price
		}
	}
	product.Price = minPrice
	product.Stock = totalStock
	return entity.ProductBundle{Product: product, Variants: variants}, nil
}

// volume calcula round(largo*ancho*alto); 0 cuando no hay medidas.
func volume(s *packageSize) int {
	if s == nil {
		return 0
	}
	v, _ := s.Length.Mul(s.Width).Mul(s.Height).Float64()
	return int(math.Round(v))
}

// normalizeSummary resume un ítem de related/like según la fuente, aplicando
// la misma normalización de unidades de precio que el producto completo.
func normalizeSummary(item summaryItem, source entity.Source) entity.ProductCard {
	card := entity.ProductCard{Source: source}
	switch source {
	case entity.SourceWholesale:
		card.ID = item.ProductID
		card.Title = item.Subject
		card.Price = item.Price
	case entity.SourceMarketplace:
		card.ID = item.ItemID
		card.Title = item.Title
		card.Price = decimal.NewFromInt(item.PriceCents).Div(cien)
	default:
		card.ID = item.ID
		card.Title = item.Name
		card.Price = item.Price
	}
	if item.Image != "" {
		card.Image = item.Image
	} else if len(item.Images) > 0 {
		card.Image = item.Images[0]
	}
	return card
}
