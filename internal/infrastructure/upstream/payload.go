package upstream

import (
	"encoding/json"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Cada fuente entrega el producto en un formato incompatible (nombres de
// campo, unidades de precio, anidación de atributos, campo de stock). Aquí se
// decodifica a un tipo etiquetado por fuente; el match exhaustivo vive en
// Normalize (normalize.go). Nada de sondear campos opcionales a ciegas.

// SourcePayload unión etiquetada del payload crudo por fuente.
type SourcePayload struct {
	Source    entity.Source
	Wholesale *wholesalePayload
	Market    *marketPayload
	Merchant  *merchantPayload // local y chinese comparten formato
}

// DecodePayload interpreta el JSON crudo según la fuente.
func DecodePayload(raw []byte, source entity.Source) (SourcePayload, error) {
	switch source {
	case entity.SourceWholesale:
		var p wholesalePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return SourcePayload{}, domain.ErrMalformedPayload
		}
		return SourcePayload{Source: source, Wholesale: &p}, nil
	case entity.SourceMarketplace:
		var p marketPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return SourcePayload{}, domain.ErrMalformedPayload
		}
		return SourcePayload{Source: source, Market: &p}, nil
	case entity.SourceLocal, entity.SourceChinese:
		var p merchantPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return SourcePayload{}, domain.ErrMalformedPayload
		}
		return SourcePayload{Source: source, Merchant: &p}, nil
	}
	return SourcePayload{}, domain.ErrUnknownSource
}

// ── Mayorista (fuente A) ──────────────────────────────────────────────────────
// SKUs planos; precio ya en unidades mayores; dos atributos por SKU; stock en
// amountOnSale; peso de envío opcional por SKU y medidas del paquete.

type wholesalePayload struct {
	ProductID   string          `json:"productId"`
	Subject     string          `json:"subject"`
	Images      []string        `json:"images"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	MinOrderQty int             `json:"minOrderQuantity"`
	SellerID    string          `json:"sellerOpenId"`
	Freight     decimal.Decimal `json:"domesticFreight"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	SKUs        []wholesaleSKU  `json:"skus"`
}

type wholesaleSKU struct {
	SpecID       string               `json:"specId"`
	Price        decimal.Decimal      `json:"price"`
	AmountOnSale int                  `json:"amountOnSale"`
	Attributes   []wholesaleAttribute `json:"attributes"`
	ImageURL     string               `json:"imageUrl"`
	// ShippingWeightG peso de envío por SKU en gramos; 0 = usar el del producto.
	ShippingWeightG int          `json:"shippingWeight"`
	Size            *packageSize `json:"size"`
}

type wholesaleAttribute struct {
	Name  string `json:"attributeName"`
	Value string `json:"attributeValue"`
}

type packageSize struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

// ── Marketplace (fuente B) ────────────────────────────────────────────────────
// Precio en centavos enteros (se divide entre 100); un solo nivel de atributo;
// stock en quantity.

type marketPayload struct {
	ItemID      string          `json:"itemId"`
	Title       string          `json:"title"`
	Images      []string        `json:"images"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	MinQuantity int             `json:"minQuantity"`
	VendorID    string          `json:"vendorId"`
	SKUs        []marketSKU     `json:"skus"`
}

type marketSKU struct {
	SKUID      string          `json:"skuId"`
	PriceCents int64           `json:"priceCents"`
	Quantity   int             `json:"quantity"`
	Attribute  marketAttribute `json:"attribute"`
	Image      string          `json:"image"`
}

type marketAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ── Comercios local / chinese ─────────────────────────────────────────────────
// Arreglo variants plano (no SKUs anidados); una sola etiqueta de variante;
// precio y stock directos; moq en el registro del producto.

type merchantPayload struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Images    []string          `json:"images"`
	WeightKg  decimal.Decimal   `json:"weight_kg"`
	MOQ       int               `json:"moq"`
	SellerKey string            `json:"seller_key"`
	Variants  []merchantVariant `json:"variants"`
}

type merchantVariant struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
	Image string          `json:"image"`
}

// ── Resumen related/like ──────────────────────────────────────────────────────
// Los listados de recomendados comparten la normalización por ítem de
// título/precio/imagen; el precio llega en la unidad propia de cada fuente.

type summaryItem struct {
	// Identidad: cada fuente usa su propio nombre de campo.
	ProductID string `json:"productId"`
	ItemID    string `json:"itemId"`
	ID        string `json:"id"`

	Subject string `json:"subject"`
	Title   string `json:"title"`
	Name    string `json:"name"`

	Price      decimal.Decimal `json:"price"`
	PriceCents int64           `json:"priceCents"`

	Images []string `json:"images"`
	Image  string   `json:"image"`
}
