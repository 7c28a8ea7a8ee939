package catalog

import (
	"context"

	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Fetcher define el puerto de entrada de catálogo: trae el payload crudo de la
// fuente y lo entrega ya normalizado a la forma canónica. Una implementación
// por transporte (HTTP en infrastructure/upstream); para tests se inyecta un fake.
type Fetcher interface {
	// FetchProduct GET product-details/{source}/{id} normalizado.
	// Identidad ausente en el payload -> domain.ErrMalformedPayload.
	FetchProduct(ctx context.Context, token string, source entity.Source, id string) (entity.ProductBundle, error)
	// FetchRelated GET product-related/{source}/{id} (resumen por ítem).
	FetchRelated(ctx context.Context, token string, source entity.Source, id string) ([]entity.ProductCard, error)
	// FetchLike GET product-like/{source}/{id} (resumen por ítem).
	FetchLike(ctx context.Context, token string, source entity.Source, id string) ([]entity.ProductCard, error)
}

// PriceConverter colaborador inyectado de conversión de moneda desde la moneda
// base del catálogo. La fórmula de conversión no es parte del núcleo.
type PriceConverter interface {
	Convert(price decimal.Decimal, to string) (decimal.Decimal, error)
}

// Translator colaborador inyectado de traducción de textos.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}

// MembershipChecker consulta de membresía en wishlist para la ficha del
// producto (implementada por el reconciliador de wishlist).
type MembershipChecker interface {
	IsMember(ctx context.Context, token, userID, productID string) (bool, error)
}
