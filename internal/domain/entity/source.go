package entity

import "github.com/jhoicas/CompraGlobal-api/internal/domain"

// Source identifica el catálogo upstream del que proviene un producto.
// Cada fuente entrega el payload en un formato distinto (ver infrastructure/upstream).
type Source string

const (
	// SourceWholesale mayorista internacional: SKUs planos, precio en unidades
	// mayores, dos niveles de atributo, stock en amountOnSale.
	SourceWholesale Source = "wholesale"
	// SourceMarketplace marketplace internacional: precio en centavos (se divide
	// entre 100 al normalizar), un solo nivel de atributo, stock en quantity.
	SourceMarketplace Source = "marketplace"
	// SourceLocal comercios locales: arreglo variants plano, una sola etiqueta
	// de variante, moq en el registro del producto.
	SourceLocal Source = "local"
	// SourceChinese comercios chinos: mismo formato que local.
	SourceChinese Source = "chinese"
)

// ParseSource valida el identificador de fuente recibido por la API.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceWholesale, SourceMarketplace, SourceLocal, SourceChinese:
		return Source(s), nil
	}
	return "", domain.ErrUnknownSource
}

// String implementa fmt.Stringer.
func (s Source) String() string { return string(s) }
