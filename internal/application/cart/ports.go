package cart

import (
	"context"

	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// Submitter define el puerto de salida hacia la pasarela de cuenta
// (POST actions/cart). Una llamada por línea; la implementación concreta
// convierte cualquier fallo de transporte en domain.ErrUpstreamUnavailable.
type Submitter interface {
	SubmitLine(ctx context.Context, token string, line entity.CartLine) error
}

// QuoteGenerator puerto de salida para la cotización en PDF de la selección.
type QuoteGenerator interface {
	GenerateQuotePDF(product entity.Product, lines []entity.CartLine) ([]byte, error)
}
