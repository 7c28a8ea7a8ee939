package cart

import (
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// QuoteUseCase genera la cotización en PDF de la selección actual. Reusa la
// misma validación y construcción de líneas del composer, sin enviar nada.
type QuoteUseCase struct {
	composer  *Composer
	store     *SelectionStore
	generator QuoteGenerator
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(composer *Composer, store *SelectionStore, generator QuoteGenerator) *QuoteUseCase {
	return &QuoteUseCase{composer: composer, store: store, generator: generator}
}

// Generate compone las líneas de la sesión y produce el PDF.
func (uc *QuoteUseCase) Generate(userID string, source entity.Source, productID, country string) ([]byte, error) {
	sess := uc.store.Get(userID, source, productID)
	if sess == nil {
		return nil, domain.ErrNoSelection
	}
	lines, err := uc.composer.Compose(sess.Bundle, sess.Selection, country)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateQuotePDF(sess.Bundle.Product, lines)
}
