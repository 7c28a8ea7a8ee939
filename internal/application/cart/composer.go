package cart

import (
	"context"
	"sync"

	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// Composer valida la selección agregada contra el mínimo de compra y el stock
// por variante, construye una petición de carrito por variante y las envía
// como lote independiente (sin rollback parcial).
type Composer struct {
	submitter Submitter
	store     *SelectionStore
	log       *logger.Logger
}

// NewComposer construye el caso de uso.
func NewComposer(submitter Submitter, store *SelectionStore, log *logger.Logger) *Composer {
	return &Composer{submitter: submitter, store: store, log: log}
}

// Compose valida la selección y construye las líneas de carrito. El orden de
// validación corta en el primer fallo:
//  1. alguna clave con cantidad > 0 (si no, domain.ErrNoSelection)
//  2. cantidad total >= mínimo de compra (si no, BelowMinimumOrderError)
func (c *Composer) Compose(bundle entity.ProductBundle, sel *catalog.SelectionState, country string) ([]entity.CartLine, error) {
	entries := sel.Entries()
	if len(entries) == 0 {
		return nil, domain.ErrNoSelection
	}
	if total := sel.TotalQuantity(); total < bundle.Product.MinOrderQty {
		return nil, &domain.BelowMinimumOrderError{Required: bundle.Product.MinOrderQty}
	}

	p := bundle.Product
	lines := make([]entity.CartLine, 0, len(entries))
	for _, e := range entries {
		variant, ok := bundle.VariantByKey(e.SpecID)
		if !ok {
			// La entrada apunta a una spec que ya no existe en el fetch actual.
			return nil, domain.ErrInvalidInput
		}
		weight := p.WeightGrams()
		if variant.ShippingWeightG > 0 {
			// El mayorista expone peso de envío por SKU; tiene precedencia.
			weight = variant.ShippingWeightG
		}
		image := e.ImageURL
		if image == "" && len(p.Images) > 0 {
			image = p.Images[0]
		}
		lines = append(lines, entity.CartLine{
			Source:      p.Source,
			ProductID:   p.ID,
			Title:       p.Title,
			Image:       image,
			Price:       e.Price.String(),
			Quantity:    e.Quantity,
			Variant:     variant.Label,
			SpecID:      e.SpecID,
			WeightG:     weight,
			VolumeCm3:   variant.VolumeCm3,
			MinQuantity: p.MinOrderQty,
			DomShipping: p.DomesticShipping,
			Tax:         p.Tax,
			Country:     country,
			Seller:      p.SellerKey,
		})
	}
	return lines, nil
}

// Submit envía las líneas como lote concurrente sin orden garantizado entre
// resultados individuales; el agregado éxito/fallo es el único resultado
// combinado observable. Un lote sin ningún éxito se reporta como un solo fallo
// combinado (domain.ErrBatchFailed), nunca línea por línea. No se reintenta.
func (c *Composer) Submit(ctx context.Context, token string, lines []entity.CartLine) (entity.BatchResult, error) {
	if token == "" {
		return entity.BatchResult{}, domain.ErrLoginRequired
	}

	var (
		mu     sync.Mutex
		result entity.BatchResult
		wg     sync.WaitGroup
	)
	for _, line := range lines {
		wg.Add(1)
		go func(l entity.CartLine) {
			defer wg.Done()
			err := c.submitter.SubmitLine(ctx, token, l)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				c.log.Warn().Err(err).
					Str("source", string(l.Source)).
					Str("pid", l.ProductID).
					Str("spec", l.SpecID).
					Msg("línea de carrito rechazada")
				return
			}
			result.Successful++
		}(line)
	}
	wg.Wait()

	if result.Successful == 0 && result.Failed > 0 {
		return result, domain.ErrBatchFailed
	}
	return result, nil
}

// SubmitSelection orquesta el flujo completo para la sesión del usuario:
// componer, enviar y limpiar la selección cuando al menos una línea entró.
func (c *Composer) SubmitSelection(ctx context.Context, token, userID string, source entity.Source, productID, country string) (entity.BatchResult, error) {
	if token == "" {
		return entity.BatchResult{}, domain.ErrLoginRequired
	}
	sess := c.store.Get(userID, source, productID)
	if sess == nil {
		return entity.BatchResult{}, domain.ErrNoSelection
	}
	lines, err := c.Compose(sess.Bundle, sess.Selection, country)
	if err != nil {
		return entity.BatchResult{}, err
	}
	result, err := c.Submit(ctx, token, lines)
	if result.Successful > 0 {
		sess.Selection.Clear()
	}
	return result, err
}
