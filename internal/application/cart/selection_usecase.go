package cart

import (
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// SelectionUseCase operaciones de la selección en curso: incrementos y
// decrementos por variante, cambio de grupo activo y vista agregada.
type SelectionUseCase struct {
	store *SelectionStore
}

// NewSelectionUseCase construye el caso de uso.
func NewSelectionUseCase(store *SelectionStore) *SelectionUseCase {
	return &SelectionUseCase{store: store}
}

// Adjust aplica un delta sobre la variante indicada por su id de spec. La
// cantidad queda acotada a [0, stock de la variante]; los bordes son no-op.
func (uc *SelectionUseCase) Adjust(userID string, source entity.Source, productID, specID string, delta int) (*dto.SelectionResponse, error) {
	sess := uc.store.Get(userID, source, productID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}
	variant, ok := sess.Bundle.VariantByKey(specID)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	sess.Selection.Adjust(variant, delta)
	return toSelectionResponse(sess), nil
}

// SetGroup cambia el grupo de primer atributo activo de la sesión.
func (uc *SelectionUseCase) SetGroup(userID string, source entity.Source, productID, group string) (*dto.SelectionResponse, error) {
	sess := uc.store.Get(userID, source, productID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}
	sess.Selection.SetActiveGroup(group)
	return toSelectionResponse(sess), nil
}

// View devuelve el estado agregado de la selección.
func (uc *SelectionUseCase) View(userID string, source entity.Source, productID string) (*dto.SelectionResponse, error) {
	sess := uc.store.Get(userID, source, productID)
	if sess == nil {
		return nil, domain.ErrNotFound
	}
	return toSelectionResponse(sess), nil
}

func toSelectionResponse(sess *Session) *dto.SelectionResponse {
	out := &dto.SelectionResponse{
		ActiveGroup:   sess.Selection.ActiveGroup(),
		TotalQuantity: sess.Selection.TotalQuantity(),
		Subtotal:      sess.Selection.Subtotal(),
		Entries:       make(map[string]dto.EntryResponse),
	}
	for key, e := range sess.Selection.Entries() {
		out.Entries[key] = dto.EntryResponse{
			Quantity: e.Quantity,
			Price:    e.Price,
			SpecID:   e.SpecID,
			Image:    e.ImageURL,
		}
	}
	return out
}
