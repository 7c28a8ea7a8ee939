package catalog

import (
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CompositeKey construye la clave de selección de una variante:
// firstAttr + "_" + secondAttr (secondAttr puede ser vacío). Dos variantes con
// el mismo par (firstAttr, secondAttr) son la misma unidad comprable y
// colapsan a una sola clave.
func CompositeKey(firstAttr, secondAttr string) string {
	return firstAttr + "_" + secondAttr
}

// QuantityEntry es la cantidad deseada para una clave compuesta. Solo la crean
// y actualizan acciones explícitas de incremento/decremento del usuario.
type QuantityEntry struct {
	Quantity int
	Price    decimal.Decimal
	SpecID   string
	ImageURL string
}

// SelectionState rastrea el grupo de primer atributo activo y, por cada clave
// compuesta resuelta, la cantidad deseada. Se limpia al enviar el carrito o al
// cambiar de producto.
type SelectionState struct {
	activeGroup string
	entries     map[string]*QuantityEntry
}

// NewSelectionState construye una selección vacía con el grupo activo inicial.
func NewSelectionState(activeGroup string) *SelectionState {
	return &SelectionState{
		activeGroup: activeGroup,
		entries:     make(map[string]*QuantityEntry),
	}
}

// SetActiveGroup cambia el grupo de primer atributo activo.
func (s *SelectionState) SetActiveGroup(firstAttr string) {
	s.activeGroup = firstAttr
}

// ActiveGroup devuelve el grupo activo.
func (s *SelectionState) ActiveGroup() string {
	return s.activeGroup
}

// Adjust aplica un delta a la cantidad de la variante, acotada a [0, stock].
// Decrementar en 0 o incrementar en el tope de stock es un no-op, no un error.
func (s *SelectionState) Adjust(v entity.Variant, delta int) {
	key := CompositeKey(v.FirstAttr, v.SecondAttr)
	entry, ok := s.entries[key]
	if !ok {
		entry = &QuantityEntry{
			Price:    v.Price,
			SpecID:   v.Key,
			ImageURL: v.ImageURL,
		}
		s.entries[key] = entry
	}
	q := entry.Quantity + delta
	if q < 0 {
		q = 0
	}
	if q > v.Stock {
		q = v.Stock
	}
	entry.Quantity = q
}

// Quantity devuelve la cantidad actual para una clave compuesta.
func (s *SelectionState) Quantity(key string) int {
	if e, ok := s.entries[key]; ok {
		return e.Quantity
	}
	return 0
}

// TotalQuantity suma las cantidades de todas las claves, sin importar cuál es
// el grupo activo: el usuario puede seleccionar en varios grupos antes de enviar.
func (s *SelectionState) TotalQuantity() int {
	total := 0
	for _, e := range s.entries {
		total += e.Quantity
	}
	return total
}

// Subtotal suma cantidad * precio de todas las entradas.
func (s *SelectionState) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range s.entries {
		if e.Quantity == 0 {
			continue
		}
		sum = sum.Add(e.Price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return sum
}

// Entries devuelve una copia de las entradas con cantidad > 0, por clave.
func (s *SelectionState) Entries() map[string]QuantityEntry {
	out := make(map[string]QuantityEntry, len(s.entries))
	for k, e := range s.entries {
		if e.Quantity > 0 {
			out[k] = *e
		}
	}
	return out
}

// Clear vacía todas las cantidades seleccionadas.
func (s *SelectionState) Clear() {
	s.entries = make(map[string]*QuantityEntry)
}
