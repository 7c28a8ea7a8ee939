package wishlist

import (
	"context"

	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Storage puerto de almacenamiento clave-valor inyectado (get/set/remove).
// Sustituye al store persistente global del proceso: permite tests
// deterministas sin almacenamiento real.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// AddItem datos mínimos para dar de alta un producto en la wishlist remota
// (POST actions/wishlist).
type AddItem struct {
	Source    entity.Source
	ProductID string
	Image     string
	Title     string
	Price     decimal.Decimal
}

// AddResult resultado del alta. AlreadyExists indica que el servidor respondió
// "el ítem ya existe": el servidor es autoritativo y el cliente adopta el id
// devuelto; no es un error.
type AddResult struct {
	RemoteID      int64
	AlreadyExists bool
}

// Remote puerto hacia la wishlist remota de la cuenta (fuente de verdad).
type Remote interface {
	// List GET account/wishlist?offset&limit — página de membresía.
	List(ctx context.Context, token string, offset, limit int) ([]entity.WishlistEntry, error)
	// Add POST actions/wishlist.
	Add(ctx context.Context, token string, item AddItem) (AddResult, error)
	// Remove DELETE actions/wishlist por id remoto.
	Remove(ctx context.Context, token string, remoteID int64) error
}
