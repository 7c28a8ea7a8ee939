package cart

import (
	"sync"

	"github.com/jhoicas/CompraGlobal-api/internal/domain/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// Session es la selección en curso de un usuario sobre un producto: el bundle
// normalizado más el estado de cantidades. Se reemplaza completa cuando cambia
// el par (id, fuente) y se limpia al enviar el carrito.
type Session struct {
	Bundle    entity.ProductBundle
	Selection *catalog.SelectionState
}

// SelectionStore guarda las sesiones de selección por (usuario, fuente,
// producto) en memoria. Una sesión por producto visto; comenzar de nuevo sobre
// el mismo producto descarta la selección anterior.
type SelectionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSelectionStore construye el almacén de sesiones.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{sessions: make(map[string]*Session)}
}

func sessionKey(userID string, source entity.Source, productID string) string {
	return userID + "|" + string(source) + "|" + productID
}

// Begin crea (o reemplaza) la sesión del usuario para el producto, con el
// grupo activo inicial que indique el índice de variantes.
func (s *SelectionStore) Begin(userID string, bundle entity.ProductBundle) *Session {
	idx := catalog.NewVariantIndex(bundle.Variants)
	sess := &Session{
		Bundle:    bundle,
		Selection: catalog.NewSelectionState(idx.DefaultGroup()),
	}
	s.mu.Lock()
	s.sessions[sessionKey(userID, bundle.Product.Source, bundle.Product.ID)] = sess
	s.mu.Unlock()
	return sess
}

// Get devuelve la sesión del usuario para el producto, o nil si no existe
// (el producto no se ha consultado todavía en esta sesión).
func (s *SelectionStore) Get(userID string, source entity.Source, productID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[sessionKey(userID, source, productID)]
}

// Clear descarta la sesión (tras enviar el carrito).
func (s *SelectionStore) Clear(userID string, source entity.Source, productID string) {
	s.mu.Lock()
	delete(s.sessions, sessionKey(userID, source, productID))
	s.mu.Unlock()
}
