package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
)

var _ wishlist.Storage = (*KVStore)(nil)

// KVStore implementación en memoria del puerto get/set/remove. Se usa en
// desarrollo sin base de datos y en tests deterministas.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore construye el almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Get devuelve una copia del valor y si la clave existe.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set inserta o reemplaza el valor.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.data[key] = stored
	s.mu.Unlock()
	return nil
}

// Remove borra la clave; inexistente no es error.
func (s *KVStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
