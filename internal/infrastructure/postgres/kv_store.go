package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
)

var _ wishlist.Storage = (*KVStore)(nil)

// KVStore almacenamiento clave-valor persistente sobre PostgreSQL (tabla
// kv_store: key text primary key, value jsonb, updated_at). Respalda la caché
// de membresía de wishlist y los defaults de cuenta detrás del puerto
// get/set/remove, en lugar de un store global del proceso.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore construye el adaptador.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Get devuelve el valor crudo y si la clave existe.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kv get: %w", err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor de la clave.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.pool.Exec(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}

// Remove borra la clave; borrar una clave inexistente no es error.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("kv remove: %w", err)
	}
	return nil
}
