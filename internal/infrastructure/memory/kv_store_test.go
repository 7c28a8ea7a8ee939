package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CompraGlobal-api/internal/infrastructure/memory"
)

func TestKVStore_GetDevuelveCopia(t *testing.T) {
	s := memory.NewKVStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	// Mutar lo devuelto no debe tocar lo almacenado.
	v[0] = 'X'
	again, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), again)
}

func TestKVStore_ClaveInexistente(t *testing.T) {
	s := memory.NewKVStore()
	_, ok, err := s.Get(context.Background(), "nada")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStore_RemoveIdempotente(t *testing.T) {
	s := memory.NewKVStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Remove(ctx, "k"))
	require.NoError(t, s.Remove(ctx, "k"), "borrar una clave inexistente no es error")

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
