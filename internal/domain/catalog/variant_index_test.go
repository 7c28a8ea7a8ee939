package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/CompraGlobal-api/internal/domain/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

func variante(key, first, second, img string, stock int) entity.Variant {
	return entity.Variant{
		Key:        key,
		FirstAttr:  first,
		SecondAttr: second,
		Label:      "Color: " + first,
		Price:      decimal.NewFromInt(10),
		Stock:      stock,
		ImageURL:   img,
	}
}

// El índice particiona por primer atributo sin claves duplicadas y la imagen
// representativa es la de la primera variante encontrada para esa clave
// (determinista dado el orden de entrada).
func TestVariantIndex_AgrupaPorPrimerAtributo(t *testing.T) {
	vs := []entity.Variant{
		variante("s1", "Rojo", "S", "rojo-s.jpg", 5),
		variante("s2", "Rojo", "M", "rojo-m.jpg", 3),
		variante("s3", "Azul", "S", "azul-s.jpg", 7),
		variante("s4", "Azul", "M", "azul-m.jpg", 2),
	}
	idx := catalog.NewVariantIndex(vs)

	groups := idx.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Rojo", groups[0].Value)
	assert.Equal(t, "rojo-s.jpg", groups[0].Image, "gana la primera variante vista")
	assert.Equal(t, "Azul", groups[1].Value)
	assert.Equal(t, "azul-s.jpg", groups[1].Image)

	assert.Len(t, idx.VariantsFor("Rojo"), 2)
	assert.Len(t, idx.VariantsFor("Azul"), 2)
	assert.Nil(t, idx.VariantsFor("Verde"))
	assert.False(t, idx.SingleGroup())
	assert.Equal(t, "Rojo", idx.DefaultGroup())
}

// Variantes sin primer atributo quedan fuera del índice: no se pueden
// seleccionar a través de la UI de atributos.
func TestVariantIndex_ExcluyeVariantesSinPrimerAtributo(t *testing.T) {
	vs := []entity.Variant{
		variante("s1", "", "", "x.jpg", 5),
		variante("s2", "Rojo", "", "rojo.jpg", 3),
	}
	idx := catalog.NewVariantIndex(vs)

	require.Len(t, idx.Groups(), 1)
	assert.Equal(t, "Rojo", idx.Groups()[0].Value)
	assert.True(t, idx.SingleGroup())
}

func TestVariantIndex_SinVariantes(t *testing.T) {
	idx := catalog.NewVariantIndex(nil)
	assert.Empty(t, idx.Groups())
	assert.False(t, idx.SingleGroup())
	assert.Equal(t, "", idx.DefaultGroup())
}
