package catalog

import "github.com/jhoicas/CompraGlobal-api/internal/domain/entity"

// Group es un grupo de variantes por primer atributo. La primera variante
// vista para el valor aporta la miniatura y la etiqueta representativas
// (gana la primera, sin intentar elegir una "mejor").
type Group struct {
	Value string // valor del primer atributo
	Label string
	Image string
}

// VariantIndex agrupa las variantes canónicas por la jerarquía de dos niveles
// de atributos y expone consultas de búsqueda y agregación.
type VariantIndex struct {
	groups  []Group
	byFirst map[string][]entity.Variant
}

// NewVariantIndex recorre las variantes una sola vez. Las variantes sin primer
// atributo quedan fuera del índice: no son seleccionables por atributo.
func NewVariantIndex(variants []entity.Variant) *VariantIndex {
	idx := &VariantIndex{byFirst: make(map[string][]entity.Variant)}
	for _, v := range variants {
		if v.FirstAttr == "" {
			continue
		}
		if _, seen := idx.byFirst[v.FirstAttr]; !seen {
			idx.groups = append(idx.groups, Group{
				Value: v.FirstAttr,
				Label: v.Label,
				Image: v.ImageURL,
			})
		}
		idx.byFirst[v.FirstAttr] = append(idx.byFirst[v.FirstAttr], v)
	}
	return idx
}

// Groups devuelve los grupos en orden de primera aparición.
func (idx *VariantIndex) Groups() []Group {
	return idx.groups
}

// VariantsFor devuelve las variantes de un grupo. Nil si el grupo no existe.
func (idx *VariantIndex) VariantsFor(firstAttr string) []entity.Variant {
	return idx.byFirst[firstAttr]
}

// SingleGroup indica que solo existe un grupo: las variantes se exponen
// directamente sin paso de desambiguación de segundo nivel.
func (idx *VariantIndex) SingleGroup() bool {
	return len(idx.groups) == 1
}

// DefaultGroup es el grupo activo inicial: el primero encontrado.
// Devuelve "" si no hay grupos.
func (idx *VariantIndex) DefaultGroup() string {
	if len(idx.groups) == 0 {
		return ""
	}
	return idx.groups[0].Value
}
