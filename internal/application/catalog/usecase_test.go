package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcart "github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeFetcher struct {
	bundle entity.ProductBundle
	err    error
}

func (f *fakeFetcher) FetchProduct(_ context.Context, _ string, _ entity.Source, _ string) (entity.ProductBundle, error) {
	return f.bundle, f.err
}

func (f *fakeFetcher) FetchRelated(_ context.Context, _ string, source entity.Source, _ string) ([]entity.ProductCard, error) {
	return []entity.ProductCard{{ID: "r1", Source: source, Title: "Relacionado"}}, nil
}

func (f *fakeFetcher) FetchLike(_ context.Context, _ string, _ entity.Source, _ string) ([]entity.ProductCard, error) {
	return nil, nil
}

type fakeConverter struct{ err error }

func (f *fakeConverter) Convert(price decimal.Decimal, _ string) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return price.Mul(decimal.NewFromInt(2)), nil
}

type fakeTranslator struct{ err error }

func (f *fakeTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "[es] " + text, nil
}

type fakeMembership struct {
	member bool
	err    error
}

func (f *fakeMembership) IsMember(_ context.Context, _, _, _ string) (bool, error) {
	return f.member, f.err
}

func merchantBundle() entity.ProductBundle {
	return entity.ProductBundle{
		Product: entity.Product{
			ID:     "L-5",
			Source: entity.SourceLocal,
			Title:  "Bolso artesanal",
			Price:  decimal.RequireFromString("39.90"),
			Stock:  13,
		},
		Variants: []entity.Variant{
			{Key: "v1", FirstAttr: "Café", Label: "Variante: Café", Price: decimal.RequireFromString("45.00"), Stock: 3},
			{Key: "v2", FirstAttr: "Miel", Label: "Variante: Miel", Price: decimal.RequireFromString("39.90"), Stock: 10},
		},
	}
}

func newUseCase(fetcher *fakeFetcher, converter *fakeConverter, translator *fakeTranslator, membership *fakeMembership) (*appcatalog.UseCase, *appcart.SelectionStore) {
	store := appcart.NewSelectionStore()
	uc := appcatalog.NewUseCase(fetcher, store, converter, translator, membership, logger.Nop())
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// GetProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_AbreLaSesionDeSeleccion(t *testing.T) {
	uc, store := newUseCase(&fakeFetcher{bundle: merchantBundle()}, &fakeConverter{}, &fakeTranslator{}, &fakeMembership{})

	out, err := uc.GetProduct(context.Background(), appcatalog.GetProductInput{
		Token: "tok", UserID: "user-1", Source: entity.SourceLocal, ID: "L-5",
	})
	require.NoError(t, err)
	assert.Equal(t, "L-5", out.ID)
	assert.Len(t, out.Groups, 2)
	require.Len(t, out.Variants, 2)

	sess := store.Get("user-1", entity.SourceLocal, "L-5")
	require.NotNil(t, sess, "consultar el producto abre la sesión de selección")
	assert.Equal(t, "Café", sess.Selection.ActiveGroup(), "el grupo activo inicial es el primero del índice")
}

func TestGetProduct_ConversionYTraduccionOpcionales(t *testing.T) {
	uc, _ := newUseCase(&fakeFetcher{bundle: merchantBundle()}, &fakeConverter{}, &fakeTranslator{}, &fakeMembership{member: true})

	out, err := uc.GetProduct(context.Background(), appcatalog.GetProductInput{
		Token: "tok", UserID: "user-1", Source: entity.SourceLocal, ID: "L-5",
		Currency: "COP", Lang: "es",
	})
	require.NoError(t, err)
	assert.Equal(t, "[es] Bolso artesanal", out.Title)
	require.NotNil(t, out.ConvertedPrice)
	assert.True(t, decimal.RequireFromString("79.80").Equal(*out.ConvertedPrice))
	assert.Equal(t, "COP", out.Currency)
	assert.True(t, out.InWishlist)
}

func TestGetProduct_ColaboradoresCaidos_DegradanSinTumbar(t *testing.T) {
	boom := errors.New("colaborador caído")
	uc, _ := newUseCase(
		&fakeFetcher{bundle: merchantBundle()},
		&fakeConverter{err: boom},
		&fakeTranslator{err: boom},
		&fakeMembership{err: boom},
	)

	out, err := uc.GetProduct(context.Background(), appcatalog.GetProductInput{
		Token: "tok", UserID: "user-1", Source: entity.SourceLocal, ID: "L-5",
		Currency: "COP", Lang: "es",
	})
	require.NoError(t, err, "los colaboradores opcionales degradan la ficha, nunca la tumban")
	assert.Equal(t, "Bolso artesanal", out.Title, "sin traducción queda el título original")
	assert.Nil(t, out.ConvertedPrice)
	assert.False(t, out.InWishlist, "sin membresía disponible se muestra el default")
}

func TestGetProduct_PayloadMalformado_Propaga(t *testing.T) {
	uc, _ := newUseCase(&fakeFetcher{err: domain.ErrMalformedPayload}, &fakeConverter{}, &fakeTranslator{}, &fakeMembership{})

	_, err := uc.GetProduct(context.Background(), appcatalog.GetProductInput{
		Token: "tok", UserID: "user-1", Source: entity.SourceLocal, ID: "L-5",
	})
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestRelated_NormalizaATarjetas(t *testing.T) {
	uc, _ := newUseCase(&fakeFetcher{bundle: merchantBundle()}, &fakeConverter{}, &fakeTranslator{}, &fakeMembership{})

	cards, err := uc.Related(context.Background(), "tok", entity.SourceLocal, "L-5")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "r1", cards[0].ID)
	assert.Equal(t, string(entity.SourceLocal), cards[0].Source)
}
