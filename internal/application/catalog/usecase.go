package catalog

import (
	"context"

	"github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	domaincatalog "github.com/jhoicas/CompraGlobal-api/internal/domain/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
	"github.com/jhoicas/CompraGlobal-api/pkg/logger"
)

// UseCase casos de uso de catálogo: ficha de producto normalizada con grupos y
// variantes, y listados de recomendados. Al consultar un producto se abre la
// sesión de selección del usuario (lo que descarta cualquier selección previa
// sobre ese producto).
type UseCase struct {
	fetcher    Fetcher
	store      *cart.SelectionStore
	converter  PriceConverter
	translator Translator
	membership MembershipChecker
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(fetcher Fetcher, store *cart.SelectionStore, converter PriceConverter, translator Translator, membership MembershipChecker, log *logger.Logger) *UseCase {
	return &UseCase{
		fetcher:    fetcher,
		store:      store,
		converter:  converter,
		translator: translator,
		membership: membership,
		log:        log,
	}
}

// GetProductInput parámetros de la ficha de producto.
type GetProductInput struct {
	Token    string
	UserID   string
	Source   entity.Source
	ID       string
	Currency string // moneda destino para conversión; vacío = sin conversión
	Lang     string // idioma destino para traducir el título; vacío = sin traducir
}

// GetProduct trae el payload de la fuente, lo normaliza y abre la sesión de
// selección. Las fallas de colaboradores opcionales (conversión, traducción,
// membresía) degradan la respuesta, nunca la tumban.
func (uc *UseCase) GetProduct(ctx context.Context, in GetProductInput) (*dto.ProductResponse, error) {
	bundle, err := uc.fetcher.FetchProduct(ctx, in.Token, in.Source, in.ID)
	if err != nil {
		return nil, err
	}

	uc.store.Begin(in.UserID, bundle)
	idx := domaincatalog.NewVariantIndex(bundle.Variants)

	p := bundle.Product
	out := &dto.ProductResponse{
		ID:          p.ID,
		Source:      string(p.Source),
		Title:       p.Title,
		Images:      p.Images,
		Price:       p.Price,
		Stock:       p.Stock,
		MinOrderQty: p.MinOrderQty,
		WeightKg:    p.WeightKg,
		Seller:      p.SellerKey,
		SingleGroup: idx.SingleGroup(),
	}

	if in.Lang != "" {
		title, err := uc.translator.Translate(ctx, p.Title, in.Lang)
		if err != nil {
			uc.log.Warn().Err(err).Str("pid", p.ID).Msg("traducción de título no disponible")
		} else {
			out.Title = title
		}
	}

	if in.Currency != "" && !p.Price.IsZero() {
		converted, err := uc.converter.Convert(p.Price, in.Currency)
		if err != nil {
			uc.log.Warn().Err(err).Str("currency", in.Currency).Msg("conversión de precio no disponible")
		} else {
			out.ConvertedPrice = &converted
			out.Currency = in.Currency
		}
	}

	for _, g := range idx.Groups() {
		out.Groups = append(out.Groups, dto.GroupResponse{Value: g.Value, Label: g.Label, Image: g.Image})
	}
	for _, v := range bundle.Variants {
		out.Variants = append(out.Variants, dto.VariantResponse{
			Key:        v.Key,
			FirstAttr:  v.FirstAttr,
			SecondAttr: v.SecondAttr,
			Label:      v.Label,
			Price:      v.Price,
			Stock:      v.Stock,
			Image:      v.ImageURL,
		})
	}

	if in.UserID != "" && in.Token != "" {
		member, err := uc.membership.IsMember(ctx, in.Token, in.UserID, p.ID)
		if err != nil {
			// Se cae al último estado local conocido: ficha sin marca de wishlist.
			uc.log.Warn().Err(err).Str("pid", p.ID).Msg("membresía de wishlist no disponible")
		} else {
			out.InWishlist = member
		}
	}

	return out, nil
}

// Related lista los recomendados relacionados, ya en resumen normalizado.
func (uc *UseCase) Related(ctx context.Context, token string, source entity.Source, id string) ([]dto.ProductCardResponse, error) {
	cards, err := uc.fetcher.FetchRelated(ctx, token, source, id)
	if err != nil {
		return nil, err
	}
	return toCards(cards), nil
}

// Like lista los recomendados "también te puede gustar".
func (uc *UseCase) Like(ctx context.Context, token string, source entity.Source, id string) ([]dto.ProductCardResponse, error) {
	cards, err := uc.fetcher.FetchLike(ctx, token, source, id)
	if err != nil {
		return nil, err
	}
	return toCards(cards), nil
}

func toCards(cards []entity.ProductCard) []dto.ProductCardResponse {
	out := make([]dto.ProductCardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, dto.ProductCardResponse{
			ID:     c.ID,
			Source: string(c.Source),
			Title:  c.Title,
			Price:  c.Price,
			Image:  c.Image,
		})
	}
	return out
}
