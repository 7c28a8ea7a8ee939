package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appcatalog "github.com/jhoicas/CompraGlobal-api/internal/application/catalog"
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// ProductHandler maneja la ficha de producto normalizada y los recomendados.
type ProductHandler struct {
	uc *appcatalog.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *appcatalog.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// parseSource valida el parámetro de ruta {source}; "" en error ya respondido.
func parseSource(c *fiber.Ctx) (entity.Source, bool) {
	source, err := entity.ParseSource(c.Params("source"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SOURCE", Message: "fuente de catálogo desconocida"})
		return "", false
	}
	return source, true
}

// GetProduct godoc
// @Summary      Ficha de producto normalizada (grupos + variantes)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        source    path   string  true   "wholesale | marketplace | local | chinese"
// @Param        id        path   string  true   "ID del producto en la fuente"
// @Param        currency  query  string  false  "Moneda destino para conversión"
// @Param        lang      query  string  false  "Idioma destino para el título"
// @Success      200  {object}  dto.ProductResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/products/{source}/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetProduct(c.UserContext(), appcatalog.GetProductInput{
		Token:    GetToken(c),
		UserID:   GetUserID(c),
		Source:   source,
		ID:       c.Params("id"),
		Currency: c.Query("currency"),
		Lang:     c.Query("lang"),
	})
	if err != nil {
		return respondUpstreamError(c, err)
	}
	return c.JSON(out)
}

// Related godoc
// @Summary      Productos relacionados
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        source  path  string  true  "Fuente"
// @Param        id      path  string  true  "ID del producto"
// @Success      200  {array}  dto.ProductCardResponse
// @Router       /api/products/{source}/{id}/related [get]
func (h *ProductHandler) Related(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Related(c.UserContext(), GetToken(c), source, c.Params("id"))
	if err != nil {
		return respondUpstreamError(c, err)
	}
	return c.JSON(out)
}

// Like godoc
// @Summary      Productos que también pueden gustar
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        source  path  string  true  "Fuente"
// @Param        id      path  string  true  "ID del producto"
// @Success      200  {array}  dto.ProductCardResponse
// @Router       /api/products/{source}/{id}/like [get]
func (h *ProductHandler) Like(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Like(c.UserContext(), GetToken(c), source, c.Params("id"))
	if err != nil {
		return respondUpstreamError(c, err)
	}
	return c.JSON(out)
}

// respondUpstreamError mapea la taxonomía de errores del núcleo a HTTP:
// payload malformado -> servicio no disponible (el producto nunca truena la
// app), fallo de red -> 502.
func respondUpstreamError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMalformedPayload):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SERVICE_UNAVAILABLE", Message: "servicio no disponible para este producto"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_DOWN", Message: "el proveedor no responde"})
	case errors.Is(err, domain.ErrLoginRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "se requiere iniciar sesión"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
