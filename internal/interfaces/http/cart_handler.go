package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	appcart "github.com/jhoicas/CompraGlobal-api/internal/application/cart"
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
)

// CartHandler maneja la selección de variantes y el envío al carrito.
type CartHandler struct {
	selection *appcart.SelectionUseCase
	composer  *appcart.Composer
	quote     *appcart.QuoteUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(selection *appcart.SelectionUseCase, composer *appcart.Composer, quote *appcart.QuoteUseCase) *CartHandler {
	return &CartHandler{selection: selection, composer: composer, quote: quote}
}

// Adjust godoc
// @Summary      Incrementa o decrementa la cantidad de una variante
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        source  path  string                      true  "Fuente"
// @Param        id      path  string                      true  "ID del producto"
// @Param        body    body  dto.AdjustSelectionRequest  true  "Variante y delta"
// @Success      200  {object}  dto.SelectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/selection/{source}/{id}/adjust [post]
func (h *CartHandler) Adjust(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	var req dto.AdjustSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if req.SpecID == "" || req.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "spec_id y delta son requeridos"})
	}
	out, err := h.selection.Adjust(GetUserID(c), source, c.Params("id"), req.SpecID, req.Delta)
	if err != nil {
		return respondSelectionError(c, err)
	}
	return c.JSON(out)
}

// SetGroup godoc
// @Summary      Cambia el grupo de primer atributo activo
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        source  path  string               true  "Fuente"
// @Param        id      path  string               true  "ID del producto"
// @Param        body    body  dto.SetGroupRequest  true  "Grupo destino"
// @Success      200  {object}  dto.SelectionResponse
// @Router       /api/selection/{source}/{id}/group [post]
func (h *CartHandler) SetGroup(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	var req dto.SetGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.selection.SetGroup(GetUserID(c), source, c.Params("id"), req.Group)
	if err != nil {
		return respondSelectionError(c, err)
	}
	return c.JSON(out)
}

// View godoc
// @Summary      Estado agregado de la selección actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        source  path  string  true  "Fuente"
// @Param        id      path  string  true  "ID del producto"
// @Success      200  {object}  dto.SelectionResponse
// @Router       /api/selection/{source}/{id} [get]
func (h *CartHandler) View(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	out, err := h.selection.View(GetUserID(c), source, c.Params("id"))
	if err != nil {
		return respondSelectionError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Envía la selección al carrito como lote
// @Description  Cada variante seleccionada viaja como petición independiente;
// @Description  el resultado reporta éxitos y fallos agregados.
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        source  path  string  true  "Fuente"
// @Param        id      path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartSubmitResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cart/{source}/{id} [post]
func (h *CartHandler) Submit(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	result, err := h.composer.SubmitSelection(c.UserContext(), GetToken(c), GetUserID(c), source, c.Params("id"), GetCountry(c))
	if err != nil {
		var minErr *domain.BelowMinimumOrderError
		switch {
		case errors.Is(err, domain.ErrNoSelection):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_SELECTION", Message: "no hay variantes seleccionadas"})
		case errors.As(err, &minErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "BELOW_MINIMUM",
				Message: fmt.Sprintf("la cantidad mínima de compra es %d", minErr.Required),
			})
		case errors.Is(err, domain.ErrBatchFailed):
			// Ningún envío entró: un solo fallo combinado, no línea por línea.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BATCH_FAILED", Message: "ningún artículo pudo agregarse al carrito"})
		case errors.Is(err, domain.ErrLoginRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "se requiere iniciar sesión"})
		default:
			return respondSelectionError(c, err)
		}
	}
	return c.JSON(dto.CartSubmitResponse{Successful: result.Successful, Failed: result.Failed})
}

// Quote godoc
// @Summary      Cotización en PDF de la selección actual
// @Tags         cart
// @Security     Bearer
// @Produce      application/pdf
// @Param        source  path  string  true  "Fuente"
// @Param        id      path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Router       /api/cart/{source}/{id}/quote [get]
func (h *CartHandler) Quote(c *fiber.Ctx) error {
	source, ok := parseSource(c)
	if !ok {
		return nil
	}
	pdf, err := h.quote.Generate(GetUserID(c), source, c.Params("id"), GetCountry(c))
	if err != nil {
		var minErr *domain.BelowMinimumOrderError
		switch {
		case errors.Is(err, domain.ErrNoSelection):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_SELECTION", Message: "no hay variantes seleccionadas"})
		case errors.As(err, &minErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "BELOW_MINIMUM",
				Message: fmt.Sprintf("la cantidad mínima de compra es %d", minErr.Required),
			})
		default:
			return respondSelectionError(c, err)
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cotizacion.pdf"`)
	return c.Send(pdf)
}

func respondSelectionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay una sesión de selección para este producto"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "variante desconocida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
