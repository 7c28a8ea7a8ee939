package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	appwishlist "github.com/jhoicas/CompraGlobal-api/internal/application/wishlist"
	"github.com/jhoicas/CompraGlobal-api/internal/domain"
	"github.com/jhoicas/CompraGlobal-api/internal/domain/entity"
)

// WishlistHandler maneja la membresía de wishlist de la cuenta.
type WishlistHandler struct {
	reconciler *appwishlist.Reconciler
}

// NewWishlistHandler construye el handler.
func NewWishlistHandler(reconciler *appwishlist.Reconciler) *WishlistHandler {
	return &WishlistHandler{reconciler: reconciler}
}

// List godoc
// @Summary      Membresía completa de la wishlist
// @Description  Sirve del snapshot local mientras esté fresco; ?refresh=1
// @Description  fuerza una resincronización con el servidor.
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Param        refresh  query  string  false  "1 para forzar resincronización"
// @Success      200  {object}  dto.WishlistResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	force := c.Query("refresh") == "1"
	items, err := h.reconciler.Members(c.UserContext(), GetToken(c), GetUserID(c), force)
	if err != nil {
		return respondWishlistError(c, err)
	}
	return c.JSON(dto.WishlistResponse{Items: items})
}

// Toggle godoc
// @Summary      Alterna un producto en la wishlist
// @Tags         wishlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WishlistToggleRequest  true  "Producto a alternar"
// @Success      200  {object}  dto.WishlistToggleResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/wishlist/toggle [post]
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	var req dto.WishlistToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	source, err := entity.ParseSource(req.Source)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_SOURCE", Message: "fuente de catálogo desconocida"})
	}
	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
	}

	inWishlist, remoteID, err := h.reconciler.Toggle(c.UserContext(), GetToken(c), GetUserID(c), appwishlist.AddItem{
		Source:    source,
		ProductID: req.ID,
		Image:     req.Image,
		Title:     req.Title,
		Price:     req.Price,
	})
	if err != nil {
		return respondWishlistError(c, err)
	}
	return c.JSON(dto.WishlistToggleResponse{
		ProductID:  req.ID,
		InWishlist: inWishlist,
		RemoteID:   remoteID,
	})
}

func respondWishlistError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrLoginRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "se requiere iniciar sesión"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_DOWN", Message: "el servicio de wishlist no responde"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
