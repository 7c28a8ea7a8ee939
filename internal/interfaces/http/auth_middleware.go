package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CompraGlobal-api/internal/application/dto"
	"github.com/jhoicas/CompraGlobal-api/pkg/jwt"
)

// Locals keys para el contexto de la petición autenticada.
const (
	LocalUserID  = "user_id"
	LocalCountry = "country"
	LocalToken   = "token"
)

// AuthMiddleware valida el Bearer Token JWT y deja userID, country y el token
// crudo en c.Locals. El token crudo se reenvía a los colaboradores upstream;
// operaciones de carrito/wishlist sin sesión se rechazan aquí, antes de
// cualquier llamada de red.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_REQUIRED", Message: "token vacío"})
		}
		userID, country, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalCountry, country)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetCountry devuelve el país del usuario autenticado.
func GetCountry(c *fiber.Ctx) string {
	return localString(c, LocalCountry)
}

// GetToken devuelve el bearer token crudo para reenviar a colaboradores.
func GetToken(c *fiber.Ctx) string {
	return localString(c, LocalToken)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
