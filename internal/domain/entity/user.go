package entity

import "time"

// User es la cuenta local que consume la API. Su JWT de sesión actúa también
// de bearer token hacia la pasarela de cuenta upstream (carrito, wishlist).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Country      string // ISO-3166 alpha-2, destino de los envíos
	Currency     string // moneda preferida para conversión de precios
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
