package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation: el repositorio lo traduce a ErrEmailAlreadyExists.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta la violación de un constraint único, aun si el
// error de pgx viene envuelto.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
