package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", unique)),
		"el error envuelto por el repositorio sigue siendo detectable")
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "otra violación de constraint no cuenta")
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}
