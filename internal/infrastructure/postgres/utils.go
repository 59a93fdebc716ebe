package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de PostgreSQL que los adaptadores traducen a errores de dominio.
const (
	pgCodeUniqueViolation = "23505"
)

// isUniqueViolation indica si err proviene de un constraint UNIQUE violado.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}
