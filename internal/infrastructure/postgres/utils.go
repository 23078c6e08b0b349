package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/crm-api/internal/domain"
)

// Códigos SQLSTATE que el dominio distingue.
const (
	codeUniqueViolation = "23505"
	// codeInfiniteRecursion: una política de seguridad de filas se consulta
	// a sí misma. Postgres lo reporta como 42P17.
	codeInfiniteRecursion = "42P17"
)

// isUniqueViolation reporta si err es una violación de restricción única.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// translateError convierte errores de Postgres con significado de dominio.
// Los demás pasan tal cual.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInfiniteRecursion:
			return domain.ErrPolicyRecursion
		case codeUniqueViolation:
			return domain.ErrEmailAlreadyExists
		}
	}
	return err
}
