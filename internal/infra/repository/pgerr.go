package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// PostgreSQL SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// translate maps gorm/pg failures onto the error taxonomy. Known constraint
// violations get their own codes; anything else becomes a StorageError.
func translate(err error, notFoundCode, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return httperr.ErrNotFound(notFoundCode, notFoundMsg)
	case IsUniqueViolation(err):
		return httperr.ErrConflict("duplicate", "Registo duplicado.")
	case IsForeignKeyViolation(err):
		return httperr.ErrNotFound("reference_not_found", "Cliente, barbeiro ou serviço inexistente.")
	default:
		return httperr.ErrStorage("storage_failure", err)
	}
}

// TranslateDelete is translate for DELETE statements, where a foreign-key
// violation means other rows still reference the target.
func TranslateDelete(err error, dependentMsg string) error {
	if IsForeignKeyViolation(err) {
		return httperr.ErrConflict("has_dependent_bookings", dependentMsg)
	}
	return translate(err, "not_found", "Registo não encontrado.")
}

// TranslateWrite is translate for INSERT/UPDATE statements with a custom
// message for unique violations.
func TranslateWrite(err error, duplicateMsg string) error {
	if IsUniqueViolation(err) {
		return httperr.ErrConflict("duplicate", duplicateMsg)
	}
	return translate(err, "not_found", "Registo não encontrado.")
}

// Translate maps a read failure onto the error taxonomy.
func Translate(err error) error {
	return translate(err, "not_found", "Registo não encontrado.")
}
