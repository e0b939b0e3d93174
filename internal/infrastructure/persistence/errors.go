package persistence

import (
	"errors"
	"fmt"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes handled explicitly
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// translateError converts constraint violations into domain errors and wraps
// anything else with the entity it concerns.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return alreadyExists(entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return invalidReference(entity)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return checkViolated(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return alreadyExists(entity)
		case pgForeignKeyViolation:
			return invalidReference(entity)
		case pgCheckViolation:
			return checkViolated(entity)
		case pgNotNullViolation:
			return shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("%s %s is required", entity, pgErr.ColumnName))
		case pgNumericOutOfRange:
			return shared.NewDomainError(shared.CodeInvalidInput,
				fmt.Sprintf("%s has a numeric value out of range", entity))
		}
	}

	return fmt.Errorf("%s query failed: %w", entity, err)
}

func alreadyExists(entity string) error {
	return shared.NewDomainError(shared.CodeAlreadyExists, fmt.Sprintf("%s already exists", entity))
}

func invalidReference(entity string) error {
	return shared.NewDomainError(shared.CodeInvalidReference,
		fmt.Sprintf("%s references a record that does not exist", entity))
}

func checkViolated(entity string) error {
	return shared.NewDomainError(shared.CodeInvalidInput,
		fmt.Sprintf("%s violates a check constraint", entity))
}
