package persistence

import (
	"errors"
	"testing"

	"github.com/biztime/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"gorm duplicate", gorm.ErrDuplicatedKey, shared.CodeAlreadyExists},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, shared.CodeInvalidReference},
		{"gorm check", gorm.ErrCheckConstraintViolated, shared.CodeInvalidInput},
		{"pg unique", &pgconn.PgError{Code: "23505"}, shared.CodeAlreadyExists},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, shared.CodeInvalidReference},
		{"pg check", &pgconn.PgError{Code: "23514"}, shared.CodeInvalidInput},
		{"pg not null", &pgconn.PgError{Code: "23502", ColumnName: "name"}, shared.CodeInvalidInput},
		{"pg numeric overflow", &pgconn.PgError{Code: "22003"}, shared.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de, ok := shared.AsDomainError(translateError(tt.err, "invoice"))
			if assert.True(t, ok) {
				assert.Equal(t, tt.wantCode, de.Code)
			}
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil, "invoice"))
	})

	t.Run("not null names the column", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: "23502", ColumnName: "name"}, "company")
		assert.EqualError(t, err, "company name is required")
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := translateError(cause, "company")
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "company query failed: connection refused")
	})

	t.Run("unhandled sqlstate is wrapped", func(t *testing.T) {
		cause := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
		err := translateError(cause, "invoice")
		_, isDomain := shared.AsDomainError(err)
		assert.False(t, isDomain)
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
	})
}
