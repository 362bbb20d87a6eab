package dbx

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/printdesk/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the server cares about.
const (
	codeUniqueViolation        = "23505"
	codeNotNullViolation       = "23502"
	codeInvalidTextRepr        = "22P02"
	codeStringDataTruncation   = "22001"
	codeNumericValueOutOfRange = "22003"
)

// TranslateError maps a driver error onto the common taxonomy. It is the only
// place in the server that looks at raw storage error shapes.
//
//   - sql.ErrNoRows                     -> common.ErrorNotFound
//   - unique / not-null violations      -> common.ErrorConflict
//   - malformed or out-of-range values  -> common.ErrorBadRequest
//   - anything else is wrapped as "db error"
//
// Classified errors carry a client-facing message (see common.Error).
// Unclassified ones keep the original in their chain.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return common.Errorf(common.ErrorConflict, "%s", conflictMessage(pgErr))
		case codeNotNullViolation:
			return common.Errorf(common.ErrorConflict, "Missing required field %s", fieldName(pgErr.ColumnName))
		case codeInvalidTextRepr, codeStringDataTruncation, codeNumericValueOutOfRange:
			return common.Errorf(common.ErrorBadRequest, "Invalid value: %s", pgErr.Message)
		}
	}

	return fmt.Errorf("db error: %w", err)
}

// apiFieldNames maps columns whose request field is named differently.
var apiFieldNames = map[string]string{
	"password_hash": "password",
}

func fieldName(column string) string {
	if f, ok := apiFieldNames[column]; ok {
		return f
	}
	return column
}

func conflictMessage(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName == "users_email_key" {
		return "Email already exists"
	}
	if pgErr.ConstraintName != "" {
		return "Duplicate value violates " + pgErr.ConstraintName
	}
	return "Duplicate value"
}
