package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrCheckViolation = "23514"

// IsCheckViolation нарушение CHECK-ограничения на колонке column.
// Пустой column подходит под любую колонку.
func IsCheckViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != PgErrCheckViolation {
		return false
	}
	return column == "" || pgErr.ColumnName == column || strings.HasSuffix(pgErr.ConstraintName, "_"+column+"_check")
}
