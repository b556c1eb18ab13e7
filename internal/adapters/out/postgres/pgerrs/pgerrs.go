// Package pgerrs maps PostgreSQL failures onto the error classes the application core understands.
package pgerrs

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that mean "another transaction got there first".
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeUniqueViolation      = "23505"
)

// CodeNumericValueOutOfRange is raised when a computed amount does not fit its numeric column.
const CodeNumericValueOutOfRange = "22003"

// Classify wraps err with ports.ErrTransactionConflict or ports.ErrStorageUnavailable
// when it belongs to one of those classes, turns numeric overflow into a validation
// error, and returns anything else untouched.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrTransactionConflict) || errors.Is(err, ports.ErrStorageUnavailable) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeSerializationFailure, CodeDeadlockDetected, CodeLockNotAvailable, CodeUniqueViolation:
			return fmt.Errorf("%w: %s (%s)", ports.ErrTransactionConflict, pgErr.Message, pgErr.Code)
		case CodeNumericValueOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "amount"
			}
			return errs.NewValueIsInvalidErrorWithCause(field, errors.New(pgErr.Message))
		}
		return err
	}

	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
	}

	return err
}

// Unavailable wraps err with ports.ErrStorageUnavailable unconditionally.
// Used for failures to start a transaction, where any cause means the store is unusable.
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ports.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, err)
}

// IsUnavailable reports whether err means the connection to the database is gone.
func IsUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	var netErr net.Error
	return errors.Is(err, driver.ErrBadConn) ||
		errors.As(err, &connectErr) ||
		errors.As(err, &netErr)
}
