package pgfts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Sentinel errors for a database whose catalog disagrees with the declarations
// in this package. Expression construction never fails; these errors come from
// executing rendered SQL (through MapError) or from catalog verification.
var (
	// ErrMissingType is returned when a text search type does not exist,
	// typically on a server older than PostgreSQL 8.3.
	ErrMissingType = errors.New("pgfts: text search type not found")

	// ErrTypeMismatch is returned when a type exists under a different OID, or
	// a value of the wrong type reached an operator or function.
	ErrTypeMismatch = errors.New("pgfts: type mismatch")

	// ErrMissingFunction is returned when no function matches a declared signature.
	ErrMissingFunction = errors.New("pgfts: text search function missing")

	// ErrMissingOperator is returned when no operator matches a declared signature.
	ErrMissingOperator = errors.New("pgfts: text search operator missing")

	// ErrMissingConfig is returned when a text search configuration does not exist.
	ErrMissingConfig = errors.New("pgfts: text search configuration missing")
)

// IsMissingTypeErr returns true if err is or wraps ErrMissingType.
func IsMissingTypeErr(err error) bool {
	return errors.Is(err, ErrMissingType)
}

// IsTypeMismatchErr returns true if err is or wraps ErrTypeMismatch.
func IsTypeMismatchErr(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsMissingFunctionErr returns true if err is or wraps ErrMissingFunction.
func IsMissingFunctionErr(err error) bool {
	return errors.Is(err, ErrMissingFunction)
}

// IsMissingOperatorErr returns true if err is or wraps ErrMissingOperator.
func IsMissingOperatorErr(err error) bool {
	return errors.Is(err, ErrMissingOperator)
}

// IsMissingConfigErr returns true if err is or wraps ErrMissingConfig.
func IsMissingConfigErr(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}

// PostgreSQL error codes for error mapping.
const (
	pgUndefinedFunction = "42883" // undefined_function, also raised for operators
	pgUndefinedObject   = "42704" // undefined_object
	pgDatatypeMismatch  = "42804" // datatype_mismatch
)

// MapError classifies a driver error raised while executing SQL built by this
// package. Recognized catalog failures wrap the matching sentinel; the driver
// error stays in the chain either way.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	code, msg := sqlState(err)
	switch code {
	case pgUndefinedFunction:
		if strings.HasPrefix(msg, "operator does not exist") {
			return fmt.Errorf("%s: %w: %w", operation, ErrMissingOperator, err)
		}
		return fmt.Errorf("%s: %w: %w", operation, ErrMissingFunction, err)
	case pgUndefinedObject:
		if strings.Contains(msg, "text search configuration") {
			return fmt.Errorf("%s: %w: %w", operation, ErrMissingConfig, err)
		}
		if strings.HasPrefix(msg, "type ") {
			return fmt.Errorf("%s: %w: %w", operation, ErrMissingType, err)
		}
	case pgDatatypeMismatch:
		return fmt.Errorf("%s: %w: %w", operation, ErrTypeMismatch, err)
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// sqlState extracts the SQLSTATE code and primary message from a pgx or
// lib/pq error. Returns empty strings for other errors.
func sqlState(err error) (code, message string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.Message
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Message
	}

	return "", ""
}
