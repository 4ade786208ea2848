package lib

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlug means an insert hit the unique index on products.slug.
	// Callers generate a fresh slug and retry rather than surfacing this.
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// ErrOwnership means the actor tried to touch a resource owned by another
// account. Handlers translate it to 403, never 404, so the response does not
// leak whether the resource exists.
var ErrOwnership = errors.New("ownership violation")

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapDBError translates driver-level constraint failures into sentinel
// errors. Anything unrecognized passes through unchanged.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		if strings.Contains(err.Error(), "slug") {
			return ErrDuplicateSlug
		}
		return ErrConflict
	}
	if sqlState(err) == "P0002" { // no_data_found
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// regardless of which driver produced it.
func IsUniqueViolation(err error) bool {
	if sqlState(err) == "23505" {
		return true
	}
	// sqlite reports constraint failures by message only
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func sqlState(err error) string {
	var bunErr pgdriver.Error
	if errors.As(err, &bunErr) {
		return bunErr.Field('C')
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// RequireOwner is the single ownership gate for reads and mutations of
// owner-scoped resources.
func RequireOwner(resourceOwner, actor uuid.UUID) error {
	if resourceOwner != actor {
		return ErrOwnership
	}
	return nil
}
