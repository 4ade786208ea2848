package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	if err := RequireOwner(owner, owner); err != nil {
		t.Errorf("owner rejected: %v", err)
	}
	if err := RequireOwner(owner, stranger); !errors.Is(err, ErrOwnership) {
		t.Errorf("expected ErrOwnership, got %v", err)
	}
}

func TestMapDBError(t *testing.T) {
	slugErr := fmt.Errorf("failed to execute insert query: UNIQUE constraint failed: products.slug")
	if got := MapDBError(slugErr); !errors.Is(got, ErrDuplicateSlug) {
		t.Errorf("slug violation mapped to %v", got)
	}

	emailErr := fmt.Errorf("UNIQUE constraint failed: users.email")
	if got := MapDBError(emailErr); !errors.Is(got, ErrConflict) {
		t.Errorf("email violation mapped to %v", got)
	}

	other := errors.New("connection refused")
	if got := MapDBError(other); got != other {
		t.Errorf("unrelated error rewritten to %v", got)
	}

	if MapDBError(nil) != nil {
		t.Error("nil error mapped to non-nil")
	}
}
