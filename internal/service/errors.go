package service

import (
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-board/internal/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConflict is reserved for duplicate or stale writes; no current flow returns it.
	ErrConflict = errors.New("conflict")
)

// mapRepoError turns storage errors into service errors. subject names the
// record, e.g. `todo "abc"`, and op the attempted action for wrapped failures.
func mapRepoError(err error, subject, op string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s %w", subject, ErrNotFound)
	case errors.Is(err, repository.ErrInvalidReference):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
