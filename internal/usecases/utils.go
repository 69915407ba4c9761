package usecases

import (
	"errors"
	"fmt"

	domainerrors "hackathon-catalog.backend/internal/domain/errors"
)

// persistenceError tags err as a PersistenceFailure unless it already carries
// a domain kind.
func persistenceError(op string, err error) error {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, domainerrors.ErrPersistenceFailure) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return domainerrors.PersistenceFailure(op+" failed", err)
}
