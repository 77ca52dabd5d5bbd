package impl

import (
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
)

// translateRepoError converts repository sentinels into domain errors with
// HTTP semantics. Anything unrecognized becomes a database error.
func translateRepoError(err error) error {
	var appErr domainerrors.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		// Already carries HTTP semantics, pass through untouched.
		return err
	case errors.Is(err, repository.ErrCustomerNotFound):
		return domainerrors.ErrCustomerNotFound
	case errors.Is(err, repository.ErrContactNotFound):
		return domainerrors.ErrContactNotFound
	case errors.Is(err, repository.ErrVersionConflict):
		return domainerrors.ErrVersionOutdated.WithDetails("record was modified concurrently")
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrEmailExists
	case errors.Is(err, repository.ErrDuplicateUsername):
		return domainerrors.ErrUsernameExists
	default:
		return domainerrors.NewDatabaseExecuteError(err)
	}
}
