// Package repository defines the persistence ports of the domain layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"crm/internal/domain/entity"
	"crm/internal/domain/filter"
)

// Sentinel errors returned by repository implementations. The usecase layer
// translates them into domain errors with HTTP semantics.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrContactNotFound indicates the requested contact does not exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrVersionConflict indicates a compare-and-set write matched no row.
	ErrVersionConflict = errors.New("version conflict on write")
	// ErrDuplicateEmail indicates a unique constraint hit on the email column.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername indicates a unique constraint hit on the username column.
	ErrDuplicateUsername = errors.New("username already exists")
)

// CustomerRepository is the persistence port for the customer aggregate.
type CustomerRepository interface {
	// FindByID loads a customer by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindAll returns the page of customers matching expr. A nil expr
	// matches every record.
	FindAll(ctx context.Context, expr *filter.Expr, page PageRequest) ([]*entity.Customer, int64, error)

	// Create inserts a new customer.
	Create(ctx context.Context, customer *entity.Customer) error

	// Save persists customer with a compare-and-set on its previous
	// version. Returns ErrVersionConflict when no row matched.
	Save(ctx context.Context, customer *entity.Customer) error

	// Delete removes the customer row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether a customer other than excludeID uses email.
	ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	// ExistsByUsername reports whether a customer other than excludeID uses username.
	ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
}
