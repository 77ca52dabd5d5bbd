package repository

import (
	"context"

	"github.com/google/uuid"

	"crm/internal/domain/entity"
)

// ContactRepository is the persistence port for contact sub-resources.
type ContactRepository interface {
	// FindByID loads a contact by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindByIDs loads the given contacts and returns them in the order of
	// ids. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Contact, error)

	// Create inserts a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// Save persists contact with a compare-and-set on its previous version.
	Save(ctx context.Context, contact *entity.Contact) error

	// Delete removes the contact row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByIDs removes all contacts with the given IDs.
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}
