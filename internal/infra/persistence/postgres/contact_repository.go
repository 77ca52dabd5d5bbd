package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"
)

// contactRepository implements the domain's ContactRepository using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// FindByID retrieves a single contact by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// FindByIDs loads the given contacts and returns them in the order of ids.
// The database returns rows in arbitrary order, so they are reordered here.
func (repo *contactRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Contact, error) {
	if len(ids) == 0 {
		return []*entity.Contact{}, nil
	}

	var contactModels []model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&contactModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contacts by ids")
	}

	byID := make(map[uuid.UUID]*entity.Contact, len(contactModels))
	for i := range contactModels {
		byID[contactModels[i].ID] = toContactDomain(&contactModels[i])
	}

	contacts := make([]*entity.Contact, 0, len(ids))
	for _, id := range ids {
		if contact, ok := byID[id]; ok {
			contacts = append(contacts, contact)
		}
	}

	return contacts, nil
}

// Create persists a new contact.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return errors.Wrap(err, "failed to create contact")
	}

	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Save persists the contact with a compare-and-set on the previous version.
func (repo *contactRepository) Save(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND version = ?", contact.ID, contact.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(contactM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	return nil
}

// Delete removes the contact row.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// DeleteByIDs removes all contacts with the given IDs.
func (repo *contactRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.ContactModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete contacts")
	}

	return nil
}
