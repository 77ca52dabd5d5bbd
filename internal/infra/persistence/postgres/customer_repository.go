// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crm/internal/domain/entity"
	"crm/internal/domain/filter"
	"crm/internal/domain/repository"
	"crm/internal/infra/persistence/model"
)

// customerRepository implements the domain's CustomerRepository using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
// It returns the domain interface, adhering to dependency inversion.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindAll runs a filtered, paged collection read and returns the matching
// page plus the total match count.
func (repo *customerRepository) FindAll(ctx context.Context, expr *filter.Expr, page repository.PageRequest) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})

	if condition := compileFilter(expr); condition != nil {
		query = query.Clauses(clause.Where{Exprs: []clause.Expression{condition}})
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	for _, sort := range page.Sort {
		column, ok := columnFor(sort.Field)
		if !ok {
			continue
		}
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: column},
			Desc:   sort.Desc,
		})
	}

	var customerModels []model.CustomerModel
	err := query.
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&customerModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to find customers")
	}

	customers := make([]*entity.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = toCustomerDomain(&customerModels[i])
	}

	return customers, total, nil
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return translateUniqueViolation(err)
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// Save persists the customer with a compare-and-set on the previous version.
// The entity already carries the incremented version; the previous one must
// still be in the row or no row matches.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ? AND version = ?", customer.ID, customer.Version-1).
		Select("*").
		Omit("id", "created_at").
		Updates(customerM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return translateUniqueViolation(result.Error)
		}

		return errors.Wrap(result.Error, "failed to save customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	return nil
}

// Delete removes the customer row.
func (repo *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CustomerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// ExistsByEmail reports whether another customer uses the email address.
func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "lower(email) = lower(?)", email, excludeID)
}

// ExistsByUsername reports whether another customer uses the username.
func (repo *customerRepository) ExistsByUsername(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	return repo.exists(ctx, "username = ?", username, excludeID)
}

func (repo *customerRepository) exists(ctx context.Context, condition string, value string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where(condition, value)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check customer existence")
	}

	return count > 0, nil
}

// translateUniqueViolation inspects which unique constraint was hit.
func translateUniqueViolation(err error) error {
	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "username"):
		return repository.ErrDuplicateUsername
	default:
		return repository.ErrDuplicateEmail
	}
}
