// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/filter"
	"crm/internal/domain/repository"
	"crm/internal/usecase"
)

// customerReadService implements the CustomerReadUsecase interface.
type customerReadService struct {
	customerRepo repository.CustomerRepository
	contactRepo  repository.ContactRepository
	logger       *slog.Logger
}

// CustomerReadServiceParams holds dependencies for the read service, injected by Fx.
type CustomerReadServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	ContactRepo  repository.ContactRepository
	Logger       *slog.Logger
}

// NewCustomerReadService is the constructor for customerReadService.
func NewCustomerReadService(params CustomerReadServiceParams) usecase.CustomerReadUsecase {
	return &customerReadService{
		customerRepo: params.CustomerRepo,
		contactRepo:  params.ContactRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerReadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCustomer loads one customer. Callers without the admin or user role may
// only read their own record.
func (srv *customerReadService) GetCustomer(ctx context.Context, caller access.Identity, id uuid.UUID) (*usecase.CustomerOutput, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if err := access.Authorize(caller, access.ActionRead, customer.Username); err != nil {
		srv.log(ctx).Warn("Read denied",
			slog.String("customerID", id.String()),
			slog.String("caller", caller.Username))

		return nil, err
	}

	return &usecase.CustomerOutput{Customer: customer}, nil
}

// QueryCustomers runs a filtered collection read.
func (srv *customerReadService) QueryCustomers(ctx context.Context, caller access.Identity, input usecase.QueryInput) (*usecase.CustomerPageOutput, error) {
	if err := access.Authorize(caller, access.ActionList, ""); err != nil {
		srv.log(ctx).Warn("Collection read denied", slog.String("caller", caller.Username))

		return nil, err
	}

	if err := validateFilter(input.Filter); err != nil {
		return nil, err
	}

	page := input.Page.Normalize()
	if err := validateSort(page.Sort); err != nil {
		return nil, err
	}

	customers, total, err := srv.customerRepo.FindAll(ctx, input.Filter, page)
	if err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Collection read completed",
		slog.Int("count", len(customers)),
		slog.Int64("total", total))

	return &usecase.CustomerPageOutput{
		Customers:  customers,
		Page:       page.Page,
		Size:       page.Size,
		TotalCount: total,
	}, nil
}

// GetContacts returns the customer's contacts in insertion order.
func (srv *customerReadService) GetContacts(ctx context.Context, caller access.Identity, customerID uuid.UUID) ([]*entity.Contact, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if err := access.Authorize(caller, access.ActionRead, customer.Username); err != nil {
		return nil, err
	}

	if len(customer.ContactIDs) == 0 {
		return []*entity.Contact{}, nil
	}

	contacts, err := srv.contactRepo.FindByIDs(ctx, customer.ContactIDs)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return contacts, nil
}

// validateFilter walks the tree and rejects leaves naming unknown fields or
// operators. Incomplete leaves are allowed; the compiler skips them.
func validateFilter(expr *filter.Expr) error {
	if expr == nil {
		return nil
	}

	if expr.Field != "" && !expr.Field.IsValid() {
		return domainerrors.ErrInvalidArgument.WithDetailsf("unknown filter field %q", expr.Field)
	}
	if expr.Operator != "" {
		switch expr.Operator {
		case filter.OpEQ, filter.OpIn, filter.OpGTE, filter.OpLTE, filter.OpLike, filter.OpPrefix:
		default:
			return domainerrors.ErrInvalidArgument.WithDetailsf("unknown filter operator %q", expr.Operator)
		}
	}

	for _, group := range [][]*filter.Expr{expr.And, expr.Or, expr.Nor} {
		for _, child := range group {
			if err := validateFilter(child); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateSort rejects sort criteria naming unknown fields.
func validateSort(sorts []repository.Sort) error {
	for _, s := range sorts {
		if !s.Field.IsValid() {
			return domainerrors.ErrInvalidArgument.WithDetailsf("unknown sort field %q", s.Field)
		}
	}

	return nil
}
