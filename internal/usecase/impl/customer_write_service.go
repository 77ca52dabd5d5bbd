package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/errors"
	"crm/internal/usecase"
)

// customerWriteService implements the CustomerWriteUsecase interface.
type customerWriteService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	contactRepo  repository.ContactRepository
	idp          service.IdentityProvider
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CustomerWriteServiceParams holds dependencies for the write service, injected by Fx.
type CustomerWriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	ContactRepo  repository.ContactRepository
	IdP          service.IdentityProvider
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCustomerWriteService is the constructor for customerWriteService.
// It receives all dependencies as interfaces.
func NewCustomerWriteService(params CustomerWriteServiceParams) usecase.CustomerWriteUsecase {
	return &customerWriteService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		contactRepo:  params.ContactRepo,
		idp:          params.IdP,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerWriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCustomer registers a new customer. The provider account is created
// first; if persisting the record fails afterwards the account is removed
// again so both systems stay aligned.
func (srv *customerWriteService) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*usecase.CustomerOutput, error) {
	username := strings.ToLower(input.Username)
	srv.log(ctx).Info("Starting customer registration",
		slog.String("username", username),
		slog.String("email", input.Email))

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if err := validateBirthdate(input.Birthdate); err != nil {
		return nil, err
	}

	role, err := entity.RoleForTier(input.Tier)
	if err != nil {
		return nil, err
	}

	if taken, err := srv.customerRepo.ExistsByEmail(ctx, input.Email, uuid.Nil); err != nil {
		return nil, translateRepoError(err)
	} else if taken {
		return nil, domainerrors.ErrEmailExists.WithDetailsf("email %s", input.Email)
	}

	if taken, err := srv.customerRepo.ExistsByUsername(ctx, username, uuid.Nil); err != nil {
		return nil, translateRepoError(err)
	} else if taken {
		return nil, domainerrors.ErrUsernameExists.WithDetailsf("username %s", username)
	}

	profile := service.AccountProfile{
		Username:  username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	accountID, err := srv.idp.CreateAccount(ctx, profile, input.Password)
	if err != nil {
		srv.log(ctx).Error("Identity provider account creation failed",
			slog.String("username", username), slog.Any("error", err))

		return nil, domainerrors.ErrSignUpFailed.WrapMessage(err)
	}

	if err := srv.idp.AssignRole(ctx, accountID, role); err != nil {
		srv.log(ctx).Error("Role assignment failed",
			slog.String("username", username), slog.Any("error", err))
		srv.rollbackAccount(ctx, username)

		return nil, domainerrors.ErrSignUpFailed.WrapMessage(err)
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New(),
		Version:        0,
		LastName:       input.LastName,
		FirstName:      input.FirstName,
		Email:          input.Email,
		Username:       username,
		PhoneNumber:    input.PhoneNumber,
		Tier:           input.Tier,
		IsSubscribed:   input.IsSubscribed,
		Birthdate:      input.Birthdate,
		Gender:         input.Gender,
		MaritalStatus:  input.MaritalStatus,
		CustomerState:  entity.StateActive,
		Address:        toAddress(input.Address),
		Interests:      input.Interests,
		ContactOptions: input.ContactOptions,
		ContactIDs:     []uuid.UUID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.rollbackAccount(ctx, username)

		return nil, translateRepoError(err)
	}

	srv.publishCreated(ctx, customer)

	srv.log(ctx).Debug("Customer registration completed", slog.Any("customerID", customer.ID))

	return &usecase.CustomerOutput{Customer: customer}, nil
}

// rollbackAccount removes the provider account after a failed registration.
// The failure of the rollback itself is only logged.
func (srv *customerWriteService) rollbackAccount(ctx context.Context, username string) {
	if err := srv.idp.DeleteAccount(ctx, username); err != nil {
		srv.log(ctx).Error("Failed to roll back provider account",
			slog.String("username", username), slog.Any("error", err))
	}
}

// publishCreated announces the registration to downstream consumers. Delivery
// is fire and forget: the publisher runs detached from the request so a slow
// or failing broker never delays the response.
func (srv *customerWriteService) publishCreated(ctx context.Context, customer *entity.Customer) {
	event := &service.CustomerCreatedEvent{
		RequestID:  deliverycontext.GetRequestID(ctx),
		CustomerID: customer.ID,
		Email:      customer.Email,
		Username:   customer.Username,
		Tier:       customer.Tier,
		CreatedAt:  customer.CreatedAt,
	}

	detached := context.WithoutCancel(ctx)
	logger := srv.log(ctx)
	go func() {
		if err := srv.publisher.PublishCustomerCreated(detached, event); err != nil {
			logger.Warn("Failed to publish customer created event",
				slog.Any("customerID", customer.ID), slog.Any("error", err))
		}
	}()
}

// UpdateCustomer replaces the mutable fields of a customer after the version
// guard and the authorization gate both pass.
func (srv *customerWriteService) UpdateCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int, input usecase.UpdateCustomerInput) (*usecase.CustomerOutput, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if err := entity.CheckVersion(version, customer.Version); err != nil {
		return nil, err
	}

	if err := access.Authorize(caller, access.ActionModify, customer.Username); err != nil {
		srv.log(ctx).Warn("Update denied",
			slog.Any("customerID", id), slog.String("caller", caller.Username))

		return nil, err
	}

	if err := validateBirthdate(input.Birthdate); err != nil {
		return nil, err
	}

	if input.Email != customer.Email {
		if taken, err := srv.customerRepo.ExistsByEmail(ctx, input.Email, id); err != nil {
			return nil, translateRepoError(err)
		} else if taken {
			return nil, domainerrors.ErrEmailExists.WithDetailsf("email %s", input.Email)
		}
	}

	username := strings.ToLower(input.Username)
	if username != customer.Username {
		if taken, err := srv.customerRepo.ExistsByUsername(ctx, username, id); err != nil {
			return nil, translateRepoError(err)
		} else if taken {
			return nil, domainerrors.ErrUsernameExists.WithDetailsf("username %s", username)
		}
	}

	// The provider account is still keyed by the name it was registered
	// under, so keep it until the provider call below.
	providerKey := customer.Username

	customer.LastName = input.LastName
	customer.FirstName = input.FirstName
	customer.Email = input.Email
	customer.Username = username
	customer.PhoneNumber = input.PhoneNumber
	customer.Tier = input.Tier
	customer.IsSubscribed = input.IsSubscribed
	customer.Birthdate = input.Birthdate
	customer.Gender = input.Gender
	customer.MaritalStatus = input.MaritalStatus
	customer.CustomerState = input.CustomerState
	customer.Address = toAddress(input.Address)
	customer.Interests = input.Interests
	customer.ContactOptions = input.ContactOptions
	customer.Version++

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewCustomerRepository().Save(ctx, customer); err != nil {
			return err
		}

		// The provider account mirrors the profile. Calling it inside the
		// transaction lets a provider failure roll the write back.
		profile := service.AccountProfile{
			Username:  customer.Username,
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
		}
		if err := srv.idp.UpdateAccount(ctx, providerKey, profile); err != nil {
			return domainerrors.ErrInternal.WrapMessage(errors.Wrap(err, "failed to update provider account"))
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute customer update",
			slog.Any("customerID", id), slog.Any("error", err))

		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Customer updated",
		slog.Any("customerID", id), slog.Int("version", customer.Version))

	return &usecase.CustomerOutput{Customer: customer}, nil
}

// DeleteCustomer removes a customer, its contacts and its provider account.
// Only admins may delete.
func (srv *customerWriteService) DeleteCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int) error {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		return translateRepoError(err)
	}

	if err := entity.CheckVersion(version, customer.Version); err != nil {
		return err
	}

	if err := access.Authorize(caller, access.ActionDelete, customer.Username); err != nil {
		srv.log(ctx).Warn("Delete denied",
			slog.Any("customerID", id), slog.String("caller", caller.Username))

		return err
	}

	// The provider account goes first. If that fails the record stays
	// untouched; if the transaction below fails the account is already gone
	// and the next delete attempt treats the provider 404 as success.
	if err := srv.idp.DeleteAccount(ctx, customer.Username); err != nil {
		srv.log(ctx).Error("Provider account deletion failed",
			slog.String("username", customer.Username), slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage(err)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if len(customer.ContactIDs) > 0 {
			if err := repoFactory.NewContactRepository().DeleteByIDs(ctx, customer.ContactIDs); err != nil {
				return err
			}
		}

		return repoFactory.NewCustomerRepository().Delete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute customer deletion",
			slog.Any("customerID", id), slog.Any("error", err))

		return translateRepoError(err)
	}

	srv.log(ctx).Info("Customer deleted", slog.Any("customerID", id))

	return nil
}

// AddContact appends a new contact. No version precondition applies; the
// customer version still advances because the contact list changes.
func (srv *customerWriteService) AddContact(ctx context.Context, caller access.Identity, customerID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if err := access.Authorize(caller, access.ActionModify, customer.Username); err != nil {
		return nil, err
	}

	now := time.Now()
	contact := &entity.Contact{
		ID:               uuid.New(),
		Version:          0,
		LastName:         input.LastName,
		FirstName:        input.FirstName,
		Relationship:     input.Relationship,
		WithdrawalLimit:  input.WithdrawalLimit,
		EmergencyContact: input.EmergencyContact,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := validateContact(contact); err != nil {
		return nil, err
	}

	existing, err := srv.loadContacts(ctx, customer)
	if err != nil {
		return nil, err
	}
	if err := ensureNoEquivalentContact(existing, contact, uuid.Nil); err != nil {
		return nil, err
	}

	customer.AddContactID(contact.ID)
	customer.Version++

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewContactRepository().Create(ctx, contact); err != nil {
			return err
		}

		return repoFactory.NewCustomerRepository().Save(ctx, customer)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute contact creation",
			slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Contact added",
		slog.Any("customerID", customerID), slog.Any("contactID", contact.ID))

	return contact, nil
}

// UpdateContact replaces the fields of an existing contact. The version
// guards the contact itself; the customer record is left untouched.
func (srv *customerWriteService) UpdateContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, contactVersion int, input usecase.ContactInput) (*entity.Contact, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if !customer.HasContact(contactID) {
		return nil, domainerrors.ErrContactNotFound.WithDetailsf("contact %s", contactID)
	}

	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return nil, translateRepoError(err)
	}

	if err := entity.CheckVersion(contactVersion, contact.Version); err != nil {
		return nil, err
	}

	if err := access.Authorize(caller, access.ActionModify, customer.Username); err != nil {
		return nil, err
	}

	candidate := &entity.Contact{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	existing, err := srv.loadContacts(ctx, customer)
	if err != nil {
		return nil, err
	}
	if err := ensureNoEquivalentContact(existing, candidate, contactID); err != nil {
		return nil, err
	}

	contact.LastName = input.LastName
	contact.FirstName = input.FirstName
	contact.Relationship = input.Relationship
	contact.WithdrawalLimit = input.WithdrawalLimit
	contact.EmergencyContact = input.EmergencyContact
	contact.StartDate = input.StartDate
	contact.EndDate = input.EndDate
	contact.Version++

	if err := validateContact(contact); err != nil {
		return nil, err
	}

	if err := srv.contactRepo.Save(ctx, contact); err != nil {
		return nil, translateRepoError(err)
	}

	srv.log(ctx).Debug("Contact updated",
		slog.Any("customerID", customerID), slog.Any("contactID", contactID))

	return contact, nil
}

// RemoveContact detaches and deletes a contact. Both the customer and the
// contact carry a version precondition.
func (srv *customerWriteService) RemoveContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, customerVersion, contactVersion int) error {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return translateRepoError(err)
	}

	if err := entity.CheckVersion(customerVersion, customer.Version); err != nil {
		return err
	}

	if err := access.Authorize(caller, access.ActionModify, customer.Username); err != nil {
		return err
	}

	if !customer.HasContact(contactID) {
		return domainerrors.ErrContactNotFound.WithDetailsf("contact %s", contactID)
	}

	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return translateRepoError(err)
	}

	if err := entity.CheckVersion(contactVersion, contact.Version); err != nil {
		return err
	}

	customer.RemoveContactID(contactID)
	customer.Version++

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewContactRepository().Delete(ctx, contactID); err != nil {
			return err
		}

		return repoFactory.NewCustomerRepository().Save(ctx, customer)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute contact removal",
			slog.Any("customerID", customerID), slog.Any("error", err))

		return translateRepoError(err)
	}

	srv.log(ctx).Debug("Contact removed",
		slog.Any("customerID", customerID), slog.Any("contactID", contactID))

	return nil
}

// UpdatePassword sets a new password for the calling customer. The policy is
// enforced here; the credential itself lives only in the provider.
func (srv *customerWriteService) UpdatePassword(ctx context.Context, caller access.Identity, newPassword string) error {
	if caller.Username == "" {
		return domainerrors.ErrUnauthorized
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	if err := srv.idp.ResetPassword(ctx, caller.Username, newPassword); err != nil {
		srv.log(ctx).Error("Password reset failed",
			slog.String("username", caller.Username), slog.Any("error", err))

		return domainerrors.ErrInternal.WrapMessage(err)
	}

	srv.log(ctx).Info("Password updated", slog.String("username", caller.Username))

	return nil
}

func toAddress(input usecase.AddressInput) entity.Address {
	return entity.Address{
		Street:  input.Street,
		HouseNo: input.HouseNumber,
		ZipCode: input.ZipCode,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
	}
}

// validateBirthdate rejects birthdates that do not lie strictly in the past.
func validateBirthdate(birthdate time.Time) error {
	if birthdate.IsZero() {
		return nil
	}
	if !birthdate.Before(time.Now()) {
		return domainerrors.ErrValidationFailed.WithDetails("birthdate must lie in the past")
	}

	return nil
}

// validateContact checks the field rules a contact must satisfy beyond the
// declarative request validation.
func validateContact(contact *entity.Contact) error {
	if contact.WithdrawalLimit < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("withdrawalLimit must not be negative")
	}
	if !contact.DateRangeValid() {
		return domainerrors.ErrValidationFailed.WithDetails("endDate must not precede startDate")
	}

	return nil
}

// loadContacts loads the customer's current contacts for duplicate checks.
func (srv *customerWriteService) loadContacts(ctx context.Context, customer *entity.Customer) ([]*entity.Contact, error) {
	if len(customer.ContactIDs) == 0 {
		return nil, nil
	}

	contacts, err := srv.contactRepo.FindByIDs(ctx, customer.ContactIDs)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return contacts, nil
}
