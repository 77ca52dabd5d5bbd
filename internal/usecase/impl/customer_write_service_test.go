package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/errors"
	mockRepo "crm/internal/mocks/repository"
	"crm/internal/usecase"
)

func testCreateInput() usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		LastName:      "Muster",
		FirstName:     "Erika",
		Email:         "erika@example.com",
		Username:      "ErikaM",
		Password:      "Str0ng!Pass",
		PhoneNumber:   "+4915198765432",
		Tier:          2,
		IsSubscribed:  true,
		Birthdate:     time.Date(1985, 3, 2, 0, 0, 0, 0, time.UTC),
		Gender:        entity.GenderFemale,
		MaritalStatus: entity.MaritalSingle,
		Address: usecase.AddressInput{
			Street:      "Nebenweg",
			HouseNumber: "7",
			ZipCode:     "20095",
			City:        "Hamburg",
		},
		Interests:      []entity.Interest{entity.InterestTravel},
		ContactOptions: []entity.ContactOption{entity.ContactEmail, entity.ContactPhone},
	}
}

func TestCustomerWriteService_CreateCustomer_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	input := testCreateInput()

	profile := service.AccountProfile{
		Username:  "erikam",
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}

	fx.customerRepo.EXPECT().ExistsByEmail(ctx, input.Email, uuid.Nil).Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByUsername(ctx, "erikam", uuid.Nil).Return(false, nil)
	fx.idp.EXPECT().CreateAccount(ctx, profile, input.Password).Return("acct-42", nil)
	fx.idp.EXPECT().AssignRole(ctx, "acct-42", entity.RoleElite).Return(nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCustomerCreated(mock.Anything, mock.AnythingOfType("*service.CustomerCreatedEvent")).
		Return(nil).
		Maybe()

	output, err := fx.service.CreateCustomer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "erikam", output.Customer.Username)
	assert.Equal(t, 0, output.Customer.Version)
	assert.Equal(t, entity.StateActive, output.Customer.CustomerState)
	assert.NotEqual(t, uuid.Nil, output.Customer.ID)
	assert.Empty(t, output.Customer.ContactIDs)
}

func TestCustomerWriteService_CreateCustomer_WeakPassword(t *testing.T) {
	fx := createTestWriteService(t)

	input := testCreateInput()
	input.Password = "short"

	output, err := fx.service.CreateCustomer(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordInvalid))
}

func TestCustomerWriteService_CreateCustomer_FutureBirthdate(t *testing.T) {
	fx := createTestWriteService(t)

	input := testCreateInput()
	input.Birthdate = time.Now().AddDate(1, 0, 0)

	output, err := fx.service.CreateCustomer(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerWriteService_CreateCustomer_TierOutOfRange(t *testing.T) {
	fx := createTestWriteService(t)

	input := testCreateInput()
	input.Tier = 7

	output, err := fx.service.CreateCustomer(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestCustomerWriteService_CreateCustomer_EmailTaken(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	input := testCreateInput()

	fx.customerRepo.EXPECT().ExistsByEmail(ctx, input.Email, uuid.Nil).Return(true, nil)

	output, err := fx.service.CreateCustomer(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestCustomerWriteService_CreateCustomer_RoleAssignmentFailureRollsBack(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	input := testCreateInput()

	fx.customerRepo.EXPECT().ExistsByEmail(ctx, input.Email, uuid.Nil).Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByUsername(ctx, "erikam", uuid.Nil).Return(false, nil)
	fx.idp.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("service.AccountProfile"), input.Password).
		Return("acct-42", nil)
	fx.idp.EXPECT().
		AssignRole(ctx, "acct-42", entity.RoleElite).
		Return(errors.New("realm role missing"))
	fx.idp.EXPECT().DeleteAccount(ctx, "erikam").Return(nil)

	output, err := fx.service.CreateCustomer(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSignUpFailed))
}

func TestCustomerWriteService_CreateCustomer_PersistFailureRollsBack(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	input := testCreateInput()

	fx.customerRepo.EXPECT().ExistsByEmail(ctx, input.Email, uuid.Nil).Return(false, nil)
	fx.customerRepo.EXPECT().ExistsByUsername(ctx, "erikam", uuid.Nil).Return(false, nil)
	fx.idp.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("service.AccountProfile"), input.Password).
		Return("acct-42", nil)
	fx.idp.EXPECT().AssignRole(ctx, "acct-42", entity.RoleElite).Return(nil)
	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrDuplicateEmail)
	fx.idp.EXPECT().DeleteAccount(ctx, "erikam").Return(nil)

	output, err := fx.service.CreateCustomer(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailExists))
}

func TestCustomerWriteService_UpdateCustomer_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	input := testUpdateInput(customer)
	input.PhoneNumber = "+4915100000000"

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Customer")).
				Return(nil)

			fx.idp.EXPECT().
				UpdateAccount(ctx, customer.Username, mock.AnythingOfType("service.AccountProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateCustomer(ctx, userCaller("maxmuster"), customer.ID, 3, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 4, output.Customer.Version)
	assert.Equal(t, "+4915100000000", output.Customer.PhoneNumber)
}

func TestCustomerWriteService_UpdateCustomer_UsernameChanged(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	input := testUpdateInput(customer)
	input.Username = "MaxNeu"

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().ExistsByUsername(ctx, "maxneu", customer.ID).Return(false, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Customer")).
				Return(nil)

			// The provider account is still registered under the old name.
			fx.idp.EXPECT().
				UpdateAccount(ctx, "maxmuster", mock.MatchedBy(func(profile service.AccountProfile) bool {
					return profile.Username == "maxneu"
				})).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.UpdateCustomer(ctx, userCaller("maxmuster"), customer.ID, 3, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "maxneu", output.Customer.Username)
}

func TestCustomerWriteService_UpdateCustomer_UsernameTaken(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	input := testUpdateInput(customer)
	input.Username = "taken"

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.customerRepo.EXPECT().ExistsByUsername(ctx, "taken", customer.ID).Return(true, nil)

	output, err := fx.service.UpdateCustomer(ctx, adminCaller(), customer.ID, 3, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameExists))
}

func TestCustomerWriteService_UpdateCustomer_VersionOutdated(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	output, err := fx.service.UpdateCustomer(ctx, adminCaller(), customer.ID, 2, testUpdateInput(customer))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVersionOutdated))
}

func TestCustomerWriteService_UpdateCustomer_VersionAhead(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	output, err := fx.service.UpdateCustomer(ctx, adminCaller(), customer.ID, 4, testUpdateInput(customer))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrVersionAhead))
}

func TestCustomerWriteService_UpdateCustomer_StrangerForbidden(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	output, err := fx.service.UpdateCustomer(ctx, userCaller("someoneelse"), customer.ID, 3, testUpdateInput(customer))

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccessForbidden))
}

func TestCustomerWriteService_UpdateCustomer_NotFound(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.customerRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCustomerNotFound)

	output, err := fx.service.UpdateCustomer(ctx, adminCaller(), id, 0, usecase.UpdateCustomerInput{})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))
}

func TestCustomerWriteService_DeleteCustomer_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	contactID := uuid.New()
	customer.ContactIDs = []uuid.UUID{contactID}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.idp.EXPECT().DeleteAccount(ctx, customer.Username).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().DeleteByIDs(ctx, []uuid.UUID{contactID}).Return(nil)
			mockCustomerRepo.EXPECT().Delete(ctx, customer.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCustomer(ctx, adminCaller(), customer.ID, 3)

	require.NoError(t, err)
}

func TestCustomerWriteService_DeleteCustomer_NonAdminForbidden(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	err := fx.service.DeleteCustomer(ctx, userCaller("maxmuster"), customer.ID, 3)

	assert.True(t, errors.Is(err, domainerrors.ErrAccessForbidden))
}

func TestCustomerWriteService_DeleteCustomer_AdminOwnRecord(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	caller := adminCaller()
	caller.Username = customer.Username

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.idp.EXPECT().DeleteAccount(ctx, customer.Username).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockCustomerRepo.EXPECT().Delete(ctx, customer.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteCustomer(ctx, caller, customer.ID, 3)

	require.NoError(t, err)
}

func TestCustomerWriteService_DeleteCustomer_ProviderFailureAborts(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.idp.EXPECT().DeleteAccount(ctx, customer.Username).Return(errors.New("provider down"))

	err := fx.service.DeleteCustomer(ctx, adminCaller(), customer.ID, 3)

	assert.True(t, errors.Is(err, domainerrors.ErrInternal))
}

func TestCustomerWriteService_AddContact_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	input := usecase.ContactInput{
		LastName:         "Schmidt",
		FirstName:        "Anna",
		Relationship:     entity.RelPartner,
		WithdrawalLimit:  500,
		EmergencyContact: true,
		StartDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil)
			mockCustomerRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	contact, err := fx.service.AddContact(ctx, userCaller("maxmuster"), customer.ID, input)

	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, 0, contact.Version)
	assert.Equal(t, "Anna", contact.FirstName)
	assert.Equal(t, 500, contact.WithdrawalLimit)
	assert.True(t, contact.EmergencyContact)
	assert.Equal(t, input.StartDate, contact.StartDate)
	assert.Equal(t, input.EndDate, contact.EndDate)
	assert.Equal(t, 4, customer.Version)
	assert.Equal(t, []uuid.UUID{contact.ID}, customer.ContactIDs)
}

func TestCustomerWriteService_AddContact_DuplicateName(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	existingID := uuid.New()
	customer.ContactIDs = []uuid.UUID{existingID}

	existing := &entity.Contact{
		ID:        existingID,
		FirstName: "anna",
		LastName:  "SCHMIDT",
	}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.contactRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{existingID}).Return([]*entity.Contact{existing}, nil)

	contact, err := fx.service.AddContact(ctx, adminCaller(), customer.ID, usecase.ContactInput{
		LastName:     "Schmidt",
		FirstName:    "Anna",
		Relationship: entity.RelRelative,
	})

	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrContactExists))
}

func TestCustomerWriteService_AddContact_EndBeforeStart(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	contact, err := fx.service.AddContact(ctx, adminCaller(), customer.ID, usecase.ContactInput{
		LastName:  "Schmidt",
		FirstName: "Anna",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerWriteService_AddContact_NegativeWithdrawalLimit(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	contact, err := fx.service.AddContact(ctx, adminCaller(), customer.ID, usecase.ContactInput{
		LastName:        "Schmidt",
		FirstName:       "Anna",
		WithdrawalLimit: -1,
	})

	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCustomerWriteService_UpdateContact_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	contactID := uuid.New()
	customer.ContactIDs = []uuid.UUID{contactID}

	stored := &entity.Contact{
		ID:           contactID,
		Version:      1,
		LastName:     "Schmidt",
		FirstName:    "Anna",
		Relationship: entity.RelPartner,
	}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.contactRepo.EXPECT().FindByID(ctx, contactID).Return(stored, nil)
	fx.contactRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{contactID}).Return([]*entity.Contact{stored}, nil)
	fx.contactRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Contact")).Return(nil)

	input := usecase.ContactInput{
		LastName:         "Schmidt",
		FirstName:        "Anna",
		Relationship:     entity.RelRelative,
		WithdrawalLimit:  250,
		EmergencyContact: true,
		StartDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	contact, err := fx.service.UpdateContact(ctx, userCaller("maxmuster"), customer.ID, contactID, 1, input)

	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, 2, contact.Version)
	assert.Equal(t, entity.RelRelative, contact.Relationship)
	assert.Equal(t, 250, contact.WithdrawalLimit)
	assert.True(t, contact.EmergencyContact)
	assert.Equal(t, input.StartDate, contact.StartDate)
	assert.Equal(t, input.EndDate, contact.EndDate)
	// The customer aggregate stays untouched.
	assert.Equal(t, 3, customer.Version)
}

func TestCustomerWriteService_UpdateContact_NotAttached(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	contact, err := fx.service.UpdateContact(ctx, adminCaller(), customer.ID, uuid.New(), 0, usecase.ContactInput{})

	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestCustomerWriteService_RemoveContact_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	first := uuid.New()
	second := uuid.New()
	customer.ContactIDs = []uuid.UUID{first, second}

	stored := &entity.Contact{ID: first, Version: 5, LastName: "Schmidt", FirstName: "Anna"}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.contactRepo.EXPECT().FindByID(ctx, first).Return(stored, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
			mockContactRepo := mockRepo.NewMockContactRepository(t)

			mockFactory.EXPECT().NewCustomerRepository().Return(mockCustomerRepo)
			mockFactory.EXPECT().NewContactRepository().Return(mockContactRepo)

			mockContactRepo.EXPECT().Delete(ctx, first).Return(nil)
			mockCustomerRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RemoveContact(ctx, userCaller("maxmuster"), customer.ID, first, 3, 5)

	require.NoError(t, err)
	assert.Equal(t, 4, customer.Version)
	assert.Equal(t, []uuid.UUID{second}, customer.ContactIDs)
}

func TestCustomerWriteService_RemoveContact_ContactVersionOutdated(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	contactID := uuid.New()
	customer.ContactIDs = []uuid.UUID{contactID}

	stored := &entity.Contact{ID: contactID, Version: 5, LastName: "Schmidt", FirstName: "Anna"}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)
	fx.contactRepo.EXPECT().FindByID(ctx, contactID).Return(stored, nil)

	err := fx.service.RemoveContact(ctx, adminCaller(), customer.ID, contactID, 3, 4)

	assert.True(t, errors.Is(err, domainerrors.ErrVersionOutdated))
	assert.Equal(t, []uuid.UUID{contactID}, customer.ContactIDs)
}

func TestCustomerWriteService_RemoveContact_CustomerVersionOutdated(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()
	contactID := uuid.New()
	customer.ContactIDs = []uuid.UUID{contactID}

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	err := fx.service.RemoveContact(ctx, adminCaller(), customer.ID, contactID, 2, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrVersionOutdated))
}

func TestCustomerWriteService_RemoveContact_UnknownContact(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()
	customer := testCustomer()

	fx.customerRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil)

	err := fx.service.RemoveContact(ctx, adminCaller(), customer.ID, uuid.New(), 3, 0)

	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestCustomerWriteService_UpdatePassword_Success(t *testing.T) {
	fx := createTestWriteService(t)

	ctx := context.Background()

	fx.idp.EXPECT().ResetPassword(ctx, "maxmuster", "N3w!Secret").Return(nil)

	err := fx.service.UpdatePassword(ctx, basicCaller("maxmuster"), "N3w!Secret")

	require.NoError(t, err)
}

func TestCustomerWriteService_UpdatePassword_WeakPassword(t *testing.T) {
	fx := createTestWriteService(t)

	err := fx.service.UpdatePassword(context.Background(), basicCaller("maxmuster"), "alllowercase")

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordInvalid))
}

func TestCustomerWriteService_UpdatePassword_Unauthenticated(t *testing.T) {
	fx := createTestWriteService(t)

	err := fx.service.UpdatePassword(context.Background(), access.Identity{}, "N3w!Secret")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
