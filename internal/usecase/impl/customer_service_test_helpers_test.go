package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	mockRepo "crm/internal/mocks/repository"
	mockSvc "crm/internal/mocks/service"
	"crm/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeServiceFixtures holds all test dependencies for write service tests.
type writeServiceFixtures struct {
	service      usecase.CustomerWriteUsecase
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockCustomerRepository
	contactRepo  *mockRepo.MockContactRepository
	idp          *mockSvc.MockIdentityProvider
	publisher    *mockSvc.MockEventPublisher
}

func createTestWriteService(t *testing.T) writeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	idp := mockSvc.NewMockIdentityProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewCustomerWriteService(CustomerWriteServiceParams{
		TxManager:    txManager,
		CustomerRepo: customerRepo,
		ContactRepo:  contactRepo,
		IdP:          idp,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return writeServiceFixtures{
		service:      service,
		txManager:    txManager,
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
		idp:          idp,
		publisher:    publisher,
	}
}

// readServiceFixtures holds all test dependencies for read service tests.
type readServiceFixtures struct {
	service      usecase.CustomerReadUsecase
	customerRepo *mockRepo.MockCustomerRepository
	contactRepo  *mockRepo.MockContactRepository
}

func createTestReadService(t *testing.T) readServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)

	service := NewCustomerReadService(CustomerReadServiceParams{
		CustomerRepo: customerRepo,
		ContactRepo:  contactRepo,
		Logger:       newDiscardLogger(),
	})

	return readServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		contactRepo:  contactRepo,
	}
}

func adminCaller() access.Identity {
	return access.Identity{Username: "admin", Roles: entity.Roles{entity.RoleAdmin}}
}

func userCaller(username string) access.Identity {
	return access.Identity{Username: username, Roles: entity.Roles{entity.RoleUser}}
}

func basicCaller(username string) access.Identity {
	return access.Identity{Username: username, Roles: entity.Roles{entity.RoleBasic}}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:            uuid.New(),
		Version:       3,
		LastName:      "Muster",
		FirstName:     "Max",
		Email:         "max@example.com",
		Username:      "maxmuster",
		PhoneNumber:   "+4915112345678",
		Tier:          2,
		IsSubscribed:  true,
		Birthdate:     time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
		Gender:        entity.GenderMale,
		MaritalStatus: entity.MaritalMarried,
		CustomerState: entity.StateActive,
		Address: entity.Address{
			Street:  "Hauptstrasse",
			HouseNo: "12a",
			ZipCode: "10115",
			City:    "Berlin",
			State:   "Berlin",
			Country: "Germany",
		},
		Interests:      []entity.Interest{entity.InterestInvestments},
		ContactOptions: []entity.ContactOption{entity.ContactEmail},
		ContactIDs:     []uuid.UUID{},
		CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testUpdateInput(customer *entity.Customer) usecase.UpdateCustomerInput {
	return usecase.UpdateCustomerInput{
		LastName:      customer.LastName,
		FirstName:     customer.FirstName,
		Email:         customer.Email,
		Username:      customer.Username,
		PhoneNumber:   customer.PhoneNumber,
		Tier:          customer.Tier,
		IsSubscribed:  customer.IsSubscribed,
		Birthdate:     customer.Birthdate,
		Gender:        customer.Gender,
		MaritalStatus: customer.MaritalStatus,
		CustomerState: customer.CustomerState,
		Address: usecase.AddressInput{
			Street:      customer.Address.Street,
			HouseNumber: customer.Address.HouseNo,
			ZipCode:     customer.Address.ZipCode,
			City:        customer.Address.City,
			State:       customer.Address.State,
			Country:     customer.Address.Country,
		},
		Interests:      customer.Interests,
		ContactOptions: customer.ContactOptions,
	}
}
