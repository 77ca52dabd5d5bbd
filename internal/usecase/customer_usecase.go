// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"crm/internal/domain/access"
	"crm/internal/domain/entity"
	"crm/internal/domain/filter"
	"crm/internal/domain/repository"
	"crm/internal/domain/service"
)

// --- Input DTOs ---

// AddressInput carries the postal address of a customer.
type AddressInput struct {
	Street      string
	HouseNumber string
	ZipCode     string
	City        string
	State       string
	Country     string
}

// CreateCustomerInput defines the data required to register a new customer.
// Registration is the only unauthenticated mutation.
type CreateCustomerInput struct {
	LastName       string
	FirstName      string
	Email          string
	Username       string
	Password       string
	PhoneNumber    string
	Tier           int
	IsSubscribed   bool
	Birthdate      time.Time
	Gender         entity.Gender
	MaritalStatus  entity.MaritalStatus
	Address        AddressInput
	Interests      []entity.Interest
	ContactOptions []entity.ContactOption
}

// UpdateCustomerInput defines the mutable fields of an existing customer.
// The password is managed by its own operation. A changed username is
// lowercased and re-checked for uniqueness like on registration.
type UpdateCustomerInput struct {
	LastName       string
	FirstName      string
	Email          string
	Username       string
	PhoneNumber    string
	Tier           int
	IsSubscribed   bool
	Birthdate      time.Time
	Gender         entity.Gender
	MaritalStatus  entity.MaritalStatus
	CustomerState  entity.CustomerState
	Address        AddressInput
	Interests      []entity.Interest
	ContactOptions []entity.ContactOption
}

// ContactInput defines the data of a contact sub-resource. EndDate is
// optional; when set it must not precede StartDate.
type ContactInput struct {
	LastName         string
	FirstName        string
	Relationship     entity.Relationship
	WithdrawalLimit  int
	EmergencyContact bool
	StartDate        time.Time
	EndDate          time.Time
}

// QueryInput defines a collection read: a filter tree plus paging.
type QueryInput struct {
	Filter *filter.Expr
	Page   repository.PageRequest
}

// --- Output DTOs ---

// CustomerOutput returns one customer aggregate.
type CustomerOutput struct {
	Customer *entity.Customer
}

// CustomerPageOutput returns one page of a collection read.
type CustomerPageOutput struct {
	Customers  []*entity.Customer
	Page       int
	Size       int
	TotalCount int64
}

// CustomerReadUsecase defines the read operations on customers.
// This is the contract that the delivery layer depends on.
type CustomerReadUsecase interface {
	// GetCustomer loads a single customer by ID.
	GetCustomer(ctx context.Context, caller access.Identity, id uuid.UUID) (*CustomerOutput, error)

	// QueryCustomers runs a filtered, paged collection read.
	QueryCustomers(ctx context.Context, caller access.Identity, input QueryInput) (*CustomerPageOutput, error)

	// GetContacts returns the customer's contacts in insertion order.
	GetContacts(ctx context.Context, caller access.Identity, customerID uuid.UUID) ([]*entity.Contact, error)
}

// CustomerWriteUsecase defines the mutations on customers. All guarded
// operations take the version the caller believes is current.
type CustomerWriteUsecase interface {
	// CreateCustomer registers a new customer and its provider account.
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*CustomerOutput, error)

	// UpdateCustomer replaces the mutable fields of a customer.
	UpdateCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int, input UpdateCustomerInput) (*CustomerOutput, error)

	// DeleteCustomer removes a customer, its contacts and its provider account.
	DeleteCustomer(ctx context.Context, caller access.Identity, id uuid.UUID, version int) error

	// AddContact appends a new contact to the customer. No version
	// precondition applies; the customer version still advances.
	AddContact(ctx context.Context, caller access.Identity, customerID uuid.UUID, input ContactInput) (*entity.Contact, error)

	// UpdateContact replaces the fields of an existing contact. The version
	// guards the contact, not the customer.
	UpdateContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, contactVersion int, input ContactInput) (*entity.Contact, error)

	// RemoveContact detaches and deletes a contact. Both the customer and
	// the contact version must match their stored values.
	RemoveContact(ctx context.Context, caller access.Identity, customerID, contactID uuid.UUID, customerVersion, contactVersion int) error

	// UpdatePassword sets a new password for the calling customer.
	UpdatePassword(ctx context.Context, caller access.Identity, newPassword string) error
}

// AuthUsecase exchanges credentials for tokens.
type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*service.TokenPair, error)
}
