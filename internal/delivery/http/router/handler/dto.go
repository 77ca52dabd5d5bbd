package handler

import (
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"
)

const dateLayout = "2006-01-02"

// --- Requests ---

type addressRequest struct {
	Street      string `json:"street" validate:"required"`
	HouseNumber string `json:"houseNumber" validate:"required"`
	ZipCode     string `json:"zipCode" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

type createCustomerRequest struct {
	LastName       string         `json:"lastName" validate:"required"`
	FirstName      string         `json:"firstName" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Username       string         `json:"username" validate:"required,min=4,max=20,alphanum"`
	Password       string         `json:"password" validate:"required"`
	PhoneNumber    string         `json:"phoneNumber" validate:"omitempty,min=3"`
	Tier           int            `json:"tier" validate:"required,min=1,max=3"`
	IsSubscribed   bool           `json:"isSubscribed"`
	Birthdate      string         `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender         string         `json:"gender" validate:"required,oneof=MALE FEMALE DIVERSE"`
	MaritalStatus  string         `json:"maritalStatus" validate:"required,oneof=SINGLE MARRIED DIVORCED WIDOWED OTHER"`
	Address        addressRequest `json:"address" validate:"required"`
	Interests      []string       `json:"interests" validate:"dive,oneof=INVESTMENTS SAVING_AND_FINANCE CREDIT_AND_DEBT BANK_PRODUCTS_AND_SERVICES FINANCIAL_EDUCATION_AND_COUNSELING REAL_ESTATE INSURANCE SUSTAINABLE_FINANCE TECHNOLOGY_AND_INNOVATION TRAVEL"`
	ContactOptions []string       `json:"contactOptions" validate:"dive,oneof=EMAIL PHONE LETTER SMS"`
}

type updateCustomerRequest struct {
	LastName       string         `json:"lastName" validate:"required"`
	FirstName      string         `json:"firstName" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Username       string         `json:"username" validate:"required,min=4,max=20,alphanum"`
	PhoneNumber    string         `json:"phoneNumber" validate:"omitempty,min=3"`
	Tier           int            `json:"tier" validate:"required,min=1,max=3"`
	IsSubscribed   bool           `json:"isSubscribed"`
	Birthdate      string         `json:"birthdate" validate:"required,datetime=2006-01-02"`
	Gender         string         `json:"gender" validate:"required,oneof=MALE FEMALE DIVERSE"`
	MaritalStatus  string         `json:"maritalStatus" validate:"required,oneof=SINGLE MARRIED DIVORCED WIDOWED OTHER"`
	CustomerState  string         `json:"customerState" validate:"required,oneof=ACTIVE BLOCKED INACTIVE CLOSED"`
	Address        addressRequest `json:"address" validate:"required"`
	Interests      []string       `json:"interests" validate:"dive,oneof=INVESTMENTS SAVING_AND_FINANCE CREDIT_AND_DEBT BANK_PRODUCTS_AND_SERVICES FINANCIAL_EDUCATION_AND_COUNSELING REAL_ESTATE INSURANCE SUSTAINABLE_FINANCE TECHNOLOGY_AND_INNOVATION TRAVEL"`
	ContactOptions []string       `json:"contactOptions" validate:"dive,oneof=EMAIL PHONE LETTER SMS"`
}

type contactRequest struct {
	LastName           string `json:"lastName" validate:"required"`
	FirstName          string `json:"firstName" validate:"required"`
	Relationship       string `json:"relationship" validate:"required,oneof=PARTNER BUSINESS_PARTNER RELATIVE COLLEAGUE PARENT SIBLING CHILD COUSIN"`
	WithdrawalLimit    int    `json:"withdrawalLimit" validate:"min=0"`
	IsEmergencyContact bool   `json:"isEmergencyContact"`
	StartDate          string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

type passwordRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Responses ---

type addressResponse struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	ZipCode     string `json:"zipCode"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

type customerResponse struct {
	ID             string          `json:"id"`
	Version        int             `json:"version"`
	LastName       string          `json:"lastName"`
	FirstName      string          `json:"firstName"`
	Email          string          `json:"email"`
	Username       string          `json:"username"`
	PhoneNumber    string          `json:"phoneNumber,omitempty"`
	Tier           int             `json:"tier"`
	IsSubscribed   bool            `json:"isSubscribed"`
	Birthdate      string          `json:"birthdate"`
	Gender         string          `json:"gender"`
	MaritalStatus  string          `json:"maritalStatus"`
	CustomerState  string          `json:"customerState"`
	Address        addressResponse `json:"address"`
	Interests      []string        `json:"interests"`
	ContactOptions []string        `json:"contactOptions"`
	ContactIDs     []string        `json:"contactIds"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type customerPageResponse struct {
	Items      []*customerResponse `json:"items"`
	Page       int                 `json:"page"`
	Size       int                 `json:"size"`
	TotalCount int64               `json:"totalCount"`
}

type contactResponse struct {
	ID                 string    `json:"id"`
	Version            int       `json:"version"`
	LastName           string    `json:"lastName"`
	FirstName          string    `json:"firstName"`
	Relationship       string    `json:"relationship"`
	WithdrawalLimit    int       `json:"withdrawalLimit"`
	IsEmergencyContact bool      `json:"isEmergencyContact"`
	StartDate          string    `json:"startDate,omitempty"`
	EndDate            string    `json:"endDate,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// --- Mapping ---

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidArgument.WithDetailsf("invalid date %q", raw)
	}

	return parsed, nil
}

func toAddressInput(req addressRequest) usecase.AddressInput {
	return usecase.AddressInput{
		Street:      req.Street,
		HouseNumber: req.HouseNumber,
		ZipCode:     req.ZipCode,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
	}
}

func toGender(value string) entity.Gender {
	return entity.Gender(value)
}

func toMaritalStatus(value string) entity.MaritalStatus {
	return entity.MaritalStatus(value)
}

func toCustomerState(value string) entity.CustomerState {
	return entity.CustomerState(value)
}

func toRelationship(value string) entity.Relationship {
	return entity.Relationship(value)
}

func toInterests(values []string) []entity.Interest {
	interests := make([]entity.Interest, len(values))
	for i, v := range values {
		interests[i] = entity.Interest(v)
	}

	return interests
}

func toContactOptions(values []string) []entity.ContactOption {
	options := make([]entity.ContactOption, len(values))
	for i, v := range values {
		options[i] = entity.ContactOption(v)
	}

	return options
}

func toCustomerResponse(customer *entity.Customer) *customerResponse {
	interests := make([]string, len(customer.Interests))
	for i, v := range customer.Interests {
		interests[i] = string(v)
	}
	options := make([]string, len(customer.ContactOptions))
	for i, v := range customer.ContactOptions {
		options[i] = string(v)
	}
	contactIDs := make([]string, len(customer.ContactIDs))
	for i, id := range customer.ContactIDs {
		contactIDs[i] = id.String()
	}

	birthdate := ""
	if !customer.Birthdate.IsZero() {
		birthdate = customer.Birthdate.Format(dateLayout)
	}

	return &customerResponse{
		ID:             customer.ID.String(),
		Version:        customer.Version,
		LastName:       customer.LastName,
		FirstName:      customer.FirstName,
		Email:          customer.Email,
		Username:       customer.Username,
		PhoneNumber:    customer.PhoneNumber,
		Tier:           customer.Tier,
		IsSubscribed:   customer.IsSubscribed,
		Birthdate:      birthdate,
		Gender:         string(customer.Gender),
		MaritalStatus:  string(customer.MaritalStatus),
		CustomerState:  string(customer.CustomerState),
		Address: addressResponse{
			Street:      customer.Address.Street,
			HouseNumber: customer.Address.HouseNo,
			ZipCode:     customer.Address.ZipCode,
			City:        customer.Address.City,
			State:       customer.Address.State,
			Country:     customer.Address.Country,
		},
		Interests:      interests,
		ContactOptions: options,
		ContactIDs:     contactIDs,
		CreatedAt:      customer.CreatedAt,
		UpdatedAt:      customer.UpdatedAt,
	}
}

func toContactResponse(contact *entity.Contact) *contactResponse {
	startDate := ""
	if !contact.StartDate.IsZero() {
		startDate = contact.StartDate.Format(dateLayout)
	}
	endDate := ""
	if !contact.EndDate.IsZero() {
		endDate = contact.EndDate.Format(dateLayout)
	}

	return &contactResponse{
		ID:                 contact.ID.String(),
		Version:            contact.Version,
		LastName:           contact.LastName,
		FirstName:          contact.FirstName,
		Relationship:       string(contact.Relationship),
		WithdrawalLimit:    contact.WithdrawalLimit,
		IsEmergencyContact: contact.EmergencyContact,
		StartDate:          startDate,
		EndDate:            endDate,
		CreatedAt:          contact.CreatedAt,
		UpdatedAt:          contact.UpdatedAt,
	}
}
