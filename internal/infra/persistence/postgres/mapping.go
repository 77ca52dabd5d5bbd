package postgres

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"crm/internal/domain/entity"
	"crm/internal/infra/persistence/model"
)

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	interests := make([]entity.Interest, len(m.Interests))
	for i, v := range m.Interests {
		interests[i] = entity.Interest(v)
	}
	options := make([]entity.ContactOption, len(m.ContactOptions))
	for i, v := range m.ContactOptions {
		options[i] = entity.ContactOption(v)
	}

	return &entity.Customer{
		ID:            m.ID,
		Version:       m.Version,
		LastName:      m.LastName,
		FirstName:     m.FirstName,
		Email:         m.Email,
		Username:      m.Username,
		PhoneNumber:   m.PhoneNumber,
		Tier:          m.Tier,
		IsSubscribed:  m.IsSubscribed,
		Birthdate:     m.Birthdate,
		Gender:        entity.Gender(m.Gender),
		MaritalStatus: entity.MaritalStatus(m.MaritalStatus),
		CustomerState: entity.CustomerState(m.CustomerState),
		Address: entity.Address{
			Street:  m.Address.Street,
			HouseNo: m.Address.HouseNo,
			ZipCode: m.Address.ZipCode,
			City:    m.Address.City,
			State:   m.Address.State,
			Country: m.Address.Country,
		},
		Interests:      interests,
		ContactOptions: options,
		ContactIDs:     []uuid.UUID(m.ContactIDs),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	interests := make([]string, len(customer.Interests))
	for i, v := range customer.Interests {
		interests[i] = string(v)
	}
	options := make([]string, len(customer.ContactOptions))
	for i, v := range customer.ContactOptions {
		options[i] = string(v)
	}

	return &model.CustomerModel{
		ID:            customer.ID,
		Version:       customer.Version,
		LastName:      customer.LastName,
		FirstName:     customer.FirstName,
		Email:         customer.Email,
		Username:      customer.Username,
		PhoneNumber:   customer.PhoneNumber,
		Tier:          customer.Tier,
		IsSubscribed:  customer.IsSubscribed,
		Birthdate:     customer.Birthdate,
		Gender:        string(customer.Gender),
		MaritalStatus: string(customer.MaritalStatus),
		CustomerState: string(customer.CustomerState),
		Address: model.AddressModel{
			Street:  customer.Address.Street,
			HouseNo: customer.Address.HouseNo,
			ZipCode: customer.Address.ZipCode,
			City:    customer.Address.City,
			State:   customer.Address.State,
			Country: customer.Address.Country,
		},
		Interests:      datatypes.NewJSONSlice(interests),
		ContactOptions: datatypes.NewJSONSlice(options),
		ContactIDs:     datatypes.NewJSONSlice(customer.ContactIDs),
		CreatedAt:      customer.CreatedAt,
		UpdatedAt:      customer.UpdatedAt,
	}
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	contact := &entity.Contact{
		ID:               m.ID,
		Version:          m.Version,
		LastName:         m.LastName,
		FirstName:        m.FirstName,
		Relationship:     entity.Relationship(m.Relationship),
		WithdrawalLimit:  m.WithdrawalLimit,
		EmergencyContact: m.EmergencyContact,
		StartDate:        m.StartDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.EndDate != nil {
		contact.EndDate = *m.EndDate
	}

	return contact
}

func fromContactDomain(contact *entity.Contact) *model.ContactModel {
	m := &model.ContactModel{
		ID:               contact.ID,
		Version:          contact.Version,
		LastName:         contact.LastName,
		FirstName:        contact.FirstName,
		Relationship:     string(contact.Relationship),
		WithdrawalLimit:  contact.WithdrawalLimit,
		EmergencyContact: contact.EmergencyContact,
		StartDate:        contact.StartDate,
		CreatedAt:        contact.CreatedAt,
		UpdatedAt:        contact.UpdatedAt,
	}
	if !contact.EndDate.IsZero() {
		endDate := contact.EndDate
		m.EndDate = &endDate
	}

	return m
}
