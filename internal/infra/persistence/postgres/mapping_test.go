package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"crm/internal/domain/entity"
)

func TestCustomerMapping_RoundTrip(t *testing.T) {
	customer := &entity.Customer{
		ID:            uuid.New(),
		Version:       2,
		LastName:      "Muster",
		FirstName:     "Max",
		Email:         "max@example.com",
		Username:      "maxmuster",
		Tier:          2,
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
		Interests:      []entity.Interest{entity.InterestTravel},
		ContactOptions: []entity.ContactOption{entity.ContactEmail},
		ContactIDs:     []uuid.UUID{uuid.New()},
	}

	got := toCustomerDomain(fromCustomerDomain(customer))

	assert.Equal(t, customer, got)
}

func TestContactMapping_RoundTrip(t *testing.T) {
	contact := &entity.Contact{
		ID:               uuid.New(),
		Version:          1,
		LastName:         "Schmidt",
		FirstName:        "Anna",
		Relationship:     entity.RelPartner,
		WithdrawalLimit:  500,
		EmergencyContact: true,
		StartDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	got := toContactDomain(fromContactDomain(contact))

	assert.Equal(t, contact, got)
}

func TestContactMapping_OpenEndedDateRange(t *testing.T) {
	contact := &entity.Contact{
		ID:        uuid.New(),
		LastName:  "Schmidt",
		FirstName: "Anna",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	m := fromContactDomain(contact)
	assert.Nil(t, m.EndDate)

	got := toContactDomain(m)
	assert.True(t, got.EndDate.IsZero())
}
