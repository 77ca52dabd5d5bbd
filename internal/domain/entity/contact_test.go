package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContactEquivalentTo_IgnoresCase(t *testing.T) {
	a := &Contact{FirstName: "Anna", LastName: "Schmidt"}
	b := &Contact{FirstName: "anna", LastName: "SCHMIDT"}
	c := &Contact{FirstName: "Anna", LastName: "Weber"}

	assert.True(t, a.EquivalentTo(b))
	assert.False(t, a.EquivalentTo(c))
}

func TestContactDateRangeValid(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Contact{StartDate: start}).DateRangeValid())
	assert.True(t, (&Contact{StartDate: start, EndDate: start}).DateRangeValid())
	assert.True(t, (&Contact{StartDate: start, EndDate: start.AddDate(1, 0, 0)}).DateRangeValid())
	assert.False(t, (&Contact{StartDate: start, EndDate: start.AddDate(0, 0, -1)}).DateRangeValid())
}

func TestCustomerContactIDs_InsertionOrder(t *testing.T) {
	customer := &Customer{ContactIDs: []uuid.UUID{}}
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	customer.AddContactID(first)
	customer.AddContactID(second)
	customer.AddContactID(third)

	assert.Equal(t, []uuid.UUID{first, second, third}, customer.ContactIDs)
	assert.True(t, customer.HasContact(second))

	assert.True(t, customer.RemoveContactID(second))
	assert.Equal(t, []uuid.UUID{first, third}, customer.ContactIDs)
	assert.False(t, customer.RemoveContactID(second))
}
