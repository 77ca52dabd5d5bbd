// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the aggregate root of the system. Contacts are referenced by ID
// in ContactIDs; the order of that slice is the insertion order and is
// preserved across reads.
type Customer struct {
	ID             uuid.UUID
	Version        int
	LastName       string
	FirstName      string
	Email          string
	Username       string
	PhoneNumber    string
	Tier           int
	IsSubscribed   bool
	Birthdate      time.Time
	Gender         Gender
	MaritalStatus  MaritalStatus
	CustomerState  CustomerState
	Address        Address
	Interests      []Interest
	ContactOptions []ContactOption
	ContactIDs     []uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Address is the customer's postal address, embedded in the aggregate.
type Address struct {
	Street  string
	HouseNo string
	ZipCode string
	City    string
	State   string
	Country string
}

// HasContact reports whether contactID is referenced by this customer.
func (c *Customer) HasContact(contactID uuid.UUID) bool {
	for _, id := range c.ContactIDs {
		if id == contactID {
			return true
		}
	}

	return false
}

// AddContactID appends contactID, keeping insertion order.
func (c *Customer) AddContactID(contactID uuid.UUID) {
	c.ContactIDs = append(c.ContactIDs, contactID)
}

// RemoveContactID removes contactID and reports whether it was present.
func (c *Customer) RemoveContactID(contactID uuid.UUID) bool {
	for i, id := range c.ContactIDs {
		if id == contactID {
			c.ContactIDs = append(c.ContactIDs[:i], c.ContactIDs[i+1:]...)
			return true
		}
	}

	return false
}
