package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a sub-resource of a customer: a related natural person with its
// own identity and its own optimistic-lock version. EndDate is optional and
// zero when the relationship is open-ended.
type Contact struct {
	ID               uuid.UUID
	Version          int
	LastName         string
	FirstName        string
	Relationship     Relationship
	WithdrawalLimit  int
	EmergencyContact bool
	StartDate        time.Time
	EndDate          time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DateRangeValid reports whether the end date, when set, does not precede the
// start date.
func (c *Contact) DateRangeValid() bool {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return true
	}

	return !c.EndDate.Before(c.StartDate)
}

// EquivalentTo reports whether other carries the same first and last name,
// ignoring case. Two equivalent contacts may not coexist on one customer.
func (c *Contact) EquivalentTo(other *Contact) bool {
	return strings.EqualFold(c.FirstName, other.FirstName) &&
		strings.EqualFold(c.LastName, other.LastName)
}
