// Package filter defines the search filter tree for customer queries.
// The tree is storage-agnostic; the persistence layer compiles it into
// SQL conditions.
package filter

import (
	"strconv"
	"strings"
)

// Field is a filterable customer attribute. The set is closed; anything else
// is rejected before a query is built.
type Field string

const (
	FieldID             Field = "id"
	FieldVersion        Field = "version"
	FieldLastName       Field = "lastName"
	FieldFirstName      Field = "firstName"
	FieldEmail          Field = "email"
	FieldUsername       Field = "username"
	FieldPhoneNumber    Field = "phoneNumber"
	FieldTierLevel      Field = "tierLevel"
	FieldSubscribed     Field = "subscribed"
	FieldBirthdate      Field = "birthdate"
	FieldGender         Field = "gender"
	FieldMaritalStatus  Field = "maritalStatus"
	FieldCustomerState  Field = "customerState"
	FieldStreet         Field = "address.street"
	FieldHouseNumber    Field = "address.houseNumber"
	FieldZipCode        Field = "address.zipCode"
	FieldCity           Field = "address.city"
	FieldState          Field = "address.state"
	FieldCountry        Field = "address.country"
	FieldInterests      Field = "interests"
	FieldContactOptions Field = "contactOptions"
)

// IsValid checks if the Field is a filterable attribute.
func (f Field) IsValid() bool {
	switch f {
	case FieldID, FieldVersion, FieldLastName, FieldFirstName, FieldEmail,
		FieldUsername, FieldPhoneNumber, FieldTierLevel, FieldSubscribed,
		FieldBirthdate, FieldGender, FieldMaritalStatus, FieldCustomerState,
		FieldStreet, FieldHouseNumber, FieldZipCode, FieldCity,
		FieldState, FieldCountry,
		FieldInterests, FieldContactOptions:
		return true
	default:
		return false
	}
}

// Operator is a leaf comparison.
type Operator string

const (
	OpEQ     Operator = "EQ"
	OpIn     Operator = "IN"
	OpGTE    Operator = "GTE"
	OpLTE    Operator = "LTE"
	OpLike   Operator = "LIKE"
	OpPrefix Operator = "PREFIX"
)

// Expr is one node of the filter tree. A node is either a leaf (Field,
// Operator and Value all set) or a composite (exactly one of And, Or, Nor
// non-empty). A nil *Expr matches every record; a leaf with any part missing
// contributes no condition at all.
type Expr struct {
	Field    Field    `json:"field,omitempty"`
	Operator Operator `json:"operator,omitempty"`
	Value    string   `json:"value,omitempty"`

	And []*Expr `json:"and,omitempty"`
	Or  []*Expr `json:"or,omitempty"`
	Nor []*Expr `json:"nor,omitempty"`
}

// IsLeaf reports whether the node carries a complete comparison.
func (e *Expr) IsLeaf() bool {
	return e != nil && e.Field != "" && e.Operator != "" && e.Value != ""
}

// Coerce converts a raw filter value to the type it compares as: values with
// a decimal point become float64, other numerics become int, everything else
// stays a string. Coercion happens before the operator is bound, so "30"
// compares numerically even against a text column.
func Coerce(raw string) any {
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}

		return raw
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}

	return raw
}

// SplitList splits an IN value on commas, trims each element and coerces it.
func SplitList(raw string) []any {
	parts := strings.Split(raw, ",")
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		values = append(values, Coerce(p))
	}

	return values
}
