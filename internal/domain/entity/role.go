// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	domainerrors "crm/internal/domain/errors"
)

// Role represents the type of role a caller can have in the system.
type Role string

const (
	// RoleAdmin grants full access to every customer record.
	RoleAdmin Role = "ADMIN"
	// RoleUser grants access to collection reads.
	RoleUser Role = "USER"
	// RoleSupreme is the subscription role for tier 3 customers.
	RoleSupreme Role = "SUPREME"
	// RoleElite is the subscription role for tier 2 customers.
	RoleElite Role = "ELITE"
	// RoleBasic is the subscription role for tier 1 customers.
	RoleBasic Role = "BASIC"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleSupreme, RoleElite, RoleBasic:
		return true
	default:
		return false
	}
}

// ProviderName is the role name as registered in the identity provider realm.
func (r Role) ProviderName() string {
	switch r {
	case RoleSupreme:
		return "Supreme"
	case RoleElite:
		return "Elite"
	case RoleBasic:
		return "Basic"
	default:
		return string(r)
	}
}

// RoleForTier maps a customer tier to its subscription role. Tiers outside
// 1 to 3 are rejected as an invalid argument.
func RoleForTier(tier int) (Role, error) {
	switch tier {
	case 3:
		return RoleSupreme, nil
	case 2:
		return RoleElite, nil
	case 1:
		return RoleBasic, nil
	default:
		return "", domainerrors.ErrInvalidArgument.WithDetailsf("tier %d is not in range 1-3", tier)
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out unknown role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
