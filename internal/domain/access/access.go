// Package access implements the authorization gate that guards every
// customer operation. The gate only decides; callers supply the caller
// identity and, for record-scoped actions, the owning username.
package access

import (
	"strings"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
)

// Action is the kind of operation being authorized.
type Action string

const (
	// ActionRead is a single-record read.
	ActionRead Action = "read"
	// ActionList is a collection read or search.
	ActionList Action = "list"
	// ActionModify is any mutation except delete.
	ActionModify Action = "modify"
	// ActionDelete removes a customer record.
	ActionDelete Action = "delete"
)

// Identity is the authenticated caller as resolved from the access token.
type Identity struct {
	Username string
	Roles    entity.Roles
}

// IsAdmin reports whether the caller carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Roles.Contains(entity.RoleAdmin)
}

// Owns reports whether the caller is the owner of the record belonging to
// ownerUsername. Usernames are stored lowercased; compare case-insensitively
// so tokens with original casing still match.
func (id Identity) Owns(ownerUsername string) bool {
	return ownerUsername != "" && strings.EqualFold(id.Username, ownerUsername)
}

// Authorize decides whether the caller may perform action on the record owned
// by ownerUsername (ignored for ActionList). Denials are ErrAccessForbidden
// carrying the caller's role set.
//
// Rules: delete requires admin. Other mutations require admin or ownership.
// Collection reads require admin or the user role. Single reads require only
// an authenticated caller, except that non-admins without the user role may
// read their own record only.
func Authorize(caller Identity, action Action, ownerUsername string) error {
	switch action {
	case ActionDelete:
		if caller.IsAdmin() {
			return nil
		}
	case ActionModify:
		if caller.IsAdmin() || caller.Owns(ownerUsername) {
			return nil
		}
	case ActionList:
		if caller.IsAdmin() || caller.Roles.Contains(entity.RoleUser) {
			return nil
		}
	case ActionRead:
		if caller.IsAdmin() || caller.Roles.Contains(entity.RoleUser) || caller.Owns(ownerUsername) {
			return nil
		}
	}

	return domainerrors.ErrAccessForbidden.WithDetailsf(
		"roles %v may not %s", caller.Roles.ToStrings(), action)
}
