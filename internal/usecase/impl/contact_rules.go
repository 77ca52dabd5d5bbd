package impl

import (
	"github.com/google/uuid"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
)

// ensureNoEquivalentContact rejects candidate when another contact with the
// same first and last name already exists. excludeID skips the contact being
// updated so it does not collide with itself.
func ensureNoEquivalentContact(existing []*entity.Contact, candidate *entity.Contact, excludeID uuid.UUID) error {
	for _, contact := range existing {
		if contact.ID == excludeID {
			continue
		}
		if contact.EquivalentTo(candidate) {
			return domainerrors.ErrContactExists.WithDetailsf(
				"contact %s %s already exists", candidate.FirstName, candidate.LastName)
		}
	}

	return nil
}
