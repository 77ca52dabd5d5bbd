package entity

import domainerrors "crm/internal/domain/errors"

// CheckVersion compares a version supplied by the caller against the stored
// one. Writes are accepted only on an exact match; a persisted write then
// stores current+1. Both mismatch directions are reported distinctly so the
// caller can tell a stale client from one that skipped ahead.
func CheckVersion(supplied, current int) error {
	switch {
	case supplied < current:
		return domainerrors.ErrVersionOutdated.WithDetailsf("supplied %d, stored %d", supplied, current)
	case supplied > current:
		return domainerrors.ErrVersionAhead.WithDetailsf("supplied %d, stored %d", supplied, current)
	default:
		return nil
	}
}
