package repository

import "crm/internal/domain/filter"

// Sort is one ordering criterion for a collection read. Field must be a
// valid filter field.
type Sort struct {
	Field filter.Field
	Desc  bool
}

// PageRequest selects one page of a collection read. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort []Sort
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize clamps page and size into their allowed ranges.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}

	return p
}

// Offset returns the row offset of this page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}
