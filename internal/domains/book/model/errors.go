package model

import (
	"github.com/google/uuid"

	"bookshelf-api/internal/shared/apperror"
)

var (
	ErrBookNotFound       = apperror.New(apperror.ErrNotFound, "book not found")
	ErrBookExists         = apperror.New(apperror.ErrDuplicate, "book with this identifier already exists")
	ErrVersionConflict    = apperror.New(apperror.ErrConflict, "book was modified concurrently")
	ErrSearchParamMissing = apperror.New(apperror.ErrBadRequest, "Query parameter 'isbn' or 'title' is required")
)

// UnknownAuthorError reports an author identifier that does not exist.
func UnknownAuthorError(id uuid.UUID) error {
	return apperror.New(apperror.ErrBadRequest, "unknown author "+id.String())
}
