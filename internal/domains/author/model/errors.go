package model

import "bookshelf-api/internal/shared/apperror"

var (
	ErrAuthorNotFound = apperror.New(apperror.ErrNotFound, "author not found")
	ErrAuthorExists   = apperror.New(apperror.ErrDuplicate, "author with this identifier already exists")
)
