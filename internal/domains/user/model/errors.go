package model

import "bookshelf-api/internal/shared/apperror"

var (
	ErrUserNotFound   = apperror.New(apperror.ErrNotFound, "user not found")
	ErrUsernameTaken  = apperror.New(apperror.ErrDuplicate, "username already exists")
	ErrUserExists     = apperror.New(apperror.ErrDuplicate, "user with this identifier already exists")
	ErrTechnicalUser  = apperror.New(apperror.ErrAccessDenied, "the technical user cannot be deleted")
	ErrBadCredentials = apperror.New(apperror.ErrUnauthorized, "bad credentials")
)
