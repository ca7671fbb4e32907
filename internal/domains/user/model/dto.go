package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxNameLength     = 50
	MinUsernameLength = 4
	MaxUsernameLength = 30
	MinPasswordLength = 5
	MaxPasswordLength = 100
)

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Identifier *uuid.UUID `json:"id,omitempty"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Username   string     `json:"username"`
	Password   string     `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.LastName, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.Username, validation.Required, validation.RuneLength(MinUsernameLength, MaxUsernameLength)),
		validation.Field(&r.Password, validation.Required, validation.RuneLength(MinPasswordLength, MaxPasswordLength)),
	)
}

// TokenResponse is returned by POST /auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}
