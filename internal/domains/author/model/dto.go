package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const MaxNameLength = 50

// CreateAuthorRequest is the payload of POST /authors.
type CreateAuthorRequest struct {
	Identifier *uuid.UUID `json:"id,omitempty"`
	Gender     Gender     `json:"gender"`
	Firstname  string     `json:"firstname"`
	Lastname   string     `json:"lastname"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Gender,
			validation.Required,
			validation.In(GenderMale, GenderFemale).Error("must be one of MALE, FEMALE"),
		),
		validation.Field(&r.Firstname, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.Lastname, validation.Required, validation.RuneLength(1, MaxNameLength)),
	)
}
