package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 2000
)

var isbnRule = validation.NewStringRuleWithError(IsISBN13,
	validation.NewError("validation_isbn", "must be a valid ISBN-13"))

// CreateBookRequest is the payload of POST /books.
type CreateBookRequest struct {
	Identifier  *uuid.UUID  `json:"id,omitempty"`
	Title       string      `json:"title"`
	ISBN        string      `json:"isbn"`
	Description string      `json:"description"`
	Genre       Genre       `json:"genre"`
	Authors     []uuid.UUID `json:"authors"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules()...),
		validation.Field(&r.ISBN, isbnRules()...),
		validation.Field(&r.Description, validation.RuneLength(0, MaxDescriptionLength)),
		validation.Field(&r.Genre, genreRules()...),
	)
}

// UpdateBookRequest is the payload of PUT /books/{id}. Authors are not
// changed by an update.
type UpdateBookRequest struct {
	Title       string `json:"title"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Genre       Genre  `json:"genre"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, titleRules()...),
		validation.Field(&r.ISBN, isbnRules()...),
		validation.Field(&r.Description, validation.RuneLength(0, MaxDescriptionLength)),
		validation.Field(&r.Genre, genreRules()...),
	)
}

func titleRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.RuneLength(1, MaxTitleLength)}
}

func isbnRules() []validation.Rule {
	return []validation.Rule{validation.Required, validation.Length(MinISBNLength, MaxISBNLength), isbnRule}
}

func genreRules() []validation.Rule {
	allowed := make([]interface{}, len(Genres))
	for i, g := range Genres {
		allowed[i] = g
	}
	return []validation.Rule{
		validation.Required,
		validation.In(allowed...).Error("must be a valid genre"),
	}
}
