package model

import (
	"encoding/xml"

	"github.com/google/uuid"

	"bookshelf-api/internal/shared/response"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Author is immutable once created.
type Author struct {
	ID         int64     `json:"id"`
	Identifier uuid.UUID `json:"identifier"`
	Gender     Gender    `json:"gender"`
	Firstname  string    `json:"firstname"`
	Lastname   string    `json:"lastname"`
	Version    int64     `json:"version"`
}

type AuthorResource struct {
	XMLName   xml.Name       `json:"-" xml:"author"`
	ID        uuid.UUID      `json:"id" xml:"Id"`
	Gender    Gender         `json:"gender" xml:"Gender"`
	Firstname string         `json:"firstname" xml:"Firstname"`
	Lastname  string         `json:"lastname" xml:"Lastname"`
	Links     response.Links `json:"_links" xml:"_links"`
}

type AuthorListResource struct {
	XMLName xml.Name         `json:"-" xml:"authors"`
	Authors []AuthorResource `json:"authors" xml:"author"`
	Links   response.Links   `json:"_links" xml:"_links"`
}

func (a *Author) Path() string {
	return "/authors/" + a.Identifier.String()
}

// ToResource converts Author to AuthorResource
func (a *Author) ToResource(baseURL string) AuthorResource {
	return AuthorResource{
		ID:        a.Identifier,
		Gender:    a.Gender,
		Firstname: a.Firstname,
		Lastname:  a.Lastname,
		Links:     response.Links{Self: response.Link{Href: baseURL + a.Path()}},
	}
}
