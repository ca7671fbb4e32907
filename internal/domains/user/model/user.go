package model

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"

	"bookshelf-api/internal/shared/response"
)

// User is both an API-managed entity and the authentication principal.
// ID is the storage key and never leaves the service.
type User struct {
	ID           int64     `json:"id"`
	Identifier   uuid.UUID `json:"identifier"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserResource is the public representation of a user.
type UserResource struct {
	XMLName   xml.Name       `json:"-" xml:"user"`
	ID        uuid.UUID      `json:"id" xml:"Id"`
	FirstName string         `json:"firstName" xml:"FirstName"`
	LastName  string         `json:"lastName" xml:"LastName"`
	Username  string         `json:"username" xml:"Username"`
	Links     response.Links `json:"_links" xml:"_links"`
}

type UserListResource struct {
	XMLName xml.Name       `json:"-" xml:"users"`
	Users   []UserResource `json:"users" xml:"user"`
	Links   response.Links `json:"_links" xml:"_links"`
}

// Path is the resource path of the user.
func (u *User) Path() string {
	return "/users/" + u.Identifier.String()
}

// ToResource converts User to UserResource; baseURL is scheme://host.
func (u *User) ToResource(baseURL string) UserResource {
	return UserResource{
		ID:        u.Identifier,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Links:     response.Links{Self: response.Link{Href: baseURL + u.Path()}},
	}
}
