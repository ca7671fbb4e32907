package model

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"

	authormodel "bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/shared/response"
)

type Genre string

const (
	GenreFantasy        Genre = "FANTASY"
	GenreHorror         Genre = "HORROR"
	GenreHumor          Genre = "HUMOR"
	GenreScienceFiction Genre = "SCIENCE_FICTION"
	GenreMystery        Genre = "MYSTERY"
	GenreWestern        Genre = "WESTERN"
	GenreCrime          Genre = "CRIME"
	GenreBiography      Genre = "BIOGRAPHY"
	GenreComputer       Genre = "COMPUTER"
)

// Genres lists every accepted genre in declaration order.
var Genres = []Genre{
	GenreFantasy,
	GenreHorror,
	GenreHumor,
	GenreScienceFiction,
	GenreMystery,
	GenreWestern,
	GenreCrime,
	GenreBiography,
	GenreComputer,
}

// Book is the stored entity. Version starts at 0 and grows by one on
// every update.
type Book struct {
	ID             int64       `json:"id"`
	Identifier     uuid.UUID   `json:"identifier"`
	Title          string      `json:"title"`
	ISBN           string      `json:"isbn"`
	Description    string      `json:"description"`
	Genre          Genre       `json:"genre"`
	AuthorIDs      []uuid.UUID `json:"author_ids"`
	Version        int64       `json:"version"`
	CreatedBy      uuid.UUID   `json:"created_by"`
	CreatedAt      time.Time   `json:"created_at"`
	LastModifiedBy uuid.UUID   `json:"last_modified_by"`
	LastModifiedAt time.Time   `json:"last_modified_at"`
}

type BookResource struct {
	XMLName     xml.Name                     `json:"-" xml:"book"`
	ID          uuid.UUID                    `json:"id" xml:"Id"`
	Title       string                       `json:"title" xml:"Title"`
	ISBN        string                       `json:"isbn" xml:"Isbn"`
	Description string                       `json:"description,omitempty" xml:"Description,omitempty"`
	Genre       Genre                        `json:"genre" xml:"Genre"`
	Authors     []authormodel.AuthorResource `json:"authors" xml:"author"`
	Links       response.Links               `json:"_links" xml:"_links"`
}

type BookListResource struct {
	XMLName xml.Name       `json:"-" xml:"books"`
	Books   []BookResource `json:"books" xml:"book"`
	Links   response.Links `json:"_links" xml:"_links"`
}

func (b *Book) Path() string {
	return "/books/" + b.Identifier.String()
}

// ToResource converts Book to BookResource. authors are the resolved
// entries of AuthorIDs; missing ones are simply not listed.
func (b *Book) ToResource(baseURL string, authors []authormodel.Author) BookResource {
	res := BookResource{
		ID:          b.Identifier,
		Title:       b.Title,
		ISBN:        b.ISBN,
		Description: b.Description,
		Genre:       b.Genre,
		Authors:     make([]authormodel.AuthorResource, 0, len(authors)),
		Links:       response.Links{Self: response.Link{Href: baseURL + b.Path()}},
	}
	for i := range authors {
		res.Authors = append(res.Authors, authors[i].ToResource(baseURL))
	}
	return res
}
