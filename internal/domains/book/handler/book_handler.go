package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authormodel "bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/internal/domains/book/service"
	"bookshelf-api/internal/shared/request"
	"bookshelf-api/internal/shared/response"
)

type BookHandler struct {
	service             service.ServiceInterface
	searchEmptyNotFound bool
}

func NewBookHandler(svc service.ServiceInterface, searchEmptyNotFound bool) *BookHandler {
	return &BookHandler{service: svc, searchEmptyNotFound: searchEmptyNotFound}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.POST("", h.Create)
		books.GET("", h.FindAll)
		books.GET("/search", h.Search)
		books.GET("/:id", h.FindByIdentifier)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Create a book
// @Description Author identifiers must refer to existing authors.
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.CreateBookRequest true "book"
// @Success 201 {object} model.BookResource
// @Failure 400 {object} response.Response
// @Router /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if !request.BindAndValidate(c, &req) {
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Location", response.BaseURL(c)+b.Path())
	h.render(c, http.StatusCreated, b)
}

// FindByIdentifier godoc
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "book identifier"
// @Success 200 {object} model.BookResource
// @Failure 404 {object} response.Response
// @Router /books/{id} [get]
func (h *BookHandler) FindByIdentifier(c *gin.Context) {
	id, ok := request.Identifier(c)
	if !ok {
		return
	}

	b, err := h.service.FindByIdentifier(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.render(c, http.StatusOK, b)
}

// FindAll - GET /books
func (h *BookHandler) FindAll(c *gin.Context) {
	books, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	h.renderList(c, books)
}

// Search godoc
// @Summary Search books by isbn or title
// @Description Partial, case-insensitive match. isbn wins when both are given.
// @Tags books
// @Produce json
// @Param isbn query string false "isbn fragment"
// @Param title query string false "title fragment"
// @Success 200 {object} model.BookListResource
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.service.Search(c.Request.Context(), c.Query("isbn"), c.Query("title"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if len(books) == 0 && h.searchEmptyNotFound {
		response.NotFound(c, "No book matches the search")
		return
	}
	h.renderList(c, books)
}

// Update godoc
// @Summary Update a book
// @Description Requires If-Match or If-Unmodified-Since.
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "book identifier"
// @Param If-Match header string false "entity tag from a previous read"
// @Param If-Unmodified-Since header string false "HTTP date"
// @Param book body model.UpdateBookRequest true "book"
// @Success 200 {object} model.BookResource
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 412 {object} response.Response
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := request.Identifier(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if !request.BindAndValidate(c, &req) {
		return
	}

	current, err := h.service.FindByIdentifier(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	if err := response.CheckPreconditions(c, current.Version, current.LastModifiedAt); err != nil {
		response.HandleError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req, current.Version)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	h.render(c, http.StatusOK, updated)
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := request.Identifier(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if !removed {
		response.NotFound(c, "book not found")
		return
	}

	response.Status(c, http.StatusNoContent)
}

// render writes a single book with its version headers.
func (h *BookHandler) render(c *gin.Context, status int, b *model.Book) {
	authors, err := h.service.AuthorsOf(c.Request.Context(), *b)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SetVersionHeaders(c, b.Version, b.LastModifiedAt)
	response.Resource(c, status, b.ToResource(response.BaseURL(c), pick(b.AuthorIDs, authors)))
}

func (h *BookHandler) renderList(c *gin.Context, books []model.Book) {
	authors, err := h.service.AuthorsOf(c.Request.Context(), books...)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	base := response.BaseURL(c)
	out := model.BookListResource{
		Books: make([]model.BookResource, 0, len(books)),
		Links: response.SelfLinks(c, c.Request.URL.RequestURI()),
	}
	for i := range books {
		out.Books = append(out.Books, books[i].ToResource(base, pick(books[i].AuthorIDs, authors)))
	}
	response.Resource(c, http.StatusOK, out)
}

// pick returns the resolved authors of ids in order.
func pick(ids []uuid.UUID, resolved map[uuid.UUID]authormodel.Author) []authormodel.Author {
	out := make([]authormodel.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := resolved[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

