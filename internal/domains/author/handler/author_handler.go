package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/domains/author/service"
	"bookshelf-api/internal/shared/request"
	"bookshelf-api/internal/shared/response"
)

type AuthorHandler struct {
	service             service.ServiceInterface
	searchEmptyNotFound bool
}

func NewAuthorHandler(svc service.ServiceInterface, searchEmptyNotFound bool) *AuthorHandler {
	return &AuthorHandler{service: svc, searchEmptyNotFound: searchEmptyNotFound}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	{
		authors.POST("", h.Create)
		authors.GET("", h.FindAll)
		authors.GET("/search", h.Search)
		authors.GET("/:id", h.FindByIdentifier)
		authors.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body model.CreateAuthorRequest true "author"
// @Success 201 {object} model.AuthorResource
// @Failure 400 {object} response.Response
// @Router /authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if !request.BindAndValidate(c, &req) {
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	base := response.BaseURL(c)
	c.Header("Location", base+a.Path())
	response.Resource(c, http.StatusCreated, a.ToResource(base))
}

// FindByIdentifier godoc
// @Summary Get an author
// @Tags authors
// @Produce json
// @Param id path string true "author identifier"
// @Success 200 {object} model.AuthorResource
// @Failure 404 {object} response.Response
// @Router /authors/{id} [get]
func (h *AuthorHandler) FindByIdentifier(c *gin.Context) {
	id, ok := request.Identifier(c)
	if !ok {
		return
	}

	a, err := h.service.FindByIdentifier(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Resource(c, http.StatusOK, a.ToResource(response.BaseURL(c)))
}

// FindAll - GET /authors
func (h *AuthorHandler) FindAll(c *gin.Context) {
	authors, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Resource(c, http.StatusOK, h.toList(c, authors))
}

// Search - GET /authors/search?lastname=
func (h *AuthorHandler) Search(c *gin.Context) {
	lastname, ok := c.GetQuery("lastname")
	if !ok {
		response.BadRequest(c, "Query parameter 'lastname' is required")
		return
	}

	authors, err := h.service.FindByLastname(c.Request.Context(), lastname)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if len(authors) == 0 && h.searchEmptyNotFound {
		response.NotFound(c, "No author found for lastname '"+lastname+"'")
		return
	}

	response.Resource(c, http.StatusOK, h.toList(c, authors))
}

// Delete - DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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
		response.NotFound(c, "author not found")
		return
	}

	response.Status(c, http.StatusNoContent)
}

func (h *AuthorHandler) toList(c *gin.Context, authors []model.Author) model.AuthorListResource {
	base := response.BaseURL(c)
	out := model.AuthorListResource{
		Authors: make([]model.AuthorResource, 0, len(authors)),
		Links:   response.SelfLinks(c, c.Request.URL.RequestURI()),
	}
	for i := range authors {
		out.Authors = append(out.Authors, authors[i].ToResource(base))
	}
	return out
}
