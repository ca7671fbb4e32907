package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/domains/user/service"
	"bookshelf-api/internal/shared/middleware"
	"bookshelf-api/internal/shared/request"
	"bookshelf-api/internal/shared/response"
	"bookshelf-api/pkg/jwt"
)

type UserHandler struct {
	service             service.ServiceInterface
	tokens              *jwt.Manager
	searchEmptyNotFound bool
}

func NewUserHandler(svc service.ServiceInterface, tokens *jwt.Manager, searchEmptyNotFound bool) *UserHandler {
	return &UserHandler{
		service:             svc,
		tokens:              tokens,
		searchEmptyNotFound: searchEmptyNotFound,
	}
}

// RegisterRoutes mounts the /users routes on rg.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.FindAll)
		users.GET("/search", h.Search)
		users.GET("/:id", h.FindByIdentifier)
		users.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "user"
// @Success 201 {object} model.UserResource
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if !request.BindAndValidate(c, &req) {
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.Header("Location", response.BaseURL(c)+u.Path())
	response.Resource(c, http.StatusCreated, u.ToResource(response.BaseURL(c)))
}

// FindByIdentifier - GET /users/:id
func (h *UserHandler) FindByIdentifier(c *gin.Context) {
	id, ok := request.Identifier(c)
	if !ok {
		return
	}

	u, err := h.service.FindByIdentifier(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Resource(c, http.StatusOK, u.ToResource(response.BaseURL(c)))
}

// FindAll - GET /users
func (h *UserHandler) FindAll(c *gin.Context) {
	users, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Resource(c, http.StatusOK, h.toList(c, users))
}

// Search - GET /users/search?username=
func (h *UserHandler) Search(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok {
		response.BadRequest(c, "Query parameter 'username' is required")
		return
	}

	var users []model.User
	u, err := h.service.FindByUsername(c.Request.Context(), username)
	switch {
	case err == nil:
		users = append(users, *u)
	case errors.Is(err, model.ErrUserNotFound):
	default:
		response.HandleError(c, err)
		return
	}

	if len(users) == 0 && h.searchEmptyNotFound {
		response.NotFound(c, "No user found for username '"+username+"'")
		return
	}

	response.Resource(c, http.StatusOK, h.toList(c, users))
}

// Delete - DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
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
		response.NotFound(c, "user not found")
		return
	}

	response.Status(c, http.StatusNoContent)
}

// IssueToken godoc
// @Summary Exchange basic credentials for a bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} model.TokenResponse
// @Router /auth/token [post]
func (h *UserHandler) IssueToken(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Full authentication is required to access this resource")
		return
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(principal.ID.String(), principal.Username)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *UserHandler) toList(c *gin.Context, users []model.User) model.UserListResource {
	base := response.BaseURL(c)
	out := model.UserListResource{
		Users: make([]model.UserResource, 0, len(users)),
		Links: response.SelfLinks(c, c.Request.URL.RequestURI()),
	}
	for i := range users {
		out.Users = append(out.Users, users[i].ToResource(base))
	}
	return out
}
