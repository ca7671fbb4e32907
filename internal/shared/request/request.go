package request

import (
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookshelf-api/internal/shared/response"
	"bookshelf-api/internal/shared/validate"
)

// Identifier parses the :id path parameter. On failure it writes a 400 and
// returns false.
func Identifier(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid identifier '"+c.Param("id")+"'")
		return uuid.Nil, false
	}
	return id, true
}

// BindAndValidate decodes the JSON body into dst and runs its rules. On
// failure it writes a 400 and returns false.
func BindAndValidate(c *gin.Context, dst validation.Validatable) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.BadRequest(c, "Malformed request body: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		response.HandleError(c, err)
		return false
	}
	return true
}
