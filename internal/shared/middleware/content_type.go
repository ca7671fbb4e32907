package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"bookshelf-api/internal/shared/apperror"
	"bookshelf-api/internal/shared/response"
)

// RequireJSON rejects POST, PUT and PATCH requests whose body is not JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		if c.Request.ContentLength == 0 && c.GetHeader("Content-Type") == "" {
			c.Next()
			return
		}

		if c.ContentType() != binding.MIMEJSON {
			response.HandleError(c, apperror.New(apperror.ErrUnsupportedMediaType,
				"Content type '"+c.GetHeader("Content-Type")+"' not supported"))
			return
		}
		c.Next()
	}
}
