package response

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/shared/apperror"
	"bookshelf-api/internal/shared/validate"
)

// MIMEHALJSON is the default media type of resource bodies.
const MIMEHALJSON = "application/hal+json"

// Response is the envelope used for error bodies.
type Response struct {
	XMLName xml.Name   `json:"-" xml:"response"`
	Success bool       `json:"success" xml:"success"`
	Error   *ErrorBody `json:"error,omitempty" xml:"error,omitempty"`
}

// ErrorBody is the error part of the envelope.
type ErrorBody struct {
	Code    string      `json:"code" xml:"code"`
	Message string      `json:"message" xml:"message"`
	Details interface{} `json:"details,omitempty" xml:"details>field,omitempty"`
}

// ========================================
// SUCCESS RESPONSES
// ========================================

// Resource renders a resource body as HAL JSON, or XML when the client asks for it.
func Resource(c *gin.Context, statusCode int, body interface{}) {
	if WantsXML(c) {
		c.XML(statusCode, body)
		return
	}
	c.Header("Content-Type", MIMEHALJSON)
	c.JSON(statusCode, body)
}

// Status writes a status without a body.
func Status(c *gin.Context, statusCode int) {
	c.Status(statusCode)
}

// WantsXML reports whether the Accept header prefers XML over JSON.
func WantsXML(c *gin.Context) bool {
	if c.GetHeader("Accept") == "" {
		return false
	}
	format := c.NegotiateFormat(MIMEHALJSON, binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2)
	return format == binding.MIMEXML || format == binding.MIMEXML2
}

// ========================================
// ERROR RESPONSES
// ========================================

// Error writes the error envelope and aborts the chain.
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	body := Response{
		Success: false,
		Error: &ErrorBody{
			Code:    codeFor(statusCode),
			Message: message,
			Details: details,
		},
	}
	if WantsXML(c) {
		c.Abort()
		c.XML(statusCode, body)
		return
	}
	c.AbortWithStatusJSON(statusCode, body)
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

var errorStatus = []struct {
	kind   error
	status int
}{
	{apperror.ErrNotFound, http.StatusNotFound},
	{apperror.ErrBadRequest, http.StatusBadRequest},
	{apperror.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{apperror.ErrUnauthorized, http.StatusUnauthorized},
	{apperror.ErrAccessDenied, http.StatusForbidden},
	{apperror.ErrConflict, http.StatusConflict},
	{apperror.ErrDuplicate, http.StatusConflict},
	{apperror.ErrPreconditionFailed, http.StatusPreconditionFailed},
}

// StatusFor maps an error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.kind) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// HandleError is the single place where service errors become responses.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	status := StatusFor(err)

	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		Error(c, status, "Validation failed", []validate.FieldError(fieldErrs))
		return
	}

	if status == http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		Error(c, status, "Internal server error", nil)
		return
	}

	Error(c, status, err.Error(), nil)
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusPreconditionFailed:
		return "PRECONDITION_FAILED"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
