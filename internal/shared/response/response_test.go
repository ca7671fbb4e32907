package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-api/internal/shared/apperror"
	"bookshelf-api/internal/shared/validate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c, w
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.New(apperror.ErrNotFound, "x"), http.StatusNotFound},
		{apperror.New(apperror.ErrBadRequest, "x"), http.StatusBadRequest},
		{apperror.New(apperror.ErrUnsupportedMediaType, "x"), http.StatusUnsupportedMediaType},
		{apperror.New(apperror.ErrUnauthorized, "x"), http.StatusUnauthorized},
		{apperror.New(apperror.ErrAccessDenied, "x"), http.StatusForbidden},
		{apperror.New(apperror.ErrConflict, "x"), http.StatusConflict},
		{apperror.New(apperror.ErrDuplicate, "x"), http.StatusConflict},
		{apperror.New(apperror.ErrPreconditionFailed, "x"), http.StatusPreconditionFailed},
		{fmt.Errorf("wrapped: %w", apperror.ErrNotFound), http.StatusNotFound},
		{validate.Errors{{Field: "title", Message: "cannot be blank"}}, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestHandleErrorValidationDetails(t *testing.T) {
	c, w := newContext(http.MethodPost, "/books", nil)

	HandleError(c, validate.Errors{{Field: "isbn", Message: "must be a valid ISBN"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string                `json:"code"`
			Details []validate.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Equal(t, []validate.FieldError{{Field: "isbn", Message: "must be a valid ISBN"}}, body.Error.Details)
	assert.True(t, c.IsAborted())
}

func TestErrorEnvelopeDecodesIntoResponse(t *testing.T) {
	c, w := newContext(http.MethodPost, "/books", nil)

	HandleError(c, apperror.New(apperror.ErrUnsupportedMediaType, "Content type 'text/plain' not supported"))

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrorBody{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Content type 'text/plain' not supported"}, *body.Error)
}

func TestHandleErrorHidesInternalMessage(t *testing.T) {
	c, w := newContext(http.MethodGet, "/books", nil)

	HandleError(c, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestErrorRendersXMLWhenAsked(t *testing.T) {
	c, w := newContext(http.MethodGet, "/books/x", map[string]string{"Accept": "application/xml"})

	NotFound(c, "book not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<message>book not found</message>")
}

func TestResourceNegotiation(t *testing.T) {
	type thing struct {
		ID string `json:"id" xml:"Id"`
	}

	c, w := newContext(http.MethodGet, "/things/1", nil)
	Resource(c, http.StatusOK, thing{ID: "1"})
	assert.Equal(t, MIMEHALJSON, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1"}`, w.Body.String())

	c, w = newContext(http.MethodGet, "/things/1", map[string]string{"Accept": "application/xml"})
	Resource(c, http.StatusOK, thing{ID: "1"})
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), "<Id>1</Id>")

	c, _ = newContext(http.MethodGet, "/things/1", map[string]string{"Accept": "*/*"})
	assert.False(t, WantsXML(c))
}

func TestBaseURL(t *testing.T) {
	c, _ := newContext(http.MethodGet, "http://api.local:8080/books", nil)
	assert.Equal(t, "http://api.local:8080", BaseURL(c))

	c, _ = newContext(http.MethodGet, "http://internal/books", map[string]string{
		"X-Forwarded-Proto": "https",
		"X-Forwarded-Host":  "books.example.org, proxy",
	})
	assert.Equal(t, "https://books.example.org", BaseURL(c))
	assert.Equal(t, "https://books.example.org/books/1", SelfLinks(c, "/books/1").Self.Href)
}

func TestMatchesETag(t *testing.T) {
	assert.True(t, MatchesETag(`"3"`, 3))
	assert.False(t, MatchesETag(`W/"3"`, 3))
	assert.True(t, MatchesETag(`W/"3", "3"`, 3))
	assert.True(t, MatchesETag(`3`, 3))
	assert.True(t, MatchesETag(`"1", "3"`, 3))
	assert.True(t, MatchesETag(`*`, 3))
	assert.False(t, MatchesETag(`"2"`, 3))
	assert.False(t, MatchesETag(`"33"`, 3))
}

func TestCheckPreconditions(t *testing.T) {
	modified := time.Date(2024, 5, 1, 10, 30, 15, 500, time.UTC)

	c, _ := newContext(http.MethodPut, "/books/1", map[string]string{"If-Match": `"2"`})
	assert.NoError(t, CheckPreconditions(c, 2, modified))

	c, _ = newContext(http.MethodPut, "/books/1", map[string]string{"If-Match": `"1"`})
	assert.ErrorIs(t, CheckPreconditions(c, 2, modified), apperror.ErrPreconditionFailed)

	// same second as last-modified passes despite sub-second precision
	c, _ = newContext(http.MethodPut, "/books/1", map[string]string{
		"If-Unmodified-Since": modified.Format(http.TimeFormat),
	})
	assert.NoError(t, CheckPreconditions(c, 2, modified))

	c, _ = newContext(http.MethodPut, "/books/1", map[string]string{
		"If-Unmodified-Since": modified.Add(-time.Minute).Format(http.TimeFormat),
	})
	assert.ErrorIs(t, CheckPreconditions(c, 2, modified), apperror.ErrPreconditionFailed)

	// If-Match wins over If-Unmodified-Since
	c, _ = newContext(http.MethodPut, "/books/1", map[string]string{
		"If-Match":            `"2"`,
		"If-Unmodified-Since": modified.Add(-time.Minute).Format(http.TimeFormat),
	})
	assert.NoError(t, CheckPreconditions(c, 2, modified))

	c, _ = newContext(http.MethodPut, "/books/1", nil)
	err := CheckPreconditions(c, 2, modified)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "required"))
}

func TestSetVersionHeaders(t *testing.T) {
	c, w := newContext(http.MethodGet, "/books/1", nil)
	modified := time.Date(2024, 5, 1, 10, 30, 15, 0, time.UTC)

	SetVersionHeaders(c, 4, modified)

	assert.Equal(t, `"4"`, w.Header().Get("ETag"))
	assert.Equal(t, "Wed, 01 May 2024 10:30:15 GMT", w.Header().Get("Last-Modified"))
}
