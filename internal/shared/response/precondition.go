package response

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/shared/apperror"
)

// ========================================
// ENTITY TAGS / CONDITIONAL REQUESTS
// ========================================

// ETag formats a version as a strong entity tag.
func ETag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// SetVersionHeaders writes ETag and, when known, Last-Modified.
func SetVersionHeaders(c *gin.Context, version int64, lastModified time.Time) {
	c.Header("ETag", ETag(version))
	if !lastModified.IsZero() {
		c.Header("Last-Modified", lastModified.UTC().Format(http.TimeFormat))
	}
}

// CheckPreconditions evaluates If-Match and If-Unmodified-Since against the
// current state of an entity. If-Unmodified-Since is only consulted when
// If-Match is absent. A request carrying neither header fails.
func CheckPreconditions(c *gin.Context, version int64, lastModified time.Time) error {
	if ifMatch := c.GetHeader("If-Match"); ifMatch != "" {
		if MatchesETag(ifMatch, version) {
			return nil
		}
		return apperror.New(apperror.ErrPreconditionFailed, "entity tag does not match the current version")
	}

	if since := c.GetHeader("If-Unmodified-Since"); since != "" {
		t, err := http.ParseTime(since)
		if err == nil {
			if !lastModified.UTC().Truncate(time.Second).After(t) {
				return nil
			}
			return apperror.New(apperror.ErrPreconditionFailed, "resource was modified since the given date")
		}
	}

	return apperror.New(apperror.ErrPreconditionFailed, "If-Match or If-Unmodified-Since header required")
}

// MatchesETag reports whether an If-Match header value matches version.
// If-Match uses strong comparison, so weak tags never match. Unquoted
// values are accepted.
func MatchesETag(header string, version int64) bool {
	want := strconv.FormatInt(version, 10)
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" {
			return true
		}
		if strings.HasPrefix(tag, "W/") {
			continue
		}
		tag = strings.Trim(tag, `"`)
		if tag == want {
			return true
		}
	}
	return false
}
