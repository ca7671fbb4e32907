package response

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Link is a HAL link object.
type Link struct {
	Href string `json:"href" xml:"href,attr"`
}

// Links holds the links attached to every resource body.
type Links struct {
	Self Link `json:"self" xml:"self"`
}

// BaseURL returns scheme://host of the current request, honouring the
// usual reverse proxy headers.
func BaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}

	host := c.Request.Host
	if fwd := c.GetHeader("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}

	return scheme + "://" + host
}

// SelfLinks builds the _links object for the given path.
func SelfLinks(c *gin.Context, path string) Links {
	return Links{Self: Link{Href: BaseURL(c) + path}}
}
