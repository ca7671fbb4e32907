package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/shared/auth"
	"bookshelf-api/internal/shared/response"
	"bookshelf-api/pkg/jwt"
)

const (
	PrincipalKey         = "principal"
	principalUsernameKey = "principal_username"
)

// Authenticator resolves credentials to a principal. It is implemented by
// the user service.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*auth.Principal, error)
	PrincipalByID(ctx context.Context, id uuid.UUID) (*auth.Principal, error)
}

// TokenValidator parses bearer tokens.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// BasicAuth accepts HTTP Basic credentials only.
func BasicAuth(authn Authenticator, realm string) gin.HandlerFunc {
	return AuthMiddleware(authn, nil, realm)
}

// AuthMiddleware authenticates the request with HTTP Basic credentials or,
// when tokens is non-nil, a Bearer JWT. The principal is stored both in the
// gin context and in the request context.
func AuthMiddleware(authn Authenticator, tokens TokenValidator, realm string) gin.HandlerFunc {
	challenge := `Basic realm="` + realm + `"`
	if tokens != nil {
		challenge += `, Bearer realm="` + realm + `"`
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		header := c.GetHeader("Authorization")

		var (
			principal *auth.Principal
			err       error
		)

		switch {
		case header == "":
			unauthorized(c, challenge, "Full authentication is required to access this resource")
			return

		case tokens != nil && strings.HasPrefix(header, "Bearer "):
			principal, err = principalFromToken(ctx, authn, tokens, strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))

		default:
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				unauthorized(c, challenge, "Invalid authorization header")
				return
			}
			principal, err = authn.Authenticate(ctx, username, password)
		}

		if err != nil || principal == nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString(RequestIDKey)).
				Msg("Authentication failed")
			unauthorized(c, challenge, "Bad credentials")
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(principalUsernameKey, principal.Username)
		c.Request = c.Request.WithContext(auth.WithPrincipal(ctx, principal))

		c.Next()
	}
}

func principalFromToken(ctx context.Context, authn Authenticator, tokens TokenValidator, token string) (*auth.Principal, error) {
	claims, err := tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, err
	}

	// the account may have been deleted after the token was issued
	return authn.PrincipalByID(ctx, id)
}

func unauthorized(c *gin.Context, challenge, message string) {
	c.Header("WWW-Authenticate", challenge)
	response.Error(c, http.StatusUnauthorized, message, nil)
}

// CurrentPrincipal returns the principal set by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (*auth.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok
}
