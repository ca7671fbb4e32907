package auth

import (
	"context"

	"github.com/google/uuid"
)

// TechnicalUsername is the account used as audit actor when a write has no
// authenticated principal.
const TechnicalUsername = "technical"

// Principal is the authenticated caller of a request.
type Principal struct {
	ID       uuid.UUID
	Username string
}

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal stored in ctx, if any.
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}
