package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	p := &Principal{ID: uuid.New(), Username: "user"}
	got, ok := FromContext(WithPrincipal(context.Background(), p))
	assert.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = FromContext(WithPrincipal(context.Background(), nil))
	assert.False(t, ok)
}
