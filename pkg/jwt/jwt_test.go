package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, expiresAt, err := m.GenerateAccessToken("8f1c2b9e-0000-4000-8000-000000000001", "user")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Username)
	assert.Equal(t, "8f1c2b9e-0000-4000-8000-000000000001", claims.UserID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager("a", time.Hour).GenerateAccessToken("id", "user")
	require.NoError(t, err)

	_, err = NewManager("b", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.GenerateAccessToken("id", "user")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateAccessToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateRejectsOtherTokenType(t *testing.T) {
	m := NewManager("secret", time.Hour)
	claims := Claims{
		UserID: "id",
		Type:   "refresh",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
