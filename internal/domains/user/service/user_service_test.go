package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/domains/user/repository"
	"bookshelf-api/internal/shared/apperror"
	"bookshelf-api/internal/shared/auth"
)

func newService() ServiceInterface {
	return NewUserService(repository.NewMemoryRepository(), bcrypt.MinCost)
}

func createRequest(username string) model.CreateUserRequest {
	return model.CreateUserRequest{
		FirstName: "Hans",
		LastName:  "Mustermann",
		Username:  username,
		Password:  "secret",
	}
}

func TestCreateGeneratesIdentifierAndHashesPassword(t *testing.T) {
	svc := newService()

	u, err := svc.Create(context.Background(), createRequest("user"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.Identifier)
	assert.NotEqual(t, "secret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))

	other, err := svc.Create(context.Background(), createRequest("other"))
	require.NoError(t, err)
	assert.NotEqual(t, u.Identifier, other.Identifier)
}

func TestCreateKeepsClientIdentifier(t *testing.T) {
	svc := newService()
	id := uuid.New()
	req := createRequest("user")
	req.Identifier = &id

	u, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, u.Identifier)
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), createRequest("user"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest("user"))
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestAuthenticate(t *testing.T) {
	svc := newService()
	u, err := svc.Create(context.Background(), createRequest("user"))
	require.NoError(t, err)

	p, err := svc.Authenticate(context.Background(), "user", "secret")
	require.NoError(t, err)
	assert.Equal(t, u.Identifier, p.ID)

	_, err = svc.Authenticate(context.Background(), "user", "wrong")
	assert.ErrorIs(t, err, model.ErrBadCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, model.ErrBadCredentials)
}

func TestAuthenticateUnknownUserStillComparesHash(t *testing.T) {
	svc := newService().(*userService)
	var compared [][]byte
	svc.compare = func(hash, password []byte) error {
		compared = append(compared, hash)
		return bcrypt.CompareHashAndPassword(hash, password)
	}

	_, err := svc.Authenticate(context.Background(), "nobody", "secret")
	assert.ErrorIs(t, err, model.ErrBadCredentials)
	_, err = svc.Authenticate(context.Background(), "ghost", "secret")
	assert.ErrorIs(t, err, model.ErrBadCredentials)

	require.Len(t, compared, 2)
	cost, err := bcrypt.Cost(compared[0])
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
	assert.Equal(t, compared[0], compared[1])
}

func TestAuthenticateLongPassword(t *testing.T) {
	svc := newService()
	req := createRequest("user")
	req.Password = strings.Repeat("a", 80) + "x"
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "user", req.Password)
	assert.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "user", strings.Repeat("a", 80)+"y")
	assert.ErrorIs(t, err, model.ErrBadCredentials)
}

func TestDelete(t *testing.T) {
	svc := newService()
	u, err := svc.Create(context.Background(), createRequest("user"))
	require.NoError(t, err)

	removed, err := svc.Delete(context.Background(), u.Identifier)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Delete(context.Background(), u.Identifier)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestDeleteTechnicalUserIsForbidden(t *testing.T) {
	svc := newService()
	tech, err := svc.Create(context.Background(), createRequest(auth.TechnicalUsername))
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), tech.Identifier)
	assert.ErrorIs(t, err, apperror.ErrAccessDenied)

	_, err = svc.FindByIdentifier(context.Background(), tech.Identifier)
	assert.NoError(t, err)
}

func TestCurrentAuditor(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	id, err := svc.CurrentAuditor(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	tech, err := svc.Create(ctx, createRequest(auth.TechnicalUsername))
	require.NoError(t, err)

	id, err = svc.CurrentAuditor(ctx)
	require.NoError(t, err)
	assert.Equal(t, tech.Identifier, id)

	principal := &auth.Principal{ID: uuid.New(), Username: "user"}
	id, err = svc.CurrentAuditor(auth.WithPrincipal(ctx, principal))
	require.NoError(t, err)
	assert.Equal(t, principal.ID, id)
}

func TestPrincipalByID(t *testing.T) {
	svc := newService()
	u, err := svc.Create(context.Background(), createRequest("user"))
	require.NoError(t, err)

	p, err := svc.PrincipalByID(context.Background(), u.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "user", p.Username)

	_, err = svc.PrincipalByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}
