package service

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/shared/auth"
)

// ServiceInterface - user business logic, authentication and audit actor lookup
type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	Authenticate(ctx context.Context, username, password string) (*auth.Principal, error)
	PrincipalByID(ctx context.Context, id uuid.UUID) (*auth.Principal, error)

	// CurrentAuditor returns the identifier recorded as actor of a write.
	CurrentAuditor(ctx context.Context) (uuid.UUID, error)
}
