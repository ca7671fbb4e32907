package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"bookshelf-api/internal/domains/user/model"
	"bookshelf-api/internal/domains/user/repository"
	"bookshelf-api/internal/shared/auth"
)

// bcrypt only reads the first 72 bytes of its input
const bcryptMaxInput = 72

type userService struct {
	repo       repository.RepositoryInterface
	bcryptCost int
	now        func() time.Time
	compare    func(hash, password []byte) error

	// compared against for unknown usernames so they cost as much as a wrong password
	dummyOnce sync.Once
	dummyHash []byte
}

func NewUserService(repo repository.RepositoryInterface, bcryptCost int) ServiceInterface {
	return &userService{
		repo:       repo,
		bcryptCost: bcryptCost,
		now:        time.Now,
		compare:    bcrypt.CompareHashAndPassword,
	}
}

func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Identifier:   uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if req.Identifier != nil && *req.Identifier != uuid.Nil {
		u.Identifier = *req.Identifier
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", created.Identifier.String()).
		Str("username", created.Username).
		Msg("User created")
	return created, nil
}

func (s *userService) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByIdentifier(ctx, id)
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *userService) FindAll(ctx context.Context) ([]model.User, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a user. The technical audit user is protected.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	u, err := s.repo.FindByIdentifier(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if u.Username == auth.TechnicalUsername {
		return false, model.ErrTechnicalUser
	}

	return s.repo.DeleteByIdentifier(ctx, id)
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Authenticate(ctx context.Context, username, password string) (*auth.Principal, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			_ = s.compare(s.unknownUserHash(), passwordInput(password))
			return nil, model.ErrBadCredentials
		}
		return nil, err
	}

	// CompareHashAndPassword is constant time
	if err := s.compare([]byte(u.PasswordHash), passwordInput(password)); err != nil {
		return nil, model.ErrBadCredentials
	}

	return &auth.Principal{ID: u.Identifier, Username: u.Username}, nil
}

func (s *userService) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), s.bcryptCost)
		if err != nil {
			log.Error().Err(err).Msg("Failed to build dummy password hash")
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *userService) PrincipalByID(ctx context.Context, id uuid.UUID) (*auth.Principal, error) {
	u, err := s.repo.FindByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	return &auth.Principal{ID: u.Identifier, Username: u.Username}, nil
}

// CurrentAuditor prefers the request principal and falls back to the
// technical user. uuid.Nil is returned when neither exists.
func (s *userService) CurrentAuditor(ctx context.Context) (uuid.UUID, error) {
	if p, ok := auth.FromContext(ctx); ok {
		return p.ID, nil
	}

	u, err := s.repo.FindByUsername(ctx, auth.TechnicalUsername)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			log.Warn().Msg("No principal and no technical user, audit actor left empty")
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return u.Identifier, nil
}

func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordInput(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// passwordInput digests passwords longer than bcrypt accepts so that every
// character still counts.
func passwordInput(password string) []byte {
	if len(password) <= bcryptMaxInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
