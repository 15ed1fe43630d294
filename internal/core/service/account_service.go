package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/ports"
)

const minPasswordLen = 5

// AccountService implements signup, signin, token authentication and the
// favorites ledger on top of a UserRepository.
type AccountService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Signup(ctx context.Context, username, password, email string) (*domain.User, error) {
	if len(password) < minPasswordLen {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		AccessToken:  token,
		Favorites:    []domain.Favorite{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user signed up")
	return created, nil
}

func (s *AccountService) Signin(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Authenticate resolves a bearer token via an equality lookup on the stored
// access token. The token is a capability, not a password: no hashing, no
// constant-time comparison requirement.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AccountService) UpdateProfilePicture(ctx context.Context, user *domain.User, picture string) (*domain.User, error) {
	updated := user.Clone()
	updated.ProfilePicture = picture
	return s.persist(ctx, updated)
}

// AddFavorite appends the route to the user's favorites and persists. The
// ledger keeps duplicates; callers may save the same id twice.
func (s *AccountService) AddFavorite(ctx context.Context, user *domain.User, routeID string, tags map[string]any) (*domain.User, error) {
	updated := user.Clone()
	updated.Favorites = append(updated.Favorites, domain.Favorite{ID: routeID, Tags: tags})
	return s.persist(ctx, updated)
}

// RemoveFavorite drops every favorite matching routeID, not just the first,
// and persists.
func (s *AccountService) RemoveFavorite(ctx context.Context, user *domain.User, routeID string) (*domain.User, error) {
	updated := user.Clone()
	kept := updated.Favorites[:0]
	for _, f := range updated.Favorites {
		if f.ID != routeID {
			kept = append(kept, f)
		}
	}
	updated.Favorites = kept
	return s.persist(ctx, updated)
}

// persist saves the mutated copy. The caller's original user value is left
// untouched, so a store failure commits nothing.
func (s *AccountService) persist(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.UpdatedAt = time.Now().UTC()
	saved, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", user.Username).Msg("failed to save user")
		return nil, err
	}
	return saved, nil
}

// generateAccessToken returns a 64-char hex string from 32 random bytes.
// Issued once per account and never rotated.
func generateAccessToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
