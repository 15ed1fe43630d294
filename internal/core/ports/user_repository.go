package ports

import (
	"context"

	"github.com/trailatlas/trails-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByAccessToken resolves a bearer token to the one user holding it.
	FindByAccessToken(ctx context.Context, token string) (*domain.User, error)
	// Update replaces the stored record for user.ID and returns the saved state.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
