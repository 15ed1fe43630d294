package ports

import (
	"context"

	"github.com/trailatlas/trails-api/internal/core/domain"
)

// AccountService covers signup, signin and all per-user mutations.
type AccountService interface {
	// Signup creates an account with a hashed password and a freshly
	// generated access token. Fails with domain.ErrPasswordTooShort when the
	// password has fewer than five characters.
	Signup(ctx context.Context, username, password, email string) (*domain.User, error)

	// Signin verifies the username/password pair. A mismatch on either side
	// fails with domain.ErrInvalidCredentials.
	Signin(ctx context.Context, username, password string) (*domain.User, error)

	UpdateProfilePicture(ctx context.Context, user *domain.User, picture string) (*domain.User, error)

	// AddFavorite appends {routeID, tags} to the user's favorites. Duplicate
	// ids are allowed; the ledger does not deduplicate.
	AddFavorite(ctx context.Context, user *domain.User, routeID string, tags map[string]any) (*domain.User, error)

	// RemoveFavorite removes every favorite whose id equals routeID.
	RemoveFavorite(ctx context.Context, user *domain.User, routeID string) (*domain.User, error)
}

// TokenAuthenticator resolves a bearer access token to its user.
type TokenAuthenticator interface {
	// Authenticate fails with domain.ErrUnauthenticated when no user holds
	// the token (including the empty token). Store failures pass through
	// unwrapped so callers can tell them apart from a bad credential.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
