// Package users declares the credential store contract and its Postgres
// implementation.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository defines how user records are persisted and looked up.
type Repository interface {
	// Create inserts a new user record. It returns common.ErrorAlreadyExists
	// when the username is already taken; the unique constraint is enforced
	// at write time, so concurrent registrations cannot both succeed.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByActiveToken returns the user whose session token equals token and
	// whose session expiry is strictly after now. Both conditions are
	// evaluated as a single query predicate, so an expiry passing between a
	// lookup and a check cannot produce a stale match. Returns
	// common.ErrorNotFound when no such active session exists.
	GetByActiveToken(ctx context.Context, token string, now time.Time) (*models.User, error)

	// SaveSession persists the session fields of the given user. Token and
	// expiry travel together: passing nils clears the session.
	SaveSession(ctx context.Context, userID string, token *string, expiry *time.Time) error
}
