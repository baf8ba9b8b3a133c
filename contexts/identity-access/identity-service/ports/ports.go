package ports

import (
	"context"

	"rentloo/contexts/identity-access/identity-service/domain/entities"
)

// SessionStore holds at most one signed-in user.
type SessionStore interface {
	CurrentUser(ctx context.Context) (entities.User, bool, error)
	SaveUser(ctx context.Context, user entities.User) error
	ClearUser(ctx context.Context) error
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
