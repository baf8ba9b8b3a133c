package ports

import (
	"context"
	"time"

	"rentloo/contexts/community-experience/support-service/domain/entities"
)

// MessageRepository stores the contact inbox newest-first.
type MessageRepository interface {
	ListMessages(ctx context.Context) ([]entities.ContactMessage, error)
	CreateMessage(ctx context.Context, message entities.ContactMessage) (entities.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
