package ports

import (
	"context"
	"time"

	"rentloo/contexts/rental-marketplace/cart-service/domain/entities"
)

// CartRepository stores the renter's basket in add order.
type CartRepository interface {
	ListItems(ctx context.Context) ([]entities.CartItem, error)
	AddItem(ctx context.Context, item entities.CartItem) (entities.CartItem, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
