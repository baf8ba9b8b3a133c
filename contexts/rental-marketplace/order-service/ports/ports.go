package ports

import (
	"context"
	"time"

	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
)

// OrderRepository stores completed checkouts newest-first.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

// CartGateway is the checkout's read-and-drain view of the basket.
type CartGateway interface {
	Items(ctx context.Context) ([]entities.OrderItem, error)
	Clear(ctx context.Context) error
}

// PaymentProcessor authorizes the checkout charge. A declined charge is
// reported as an error; there is no partial capture.
type PaymentProcessor interface {
	Charge(ctx context.Context, amount float64, method entities.PaymentMethod) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
