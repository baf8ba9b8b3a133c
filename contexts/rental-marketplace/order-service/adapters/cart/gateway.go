package cart

import (
	"context"

	cartapplication "rentloo/contexts/rental-marketplace/cart-service/application"
	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	"rentloo/contexts/rental-marketplace/order-service/ports"
)

// Gateway adapts the cart module's service to the checkout's view of the
// basket, translating cart lines into order lines.
type Gateway struct {
	Cart cartapplication.Service
}

func (g Gateway) Items(ctx context.Context) ([]entities.OrderItem, error) {
	cartItems, err := g.Cart.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, entities.OrderItem{
			ListingID:   item.ListingID,
			Title:       item.Title,
			Image:       item.Image,
			PricePerDay: item.PricePerDay,
			Currency:    item.Currency,
			StartDate:   item.StartDate,
			EndDate:     item.EndDate,
			Days:        item.Days,
			Total:       item.Total,
		})
	}
	return items, nil
}

func (g Gateway) Clear(ctx context.Context) error {
	return g.Cart.Clear(ctx)
}

var _ ports.CartGateway = Gateway{}
