package application

import (
	"context"
	"log/slog"
	"strings"

	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/order-service/domain/errors"
	"rentloo/contexts/rental-marketplace/order-service/ports"
)

type Service struct {
	Orders   ports.OrderRepository
	Cart     ports.CartGateway
	Payments ports.PaymentProcessor
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

type CheckoutInput struct {
	PaymentMethod entities.PaymentMethod
	Customer      entities.CustomerDetails
}

// Checkout prices the basket, charges the processor once and, only on an
// approved charge, records the order and drains the cart. A declined charge
// leaves both the cart and the order history untouched.
func (s Service) Checkout(ctx context.Context, input CheckoutInput) (entities.Order, error) {
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Email) == "" {
		return entities.Order{}, domainerrors.ErrInvalidRequest
	}
	switch input.PaymentMethod {
	case entities.PaymentCreditCard, entities.PaymentPayPal, entities.PaymentApplePay, entities.PaymentGooglePay:
	default:
		return entities.Order{}, domainerrors.ErrInvalidRequest
	}

	items, err := s.Cart.Items(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	if len(items) == 0 {
		return entities.Order{}, domainerrors.ErrEmptyCart
	}

	var subtotal float64
	currency := ""
	for _, item := range items {
		subtotal += item.Total
		if currency == "" {
			currency = item.Currency
		}
	}
	serviceFee := entities.ServiceFeePerItem * float64(len(items))
	total := subtotal + serviceFee

	if err := s.Payments.Charge(ctx, total, input.PaymentMethod); err != nil {
		s.logger().Warn("checkout charge failed",
			"event", "checkout_declined",
			"module", "rental-marketplace/order-service",
			"layer", "application",
			"amount", total,
			"error", err,
		)
		return entities.Order{}, err
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	order := entities.Order{
		ID:            "ord_" + id,
		Items:         items,
		Subtotal:      subtotal,
		ServiceFee:    serviceFee,
		Total:         total,
		Currency:      currency,
		Status:        entities.OrderConfirmed,
		PaymentMethod: input.PaymentMethod,
		Customer:      input.Customer,
		CreatedAt:     s.Clock.Now(),
	}
	created, err := s.Orders.CreateOrder(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if err := s.Cart.Clear(ctx); err != nil {
		s.logger().Error("cart drain failed after checkout",
			"event", "checkout_cart_drain_failed",
			"module", "rental-marketplace/order-service",
			"layer", "application",
			"order_id", created.ID,
			"error", err,
		)
	}
	s.logger().Info("order confirmed",
		"event", "order_confirmed",
		"module", "rental-marketplace/order-service",
		"layer", "application",
		"order_id", created.ID,
		"items", len(created.Items),
		"total", created.Total,
	)
	return created, nil
}

func (s Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.Orders.ListOrders(ctx)
}

func (s Service) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, domainerrors.ErrInvalidRequest
	}
	return s.Orders.GetOrder(ctx, id)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
