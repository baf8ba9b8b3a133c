package application

import (
	"context"
	"errors"
	"testing"
	"time"

	cartmemory "rentloo/contexts/rental-marketplace/cart-service/adapters/memory"
	cartapplication "rentloo/contexts/rental-marketplace/cart-service/application"
	cartadapter "rentloo/contexts/rental-marketplace/order-service/adapters/cart"
	"rentloo/contexts/rental-marketplace/order-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/order-service/adapters/payment"
	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/order-service/domain/errors"
	"rentloo/contexts/rental-marketplace/order-service/ports"
)

func newCheckoutFixture(t *testing.T, processor ports.PaymentProcessor) (Service, cartapplication.Service) {
	t.Helper()
	cartService := cartapplication.Service{
		Cart:  cartmemory.NewStore(),
		Clock: cartmemory.SystemClock{},
		IDGen: cartmemory.UUIDGenerator{},
	}
	service := Service{
		Orders:   memory.NewStore(),
		Cart:     cartadapter.Gateway{Cart: cartService},
		Payments: processor,
		Clock:    memory.SystemClock{},
		IDGen:    memory.UUIDGenerator{},
	}
	return service, cartService
}

func fillCart(t *testing.T, cartService cartapplication.Service) {
	t.Helper()
	start := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)
	lines := []cartapplication.AddItemInput{
		{ListingID: "5", Title: "Karcher K4 Pressure Washer", PricePerDay: 1200, Currency: "₹", StartDate: start, Days: 3},
		{ListingID: "6", Title: "DJI Mini 3 Pro drone", PricePerDay: 2000, Currency: "₹", StartDate: start, Days: 2},
	}
	for _, line := range lines {
		if _, err := cartService.AddItem(context.Background(), line); err != nil {
			t.Fatalf("AddItem: %v", err)
		}
	}
}

func validCheckout() CheckoutInput {
	return CheckoutInput{
		PaymentMethod: entities.PaymentCreditCard,
		Customer: entities.CustomerDetails{
			Name:  "Priya Sharma",
			Email: "priya@example.com",
		},
	}
}

func TestCheckoutConfirmsOrderAndDrainsCart(t *testing.T) {
	service, cartService := newCheckoutFixture(t, payment.Simulator{})
	fillCart(t, cartService)

	order, err := service.Checkout(context.Background(), validCheckout())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if order.Status != entities.OrderConfirmed {
		t.Fatalf("expected confirmed order, got %q", order.Status)
	}
	if len(order.ID) < 5 || order.ID[:4] != "ord_" {
		t.Fatalf("unexpected order id %q", order.ID)
	}
	// Subtotal 3600 + 4000, fee 200 per line.
	if order.Subtotal != 7600 {
		t.Fatalf("expected subtotal 7600, got %v", order.Subtotal)
	}
	if order.ServiceFee != 400 {
		t.Fatalf("expected service fee 400, got %v", order.ServiceFee)
	}
	if order.Total != 8000 {
		t.Fatalf("expected total 8000, got %v", order.Total)
	}

	remaining, err := cartService.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected drained cart, got %d items", len(remaining))
	}

	orders, err := service.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("expected the order in history, got %+v", orders)
	}
}

func TestCheckoutDeclineLeavesCartAndHistoryUntouched(t *testing.T) {
	decline := payment.Simulator{
		Decide: func(float64, entities.PaymentMethod) error {
			return domainerrors.ErrPaymentDeclined
		},
	}
	service, cartService := newCheckoutFixture(t, decline)
	fillCart(t, cartService)

	if _, err := service.Checkout(context.Background(), validCheckout()); !errors.Is(err, domainerrors.ErrPaymentDeclined) {
		t.Fatalf("expected ErrPaymentDeclined, got %v", err)
	}

	remaining, err := cartService.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected cart untouched, got %d items", len(remaining))
	}
	orders, err := service.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	service, _ := newCheckoutFixture(t, payment.Simulator{})

	if _, err := service.Checkout(context.Background(), validCheckout()); !errors.Is(err, domainerrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutValidatesCustomerAndMethod(t *testing.T) {
	service, cartService := newCheckoutFixture(t, payment.Simulator{})
	fillCart(t, cartService)

	cases := []CheckoutInput{
		{PaymentMethod: entities.PaymentCreditCard, Customer: entities.CustomerDetails{Name: "", Email: "a@b.c"}},
		{PaymentMethod: entities.PaymentCreditCard, Customer: entities.CustomerDetails{Name: "A", Email: "  "}},
		{PaymentMethod: "crypto", Customer: entities.CustomerDetails{Name: "A", Email: "a@b.c"}},
		{PaymentMethod: "card", Customer: entities.CustomerDetails{Name: "A", Email: "a@b.c"}},
	}
	for _, input := range cases {
		if _, err := service.Checkout(context.Background(), input); !errors.Is(err, domainerrors.ErrInvalidRequest) {
			t.Fatalf("input %+v: expected ErrInvalidRequest, got %v", input, err)
		}
	}
}

func TestCheckoutAcceptsEveryPaymentMethod(t *testing.T) {
	for _, method := range entities.PaymentMethods() {
		service, cartService := newCheckoutFixture(t, payment.Simulator{})
		fillCart(t, cartService)

		input := validCheckout()
		input.PaymentMethod = method
		order, err := service.Checkout(context.Background(), input)
		if err != nil {
			t.Fatalf("method %q: Checkout: %v", method, err)
		}
		if order.PaymentMethod != method {
			t.Fatalf("method %q: order recorded %q", method, order.PaymentMethod)
		}
		if order.Status != entities.OrderConfirmed {
			t.Fatalf("method %q: expected confirmed order, got %q", method, order.Status)
		}
	}
}

func TestGetOrder(t *testing.T) {
	service, cartService := newCheckoutFixture(t, payment.Simulator{})
	fillCart(t, cartService)

	order, err := service.Checkout(context.Background(), validCheckout())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	got, err := service.GetOrder(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.Total != order.Total {
		t.Fatalf("expected total %v, got %v", order.Total, got.Total)
	}
	if _, err := service.GetOrder(context.Background(), "ord_missing"); !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
