package orderservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/rental-marketplace/order-service/adapters/http"
	"rentloo/contexts/rental-marketplace/order-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/order-service/adapters/payment"
	"rentloo/contexts/rental-marketplace/order-service/application"
	"rentloo/contexts/rental-marketplace/order-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Orders   ports.OrderRepository
	Cart     ports.CartGateway
	Payments ports.PaymentProcessor
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Orders == nil {
		return Module{}, errors.New("order-service: order repository is required")
	}
	if deps.Cart == nil {
		return Module{}, errors.New("order-service: cart gateway is required")
	}
	if deps.Payments == nil {
		deps.Payments = payment.Simulator{}
	}
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDGen == nil {
		deps.IDGen = memory.UUIDGenerator{}
	}

	service := application.Service{
		Orders:   deps.Orders,
		Cart:     deps.Cart,
		Payments: deps.Payments,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}, nil
}

// NewInMemoryModule wires the slice-backed order store against the given
// cart gateway, with the always-approving payment simulator.
func NewInMemoryModule(cart ports.CartGateway, logger *slog.Logger) (Module, error) {
	return NewModule(Dependencies{
		Orders: memory.NewStore(),
		Cart:   cart,
		Logger: logger,
	})
}
