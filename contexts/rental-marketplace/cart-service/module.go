package cartservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/rental-marketplace/cart-service/adapters/http"
	"rentloo/contexts/rental-marketplace/cart-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/cart-service/application"
	"rentloo/contexts/rental-marketplace/cart-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Cart   ports.CartRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Cart == nil {
		return Module{}, errors.New("cart-service: cart repository is required")
	}
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDGen == nil {
		deps.IDGen = memory.UUIDGenerator{}
	}

	service := application.Service{
		Cart:   deps.Cart,
		Clock:  deps.Clock,
		IDGen:  deps.IDGen,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}, nil
}

func NewInMemoryModule(logger *slog.Logger) (Module, error) {
	return NewModule(Dependencies{
		Cart:   memory.NewStore(),
		Logger: logger,
	})
}
