package wishlistservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/rental-marketplace/wishlist-service/adapters/http"
	"rentloo/contexts/rental-marketplace/wishlist-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/wishlist-service/application"
	"rentloo/contexts/rental-marketplace/wishlist-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Wishlist ports.WishlistRepository
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Wishlist == nil {
		return Module{}, errors.New("wishlist-service: wishlist repository is required")
	}
	service := application.Service{
		Wishlist: deps.Wishlist,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}, nil
}

func NewInMemoryModule(logger *slog.Logger) (Module, error) {
	return NewModule(Dependencies{
		Wishlist: memory.NewStore(),
		Logger:   logger,
	})
}
