package listingservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/rental-marketplace/listing-service/adapters/http"
	"rentloo/contexts/rental-marketplace/listing-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/listing-service/application"
	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	"rentloo/contexts/rental-marketplace/listing-service/ports"
)

// Module bundles the catalog use cases behind one HTTP-facing handler.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Listings ports.ListingRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Listings == nil {
		return Module{}, errors.New("listing-service: listing repository is required")
	}
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDGen == nil {
		deps.IDGen = memory.UUIDGenerator{}
	}

	service := application.Service{
		Listings: deps.Listings,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}, nil
}

// NewInMemoryModule wires the module against the slice-backed store, seeded
// with the bundled catalog. Used by tests and the demo wiring.
func NewInMemoryModule(seed []entities.Listing, logger *slog.Logger) (Module, error) {
	if seed == nil {
		seed = entities.SeedListings()
	}
	return NewModule(Dependencies{
		Listings: memory.NewStore(seed),
		Logger:   logger,
	})
}
