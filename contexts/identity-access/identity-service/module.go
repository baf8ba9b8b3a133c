package identityservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/identity-access/identity-service/adapters/http"
	"rentloo/contexts/identity-access/identity-service/adapters/memory"
	"rentloo/contexts/identity-access/identity-service/application"
	"rentloo/contexts/identity-access/identity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Sessions ports.SessionStore
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Sessions == nil {
		return Module{}, errors.New("identity-service: session store is required")
	}
	if deps.IDGen == nil {
		deps.IDGen = memory.UUIDGenerator{}
	}

	service := application.Service{
		Sessions: deps.Sessions,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}, nil
}

func NewInMemoryModule(logger *slog.Logger) (Module, error) {
	return NewModule(Dependencies{
		Sessions: memory.NewStore(),
		Logger:   logger,
	})
}
