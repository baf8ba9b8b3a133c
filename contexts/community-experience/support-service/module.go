package supportservice

import (
	"errors"
	"log/slog"

	httpadapter "rentloo/contexts/community-experience/support-service/adapters/http"
	"rentloo/contexts/community-experience/support-service/adapters/memory"
	"rentloo/contexts/community-experience/support-service/application"
	"rentloo/contexts/community-experience/support-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Messages ports.MessageRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	if deps.Messages == nil {
		return Module{}, errors.New("support-service: message repository is required")
	}
	if deps.Clock == nil {
		deps.Clock = memory.SystemClock{}
	}
	if deps.IDGen == nil {
		deps.IDGen = memory.UUIDGenerator{}
	}

	service := application.Service{
		Messages: deps.Messages,
		Clock:    deps.Clock,
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
		Messages: memory.NewStore(),
		Logger:   logger,
	})
}
