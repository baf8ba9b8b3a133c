package votingengine

import (
	"log/slog"

	httpadapter "rentloo/contexts/community-voting/voting-engine/adapters/http"
	"rentloo/contexts/community-voting/voting-engine/adapters/memory"
	"rentloo/contexts/community-voting/voting-engine/application"
	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	"rentloo/contexts/community-voting/voting-engine/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service *application.VotingService
	Store   *memory.Store
}

type Dependencies struct {
	Participants ports.ParticipantRepository
	Config       ports.ConfigRepository
	ClientState  ports.ClientStateStore
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Online       bool
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) (Module, error) {
	service, err := application.NewVotingService(
		deps.Participants,
		deps.Config,
		deps.ClientState,
		deps.Clock,
		deps.IDGen,
		deps.Online,
		deps.Logger,
	)
	if err != nil {
		return Module{}, err
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}, nil
}

// NewInMemoryModule backs the engine with the in-memory store; used by tests
// and by any wiring that needs a throwaway roster.
func NewInMemoryModule(seed []entities.Participant, logger *slog.Logger) (Module, error) {
	store := memory.NewStore(seed)
	module, err := NewModule(Dependencies{
		Participants: store,
		Config:       store,
		ClientState:  store,
		Clock:        memory.SystemClock{},
		IDGen:        memory.UUIDGenerator{},
		Online:       false,
		Logger:       logger,
	})
	if err != nil {
		return Module{}, err
	}
	module.Store = store
	return module, nil
}
