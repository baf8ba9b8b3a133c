package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	supportservice "rentloo/contexts/community-experience/support-service"
	supportlocal "rentloo/contexts/community-experience/support-service/adapters/local"
	votingengine "rentloo/contexts/community-voting/voting-engine"
	votinglocal "rentloo/contexts/community-voting/voting-engine/adapters/local"
	votingmemory "rentloo/contexts/community-voting/voting-engine/adapters/memory"
	votingpostgres "rentloo/contexts/community-voting/voting-engine/adapters/postgres"
	votingapplication "rentloo/contexts/community-voting/voting-engine/application"
	identityservice "rentloo/contexts/identity-access/identity-service"
	identitylocal "rentloo/contexts/identity-access/identity-service/adapters/local"
	cartservice "rentloo/contexts/rental-marketplace/cart-service"
	cartlocal "rentloo/contexts/rental-marketplace/cart-service/adapters/local"
	listingservice "rentloo/contexts/rental-marketplace/listing-service"
	listinglocal "rentloo/contexts/rental-marketplace/listing-service/adapters/local"
	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	orderservice "rentloo/contexts/rental-marketplace/order-service"
	cartgateway "rentloo/contexts/rental-marketplace/order-service/adapters/cart"
	orderlocal "rentloo/contexts/rental-marketplace/order-service/adapters/local"
	wishlistservice "rentloo/contexts/rental-marketplace/wishlist-service"
	wishlistlocal "rentloo/contexts/rental-marketplace/wishlist-service/adapters/local"
	"rentloo/internal/platform/config"
	"rentloo/internal/platform/db"
	"rentloo/internal/platform/httpserver"
	"rentloo/internal/platform/localstore"
	"rentloo/internal/platform/messaging"
)

// APIApp is the wired process: one HTTP server, the roster watcher, and the
// backing stores. The voting backend (postgres vs local snapshots) is chosen
// exactly once here; everything downstream sees only ports.
type APIApp struct {
	Config  config.Config
	Logger  *slog.Logger
	Server  *httpserver.Server
	Watcher votingapplication.RosterWatcher
	Bus     *messaging.Bus

	pg *db.Postgres
}

func NewAPIApp() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		"service", cfg.ServiceName,
	)
	slog.SetDefault(logger)

	files, err := localstore.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	voting, pg, err := buildVotingModule(cfg, files, logger)
	if err != nil {
		return nil, err
	}

	listingStore, err := listinglocal.NewStore(files, entities.SeedListings())
	if err != nil {
		return nil, fmt.Errorf("open listing store: %w", err)
	}
	listings, err := listingservice.NewModule(listingservice.Dependencies{
		Listings: listingStore,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	cartStore, err := cartlocal.NewStore(files)
	if err != nil {
		return nil, fmt.Errorf("open cart store: %w", err)
	}
	cart, err := cartservice.NewModule(cartservice.Dependencies{
		Cart:   cartStore,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	orderStore, err := orderlocal.NewStore(files)
	if err != nil {
		return nil, fmt.Errorf("open order store: %w", err)
	}
	orders, err := orderservice.NewModule(orderservice.Dependencies{
		Orders: orderStore,
		Cart:   cartgateway.Gateway{Cart: cart.Service},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	wishlistStore, err := wishlistlocal.NewStore(files)
	if err != nil {
		return nil, fmt.Errorf("open wishlist store: %w", err)
	}
	wishlist, err := wishlistservice.NewModule(wishlistservice.Dependencies{
		Wishlist: wishlistStore,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	supportStore, err := supportlocal.NewStore(files)
	if err != nil {
		return nil, fmt.Errorf("open support store: %w", err)
	}
	support, err := supportservice.NewModule(supportservice.Dependencies{
		Messages: supportStore,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	identity, err := identityservice.NewModule(identityservice.Dependencies{
		Sessions: identitylocal.NewStore(files),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	watcher := votingapplication.RosterWatcher{
		Participants: voting.Service.Participants,
		Config:       voting.Service.Config,
		Publisher:    messaging.RosterPublisher{Bus: bus},
		Clock:        votingmemory.SystemClock{},
		Interval:     time.Duration(cfg.RosterPollInterval) * time.Second,
		Logger:       logger,
	}

	server := httpserver.New(httpserver.Modules{
		Voting:   voting,
		Listings: listings,
		Cart:     cart,
		Orders:   orders,
		Wishlist: wishlist,
		Support:  support,
		Identity: identity,
		Bus:      bus,
	}, logger, ":"+cfg.HTTPPort)

	return &APIApp{
		Config:  cfg,
		Logger:  logger,
		Server:  server,
		Watcher: watcher,
		Bus:     bus,
		pg:      pg,
	}, nil
}

// buildVotingModule picks the voting backend once. A reachable postgres DSN
// means online mode; anything else pins the engine to offline snapshots for
// the life of the process. The one-vote client reference is local either way.
func buildVotingModule(cfg config.Config, files *localstore.Store, logger *slog.Logger) (votingengine.Module, *db.Postgres, error) {
	localStore, err := votinglocal.NewStore(files, logger)
	if err != nil {
		return votingengine.Module{}, nil, fmt.Errorf("open voting snapshot store: %w", err)
	}

	if cfg.PostgresDSN != "" {
		pg, err := db.Connect(cfg.PostgresDSN)
		if err == nil {
			if err := votingpostgres.AutoMigrate(pg.DB); err != nil {
				_ = pg.Close()
				return votingengine.Module{}, nil, fmt.Errorf("migrate voting schema: %w", err)
			}
			repo := votingpostgres.NewRepository(pg.DB, logger)
			module, err := votingengine.NewModule(votingengine.Dependencies{
				Participants: repo,
				Config:       repo,
				ClientState:  localStore,
				Clock:        votingmemory.SystemClock{},
				IDGen:        votingmemory.UUIDGenerator{},
				Online:       true,
				Logger:       logger,
			})
			if err != nil {
				_ = pg.Close()
				return votingengine.Module{}, nil, err
			}
			logger.Info("voting backend online",
				"event", "voting_backend_selected",
				"module", "internal/app/bootstrap",
				"layer", "bootstrap",
				"online", true,
			)
			return module, pg, nil
		}
		logger.Warn("postgres unreachable, falling back to local snapshots",
			"event", "voting_backend_fallback",
			"module", "internal/app/bootstrap",
			"layer", "bootstrap",
			"error", err,
		)
	}

	module, err := votingengine.NewModule(votingengine.Dependencies{
		Participants: localStore,
		Config:       localStore,
		ClientState:  localStore,
		Clock:        votingmemory.SystemClock{},
		IDGen:        votingmemory.UUIDGenerator{},
		Online:       false,
		Logger:       logger,
	})
	if err != nil {
		return votingengine.Module{}, nil, err
	}
	logger.Info("voting backend offline",
		"event", "voting_backend_selected",
		"module", "internal/app/bootstrap",
		"layer", "bootstrap",
		"online", false,
	)
	return module, nil, nil
}

// Run starts the roster watcher and then blocks on the HTTP server.
func (a *APIApp) Run(ctx context.Context) error {
	go func() {
		if err := a.Watcher.Run(ctx); err != nil && ctx.Err() == nil {
			a.Logger.Error("roster watcher stopped",
				"event", "roster_watcher_stopped",
				"module", "internal/app/bootstrap",
				"layer", "bootstrap",
				"error", err,
			)
		}
	}()
	return a.Server.Start()
}

func (a *APIApp) Close() error {
	return a.pg.Close()
}
