package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	supportservice "rentloo/contexts/community-experience/support-service"
	votingengine "rentloo/contexts/community-voting/voting-engine"
	identityservice "rentloo/contexts/identity-access/identity-service"
	cartservice "rentloo/contexts/rental-marketplace/cart-service"
	listingservice "rentloo/contexts/rental-marketplace/listing-service"
	orderservice "rentloo/contexts/rental-marketplace/order-service"
	wishlistservice "rentloo/contexts/rental-marketplace/wishlist-service"
	"rentloo/internal/platform/messaging"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "rentloo/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	bus      *messaging.Bus
	voting   votingengine.Module
	listings listingservice.Module
	cart     cartservice.Module
	orders   orderservice.Module
	wishlist wishlistservice.Module
	support  supportservice.Module
	identity identityservice.Module
}

type Modules struct {
	Voting   votingengine.Module
	Listings listingservice.Module
	Cart     cartservice.Module
	Orders   orderservice.Module
	Wishlist wishlistservice.Module
	Support  supportservice.Module
	Identity identityservice.Module
	// Bus feeds the live roster long-poll; nil disables the events route.
	Bus *messaging.Bus
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		bus:      modules.Bus,
		voting:   modules.Voting,
		listings: modules.Listings,
		cart:     modules.Cart,
		orders:   modules.Orders,
		wishlist: modules.Wishlist,
		support:  modules.Support,
		identity: modules.Identity,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerVotingRoutes()
	s.registerMarketplaceRoutes()
	s.registerOrderRoutes()
	s.registerSupportRoutes()
	s.registerIdentityRoutes()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
