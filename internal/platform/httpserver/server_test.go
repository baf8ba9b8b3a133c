package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	supportservice "rentloo/contexts/community-experience/support-service"
	votingengine "rentloo/contexts/community-voting/voting-engine"
	votingentities "rentloo/contexts/community-voting/voting-engine/domain/entities"
	votingports "rentloo/contexts/community-voting/voting-engine/ports"
	identityservice "rentloo/contexts/identity-access/identity-service"
	cartservice "rentloo/contexts/rental-marketplace/cart-service"
	listingservice "rentloo/contexts/rental-marketplace/listing-service"
	orderservice "rentloo/contexts/rental-marketplace/order-service"
	cartgateway "rentloo/contexts/rental-marketplace/order-service/adapters/cart"
	wishlistservice "rentloo/contexts/rental-marketplace/wishlist-service"
	"rentloo/internal/platform/messaging"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	voting, err := votingengine.NewInMemoryModule(nil, nil)
	if err != nil {
		t.Fatalf("voting module: %v", err)
	}
	listings, err := listingservice.NewInMemoryModule(nil, nil)
	if err != nil {
		t.Fatalf("listing module: %v", err)
	}
	cart, err := cartservice.NewInMemoryModule(nil)
	if err != nil {
		t.Fatalf("cart module: %v", err)
	}
	orders, err := orderservice.NewInMemoryModule(cartgateway.Gateway{Cart: cart.Service}, nil)
	if err != nil {
		t.Fatalf("order module: %v", err)
	}
	wishlist, err := wishlistservice.NewInMemoryModule(nil)
	if err != nil {
		t.Fatalf("wishlist module: %v", err)
	}
	support, err := supportservice.NewInMemoryModule(nil)
	if err != nil {
		t.Fatalf("support module: %v", err)
	}
	identity, err := identityservice.NewInMemoryModule(nil)
	if err != nil {
		t.Fatalf("identity module: %v", err)
	}

	return New(Modules{
		Voting:   voting,
		Listings: listings,
		Cart:     cart,
		Orders:   orders,
		Wishlist: wishlist,
		Support:  support,
		Identity: identity,
		Bus:      messaging.NewBus(nil),
	}, nil, "")
}

func doJSON(t *testing.T, server *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestVotingRoutes(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/voting/v1/participants", map[string]string{
		"name":        "Priya",
		"description": "Lends camera gear",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add participant: status %d, body %s", rec.Code, rec.Body.String())
	}
	var participant struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &participant); err != nil {
		t.Fatalf("decode participant: %v", err)
	}

	// Voting is closed by default.
	rec = doJSON(t, server, http.MethodPost, "/api/voting/v1/votes", map[string]string{
		"participant_id": participant.ID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("vote while closed: status %d", rec.Code)
	}

	rec = doJSON(t, server, http.MethodPost, "/api/voting/v1/toggle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: status %d", rec.Code)
	}
	rec = doJSON(t, server, http.MethodPost, "/api/voting/v1/votes", map[string]string{
		"participant_id": participant.ID,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("vote: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, server, http.MethodGet, "/api/voting/v1/roster", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("roster: status %d", rec.Code)
	}
	var roster struct {
		Participants []struct {
			ID    string `json:"id"`
			Votes int    `json:"votes"`
		} `json:"participants"`
		VotingActive bool   `json:"voting_active"`
		UserVote     string `json:"user_vote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &roster); err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if !roster.VotingActive || roster.UserVote != participant.ID {
		t.Fatalf("unexpected roster state: %+v", roster)
	}
	if len(roster.Participants) != 1 || roster.Participants[0].Votes != 1 {
		t.Fatalf("unexpected tallies: %+v", roster.Participants)
	}
}

func TestVotingRosterEventsRoute(t *testing.T) {
	server := newTestServer(t)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	publisher := messaging.RosterPublisher{Bus: server.bus}
	snapshot := votingports.RosterSnapshot{
		Participants: []votingentities.Participant{{ID: "p1", Name: "Priya", Votes: 2}},
		VotingActive: true,
		ObservedAt:   time.Now(),
	}
	// Publish until the long-poll picks a snapshot up; the handler
	// subscribes only once the request is in flight.
	go func() {
		for ctx.Err() == nil {
			_ = publisher.PublishRoster(ctx, snapshot)
			time.Sleep(5 * time.Millisecond)
		}
	}()

	rec := doJSON(t, server, http.MethodGet, "/api/voting/v1/roster/events", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("roster events: status %d, body %s", rec.Code, rec.Body.String())
	}
	var event struct {
		EventID      string `json:"event_id"`
		VotingActive bool   `json:"voting_active"`
		Participants []struct {
			ID    string `json:"id"`
			Votes int    `json:"votes"`
		} `json:"participants"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	if event.EventID == "" || !event.VotingActive {
		t.Fatalf("unexpected event: %+v", event)
	}
	if len(event.Participants) != 1 || event.Participants[0].ID != "p1" || event.Participants[0].Votes != 2 {
		t.Fatalf("unexpected participants: %+v", event.Participants)
	}
}

func TestMarketplaceRoutes(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/marketplace/v1/listings?q=teleprompter", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: status %d", rec.Code)
	}
	var listings struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listings); err != nil {
		t.Fatalf("decode listings: %v", err)
	}
	if len(listings.Items) != 2 {
		t.Fatalf("expected 2 teleprompter listings, got %d", len(listings.Items))
	}

	rec = doJSON(t, server, http.MethodGet, "/api/marketplace/v1/listings/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing listing: status %d", rec.Code)
	}

	rec = doJSON(t, server, http.MethodPost, "/api/marketplace/v1/wishlist/5/toggle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wishlist toggle: status %d", rec.Code)
	}
	rec = doJSON(t, server, http.MethodGet, "/api/marketplace/v1/wishlist", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("wishlist: status %d", rec.Code)
	}
	var wishlist struct {
		ListingIDs []string `json:"listing_ids"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &wishlist); err != nil {
		t.Fatalf("decode wishlist: %v", err)
	}
	if len(wishlist.ListingIDs) != 1 || wishlist.ListingIDs[0] != "5" {
		t.Fatalf("unexpected wishlist: %v", wishlist.ListingIDs)
	}
}

func TestCheckoutRoute(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/orders/v1/cart/items", map[string]any{
		"listing_id":    "5",
		"title":         "Karcher K4 Pressure Washer",
		"price_per_day": 1200,
		"currency":      "₹",
		"start_date":    "2026-09-10",
		"days":          3,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add cart item: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, server, http.MethodGet, "/api/orders/v1/cart/count", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("cart count: status %d", rec.Code)
	}
	var count struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &count); err != nil {
		t.Fatalf("decode count: %v", err)
	}
	if count.Count != 1 {
		t.Fatalf("expected cart count 1, got %d", count.Count)
	}

	rec = doJSON(t, server, http.MethodPost, "/api/orders/v1/checkout", map[string]string{
		"payment_method": "credit_card",
		"name":           "Priya Sharma",
		"email":          "priya@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: status %d, body %s", rec.Code, rec.Body.String())
	}
	var order struct {
		ID         string  `json:"id"`
		Subtotal   float64 `json:"subtotal"`
		ServiceFee float64 `json:"service_fee"`
		Total      float64 `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if order.Subtotal != 3600 || order.ServiceFee != 200 || order.Total != 3800 {
		t.Fatalf("unexpected pricing: %+v", order)
	}

	// Cart is drained, so a second checkout has nothing to charge.
	rec = doJSON(t, server, http.MethodPost, "/api/orders/v1/checkout", map[string]string{
		"payment_method": "credit_card",
		"name":           "Priya Sharma",
		"email":          "priya@example.com",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("empty checkout: status %d", rec.Code)
	}
}

func TestCheckoutPaymentMethodStrings(t *testing.T) {
	server := newTestServer(t)

	accepted := []string{"credit_card", "paypal", "apple_pay", "google_pay"}
	for _, method := range accepted {
		rec := doJSON(t, server, http.MethodPost, "/api/orders/v1/cart/items", map[string]any{
			"listing_id":    "5",
			"title":         "Karcher K4 Pressure Washer",
			"price_per_day": 1200,
			"currency":      "₹",
			"start_date":    "2026-09-10",
			"days":          3,
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("method %q: add cart item: status %d, body %s", method, rec.Code, rec.Body.String())
		}
		rec = doJSON(t, server, http.MethodPost, "/api/orders/v1/checkout", map[string]string{
			"payment_method": method,
			"name":           "Priya Sharma",
			"email":          "priya@example.com",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("method %q: checkout: status %d, body %s", method, rec.Code, rec.Body.String())
		}
		var order struct {
			PaymentMethod string `json:"payment_method"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &order); err != nil {
			t.Fatalf("method %q: decode order: %v", method, err)
		}
		if order.PaymentMethod != method {
			t.Fatalf("method %q: order recorded %q", method, order.PaymentMethod)
		}
	}

	for _, method := range []string{"card", "upi", "cash", "crypto"} {
		rec := doJSON(t, server, http.MethodPost, "/api/orders/v1/checkout", map[string]string{
			"payment_method": method,
			"name":           "Priya Sharma",
			"email":          "priya@example.com",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("method %q: expected 400, got %d", method, rec.Code)
		}
	}
}

func TestSupportRoutes(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/support/v1/bot/ask", map[string]string{
		"query": "How does Rentloo work?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("bot ask: status %d", rec.Code)
	}
	var answer struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &answer); err != nil {
		t.Fatalf("decode answer: %v", err)
	}
	if answer.Answer == "" {
		t.Fatal("expected a bot answer")
	}

	rec = doJSON(t, server, http.MethodPost, "/api/support/v1/messages", map[string]string{
		"name":    "Ravi",
		"email":   "ravi@example.com",
		"message": "The drone arrived late.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit message: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestIdentityRoutes(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/api/identity/v1/me", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me while signed out: status %d", rec.Code)
	}

	rec = doJSON(t, server, http.MethodPost, "/api/identity/v1/login", map[string]string{
		"name":  "Priya Sharma",
		"email": "priya@example.com",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, server, http.MethodGet, "/api/identity/v1/me", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: status %d", rec.Code)
	}
	var user struct {
		Avatar string `json:"avatar"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Avatar != "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya+Sharma" {
		t.Fatalf("unexpected avatar %q", user.Avatar)
	}

	rec = doJSON(t, server, http.MethodPost, "/api/identity/v1/logout", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: status %d", rec.Code)
	}
}
