package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rentloo/contexts/community-voting/voting-engine/adapters/memory"
	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"
)

// blockingRepository parks MoveVote until released so a second cast can be
// issued while the first is still in flight.
type blockingRepository struct {
	*memory.Store
	entered     chan struct{}
	enteredOnce sync.Once
	release     chan struct{}
}

func (r *blockingRepository) MoveVote(ctx context.Context, toID string, fromID string) error {
	r.enteredOnce.Do(func() { close(r.entered) })
	<-r.release
	return r.Store.MoveVote(ctx, toID, fromID)
}

func TestCastVoteInFlightGuard(t *testing.T) {
	store := memory.NewStore([]entities.Participant{
		{ID: "p1", Name: "Asha", Votes: 0},
		{ID: "p2", Name: "Ravi", Votes: 0},
	})
	if err := store.SetVotingActive(context.Background(), true); err != nil {
		t.Fatalf("activate: %v", err)
	}

	repo := &blockingRepository{
		Store:   store,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	service, err := NewVotingService(repo, store, store, memory.SystemClock{}, memory.UUIDGenerator{}, false, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- service.CastVote(context.Background(), "p1")
	}()

	select {
	case <-repo.entered:
	case <-time.After(2 * time.Second):
		t.Fatalf("first cast never reached the repository")
	}

	// The guard rejects the overlapping cast instead of racing the same
	// previous-vote snapshot.
	if err := service.CastVote(context.Background(), "p2"); !errors.Is(err, domainerrors.ErrVoteInFlight) {
		t.Fatalf("overlapping cast: err = %v, want ErrVoteInFlight", err)
	}

	close(repo.release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first cast: %v", err)
	}

	// Once the first cast resolved, the slot is free again.
	if err := service.CastVote(context.Background(), "p2"); err != nil {
		t.Fatalf("follow-up cast: %v", err)
	}
	if vote, _ := service.UserVote(); vote != "p2" {
		t.Fatalf("user vote = %q, want p2", vote)
	}
}

func TestNewVotingServiceLoadsPersistedReference(t *testing.T) {
	store := memory.NewStore([]entities.Participant{{ID: "p1", Name: "Asha", Votes: 1}})
	if err := store.SaveUserVote(context.Background(), "p1"); err != nil {
		t.Fatalf("seed reference: %v", err)
	}

	service, err := NewVotingService(store, store, store, memory.SystemClock{}, memory.UUIDGenerator{}, false, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	if vote, ok := service.UserVote(); !ok || vote != "p1" {
		t.Fatalf("user vote = %q (%v), want p1 loaded from client state", vote, ok)
	}
}

// failingClientState reports a save failure after the move committed; the
// cached reference must not advance past what was durably stored.
type failingClientState struct {
	ports.ClientStateStore
}

func (failingClientState) SaveUserVote(context.Context, string) error {
	return errors.New("disk full")
}

func TestCastVoteSurfacesClientStateFailure(t *testing.T) {
	store := memory.NewStore([]entities.Participant{{ID: "p1", Name: "Asha", Votes: 0}})
	if err := store.SetVotingActive(context.Background(), true); err != nil {
		t.Fatalf("activate: %v", err)
	}

	service, err := NewVotingService(store, store, failingClientState{store}, memory.SystemClock{}, memory.UUIDGenerator{}, false, nil)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	if err := service.CastVote(context.Background(), "p1"); err == nil {
		t.Fatalf("expected client state failure to surface")
	}
	if vote, ok := service.UserVote(); ok {
		t.Fatalf("user vote = %q, want none after failed save", vote)
	}
}
