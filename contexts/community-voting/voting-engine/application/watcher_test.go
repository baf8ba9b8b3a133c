package application

import (
	"context"
	"testing"

	"rentloo/contexts/community-voting/voting-engine/adapters/memory"
	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	"rentloo/contexts/community-voting/voting-engine/ports"
)

type capturingPublisher struct {
	snapshots []ports.RosterSnapshot
}

func (p *capturingPublisher) PublishRoster(_ context.Context, snapshot ports.RosterSnapshot) error {
	p.snapshots = append(p.snapshots, snapshot)
	return nil
}

func TestRosterWatcherPublishesOnlyOnChange(t *testing.T) {
	store := memory.NewStore([]entities.Participant{{ID: "p1", Name: "Asha", Votes: 0}})
	publisher := &capturingPublisher{}
	watcher := RosterWatcher{
		Participants: store,
		Config:       store,
		Publisher:    publisher,
		Clock:        memory.SystemClock{},
	}

	var last []byte
	for i := 0; i < 3; i++ {
		if _, err := watcher.pollOnce(context.Background(), &last); err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
	}
	if len(publisher.snapshots) != 1 {
		t.Fatalf("published %d snapshots for an unchanged roster, want 1", len(publisher.snapshots))
	}

	if err := store.MoveVote(context.Background(), "p1", ""); err != nil {
		t.Fatalf("move vote: %v", err)
	}
	if _, err := watcher.pollOnce(context.Background(), &last); err != nil {
		t.Fatalf("poll after change: %v", err)
	}
	if len(publisher.snapshots) != 2 {
		t.Fatalf("published %d snapshots after a change, want 2", len(publisher.snapshots))
	}
	latest := publisher.snapshots[len(publisher.snapshots)-1]
	if len(latest.Participants) != 1 || latest.Participants[0].Votes != 1 {
		t.Fatalf("latest snapshot = %+v, want p1 with one vote", latest.Participants)
	}
}
