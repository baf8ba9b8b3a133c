package messaging

import (
	"context"

	votingports "rentloo/contexts/community-voting/voting-engine/ports"

	"github.com/google/uuid"
)

// RosterTopic is where the voting roster watcher publishes live snapshots.
const RosterTopic = "voting.roster"

// RosterPublisher bridges the voting engine's publisher port onto the bus.
type RosterPublisher struct {
	Bus *Bus
}

func (p RosterPublisher) PublishRoster(ctx context.Context, snapshot votingports.RosterSnapshot) error {
	return p.Bus.Publish(ctx, RosterTopic, Envelope{
		EventID:    uuid.NewString(),
		EventType:  "voting.roster.snapshot",
		OccurredAt: snapshot.ObservedAt,
		Payload:    snapshot,
	})
}

var _ votingports.RosterPublisher = RosterPublisher{}
