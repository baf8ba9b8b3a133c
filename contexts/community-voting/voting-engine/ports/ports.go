package ports

import (
	"context"
	"time"

	"rentloo/contexts/community-voting/voting-engine/domain/entities"
)

// ParticipantRepository is the roster contract shared by both backends.
// MoveVote is the core transactional operation: increment the tally of toID
// and, when fromID is non-empty and still present, decrement its tally
// floored at zero. The whole move either applies or leaves no effect; a
// missing toID aborts with ErrParticipantNotFound. The postgres adapter runs
// it inside a row-locked transaction; the local adapters run it as a
// synchronous in-process sequence, which is safe because offline mode has
// exactly one writer.
type ParticipantRepository interface {
	ListParticipants(ctx context.Context) ([]entities.Participant, error)
	GetParticipant(ctx context.Context, id string) (entities.Participant, error)
	CreateParticipant(ctx context.Context, participant entities.Participant) (entities.Participant, error)
	DeleteParticipant(ctx context.Context, id string) error
	MoveVote(ctx context.Context, toID string, fromID string) error
	ResetVotes(ctx context.Context) error
}

// ConfigRepository owns the single process-wide voting-session flag.
// VotingActive creates the flag with default false when it is absent.
type ConfigRepository interface {
	VotingActive(ctx context.Context) (bool, error)
	SetVotingActive(ctx context.Context, active bool) error
}

// ClientStateStore persists the local client's current-vote reference.
// The reference is a client-local, unauthenticated fact: the backends only
// store net tallies, so "who did I vote for" always lives here, in both
// online and offline mode.
type ClientStateStore interface {
	UserVote(ctx context.Context) (string, bool, error)
	SaveUserVote(ctx context.Context, participantID string) error
	ClearUserVote(ctx context.Context) error
}

// RosterSnapshot is what live-view subscribers observe: the roster plus the
// session flag as of one poll of the backing store.
type RosterSnapshot struct {
	Participants []entities.Participant
	VotingActive bool
	ObservedAt   time.Time
}

// RosterPublisher fans a snapshot out to live subscribers.
type RosterPublisher interface {
	PublishRoster(ctx context.Context, snapshot RosterSnapshot) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
