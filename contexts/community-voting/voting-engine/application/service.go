package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"
)

// VotingService orchestrates the voting engine: roster maintenance, session
// toggling, and the vote-cast move. It enforces one vote per local client,
// updates the client reference only after a successful move, and serializes
// cast calls through a single-slot in-flight guard so two overlapping casts
// can never race the same "previous vote" snapshot.
type VotingService struct {
	Participants ports.ParticipantRepository
	Config       ports.ConfigRepository
	ClientState  ports.ClientStateStore
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Online       bool
	Logger       *slog.Logger

	mu       sync.Mutex
	userVote string
	casting  atomic.Bool
}

// NewVotingService wires a service and loads the persisted client vote
// reference. A missing reference is not an error; the client simply has no
// outstanding vote.
func NewVotingService(
	participants ports.ParticipantRepository,
	config ports.ConfigRepository,
	clientState ports.ClientStateStore,
	clock ports.Clock,
	idGen ports.IDGenerator,
	online bool,
	logger *slog.Logger,
) (*VotingService, error) {
	s := &VotingService{
		Participants: participants,
		Config:       config,
		ClientState:  clientState,
		Clock:        clock,
		IDGen:        idGen,
		Online:       online,
		Logger:       logger,
	}
	vote, found, err := clientState.UserVote(context.Background())
	if err != nil {
		return nil, err
	}
	if found {
		s.userVote = vote
	}
	return s, nil
}

// AddParticipant creates a roster entry with zero votes and a derived avatar.
// The engine accepts any strings; input validation is the caller's job.
func (s *VotingService) AddParticipant(ctx context.Context, name string, description string) (entities.Participant, error) {
	logger := ResolveLogger(s.Logger)

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Participant{}, err
	}
	participant := entities.Participant{
		ID:          id,
		Name:        name,
		Description: description,
		Avatar:      entities.AvatarURL(name),
		Votes:       0,
		CreatedAt:   s.Clock.Now(),
	}
	created, err := s.Participants.CreateParticipant(ctx, participant)
	if err != nil {
		logger.Error("participant create failed",
			"event", "voting_participant_create_failed",
			"module", "community-voting/voting-engine",
			"layer", "application",
			"participant_name", strings.TrimSpace(name),
			"error", err.Error(),
		)
		return entities.Participant{}, err
	}
	logger.Info("participant created",
		"event", "voting_participant_created",
		"module", "community-voting/voting-engine",
		"layer", "application",
		"participant_id", created.ID,
		"online", s.Online,
	)
	return created, nil
}

// RemoveParticipant deletes a roster entry. When the local client's vote
// pointed at it, the reference is cleared so the client is not left voting
// for a nonexistent entry. Other tallies are not re-normalized.
func (s *VotingService) RemoveParticipant(ctx context.Context, id string) error {
	logger := ResolveLogger(s.Logger)

	if err := s.Participants.DeleteParticipant(ctx, id); err != nil {
		logger.Error("participant delete failed",
			"event", "voting_participant_delete_failed",
			"module", "community-voting/voting-engine",
			"layer", "application",
			"participant_id", id,
			"error", err.Error(),
		)
		return err
	}

	s.mu.Lock()
	dangling := s.userVote == id && id != ""
	s.mu.Unlock()
	if dangling {
		if err := s.clearUserVote(ctx); err != nil {
			return err
		}
	}
	logger.Info("participant removed",
		"event", "voting_participant_removed",
		"module", "community-voting/voting-engine",
		"layer", "application",
		"participant_id", id,
	)
	return nil
}

// CastVote moves the client's single vote to the given participant.
//
// Preconditions: the session must be active and the target must differ from
// the current vote. The move itself (increment target, decrement previous
// floored at zero) is delegated to the repository; the client reference is
// updated only after the move commits, so a failed move leaves the reference
// untouched. Sum of tallies changes by +1 on a first vote and by 0 on a vote
// change.
func (s *VotingService) CastVote(ctx context.Context, id string) error {
	logger := ResolveLogger(s.Logger)

	if !s.casting.CompareAndSwap(false, true) {
		return domainerrors.ErrVoteInFlight
	}
	defer s.casting.Store(false)

	active, err := s.Config.VotingActive(ctx)
	if err != nil {
		return err
	}
	if !active {
		return domainerrors.ErrVotingClosed
	}

	s.mu.Lock()
	previous := s.userVote
	s.mu.Unlock()
	if previous == id {
		return domainerrors.ErrAlreadyVoted
	}

	if err := s.Participants.MoveVote(ctx, id, previous); err != nil {
		logger.Error("vote move failed",
			"event", "voting_cast_failed",
			"module", "community-voting/voting-engine",
			"layer", "application",
			"participant_id", id,
			"previous_id", previous,
			"error", err.Error(),
		)
		return err
	}

	if err := s.ClientState.SaveUserVote(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.userVote = id
	s.mu.Unlock()

	logger.Info("vote cast",
		"event", "voting_cast_committed",
		"module", "community-voting/voting-engine",
		"layer", "application",
		"participant_id", id,
		"previous_id", previous,
		"online", s.Online,
	)
	return nil
}

// ToggleVoting flips the session flag and returns the new state. Tallies and
// vote references are untouched.
func (s *VotingService) ToggleVoting(ctx context.Context) (bool, error) {
	logger := ResolveLogger(s.Logger)

	active, err := s.Config.VotingActive(ctx)
	if err != nil {
		return false, err
	}
	next := !active
	if err := s.Config.SetVotingActive(ctx, next); err != nil {
		return false, err
	}
	logger.Info("voting session toggled",
		"event", "voting_session_toggled",
		"module", "community-voting/voting-engine",
		"layer", "application",
		"voting_active", next,
	)
	return next, nil
}

// ResetVotes zeroes every tally and clears the local client's vote reference.
// The session flag keeps its current state.
func (s *VotingService) ResetVotes(ctx context.Context) error {
	logger := ResolveLogger(s.Logger)

	if err := s.Participants.ResetVotes(ctx); err != nil {
		logger.Error("vote reset failed",
			"event", "voting_reset_failed",
			"module", "community-voting/voting-engine",
			"layer", "application",
			"error", err.Error(),
		)
		return err
	}
	if err := s.clearUserVote(ctx); err != nil {
		return err
	}
	logger.Info("votes reset",
		"event", "voting_reset_completed",
		"module", "community-voting/voting-engine",
		"layer", "application",
	)
	return nil
}

func (s *VotingService) Roster(ctx context.Context) ([]entities.Participant, error) {
	return s.Participants.ListParticipants(ctx)
}

func (s *VotingService) VotingActive(ctx context.Context) (bool, error) {
	return s.Config.VotingActive(ctx)
}

// UserVote reports the local client's current vote reference, if any.
func (s *VotingService) UserVote() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userVote, s.userVote != ""
}

// IsOnline reports which backend was selected at startup. The UI shows it as
// a status badge; nothing else depends on it.
func (s *VotingService) IsOnline() bool {
	return s.Online
}

func (s *VotingService) clearUserVote(ctx context.Context) error {
	if err := s.ClientState.ClearUserVote(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.userVote = ""
	s.mu.Unlock()
	return nil
}
