package local

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"
	"rentloo/internal/platform/localstore"

	"github.com/google/uuid"
)

// Snapshot keys mirror the browser localStorage keys of the original client.
const (
	participantsKey = "rentloo_participants"
	votingActiveKey = "rentloo_voting_active"
	userVoteKey     = "rentloo_user_vote_id"
)

// Store is the offline backend: the memory semantics of the roster plus a
// whole-collection JSON snapshot persisted after every mutation. It also
// carries the client vote reference, which stays local even when the roster
// itself lives in postgres.
type Store struct {
	mu           sync.RWMutex
	files        *localstore.Store
	participants []entities.Participant
	votingActive bool
	userVote     string
	hasUserVote  bool
	logger       *slog.Logger
}

func NewStore(files *localstore.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		files:  files,
		logger: logger,
	}
	if _, err := files.Load(participantsKey, &s.participants); err != nil {
		return nil, err
	}
	if _, err := files.Load(votingActiveKey, &s.votingActive); err != nil {
		return nil, err
	}
	var vote string
	found, err := files.Load(userVoteKey, &vote)
	if err != nil {
		return nil, err
	}
	if found && vote != "" {
		s.userVote = vote
		s.hasUserVote = true
	}
	return s, nil
}

func (s *Store) ListParticipants(_ context.Context) ([]entities.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Participant, len(s.participants))
	copy(items, s.participants)
	return items, nil
}

func (s *Store) GetParticipant(_ context.Context, id string) (entities.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index := s.indexOf(id); index >= 0 {
		return s.participants[index], nil
	}
	return entities.Participant{}, domainerrors.ErrParticipantNotFound
}

func (s *Store) CreateParticipant(_ context.Context, participant entities.Participant) (entities.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(participant.ID) == "" {
		participant.ID = uuid.NewString()
	}
	if s.indexOf(participant.ID) >= 0 {
		return entities.Participant{}, domainerrors.ErrConflict
	}
	s.participants = append(s.participants, participant)
	if err := s.persistParticipants(); err != nil {
		s.participants = s.participants[:len(s.participants)-1]
		return entities.Participant{}, err
	}
	return participant, nil
}

func (s *Store) DeleteParticipant(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return nil
	}
	s.participants = append(s.participants[:index], s.participants[index+1:]...)
	return s.persistParticipants()
}

// MoveVote performs the offline vote move: decrement the previous target
// floored at zero, increment the new one, persist the roster once. There is
// a single writer in this mode, so the in-process sequence is the
// transaction.
func (s *Store) MoveVote(_ context.Context, toID string, fromID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	targetIndex := s.indexOf(toID)
	if targetIndex < 0 {
		return domainerrors.ErrParticipantNotFound
	}

	if fromID != "" && fromID != toID {
		if previousIndex := s.indexOf(fromID); previousIndex >= 0 {
			s.participants[previousIndex].Votes--
			if s.participants[previousIndex].Votes < 0 {
				s.participants[previousIndex].Votes = 0
			}
		}
	}

	s.participants[targetIndex].Votes++
	return s.persistParticipants()
}

func (s *Store) ResetVotes(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index := range s.participants {
		s.participants[index].Votes = 0
	}
	return s.persistParticipants()
}

func (s *Store) VotingActive(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.votingActive, nil
}

func (s *Store) SetVotingActive(_ context.Context, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votingActive = active
	return s.files.Save(votingActiveKey, active)
}

func (s *Store) UserVote(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userVote, s.hasUserVote, nil
}

func (s *Store) SaveUserVote(_ context.Context, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userVote = participantID
	s.hasUserVote = true
	return s.files.Save(userVoteKey, participantID)
}

func (s *Store) ClearUserVote(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userVote = ""
	s.hasUserVote = false
	return s.files.Delete(userVoteKey)
}

func (s *Store) indexOf(id string) int {
	for index, participant := range s.participants {
		if participant.ID == strings.TrimSpace(id) {
			return index
		}
	}
	return -1
}

func (s *Store) persistParticipants() error {
	return s.files.Save(participantsKey, s.participants)
}

var _ ports.ParticipantRepository = (*Store)(nil)
var _ ports.ConfigRepository = (*Store)(nil)
var _ ports.ClientStateStore = (*Store)(nil)
