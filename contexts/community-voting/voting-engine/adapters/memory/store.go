package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"

	"github.com/google/uuid"
)

// Store is the in-memory backend used by tests and as the base of the local
// snapshot adapter. A single mutex guards the roster, the session flag, and
// the client vote reference; MoveVote runs as one synchronous sequence under
// that lock, which is the offline-mode transaction.
type Store struct {
	mu           sync.RWMutex
	participants map[string]entities.Participant
	seq          map[string]int
	nextSeq      int
	votingActive bool
	userVote     string
	hasUserVote  bool
}

func NewStore(seed []entities.Participant) *Store {
	s := &Store{
		participants: make(map[string]entities.Participant, len(seed)),
		seq:          make(map[string]int, len(seed)),
	}
	for _, participant := range seed {
		s.participants[participant.ID] = participant
		s.seq[participant.ID] = s.nextSeq
		s.nextSeq++
	}
	return s
}

func (s *Store) ListParticipants(_ context.Context) ([]entities.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Participant, 0, len(s.participants))
	for _, participant := range s.participants {
		items = append(items, participant)
	}
	sort.Slice(items, func(i, j int) bool {
		return s.seq[items[i].ID] < s.seq[items[j].ID]
	})
	return items, nil
}

func (s *Store) GetParticipant(_ context.Context, id string) (entities.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participant, ok := s.participants[strings.TrimSpace(id)]
	if !ok {
		return entities.Participant{}, domainerrors.ErrParticipantNotFound
	}
	return participant, nil
}

func (s *Store) CreateParticipant(_ context.Context, participant entities.Participant) (entities.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(participant.ID) == "" {
		participant.ID = uuid.NewString()
	}
	if _, exists := s.participants[participant.ID]; exists {
		return entities.Participant{}, domainerrors.ErrConflict
	}
	s.participants[participant.ID] = participant
	s.seq[participant.ID] = s.nextSeq
	s.nextSeq++
	return participant, nil
}

func (s *Store) DeleteParticipant(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, strings.TrimSpace(id))
	delete(s.seq, strings.TrimSpace(id))
	return nil
}

// MoveVote increments toID and decrements fromID (floored at zero) as one
// step. A missing toID aborts before any tally changes; a missing fromID is
// tolerated, the previous target may have been removed concurrently.
func (s *Store) MoveVote(_ context.Context, toID string, fromID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.participants[toID]
	if !ok {
		return domainerrors.ErrParticipantNotFound
	}

	if fromID != "" && fromID != toID {
		if previous, ok := s.participants[fromID]; ok {
			previous.Votes--
			if previous.Votes < 0 {
				previous.Votes = 0
			}
			s.participants[fromID] = previous
		}
	}

	target.Votes++
	s.participants[toID] = target
	return nil
}

func (s *Store) ResetVotes(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, participant := range s.participants {
		participant.Votes = 0
		s.participants[id] = participant
	}
	return nil
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
	return nil
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
	return nil
}

func (s *Store) ClearUserVote(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userVote = ""
	s.hasUserVote = false
	return nil
}

// SystemClock and UUIDGenerator satisfy the engine's small utility ports.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.ParticipantRepository = (*Store)(nil)
var _ ports.ConfigRepository = (*Store)(nil)
var _ ports.ClientStateStore = (*Store)(nil)
var _ ports.Clock = SystemClock{}
var _ ports.IDGenerator = UUIDGenerator{}
