package memory

import (
	"context"
	"sync"

	"rentloo/contexts/identity-access/identity-service/domain/entities"
	"rentloo/contexts/identity-access/identity-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu     sync.RWMutex
	user   entities.User
	signed bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) CurrentUser(_ context.Context) (entities.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.signed, nil
}

func (s *Store) SaveUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.signed = true
	return nil
}

func (s *Store) ClearUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = entities.User{}
	s.signed = false
	return nil
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.SessionStore = (*Store)(nil)
var _ ports.IDGenerator = UUIDGenerator{}
