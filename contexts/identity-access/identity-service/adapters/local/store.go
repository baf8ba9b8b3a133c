package local

import (
	"context"
	"sync"

	"rentloo/contexts/identity-access/identity-service/domain/entities"
	"rentloo/contexts/identity-access/identity-service/ports"
	"rentloo/internal/platform/localstore"
)

const userKey = "rentloo_user"

// Store persists the session as one JSON snapshot; signing out removes the
// snapshot file.
type Store struct {
	mu    sync.Mutex
	files *localstore.Store
}

func NewStore(files *localstore.Store) *Store {
	return &Store{files: files}
}

func (s *Store) CurrentUser(_ context.Context) (entities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user entities.User
	found, err := s.files.Load(userKey, &user)
	if err != nil {
		return entities.User{}, false, err
	}
	return user, found, nil
}

func (s *Store) SaveUser(_ context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Save(userKey, user)
}

func (s *Store) ClearUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files.Delete(userKey)
}

var _ ports.SessionStore = (*Store)(nil)
