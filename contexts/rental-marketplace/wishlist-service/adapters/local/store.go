package local

import (
	"context"
	"sync"

	"rentloo/contexts/rental-marketplace/wishlist-service/ports"
	"rentloo/internal/platform/localstore"
)

const wishlistKey = "rentloo_wishlist"

// Store persists the saved listing ids as one JSON snapshot.
type Store struct {
	mu    sync.RWMutex
	files *localstore.Store
	ids   []string
}

func NewStore(files *localstore.Store) (*Store, error) {
	s := &Store{files: files}
	if _, err := files.Load(wishlistKey, &s.ids); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ListSaved(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids, nil
}

func (s *Store) Save(_ context.Context, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.ids {
		if id == listingID {
			return nil
		}
	}
	s.ids = append(s.ids, listingID)
	if err := s.persist(); err != nil {
		s.ids = s.ids[:len(s.ids)-1]
		return err
	}
	return nil
}

func (s *Store) Unsave(_ context.Context, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, id := range s.ids {
		if id == listingID {
			s.ids = append(s.ids[:index], s.ids[index+1:]...)
			return s.persist()
		}
	}
	return nil
}

func (s *Store) persist() error {
	return s.files.Save(wishlistKey, s.ids)
}

var _ ports.WishlistRepository = (*Store)(nil)
