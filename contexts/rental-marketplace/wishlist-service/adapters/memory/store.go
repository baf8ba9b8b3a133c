package memory

import (
	"context"
	"sync"

	"rentloo/contexts/rental-marketplace/wishlist-service/ports"
)

type Store struct {
	mu  sync.RWMutex
	ids []string
}

func NewStore() *Store {
	return &Store{}
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
	return nil
}

func (s *Store) Unsave(_ context.Context, listingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, id := range s.ids {
		if id == listingID {
			s.ids = append(s.ids[:index], s.ids[index+1:]...)
			return nil
		}
	}
	return nil
}

var _ ports.WishlistRepository = (*Store)(nil)
