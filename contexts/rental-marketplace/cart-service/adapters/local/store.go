package local

import (
	"context"
	"strings"
	"sync"

	"rentloo/contexts/rental-marketplace/cart-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/cart-service/domain/errors"
	"rentloo/contexts/rental-marketplace/cart-service/ports"
	"rentloo/internal/platform/localstore"

	"github.com/google/uuid"
)

const cartKey = "rentloo_cart"

// Store persists the basket as one JSON snapshot, rewritten after every
// mutation.
type Store struct {
	mu    sync.RWMutex
	files *localstore.Store
	items []entities.CartItem
}

func NewStore(files *localstore.Store) (*Store, error) {
	s := &Store{files: files}
	if _, err := files.Load(cartKey, &s.items); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ListItems(_ context.Context) ([]entities.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.CartItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

func (s *Store) AddItem(_ context.Context, item entities.CartItem) (entities.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(item.ID) == "" {
		item.ID = uuid.NewString()
	}
	s.items = append(s.items, item)
	if err := s.persist(); err != nil {
		s.items = s.items[:len(s.items)-1]
		return entities.CartItem{}, err
	}
	return item, nil
}

func (s *Store) RemoveItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:index], s.items[index+1:]...)
			return s.persist()
		}
	}
	return domainerrors.ErrItemNotFound
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return s.persist()
}

func (s *Store) persist() error {
	return s.files.Save(cartKey, s.items)
}

var _ ports.CartRepository = (*Store)(nil)
