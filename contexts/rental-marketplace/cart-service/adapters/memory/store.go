package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"rentloo/contexts/rental-marketplace/cart-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/cart-service/domain/errors"
	"rentloo/contexts/rental-marketplace/cart-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	items []entities.CartItem
}

func NewStore() *Store {
	return &Store{}
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
	return item, nil
}

func (s *Store) RemoveItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:index], s.items[index+1:]...)
			return nil
		}
	}
	return domainerrors.ErrItemNotFound
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.CartRepository = (*Store)(nil)
var _ ports.Clock = SystemClock{}
var _ ports.IDGenerator = UUIDGenerator{}
