package local

import (
	"context"
	"strings"
	"sync"

	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/order-service/domain/errors"
	"rentloo/contexts/rental-marketplace/order-service/ports"
	"rentloo/internal/platform/localstore"

	"github.com/google/uuid"
)

const ordersKey = "rentloo_orders"

// Store persists the order history as one JSON snapshot, newest order first.
type Store struct {
	mu     sync.RWMutex
	files  *localstore.Store
	orders []entities.Order
}

func NewStore(files *localstore.Store) (*Store, error) {
	s := &Store{files: files}
	if _, err := files.Load(ordersKey, &s.orders); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ListOrders(_ context.Context) ([]entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]entities.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}

func (s *Store) GetOrder(_ context.Context, id string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return entities.Order{}, domainerrors.ErrOrderNotFound
}

func (s *Store) CreateOrder(_ context.Context, order entities.Order) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(order.ID) == "" {
		order.ID = "ord_" + uuid.NewString()
	}
	s.orders = append([]entities.Order{order}, s.orders...)
	if err := s.files.Save(ordersKey, s.orders); err != nil {
		s.orders = s.orders[1:]
		return entities.Order{}, err
	}
	return order, nil
}

var _ ports.OrderRepository = (*Store)(nil)
