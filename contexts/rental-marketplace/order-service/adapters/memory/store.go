package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/order-service/domain/errors"
	"rentloo/contexts/rental-marketplace/order-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu     sync.RWMutex
	orders []entities.Order
}

func NewStore() *Store {
	return &Store{}
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
	return order, nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.OrderRepository = (*Store)(nil)
var _ ports.Clock = SystemClock{}
var _ ports.IDGenerator = UUIDGenerator{}
