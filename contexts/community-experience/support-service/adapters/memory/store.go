package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"rentloo/contexts/community-experience/support-service/domain/entities"
	domainerrors "rentloo/contexts/community-experience/support-service/domain/errors"
	"rentloo/contexts/community-experience/support-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	messages []entities.ContactMessage
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ListMessages(_ context.Context) ([]entities.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]entities.ContactMessage, len(s.messages))
	copy(messages, s.messages)
	return messages, nil
}

func (s *Store) CreateMessage(_ context.Context, message entities.ContactMessage) (entities.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(message.ID) == "" {
		message.ID = uuid.NewString()
	}
	s.messages = append([]entities.ContactMessage{message}, s.messages...)
	return message, nil
}

func (s *Store) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index := range s.messages {
		if s.messages[index].ID == id {
			s.messages[index].Read = true
			return nil
		}
	}
	return domainerrors.ErrMessageNotFound
}

func (s *Store) DeleteMessage(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index, message := range s.messages {
		if message.ID == id {
			s.messages = append(s.messages[:index], s.messages[index+1:]...)
			return nil
		}
	}
	return domainerrors.ErrMessageNotFound
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.MessageRepository = (*Store)(nil)
var _ ports.Clock = SystemClock{}
var _ ports.IDGenerator = UUIDGenerator{}
