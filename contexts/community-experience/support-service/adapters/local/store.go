package local

import (
	"context"
	"strings"
	"sync"

	"rentloo/contexts/community-experience/support-service/domain/entities"
	domainerrors "rentloo/contexts/community-experience/support-service/domain/errors"
	"rentloo/contexts/community-experience/support-service/ports"
	"rentloo/internal/platform/localstore"

	"github.com/google/uuid"
)

const messagesKey = "rentloo_messages"

// Store persists the contact inbox as one JSON snapshot, newest first.
type Store struct {
	mu       sync.RWMutex
	files    *localstore.Store
	messages []entities.ContactMessage
}

func NewStore(files *localstore.Store) (*Store, error) {
	s := &Store{files: files}
	if _, err := files.Load(messagesKey, &s.messages); err != nil {
		return nil, err
	}
	return s, nil
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
	if err := s.persist(); err != nil {
		s.messages = s.messages[1:]
		return entities.ContactMessage{}, err
	}
	return message, nil
}

func (s *Store) MarkRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for index := range s.messages {
		if s.messages[index].ID == id {
			s.messages[index].Read = true
			return s.persist()
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
			return s.persist()
		}
	}
	return domainerrors.ErrMessageNotFound
}

func (s *Store) persist() error {
	return s.files.Save(messagesKey, s.messages)
}

var _ ports.MessageRepository = (*Store)(nil)
