package application

import (
	"context"
	"log/slog"
	"strings"

	"rentloo/contexts/community-experience/support-service/domain/entities"
	domainerrors "rentloo/contexts/community-experience/support-service/domain/errors"
	"rentloo/contexts/community-experience/support-service/ports"
)

type Service struct {
	Messages ports.MessageRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

type SubmitMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (s Service) SubmitMessage(ctx context.Context, input SubmitMessageInput) (entities.ContactMessage, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Body) == "" {
		return entities.ContactMessage{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	message := entities.ContactMessage{
		ID:        id,
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Subject:   strings.TrimSpace(input.Subject),
		Body:      strings.TrimSpace(input.Body),
		CreatedAt: s.Clock.Now(),
	}
	created, err := s.Messages.CreateMessage(ctx, message)
	if err != nil {
		return entities.ContactMessage{}, err
	}
	s.logger().Info("contact message received",
		"event", "contact_message_received",
		"module", "community-experience/support-service",
		"layer", "application",
		"message_id", created.ID,
	)
	return created, nil
}

func (s Service) ListMessages(ctx context.Context) ([]entities.ContactMessage, error) {
	return s.Messages.ListMessages(ctx)
}

func (s Service) MarkRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Messages.MarkRead(ctx, id)
}

func (s Service) DeleteMessage(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Messages.DeleteMessage(ctx, id); err != nil {
		return err
	}
	s.logger().Info("contact message deleted",
		"event", "contact_message_deleted",
		"module", "community-experience/support-service",
		"layer", "application",
		"message_id", id,
	)
	return nil
}

// Ask runs a query through the canned bot.
func (s Service) Ask(query string) string {
	return Answer(query)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
