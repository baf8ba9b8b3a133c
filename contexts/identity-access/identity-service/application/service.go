package application

import (
	"context"
	"log/slog"
	"strings"

	"rentloo/contexts/identity-access/identity-service/domain/entities"
	domainerrors "rentloo/contexts/identity-access/identity-service/domain/errors"
	"rentloo/contexts/identity-access/identity-service/ports"
)

type Service struct {
	Sessions ports.SessionStore
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// Login starts a session for the given name and email, replacing any
// existing session. The avatar is derived from the name.
func (s Service) Login(ctx context.Context, name, email string) (entities.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}
	user := entities.User{
		ID:     id,
		Name:   name,
		Email:  email,
		Avatar: entities.AvatarURL(name),
	}
	if err := s.Sessions.SaveUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	s.logger().Info("user signed in",
		"event", "user_signed_in",
		"module", "identity-access/identity-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

func (s Service) Logout(ctx context.Context) error {
	if err := s.Sessions.ClearUser(ctx); err != nil {
		return err
	}
	s.logger().Info("user signed out",
		"event", "user_signed_out",
		"module", "identity-access/identity-service",
		"layer", "application",
	)
	return nil
}

// CurrentUser returns the signed-in user or ErrNotAuthenticated.
func (s Service) CurrentUser(ctx context.Context) (entities.User, error) {
	user, found, err := s.Sessions.CurrentUser(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if !found {
		return entities.User{}, domainerrors.ErrNotAuthenticated
	}
	return user, nil
}

func (s Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, found, err := s.Sessions.CurrentUser(ctx)
	return found, err
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
