package httpadapter

import (
	"context"
	"log/slog"

	"rentloo/contexts/identity-access/identity-service/application"
	"rentloo/contexts/identity-access/identity-service/domain/entities"
	httptransport "rentloo/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.UserResponse, error) {
	user, err := h.Service.Login(ctx, req.Name, req.Email)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return mapUser(user), nil
}

func (h Handler) LogoutHandler(ctx context.Context) error {
	return h.Service.Logout(ctx)
}

func (h Handler) CurrentUserHandler(ctx context.Context) (httptransport.UserResponse, error) {
	user, err := h.Service.CurrentUser(ctx)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return mapUser(user), nil
}

func mapUser(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}
