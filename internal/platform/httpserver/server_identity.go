package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	identityerrors "rentloo/contexts/identity-access/identity-service/domain/errors"
	identityhttp "rentloo/contexts/identity-access/identity-service/transport/http"
)

func (s *Server) registerIdentityRoutes() {
	s.mux.HandleFunc("POST /api/identity/v1/login", s.handleIdentityLogin)
	s.mux.HandleFunc("POST /api/identity/v1/logout", s.handleIdentityLogout)
	s.mux.HandleFunc("GET /api/identity/v1/me", s.handleIdentityMe)
}

func (s *Server) handleIdentityLogin(w http.ResponseWriter, r *http.Request) {
	var req identityhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentityError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.identity.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleIdentityLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.identity.Handler.LogoutHandler(r.Context()); err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleIdentityMe(w http.ResponseWriter, r *http.Request) {
	resp, err := s.identity.Handler.CurrentUserHandler(r.Context())
	if err != nil {
		writeIdentityDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeIdentityDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identityerrors.ErrInvalidRequest):
		writeIdentityError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, identityerrors.ErrNotAuthenticated):
		writeIdentityError(w, http.StatusUnauthorized, "not_authenticated", err.Error())
	default:
		writeIdentityError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeIdentityError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, identityhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
