package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	supporterrors "rentloo/contexts/community-experience/support-service/domain/errors"
	supporthttp "rentloo/contexts/community-experience/support-service/transport/http"
)

func (s *Server) registerSupportRoutes() {
	s.mux.HandleFunc("POST /api/support/v1/messages", s.handleSupportSubmit)
	s.mux.HandleFunc("GET /api/support/v1/messages", s.handleSupportInbox)
	s.mux.HandleFunc("POST /api/support/v1/messages/{message_id}/read", s.handleSupportMarkRead)
	s.mux.HandleFunc("DELETE /api/support/v1/messages/{message_id}", s.handleSupportDelete)

	s.mux.HandleFunc("POST /api/support/v1/bot/ask", s.handleSupportAsk)
	s.mux.HandleFunc("GET /api/support/v1/bot/questions", s.handleSupportQuestions)
}

func (s *Server) handleSupportSubmit(w http.ResponseWriter, r *http.Request) {
	var req supporthttp.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSupportError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.support.Handler.SubmitMessageHandler(r.Context(), req)
	if err != nil {
		writeSupportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSupportInbox(w http.ResponseWriter, r *http.Request) {
	resp, err := s.support.Handler.ListMessagesHandler(r.Context())
	if err != nil {
		writeSupportDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSupportMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := s.support.Handler.MarkReadHandler(r.Context(), r.PathValue("message_id")); err != nil {
		writeSupportDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSupportDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.support.Handler.DeleteMessageHandler(r.Context(), r.PathValue("message_id")); err != nil {
		writeSupportDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSupportAsk(w http.ResponseWriter, r *http.Request) {
	var req supporthttp.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSupportError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	writeJSON(w, http.StatusOK, s.support.Handler.AskHandler(r.Context(), req))
}

func (s *Server) handleSupportQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.support.Handler.SuggestedQuestionsHandler(r.Context()))
}

func writeSupportDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, supporterrors.ErrInvalidRequest):
		writeSupportError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, supporterrors.ErrMessageNotFound):
		writeSupportError(w, http.StatusNotFound, "message_not_found", err.Error())
	default:
		writeSupportError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSupportError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, supporthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
