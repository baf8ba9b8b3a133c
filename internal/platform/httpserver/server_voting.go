package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	votingadapter "rentloo/contexts/community-voting/voting-engine/adapters/http"
	votingerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	votingports "rentloo/contexts/community-voting/voting-engine/ports"
	votinghttp "rentloo/contexts/community-voting/voting-engine/transport/http"
	"rentloo/internal/platform/messaging"
)

// rosterEventWait bounds a roster long-poll; clients re-poll on 204.
const rosterEventWait = 25 * time.Second

func (s *Server) registerVotingRoutes() {
	s.mux.HandleFunc("GET /api/voting/v1/roster", s.handleVotingRoster)
	s.mux.HandleFunc("GET /api/voting/v1/roster/events", s.handleVotingRosterEvents)
	s.mux.HandleFunc("POST /api/voting/v1/participants", s.handleVotingAddParticipant)
	s.mux.HandleFunc("DELETE /api/voting/v1/participants/{participant_id}", s.handleVotingRemoveParticipant)
	s.mux.HandleFunc("POST /api/voting/v1/votes", s.handleVotingCastVote)
	s.mux.HandleFunc("POST /api/voting/v1/toggle", s.handleVotingToggle)
	s.mux.HandleFunc("POST /api/voting/v1/reset", s.handleVotingReset)
}

func (s *Server) handleVotingRoster(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.RosterHandler(r.Context())
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleVotingRosterEvents long-polls the messaging bus: the request parks
// until the watcher publishes the next roster snapshot, the wait window
// elapses (204) or the client goes away.
func (s *Server) handleVotingRosterEvents(w http.ResponseWriter, r *http.Request) {
	if s.bus == nil {
		writeVotingError(w, http.StatusServiceUnavailable, "events_unavailable", "live roster events are not enabled")
		return
	}

	events, cancelSub := s.bus.Subscribe(messaging.RosterTopic)
	defer cancelSub()

	wait := time.NewTimer(rosterEventWait)
	defer wait.Stop()

	select {
	case event := <-events:
		snapshot, ok := event.Payload.(votingports.RosterSnapshot)
		if !ok {
			writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, votingadapter.MapRosterSnapshot(event.EventID, snapshot))
	case <-r.Context().Done():
	case <-wait.C:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleVotingAddParticipant(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.voting.Handler.AddParticipantHandler(r.Context(), req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleVotingRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	if err := s.voting.Handler.RemoveParticipantHandler(r.Context(), r.PathValue("participant_id")); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVotingCastVote(w http.ResponseWriter, r *http.Request) {
	var req votinghttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if err := s.voting.Handler.CastVoteHandler(r.Context(), req); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVotingToggle(w http.ResponseWriter, r *http.Request) {
	resp, err := s.voting.Handler.ToggleVotingHandler(r.Context())
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVotingReset(w http.ResponseWriter, r *http.Request) {
	if err := s.voting.Handler.ResetVotesHandler(r.Context()); err != nil {
		writeVotingDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votingerrors.ErrInvalidRequest):
		writeVotingError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, votingerrors.ErrParticipantNotFound):
		writeVotingError(w, http.StatusNotFound, "participant_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrVotingClosed):
		writeVotingError(w, http.StatusConflict, "voting_closed", err.Error())
	case errors.Is(err, votingerrors.ErrAlreadyVoted):
		writeVotingError(w, http.StatusConflict, "already_voted", err.Error())
	case errors.Is(err, votingerrors.ErrVoteInFlight):
		writeVotingError(w, http.StatusConflict, "vote_in_flight", err.Error())
	case errors.Is(err, votingerrors.ErrConflict):
		writeVotingError(w, http.StatusConflict, "conflict", err.Error())
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
