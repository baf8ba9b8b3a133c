package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rentloo/contexts/community-voting/voting-engine/application"
	"rentloo/contexts/community-voting/voting-engine/domain/entities"
	domainerrors "rentloo/contexts/community-voting/voting-engine/domain/errors"
	"rentloo/contexts/community-voting/voting-engine/ports"
	httptransport "rentloo/contexts/community-voting/voting-engine/transport/http"
)

type Handler struct {
	Service *application.VotingService
	Logger  *slog.Logger
}

// AddParticipantHandler validates operator input before handing it to the
// engine; the engine itself accepts any strings.
func (h Handler) AddParticipantHandler(ctx context.Context, req httptransport.AddParticipantRequest) (httptransport.ParticipantResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		return httptransport.ParticipantResponse{}, domainerrors.ErrInvalidRequest
	}
	participant, err := h.Service.AddParticipant(ctx, req.Name, req.Description)
	if err != nil {
		return httptransport.ParticipantResponse{}, err
	}
	return mapParticipant(participant), nil
}

func (h Handler) RemoveParticipantHandler(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.RemoveParticipant(ctx, id)
}

func (h Handler) CastVoteHandler(ctx context.Context, req httptransport.CastVoteRequest) error {
	if strings.TrimSpace(req.ParticipantID) == "" {
		return domainerrors.ErrInvalidRequest
	}
	return h.Service.CastVote(ctx, req.ParticipantID)
}

func (h Handler) ToggleVotingHandler(ctx context.Context) (httptransport.ToggleVotingResponse, error) {
	active, err := h.Service.ToggleVoting(ctx)
	if err != nil {
		return httptransport.ToggleVotingResponse{}, err
	}
	return httptransport.ToggleVotingResponse{VotingActive: active}, nil
}

func (h Handler) ResetVotesHandler(ctx context.Context) error {
	return h.Service.ResetVotes(ctx)
}

func (h Handler) RosterHandler(ctx context.Context) (httptransport.RosterResponse, error) {
	participants, err := h.Service.Roster(ctx)
	if err != nil {
		return httptransport.RosterResponse{}, err
	}
	active, err := h.Service.VotingActive(ctx)
	if err != nil {
		return httptransport.RosterResponse{}, err
	}

	items := make([]httptransport.ParticipantResponse, 0, len(participants))
	for _, participant := range participants {
		items = append(items, mapParticipant(participant))
	}
	userVote, _ := h.Service.UserVote()
	return httptransport.RosterResponse{
		Participants: items,
		VotingActive: active,
		UserVote:     userVote,
		Online:       h.Service.IsOnline(),
	}, nil
}

// MapRosterSnapshot shapes a watcher snapshot for live-view subscribers.
func MapRosterSnapshot(eventID string, snapshot ports.RosterSnapshot) httptransport.RosterEventResponse {
	items := make([]httptransport.ParticipantResponse, 0, len(snapshot.Participants))
	for _, participant := range snapshot.Participants {
		items = append(items, mapParticipant(participant))
	}
	return httptransport.RosterEventResponse{
		EventID:      eventID,
		ObservedAt:   snapshot.ObservedAt.UTC().Format(time.RFC3339),
		Participants: items,
		VotingActive: snapshot.VotingActive,
	}
}

func mapParticipant(participant entities.Participant) httptransport.ParticipantResponse {
	return httptransport.ParticipantResponse{
		ID:          participant.ID,
		Name:        participant.Name,
		Description: participant.Description,
		Avatar:      participant.Avatar,
		Votes:       participant.Votes,
	}
}
