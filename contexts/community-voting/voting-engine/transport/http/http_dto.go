package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AddParticipantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ParticipantResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Avatar      string `json:"avatar"`
	Votes       int    `json:"votes"`
}

type CastVoteRequest struct {
	ParticipantID string `json:"participant_id"`
}

type RosterResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	VotingActive bool                  `json:"voting_active"`
	UserVote     string                `json:"user_vote,omitempty"`
	Online       bool                  `json:"online"`
}

type ToggleVotingResponse struct {
	VotingActive bool `json:"voting_active"`
}

// RosterEventResponse is one live-view snapshot delivered over the
// long-poll events endpoint.
type RosterEventResponse struct {
	EventID      string                `json:"event_id"`
	ObservedAt   string                `json:"observed_at"`
	Participants []ParticipantResponse `json:"participants"`
	VotingActive bool                  `json:"voting_active"`
}
