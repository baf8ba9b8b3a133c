package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid voting request")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrVotingClosed        = errors.New("voting session is not active")
	ErrAlreadyVoted        = errors.New("vote already points at this participant")
	ErrVoteInFlight        = errors.New("another vote cast is still in flight")
	ErrConflict            = errors.New("participant conflict")
)
