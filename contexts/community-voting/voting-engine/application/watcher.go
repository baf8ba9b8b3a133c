package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentloo/contexts/community-voting/voting-engine/ports"
)

// RosterWatcher is the live-view loop: it polls the backing store on a fixed
// tick and publishes a roster snapshot whenever the observed state changed.
// It adds no ordering guarantee of its own; consumers see whatever view the
// backing store's isolation produced at poll time.
type RosterWatcher struct {
	Participants ports.ParticipantRepository
	Config       ports.ConfigRepository
	Publisher    ports.RosterPublisher
	Clock        ports.Clock
	Interval     time.Duration
	Logger       *slog.Logger
}

// Run polls until ctx is cancelled. Poll errors are logged and the loop keeps
// going; a transient backend hiccup must not kill the live view.
func (w RosterWatcher) Run(ctx context.Context) error {
	logger := ResolveLogger(w.Logger)
	interval := w.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("roster watcher started",
		"event", "voting_watcher_started",
		"module", "community-voting/voting-engine",
		"layer", "application",
		"poll_interval", interval.String(),
	)

	var last []byte
	for {
		if published, err := w.pollOnce(ctx, &last); err != nil {
			logger.Warn("roster poll failed",
				"event", "voting_watcher_poll_failed",
				"module", "community-voting/voting-engine",
				"layer", "application",
				"error", err.Error(),
			)
		} else if published {
			logger.Debug("roster snapshot published",
				"event", "voting_watcher_snapshot_published",
				"module", "community-voting/voting-engine",
				"layer", "application",
			)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w RosterWatcher) pollOnce(ctx context.Context, last *[]byte) (bool, error) {
	participants, err := w.Participants.ListParticipants(ctx)
	if err != nil {
		return false, err
	}
	active, err := w.Config.VotingActive(ctx)
	if err != nil {
		return false, err
	}

	snapshot := ports.RosterSnapshot{
		Participants: participants,
		VotingActive: active,
		ObservedAt:   w.Clock.Now(),
	}

	// Fingerprint without ObservedAt so an unchanged roster publishes nothing.
	fingerprint, err := json.Marshal(struct {
		Participants any
		VotingActive bool
	}{participants, active})
	if err != nil {
		return false, err
	}
	if *last != nil && string(*last) == string(fingerprint) {
		return false, nil
	}

	if err := w.Publisher.PublishRoster(ctx, snapshot); err != nil {
		return false, err
	}
	*last = fingerprint
	return true, nil
}
