package roomsync

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/panuwat-oat/dummy-calculator/internal/models"
	"github.com/panuwat-oat/dummy-calculator/internal/services/game"
)

// DefaultInterval is how often a participant refetches the shared room.
const DefaultInterval = 2 * time.Second

// Config holds configuration for the room watcher
type Config struct {
	// GameService fetches room snapshots
	GameService game.Service

	// Interval overrides the default poll interval. Optional.
	Interval time.Duration
}

// Watcher keeps a participant's copy of a room fresh by interval polling.
// There is no merge: when the stored version has moved, the subscriber
// replaces its copy wholesale. Writers racing inside one poll window are
// caught by the store's version guard, not here.
type Watcher struct {
	gameService game.Service
	interval    time.Duration
}

// New creates a new room watcher
func New(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Watcher{
		gameService: cfg.GameService,
		interval:    interval,
	}, nil
}

// Watch polls the room until ctx is cancelled, invoking onChange with the
// fresh room whenever its version advances past the last one seen. The
// first fetch fires immediately. Fetch failures are logged and skipped;
// the room disappearing stops the watch.
func (w *Watcher) Watch(ctx context.Context, roomID string, onChange func(*models.Room)) {
	lastVersion := int64(-1)

	poll := func() bool {
		out, err := w.gameService.GetRoom(ctx, &game.GetRoomInput{RoomID: roomID})
		if err != nil {
			if errors.Is(err, game.ErrRoomNotFound) {
				logrus.WithField("room_id", roomID).Info("room gone, stopping watch")
				return false
			}
			logrus.WithError(err).WithField("room_id", roomID).Warn("room poll failed")
			return true
		}

		if out.Room.State != nil && out.Room.State.Version != lastVersion {
			lastVersion = out.Room.State.Version
			onChange(out.Room)
		}
		return true
	}

	if !poll() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !poll() {
				return
			}
		}
	}
}
