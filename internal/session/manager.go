// Package session hosts running Upturn games. The rules engine is
// single-owner; the manager serializes every turn behind its lock and
// reports state changes to observers.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"upturn/internal/command"
	"upturn/internal/game"
)

const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

const (
	EventTurnPlayed   = "turn_played"
	EventGameFinished = "game_finished"
)

var (
	ErrUnknownGame  = errors.New("unknown game")
	ErrGameFinished = errors.New("game already finished")
)

// EventSink receives analytics events. *analytics.Producer satisfies it.
type EventSink interface {
	Publish(ctx context.Context, event string, payload map[string]any)
}

type Session struct {
	ID         string
	Config     game.Config
	Game       *game.Game
	Status     string
	Outcome    game.Outcome
	Turns      int
	Rotations  int
	Uplifts    int
	StartedAt  time.Time
	EndedAt    time.Time
	LastMoveAt time.Time
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	log      *zap.Logger
	sink     EventSink
	onChange func(Snapshot)
	now      func() time.Time
}

func NewManager(logger *zap.Logger, sink EventSink, onChange func(Snapshot)) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		log:      logger,
		sink:     sink,
		onChange: onChange,
		now:      time.Now,
	}
}

// Start creates a new game and returns its first snapshot.
func (m *Manager) Start(cfg game.Config) (Snapshot, error) {
	g, err := game.New(cfg)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	now := m.now()
	s := &Session{
		ID:         uuid.NewString(),
		Config:     cfg,
		Game:       g,
		Status:     StatusActive,
		StartedAt:  now,
		LastMoveAt: now,
	}
	m.sessions[s.ID] = s
	snap := snapshotOf(s)
	m.mu.Unlock()

	m.log.Info("game started",
		zap.String("game_id", s.ID),
		zap.Int("run", cfg.Run),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Stringer("storage", cfg.Storage),
	)
	m.notify(snap)
	return snap, nil
}

// Apply plays one command on the game with the given id. A rejected command
// leaves the game as it was and is returned as the error.
func (m *Manager) Apply(id string, cmd command.Command) (Snapshot, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Snapshot{}, ErrUnknownGame
	}
	if s.Status == StatusFinished {
		snap := snapshotOf(s)
		m.mu.Unlock()
		return snap, ErrGameFinished
	}

	mover := s.Game.Turn()
	if err := cmd.Apply(s.Game); err != nil {
		snap := snapshotOf(s)
		m.mu.Unlock()
		m.log.Debug("command rejected",
			zap.String("game_id", id),
			zap.Stringer("player", mover),
			zap.Stringer("command", cmd),
			zap.Error(err),
		)
		return snap, err
	}

	s.Turns++
	switch cmd.Kind {
	case command.Rotate:
		s.Rotations++
	case command.Uplift:
		s.Uplifts++
	}
	s.LastMoveAt = m.now()
	s.Outcome = s.Game.Outcome()
	finished := s.Outcome.Finished()
	if finished {
		s.Status = StatusFinished
		s.EndedAt = s.LastMoveAt
	}
	snap := snapshotOf(s)
	m.mu.Unlock()

	m.log.Debug("turn played",
		zap.String("game_id", id),
		zap.Stringer("player", mover),
		zap.Stringer("command", cmd),
		zap.Stringer("outcome", snap.Outcome),
	)
	m.publish(EventTurnPlayed, map[string]any{
		"gameId":  id,
		"player":  mover.String(),
		"kind":    cmd.Kind.String(),
		"command": cmd.String(),
		"turn":    snap.Turns,
		"outcome": snap.Outcome.String(),
	})
	if finished {
		m.log.Info("game finished",
			zap.String("game_id", id),
			zap.Stringer("outcome", snap.Outcome),
			zap.Int("turns", snap.Turns),
		)
		m.publish(EventGameFinished, map[string]any{
			"gameId":    id,
			"outcome":   snap.Outcome.String(),
			"turns":     snap.Turns,
			"rotations": snap.Rotations,
			"uplifts":   snap.Uplifts,
			"duration":  snap.EndedAt.Sub(snap.StartedAt).Seconds(),
			"startedAt": snap.StartedAt,
			"endedAt":   snap.EndedAt,
		})
	}
	m.notify(snap)
	return snap, nil
}

func (m *Manager) Snapshot(id string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, false
	}
	return snapshotOf(s), true
}

// Render returns the labelled text board for a game.
func (m *Manager) Render(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return "", false
	}
	return s.Game.Board().Render(), true
}

// Abandon drops a game.
func (m *Manager) Abandon(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; ok {
		delete(m.sessions, id)
		m.log.Info("game abandoned", zap.String("game_id", id))
	}
}

func (m *Manager) publish(event string, payload map[string]any) {
	if m.sink == nil {
		return
	}
	m.sink.Publish(context.Background(), event, payload)
}

func (m *Manager) notify(snap Snapshot) {
	if m.onChange != nil {
		m.onChange(snap)
	}
}
