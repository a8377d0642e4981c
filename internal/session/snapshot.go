package session

import (
	"time"

	"upturn/internal/game"
)

// Snapshot is a read-only copy of a session, safe to hand to other
// goroutines and to encode as JSON.
type Snapshot struct {
	ID           string       `json:"gameId"`
	Width        int          `json:"width"`
	Height       int          `json:"height"`
	Run          int          `json:"run"`
	Storage      string       `json:"storage"`
	Rows         []string     `json:"rows"`
	Turn         game.Cell    `json:"-"`
	TurnName     string       `json:"turn"`
	LastRotation string       `json:"lastRotation"`
	Status       string       `json:"status"`
	Outcome      game.Outcome `json:"-"`
	OutcomeName  string       `json:"outcome"`
	Black        []game.Pos   `json:"black"`
	White        []game.Pos   `json:"white"`
	Turns        int          `json:"turns"`
	Rotations    int          `json:"rotations"`
	Uplifts      int          `json:"uplifts"`
	StartedAt    time.Time    `json:"startedAt"`
	EndedAt      time.Time    `json:"endedAt,omitempty"`
}

func snapshotOf(s *Session) Snapshot {
	b := s.Game.Board()
	return Snapshot{
		ID:           s.ID,
		Width:        b.Width(),
		Height:       b.Height(),
		Run:          s.Game.Run(),
		Storage:      b.Kind().String(),
		Rows:         b.Rows(),
		Turn:         s.Game.Turn(),
		TurnName:     s.Game.Turn().String(),
		LastRotation: s.Game.LastRotation().String(),
		Status:       s.Status,
		Outcome:      s.Outcome,
		OutcomeName:  s.Outcome.String(),
		Black:        s.Game.Tracked(game.Black),
		White:        s.Game.Tracked(game.White),
		Turns:        s.Turns,
		Rotations:    s.Rotations,
		Uplifts:      s.Uplifts,
		StartedAt:    s.StartedAt,
		EndedAt:      s.EndedAt,
	}
}
