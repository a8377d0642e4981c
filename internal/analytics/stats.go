package analytics

import (
	"sync"

	"go.uber.org/zap"
)

// Stats aggregates events read back from the topic.
type Stats struct {
	mu          sync.Mutex
	games       int
	outcomes    map[string]int
	kinds       map[string]int
	turnCounts  []float64
	durations   []float64
	gamesPerDay map[string]int
}

func NewStats() *Stats {
	return &Stats{
		outcomes:    make(map[string]int),
		kinds:       make(map[string]int),
		gamesPerDay: make(map[string]int),
	}
}

// Record folds one event into the totals. Unknown events are ignored.
func (s *Stats) Record(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Event {
	case "turn_played":
		if kind, ok := e.Payload["kind"].(string); ok {
			s.kinds[kind]++
		}
	case "game_finished":
		s.games++
		if outcome, ok := e.Payload["outcome"].(string); ok {
			s.outcomes[outcome]++
		}
		if turns, ok := number(e.Payload["turns"]); ok {
			s.turnCounts = append(s.turnCounts, turns)
		}
		if d, ok := number(e.Payload["duration"]); ok {
			s.durations = append(s.durations, d)
		}
		s.gamesPerDay[e.Timestamp.Format("2006-01-02")]++
	}
}

// number accepts both decoded JSON numbers and in-process ints.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

type Summary struct {
	Games        int
	Outcomes     map[string]int
	TurnKinds    map[string]int
	AverageTurns float64
	AverageSecs  float64
	GamesPerDay  map[string]int
}

func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{
		Games:        s.games,
		Outcomes:     copyCounts(s.outcomes),
		TurnKinds:    copyCounts(s.kinds),
		AverageTurns: mean(s.turnCounts),
		AverageSecs:  mean(s.durations),
		GamesPerDay:  copyCounts(s.gamesPerDay),
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Stats) Log(logger *zap.Logger) {
	sum := s.Summary()
	logger.Info("analytics summary",
		zap.Int("games", sum.Games),
		zap.Any("outcomes", sum.Outcomes),
		zap.Any("turn_kinds", sum.TurnKinds),
		zap.Float64("average_turns", sum.AverageTurns),
		zap.Float64("average_seconds", sum.AverageSecs),
		zap.Any("games_per_day", sum.GamesPerDay),
	)
}
