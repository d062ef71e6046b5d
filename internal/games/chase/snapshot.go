package chase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
	"github.com/vovakirdan/mazechase/internal/games/chase/sim"
)

// Status is the coarse game status reported in a snapshot.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusPaused   Status = "paused"
	StatusGameOver Status = "game_over"
)

// PursuerSnapshot is one pursuer's observable state.
type PursuerSnapshot struct {
	Pos      sim.Vec
	Cell     maze.Cell
	Dir      sim.Direction
	Mode     sim.Mode
	Behavior sim.Behavior
}

// Snapshot captures the complete observable game state for determinism
// testing and the headless simulate command.
type Snapshot struct {
	Tick         uint64
	Frame        uint64
	Seed         int64
	Level        int
	Score        int
	Lives        int
	Power        bool
	Scatter      bool
	Pellets      int
	PowerPellets int
	AgentPos     sim.Vec
	AgentCell    maze.Cell
	AgentDir     sim.Direction
	Pursuers     [maze.PursuerCount]PursuerSnapshot
	Status       Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	a := s.Agent()

	status := StatusPlaying
	switch {
	case s.Over():
		status = StatusGameOver
	case g.paused:
		status = StatusPaused
	}

	snap := Snapshot{
		Tick:         g.tick,
		Frame:        s.Frame(),
		Seed:         g.seed,
		Level:        s.Level(),
		Score:        s.Score(),
		Lives:        s.Lives(),
		Power:        s.PowerActive(),
		Scatter:      s.ScatterPhase(),
		Pellets:      s.Maze().PelletCount(),
		PowerPellets: s.Maze().PowerPelletCount(),
		AgentPos:     a.Position(),
		AgentCell:    a.Cell(),
		AgentDir:     a.Direction(),
		Status:       status,
	}
	for i, p := range s.Pursuers() {
		if i >= len(snap.Pursuers) {
			break
		}
		snap.Pursuers[i] = PursuerSnapshot{
			Pos:      p.Position(),
			Cell:     p.Cell(),
			Dir:      p.Direction(),
			Mode:     p.Mode(),
			Behavior: p.Active(),
		}
	}
	return snap
}

// String renders the snapshot as a short multi-line report.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "status=%s tick=%d frame=%d seed=%d\n", s.Status, s.Tick, s.Frame, s.Seed)
	fmt.Fprintf(&b, "score=%d lives=%d level=%d power=%t scatter=%t\n", s.Score, s.Lives, s.Level, s.Power, s.Scatter)
	fmt.Fprintf(&b, "pellets=%d power_pellets=%d\n", s.Pellets, s.PowerPellets)
	fmt.Fprintf(&b, "agent %s cell=%s dir=%s\n", s.AgentPos, s.AgentCell, s.AgentDir)
	for i, p := range s.Pursuers {
		fmt.Fprintf(&b, "pursuer %d %s cell=%s dir=%s mode=%s behavior=%s\n", i, p.Pos, p.Cell, p.Dir, p.Mode, p.Behavior)
	}
	return b.String()
}
