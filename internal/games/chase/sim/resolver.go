package sim

import (
	"math"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// World bundles the entities the resolver reads and mutates.
type World struct {
	Maze     *maze.Maze
	Agent    *Agent
	Pursuers []*Pursuer
}

// Outcome reports what happened during one resolution pass.
type Outcome struct {
	Pellets       int  // pellets eaten
	PowerPellets  int  // power pellets eaten
	Captures      int  // pursuers captured
	Points        int  // score gained
	Died          bool // agent lost a life
	GameOver      bool // lives reached zero
	LevelAdvanced bool
}

// Resolver applies pickups, contacts and level completion to a World and
// the session State. It is the only writer of the pellet inventories and
// the session counters.
type Resolver struct {
	tuning Tuning
	build  maze.Builder
}

// NewResolver creates a resolver. build supplies the maze for each new level.
func NewResolver(t Tuning, build maze.Builder) Resolver {
	return Resolver{tuning: t, build: build}
}

// Resolve runs pickups, contacts and the level check, in that order.
// It must observe post-motion positions from the same frame.
func (r Resolver) Resolve(st *State, w *World) Outcome {
	var out Outcome
	if st.Over {
		out.GameOver = true
		return out
	}

	r.resolvePickups(st, w, &out)
	r.resolveContacts(st, w, &out)
	if !st.Over {
		r.resolveLevel(st, w, &out)
	}
	return out
}

// resolvePickups removes pellets in the agent's cell and activates power mode.
func (r Resolver) resolvePickups(st *State, w *World, out *Outcome) {
	c := w.Agent.Cell()

	if points, ok := w.Maze.RemovePellet(c); ok {
		st.Score += points
		out.Points += points
		out.Pellets++
	}

	if points, ok := w.Maze.RemovePowerPellet(c); ok {
		st.Score += points
		out.Points += points
		out.PowerPellets++
		r.frightenAll(st, w)
	}
}

// frightenAll starts the global power countdown and frightens every
// pursuer that is not captured.
func (r Resolver) frightenAll(st *State, w *World) {
	st.PowerLeft = r.tuning.PowerDuration
	for _, p := range w.Pursuers {
		p.Frighten(r.tuning.PowerDuration)
	}
}

// resolveContacts handles agent/pursuer proximity. Resolution stops at the
// first death since positions are reset.
func (r Resolver) resolveContacts(st *State, w *World, out *Outcome) {
	a := w.Agent.Position()
	for _, p := range w.Pursuers {
		if !r.touching(a, w.Agent.Radius(), p) {
			continue
		}

		switch p.Mode() {
		case ModeFrightened:
			if p.Capture() {
				st.Score += r.tuning.CaptureScore
				out.Points += r.tuning.CaptureScore
				out.Captures++
			}
		case ModeSeeking:
			r.killAgent(st, w, out)
			return
		}
	}
}

// touching reports whether the agent at a overlaps p beyond the tolerance.
func (r Resolver) touching(a Vec, agentRadius float64, p *Pursuer) bool {
	pos := p.Position()
	dist := math.Hypot(a.X-pos.X, a.Y-pos.Y)
	return dist < agentRadius+p.Radius()-r.tuning.OverlapTolerance
}

// killAgent takes a life and either ends the session or resets positions.
func (r Resolver) killAgent(st *State, w *World, out *Outcome) {
	st.Lives--
	out.Died = true
	if st.Lives <= 0 {
		st.Lives = 0
		st.Over = true
		out.GameOver = true
		return
	}

	w.Agent.ResetToSpawn()
	for _, p := range w.Pursuers {
		p.ResetToSpawn()
	}
	st.PowerLeft = 0
}

// resolveLevel advances the level once both inventories are empty.
func (r Resolver) resolveLevel(st *State, w *World, out *Outcome) {
	if !w.Maze.AllConsumed() {
		return
	}

	st.Level++
	st.Score += r.tuning.LevelBonus
	out.Points += r.tuning.LevelBonus
	out.LevelAdvanced = true

	w.Maze = r.build(st.Level)
	w.Agent.Rebind(w.Maze)

	spawns := w.Maze.PursuerSpawns()
	speedCap := r.tuning.pursuerSpeedCap()
	for i, p := range w.Pursuers {
		p.Rebind(w.Maze, spawns[i%len(spawns)])
		if r.tuning.LevelSpeedUp {
			p.setSpeed(math.Min(p.Speed()+r.tuning.PursuerSpeedStep, speedCap))
		}
	}

	st.resetTimers(r.tuning)
}
