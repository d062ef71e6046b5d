package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// Mode is the state currently governing a pursuer's motion.
type Mode string

const (
	ModeSeeking    Mode = "seeking"
	ModeFrightened Mode = "frightened"
	ModeCaptured   Mode = "captured"
)

// DefaultBehaviors are the assigned behaviors of the four pursuers, in
// construction order.
var DefaultBehaviors = [maze.PursuerCount]Behavior{
	BehaviorDirect,
	BehaviorScatter,
	BehaviorDirect,
	BehaviorRandom,
}

// Pursuer is an autonomous adversary. Captured overrides frightened, which
// overrides the seeking behavior.
type Pursuer struct {
	id       int
	maze     *maze.Maze
	cellSize float64
	rng      *rand.Rand

	pos    Vec
	cell   maze.Cell
	spawn  maze.Cell
	corner maze.Cell
	dir    Direction
	speed  float64
	radius float64

	returnFactor    float64
	returnTolerance float64

	assigned Behavior
	active   Behavior

	frightened     bool
	frightenedLeft time.Duration
	captured       bool
}

// NewPursuer creates pursuer id (0..3) at spawn with the given assigned behavior.
// Its scatter corner is the maze corner at index id.
func NewPursuer(id int, m *maze.Maze, spawn maze.Cell, b Behavior, t Tuning, rng *rand.Rand) *Pursuer {
	p := &Pursuer{
		id:              id,
		cellSize:        t.CellSize,
		rng:             rng,
		speed:           t.PursuerSpeed,
		radius:          t.PursuerRadius,
		returnFactor:    t.ReturnSpeedFactor,
		returnTolerance: t.ReturnTolerance,
		assigned:        b,
		active:          b,
	}
	p.dir = scanOrder[rng.Intn(len(scanOrder))]
	p.Rebind(m, spawn)
	return p
}

// Rebind moves the pursuer onto a freshly built maze with a new spawn and
// restores its assigned behavior.
func (p *Pursuer) Rebind(m *maze.Maze, spawn maze.Cell) {
	p.maze = m
	p.spawn = spawn
	p.corner = m.Corners()[p.id%maze.PursuerCount]
	p.active = p.assigned
	p.ResetToSpawn()
}

// ResetToSpawn returns the pursuer to its spawn center and clears its status flags.
func (p *Pursuer) ResetToSpawn() {
	p.cell = p.spawn
	p.pos = SnapToCenter(p.spawn, p.cellSize)
	p.frightened = false
	p.frightenedLeft = 0
	p.captured = false
}

// Frighten makes the pursuer vulnerable for d. Captured pursuers ignore it.
func (p *Pursuer) Frighten(d time.Duration) {
	if p.captured {
		return
	}
	p.frightened = true
	p.frightenedLeft = d
}

// ClearFrightened ends the frightened state immediately.
func (p *Pursuer) ClearFrightened() {
	p.frightened = false
	p.frightenedLeft = 0
}

// Capture sends a frightened pursuer back to its spawn. It reports whether
// the transition happened; seeking or already captured pursuers are unaffected.
func (p *Pursuer) Capture() bool {
	if !p.frightened || p.captured {
		return false
	}
	p.captured = true
	p.ClearFrightened()
	return true
}

// SetPhase applies the global scatter/direct phase. Pursuers assigned the
// random behavior, frightened pursuers and captured pursuers keep their
// current behavior.
func (p *Pursuer) SetPhase(scatter bool) {
	if p.assigned == BehaviorRandom || p.frightened || p.captured {
		return
	}
	if scatter {
		p.active = BehaviorScatter
	} else {
		p.active = BehaviorDirect
	}
}

// Advance performs one frame. target is the agent's current cell.
func (p *Pursuer) Advance(target maze.Cell, elapsed time.Duration) {
	if p.captured {
		p.returnToSpawn()
	} else {
		p.seek(target)
	}

	if p.frightened {
		p.frightenedLeft -= elapsed
		if p.frightenedLeft <= 0 {
			p.ClearFrightened()
		}
	}
}

// returnToSpawn flies straight at the spawn center, ignoring walls.
func (p *Pursuer) returnToSpawn() {
	home := SnapToCenter(p.spawn, p.cellSize)
	dx := home.X - p.pos.X
	dy := home.Y - p.pos.Y
	dist := math.Hypot(dx, dy)
	speed := p.speed * p.returnFactor

	// Arrival within one step snaps, so a fast return cannot overshoot forever.
	if dist < p.returnTolerance || dist <= speed {
		p.pos = home
		p.cell = p.spawn
		p.captured = false
		return
	}

	p.pos.X += dx / dist * speed
	p.pos.Y += dy / dist * speed
	p.cell = CellOf(p.pos, p.cellSize)
}

func (p *Pursuer) seek(target maze.Cell) {
	if IsNearCenter(p.pos, p.cell, p.cellSize) {
		legal := legalDirections(p.cell, p.dir, p.passable)
		switch {
		case len(legal) > 1 && p.frightened:
			p.dir = chooseFrightened(legal, p.dir, p.rng)
		case len(legal) > 1:
			p.dir = chooseSeeking(p.active, p.cell, legal, target, p.corner, p.rng)
		case len(legal) == 1:
			p.dir = legal[0]
		}
	}

	if p.dir != DirStop {
		next := step(p.pos, p.dir, p.speed)
		if footprintClear(p.maze, next, p.radius, p.cellSize, p.passable) {
			p.pos = next
		} else if legal := legalDirections(p.cell, p.dir, p.passable); len(legal) > 0 {
			p.dir = legal[0]
		}
	}

	p.pos = wrapHorizontal(p.pos, p.radius, float64(p.maze.Width())*p.cellSize)
	p.cell = CellOf(p.pos, p.cellSize)
}

// passable admits traversable cells and the pursuer house.
func (p *Pursuer) passable(c maze.Cell) bool {
	c = p.maze.WrapColumn(c)
	return p.maze.IsTraversable(c) || p.maze.IsHouse(c)
}

// Mode returns the state currently governing motion.
func (p *Pursuer) Mode() Mode {
	switch {
	case p.captured:
		return ModeCaptured
	case p.frightened:
		return ModeFrightened
	default:
		return ModeSeeking
	}
}

// ID returns the construction index.
func (p *Pursuer) ID() int { return p.id }

// Position returns the continuous position.
func (p *Pursuer) Position() Vec { return p.pos }

// Cell returns the grid cell derived from the position.
func (p *Pursuer) Cell() maze.Cell { return p.cell }

// Spawn returns the spawn cell.
func (p *Pursuer) Spawn() maze.Cell { return p.spawn }

// Corner returns the scatter target.
func (p *Pursuer) Corner() maze.Cell { return p.corner }

// Direction returns the current heading.
func (p *Pursuer) Direction() Direction { return p.dir }

// Speed returns the base speed in pixels per frame.
func (p *Pursuer) Speed() float64 { return p.speed }

// Radius returns the footprint radius.
func (p *Pursuer) Radius() float64 { return p.radius }

// Assigned returns the behavior given at construction.
func (p *Pursuer) Assigned() Behavior { return p.assigned }

// Active returns the behavior used while seeking.
func (p *Pursuer) Active() Behavior { return p.active }

// Frightened reports whether the pursuer is frightened.
func (p *Pursuer) Frightened() bool { return p.frightened }

// FrightenedLeft returns the remaining frightened time.
func (p *Pursuer) FrightenedLeft() time.Duration { return p.frightenedLeft }

// Captured reports whether the pursuer is returning to spawn.
func (p *Pursuer) Captured() bool { return p.captured }

// setSpeed replaces the base speed.
func (p *Pursuer) setSpeed(s float64) { p.speed = s }
