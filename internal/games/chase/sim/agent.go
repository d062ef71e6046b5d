package sim

import (
	"math"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// Agent is the player-controlled entity.
type Agent struct {
	maze     *maze.Maze
	cellSize float64

	pos     Vec
	cell    maze.Cell
	spawn   maze.Cell
	dir     Direction
	desired Direction // one-slot buffer, DirStop when empty
	speed   float64
	radius  float64

	mouth     float64
	mouthStep float64
}

// NewAgent creates an agent at the maze's agent spawn.
func NewAgent(m *maze.Maze, t Tuning) *Agent {
	a := &Agent{
		cellSize:  t.CellSize,
		speed:     t.AgentSpeed,
		radius:    t.AgentRadius,
		mouthStep: mouthStep,
	}
	a.Rebind(m)
	return a
}

// Rebind moves the agent onto a freshly built maze and resets it to that
// maze's spawn.
func (a *Agent) Rebind(m *maze.Maze) {
	a.maze = m
	a.spawn = m.AgentSpawn()
	a.ResetToSpawn()
}

// SetDesiredDirection buffers the next direction, replacing any pending one.
func (a *Agent) SetDesiredDirection(d Direction) {
	a.desired = d
}

// ResetToSpawn restores the spawn cell and clears all motion.
func (a *Agent) ResetToSpawn() {
	a.cell = a.spawn
	a.pos = SnapToCenter(a.spawn, a.cellSize)
	a.dir = DirStop
	a.desired = DirStop
	a.mouth = 0
}

// Advance performs one frame of motion.
func (a *Agent) Advance() {
	if a.desired != DirStop {
		next := CellOf(step(a.pos, a.desired, a.speed), a.cellSize)
		if a.traversable(next) && (a.dir == DirStop || IsNearCenter(a.pos, a.cell, a.cellSize)) {
			a.dir = a.desired
			a.desired = DirStop
			// Snapping on turns keeps the footprint from clipping corners.
			a.pos = SnapToCenter(a.cell, a.cellSize)
		}
	}

	if a.dir != DirStop {
		next := step(a.pos, a.dir, a.speed)
		if footprintClear(a.maze, next, a.radius, a.cellSize, a.traversable) {
			a.pos = next
		} else {
			a.dir = DirStop
			a.pos = SnapToCenter(a.cell, a.cellSize)
		}
	}

	a.pos = wrapHorizontal(a.pos, a.radius, float64(a.maze.Width())*a.cellSize)
	a.cell = CellOf(a.pos, a.cellSize)
	a.animate()
}

func (a *Agent) traversable(c maze.Cell) bool {
	return a.maze.IsTraversable(a.maze.WrapColumn(c))
}

// animate advances the mouth phase while moving and closes it when stopped.
func (a *Agent) animate() {
	if a.dir == DirStop {
		a.mouth = math.Max(0, a.mouth-mouthCloseStep)
		return
	}
	a.mouth += a.mouthStep
	if a.mouth > mouthMax || a.mouth < 0 {
		a.mouthStep = -a.mouthStep
	}
	a.mouth = math.Min(math.Max(a.mouth, 0), mouthMax)
}

// Position returns the continuous position.
func (a *Agent) Position() Vec { return a.pos }

// Cell returns the grid cell derived from the position.
func (a *Agent) Cell() maze.Cell { return a.cell }

// Spawn returns the spawn cell.
func (a *Agent) Spawn() maze.Cell { return a.spawn }

// Direction returns the committed direction.
func (a *Agent) Direction() Direction { return a.dir }

// Desired returns the buffered direction, DirStop when empty.
func (a *Agent) Desired() Direction { return a.desired }

// Radius returns the footprint radius.
func (a *Agent) Radius() float64 { return a.radius }

// Speed returns the speed in pixels per frame.
func (a *Agent) Speed() float64 { return a.speed }

// Mouth returns the mouth opening in degrees, within [0, 45].
func (a *Agent) Mouth() float64 { return a.mouth }
