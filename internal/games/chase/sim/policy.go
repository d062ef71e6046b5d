package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// Behavior selects how a seeking pursuer picks a direction at an intersection.
type Behavior int

const (
	// BehaviorDirect heads for the agent's cell.
	BehaviorDirect Behavior = iota
	// BehaviorScatter heads for the pursuer's corner.
	BehaviorScatter
	// BehaviorRandom picks any legal direction. It never toggles with the phase timer.
	BehaviorRandom
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorDirect:
		return "direct"
	case BehaviorScatter:
		return "scatter"
	case BehaviorRandom:
		return "random"
	default:
		return "unknown"
	}
}

// chooseSeeking dispatches to the policy for b. legal must be non-empty.
func chooseSeeking(b Behavior, from maze.Cell, legal []Direction, target, corner maze.Cell, rng *rand.Rand) Direction {
	switch b {
	case BehaviorScatter:
		return nearestTo(from, corner, legal)
	case BehaviorRandom:
		return randomAmong(legal, rng)
	default:
		return nearestTo(from, target, legal)
	}
}

// nearestTo returns the legal direction whose neighbor cell has the smallest
// straight-line distance to goal. Ties keep the earliest direction.
func nearestTo(from, goal maze.Cell, legal []Direction) Direction {
	best := legal[0]
	bestDist := math.Inf(1)
	for _, d := range legal {
		dx, dy := d.Delta()
		next := from.Add(dx, dy)
		dist := math.Hypot(float64(next.X-goal.X), float64(next.Y-goal.Y))
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// randomAmong picks uniformly from legal.
func randomAmong(legal []Direction, rng *rand.Rand) Direction {
	return legal[rng.Intn(len(legal))]
}

// chooseFrightened picks uniformly among legal directions other than the
// reverse of current, falling back to all legal directions.
func chooseFrightened(legal []Direction, current Direction, rng *rand.Rand) Direction {
	reverse := current.Reverse()
	forward := make([]Direction, 0, len(legal))
	for _, d := range legal {
		if d != reverse {
			forward = append(forward, d)
		}
	}
	if len(forward) == 0 {
		return randomAmong(legal, rng)
	}
	return randomAmong(forward, rng)
}

// legalDirections lists directions from c toward passable neighbors in scan
// order. The reverse of current is only included when nothing else is legal.
func legalDirections(c maze.Cell, current Direction, passable func(maze.Cell) bool) []Direction {
	reverse := current.Reverse()
	legal := make([]Direction, 0, len(scanOrder))
	reverseOK := false

	for _, d := range scanOrder {
		dx, dy := d.Delta()
		if !passable(c.Add(dx, dy)) {
			continue
		}
		if d == reverse {
			reverseOK = true
			continue
		}
		legal = append(legal, d)
	}

	if len(legal) == 0 && reverseOK {
		legal = append(legal, reverse)
	}
	return legal
}
