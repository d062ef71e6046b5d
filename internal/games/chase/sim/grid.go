package sim

import (
	"math"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// CellOf maps a continuous position to its grid cell by floor division.
func CellOf(p Vec, cellSize float64) maze.Cell {
	return maze.Cell{
		X: int(math.Floor(p.X / cellSize)),
		Y: int(math.Floor(p.Y / cellSize)),
	}
}

// SnapToCenter returns the pixel center of c.
// The half-cell offset is truncated to whole pixels.
func SnapToCenter(c maze.Cell, cellSize float64) Vec {
	half := math.Floor(cellSize / 2)
	return Vec{
		X: float64(c.X)*cellSize + half,
		Y: float64(c.Y)*cellSize + half,
	}
}

// IsNearCenter reports whether p lies within CenterThreshold pixels of the
// center of c on both axes.
func IsNearCenter(p Vec, c maze.Cell, cellSize float64) bool {
	center := SnapToCenter(c, cellSize)
	return math.Abs(p.X-center.X) < CenterThreshold && math.Abs(p.Y-center.Y) < CenterThreshold
}

// footprintClear reports whether every cell overlapped by the bounding box
// of a circle at p passes the predicate. Columns wrap so tunnels stay open.
func footprintClear(m *maze.Maze, p Vec, radius, cellSize float64, passable func(maze.Cell) bool) bool {
	left := int(math.Floor((p.X - radius) / cellSize))
	right := int(math.Floor((p.X + radius) / cellSize))
	top := int(math.Floor((p.Y - radius) / cellSize))
	bottom := int(math.Floor((p.Y + radius) / cellSize))

	for gx := left; gx <= right; gx++ {
		for gy := top; gy <= bottom; gy++ {
			if !passable(m.WrapColumn(maze.Cell{X: gx, Y: gy})) {
				return false
			}
		}
	}
	return true
}

// wrapHorizontal teleports a position that left the playfield by more than
// radius to the opposite edge.
func wrapHorizontal(p Vec, radius, width float64) Vec {
	switch {
	case p.X < -radius:
		p.X = width + radius
	case p.X > width+radius:
		p.X = -radius
	}
	return p
}
