// Package maze provides the static maze layout and the mutable pellet
// inventory consumed by the chase simulation.
package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Layout glyphs.
const (
	GlyphWall         = '#'
	GlyphPellet       = '.'
	GlyphPowerPellet  = 'o'
	GlyphOpen         = ' '
	GlyphAgentSpawn   = 'P'
	GlyphPursuerSpawn = 'G'
	GlyphPursuerHouse = 'H'
)

// Point values for pickups.
const (
	PelletPoints      = 10
	PowerPelletPoints = 50
)

// PursuerCount is the number of pursuer spawns a session needs.
const PursuerCount = 4

var (
	// ErrEmptyLayout is returned when a layout has no rows or no columns.
	ErrEmptyLayout = errors.New("maze: empty layout")
	// ErrRaggedLayout is returned when layout rows differ in length.
	ErrRaggedLayout = errors.New("maze: ragged layout")
)

// Default spawn cells used when a layout does not provide them.
var (
	DefaultAgentSpawn    = Cell{X: 9, Y: 15}
	DefaultPursuerSpawns = []Cell{{X: 9, Y: 9}, {X: 10, Y: 9}, {X: 9, Y: 10}, {X: 10, Y: 10}}
)

// CellKind classifies a maze cell.
type CellKind int

const (
	KindWall CellKind = iota
	KindOpen
	KindPellet
	KindPowerPellet
	KindPursuerSpawn
	KindAgentSpawn
	KindPursuerHouse
)

// String returns a human-readable kind name.
func (k CellKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindOpen:
		return "open"
	case KindPellet:
		return "pellet"
	case KindPowerPellet:
		return "power_pellet"
	case KindPursuerSpawn:
		return "pursuer_spawn"
	case KindAgentSpawn:
		return "agent_spawn"
	case KindPursuerHouse:
		return "pursuer_house"
	default:
		return "unknown"
	}
}

// Cell is a discrete maze coordinate. X grows right, Y grows down.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Maze is a parsed layout. Cell kinds never change after parsing; only the
// pellet inventories shrink.
type Maze struct {
	width  int
	height int
	kinds  []CellKind // row-major: index = y*width + x

	pellets      mapset.Set[Cell]
	powerPellets mapset.Set[Cell]

	agentSpawn    Cell
	hasAgentSpawn bool
	pursuerSpawns []Cell
}

// Parse builds a maze from text rows.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	m := &Maze{
		width:        len(rows[0]),
		height:       len(rows),
		pellets:      mapset.New[Cell](),
		powerPellets: mapset.New[Cell](),
	}
	m.kinds = make([]CellKind, m.width*m.height)

	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedLayout, y, len(row), m.width)
		}
		for x := 0; x < len(row); x++ {
			kind, err := kindOf(row[x])
			if err != nil {
				return nil, fmt.Errorf("maze: cell (%d,%d): %w", x, y, err)
			}
			c := Cell{X: x, Y: y}
			m.kinds[y*m.width+x] = kind

			switch kind {
			case KindPellet:
				m.pellets.Put(c)
			case KindPowerPellet:
				m.powerPellets.Put(c)
			case KindAgentSpawn:
				m.agentSpawn = c
				m.hasAgentSpawn = true
			case KindPursuerSpawn:
				m.pursuerSpawns = append(m.pursuerSpawns, c)
			}
		}
	}

	return m, nil
}

// MustParse is like Parse but panics on error. Intended for compiled-in layouts.
func MustParse(rows []string) *Maze {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func kindOf(ch byte) (CellKind, error) {
	switch ch {
	case GlyphWall:
		return KindWall, nil
	case GlyphPellet:
		return KindPellet, nil
	case GlyphPowerPellet:
		return KindPowerPellet, nil
	case GlyphOpen:
		return KindOpen, nil
	case GlyphAgentSpawn:
		return KindAgentSpawn, nil
	case GlyphPursuerSpawn:
		return KindPursuerSpawn, nil
	case GlyphPursuerHouse:
		return KindPursuerHouse, nil
	default:
		return KindWall, fmt.Errorf("unknown glyph %q", ch)
	}
}

// Width returns the maze width in cells.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the maze height in cells.
func (m *Maze) Height() int {
	return m.height
}

// InBounds reports whether c lies inside the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Classify returns the static kind of c. Out-of-bounds cells are walls.
func (m *Maze) Classify(c Cell) CellKind {
	if !m.InBounds(c) {
		return KindWall
	}
	return m.kinds[c.Y*m.width+c.X]
}

// IsTraversable reports whether c is inside the grid and not a wall.
func (m *Maze) IsTraversable(c Cell) bool {
	return m.Classify(c) != KindWall
}

// IsHouse reports whether c belongs to the pursuer house (spawn or house glyph).
func (m *Maze) IsHouse(c Cell) bool {
	k := m.Classify(c)
	return k == KindPursuerSpawn || k == KindPursuerHouse
}

// WrapColumn folds the column of c into [0, width) so horizontal tunnels
// read the cell on the opposite edge. Rows are never wrapped.
func (m *Maze) WrapColumn(c Cell) Cell {
	c.X %= m.width
	if c.X < 0 {
		c.X += m.width
	}
	return c
}

// HasPellet reports whether a pellet remains at c.
func (m *Maze) HasPellet(c Cell) bool {
	return m.pellets.Has(c)
}

// HasPowerPellet reports whether a power pellet remains at c.
func (m *Maze) HasPowerPellet(c Cell) bool {
	return m.powerPellets.Has(c)
}

// Pellets returns the remaining pellet cells in row-major order.
func (m *Maze) Pellets() []Cell {
	return m.sorted(m.pellets)
}

// PowerPellets returns the remaining power pellet cells in row-major order.
func (m *Maze) PowerPellets() []Cell {
	return m.sorted(m.powerPellets)
}

// PelletCount returns the number of remaining pellets.
func (m *Maze) PelletCount() int {
	return m.pellets.Size()
}

// PowerPelletCount returns the number of remaining power pellets.
func (m *Maze) PowerPelletCount() int {
	return m.powerPellets.Size()
}

// RemovePellet removes the pellet at c. It returns the points awarded and
// whether a pellet was present; a second call for the same cell awards nothing.
func (m *Maze) RemovePellet(c Cell) (int, bool) {
	if !m.pellets.Has(c) {
		return 0, false
	}
	m.pellets.Remove(c)
	return PelletPoints, true
}

// RemovePowerPellet removes the power pellet at c, with the same contract as RemovePellet.
func (m *Maze) RemovePowerPellet(c Cell) (int, bool) {
	if !m.powerPellets.Has(c) {
		return 0, false
	}
	m.powerPellets.Remove(c)
	return PowerPelletPoints, true
}

// AllConsumed reports whether both inventories are empty.
func (m *Maze) AllConsumed() bool {
	return m.pellets.Size() == 0 && m.powerPellets.Size() == 0
}

// AgentSpawn returns the agent spawn cell, or DefaultAgentSpawn when the
// layout has none.
func (m *Maze) AgentSpawn() Cell {
	if !m.hasAgentSpawn {
		return DefaultAgentSpawn
	}
	return m.agentSpawn
}

// PursuerSpawns returns exactly PursuerCount spawn cells. Layouts with fewer
// than PursuerCount spawns fall back to DefaultPursuerSpawns.
func (m *Maze) PursuerSpawns() []Cell {
	src := m.pursuerSpawns
	if len(src) < PursuerCount {
		src = DefaultPursuerSpawns
	}
	out := make([]Cell, PursuerCount)
	copy(out, src[:PursuerCount])
	return out
}

// Corners returns the four grid corners in pursuer order:
// top-left, top-right, bottom-left, bottom-right.
func (m *Maze) Corners() [4]Cell {
	return [4]Cell{
		{X: 0, Y: 0},
		{X: m.width - 1, Y: 0},
		{X: 0, Y: m.height - 1},
		{X: m.width - 1, Y: m.height - 1},
	}
}

func (m *Maze) sorted(set mapset.Set[Cell]) []Cell {
	out := make([]Cell, 0, set.Size())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := Cell{X: x, Y: y}
			if set.Has(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
