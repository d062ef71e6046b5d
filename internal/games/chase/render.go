package chase

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
	"github.com/vovakirdan/mazechase/internal/games/chase/sim"
)

const (
	hudHeight = 2
	cellChars = 2 // terminal columns per maze cell

	// Frightened pursuers flash during the last stretch of power mode.
	flashWindow = 2 * time.Second
	flashPeriod = 16 // ticks
)

var pursuerColors = [maze.PursuerCount]core.Color{
	core.ColorRed,
	core.ColorPink,
	core.ColorCyan,
	core.ColorOrange,
}

// layout is where the maze lands on a given screen.
type layout struct {
	offX, offY int
	tooSmall   bool
}

func (g *Game) layout(dst *core.Screen) layout {
	m := g.session.Maze()
	w, h := m.Width()*cellChars, m.Height()
	if dst.Width() < w || dst.Height() < h+hudHeight {
		return layout{tooSmall: true}
	}
	return layout{
		offX: (dst.Width() - w) / 2,
		offY: hudHeight,
	}
}

// Render draws the maze, entities, HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	g.renderHUD(dst)

	l := g.layout(dst)
	if l.tooSmall {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst, l)
	g.renderPursuers(dst, l)
	g.renderAgent(dst, l)

	switch {
	case g.session.Over():
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score %d  ·  R to restart", g.session.Score()))
	case g.paused:
		renderOverlay(dst, "PAUSED", "P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session

	hud := fmt.Sprintf(" MAZE CHASE  Score: %d  Lives: %s  Level: %d",
		s.Score(), strings.Repeat("♥", max(s.Lives(), 0)), s.Level())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	x := utf8.RuneCountInString(hud) + 2
	if s.PowerActive() {
		left := s.State().PowerLeft.Round(time.Second)
		dst.DrawTextColored(x, 0, fmt.Sprintf("POWER %s", left), core.ColorBrightBlue)
	} else if s.ScatterPhase() {
		dst.DrawTextColored(x, 0, "scatter", core.ColorGray)
	} else {
		dst.DrawTextColored(x, 0, "chase", core.ColorRed)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderMaze(dst *core.Screen, l layout) {
	m := g.session.Maze()
	for y := range m.Height() {
		for x := range m.Width() {
			c := maze.Cell{X: x, Y: y}
			sx, sy := l.offX+x*cellChars, l.offY+y

			switch {
			case m.Classify(c) == maze.KindWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
				dst.SetColored(sx+1, sy, '█', core.ColorBlue)
			case m.HasPowerPellet(c):
				dst.SetColored(sx, sy, '●', core.ColorBrightWhite)
			case m.HasPellet(c):
				dst.SetColored(sx, sy, '·', core.ColorWhite)
			case m.IsHouse(c):
				dst.SetColored(sx, sy, '-', core.ColorPink)
			}
		}
	}
}

func (g *Game) renderAgent(dst *core.Screen, l layout) {
	a := g.session.Agent()
	if sx, sy, ok := g.project(a.Position(), l); ok {
		dst.SetColored(sx, sy, agentGlyph(g.facing, a.Mouth()), core.ColorBrightYellow)
	}
}

// agentGlyph draws the mouth opening toward the facing direction.
func agentGlyph(facing sim.Direction, mouth float64) rune {
	if mouth < 10 {
		return 'O'
	}
	switch facing {
	case sim.DirUp:
		return 'U'
	case sim.DirDown:
		return 'n'
	case sim.DirLeft:
		return 'Ɔ'
	default:
		return 'C'
	}
}

func (g *Game) renderPursuers(dst *core.Screen, l layout) {
	for _, p := range g.session.Pursuers() {
		sx, sy, ok := g.project(p.Position(), l)
		if !ok {
			continue
		}
		glyph, color := g.pursuerLook(p)
		dst.SetColored(sx, sy, glyph, color)
	}
}

func (g *Game) pursuerLook(p *sim.Pursuer) (rune, core.Color) {
	switch p.Mode() {
	case sim.ModeCaptured:
		return '"', core.ColorGray
	case sim.ModeFrightened:
		if p.FrightenedLeft() <= flashWindow && (g.tick/flashPeriod)%2 == 1 {
			return 'M', core.ColorBrightWhite
		}
		return 'M', core.ColorBrightBlue
	default:
		return 'M', pursuerColors[p.ID()%len(pursuerColors)]
	}
}

// project maps a continuous position to a screen column and row.
// Positions inside the wrap band, outside the maze, are not drawn.
func (g *Game) project(pos sim.Vec, l layout) (x, y int, ok bool) {
	m := g.session.Maze()
	cell := g.session.Tuning().CellSize

	col := int(math.Floor(pos.X*cellChars/cell - 0.5))
	row := int(math.Floor(pos.Y / cell))
	if col < 0 || col >= m.Width()*cellChars || row < 0 || row >= m.Height() {
		return 0, 0, false
	}
	return l.offX + col, l.offY + row, true
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func renderOverlay(dst *core.Screen, title, hint string) {
	w := max(utf8.RuneCountInString(title), utf8.RuneCountInString(hint)) + 6
	box := core.CenteredRect(w, 5, dst.Width(), dst.Height())

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, hint, core.ColorWhite)
}
