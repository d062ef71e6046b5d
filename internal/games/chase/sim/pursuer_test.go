package sim

import (
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

const frame = 16 * time.Millisecond

// teeJunction has an intersection at (2,2) with exits up, left and right.
var teeJunction = []string{
	"#####",
	"##.##",
	"#...#",
	"#####",
}

func pursuerAt(t *testing.T, rows []string, spawn maze.Cell, b Behavior, seed int64) (*maze.Maze, *Pursuer) {
	t.Helper()
	m, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	p := NewPursuer(0, m, spawn, b, DefaultTuning(), rand.New(rand.NewSource(seed)))
	return m, p
}

func TestFrightenedChoiceAtIntersection(t *testing.T) {
	allowed := []Direction{DirUp, DirLeft, DirRight}
	seen := map[Direction]bool{}

	for seed := range int64(64) {
		_, p := pursuerAt(t, teeJunction, maze.Cell{X: 2, Y: 2}, BehaviorDirect, seed)
		p.dir = DirDown
		p.Frighten(8 * time.Second)

		p.Advance(maze.Cell{X: 2, Y: 1}, frame)

		if !slices.Contains(allowed, p.Direction()) {
			t.Fatalf("seed %d: chose %s, want one of %v", seed, p.Direction(), allowed)
		}
		seen[p.Direction()] = true
	}

	if len(seen) < 2 {
		t.Errorf("frightened choice never varied across seeds: %v", seen)
	}
}

func TestChooseFrightenedExcludesReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	legal := []Direction{DirUp, DirLeft, DirRight}

	for range 100 {
		if d := chooseFrightened(legal, DirDown, rng); d == DirUp {
			t.Fatal("chose the reverse while alternatives existed")
		}
	}

	if d := chooseFrightened([]Direction{DirUp}, DirDown, rng); d != DirUp {
		t.Errorf("fallback = %s, want up", d)
	}
}

func TestLegalDirections(t *testing.T) {
	m := maze.MustParse(teeJunction)
	open := m.IsTraversable

	tests := []struct {
		name    string
		at      maze.Cell
		current Direction
		want    []Direction
	}{
		{"junction heading down", maze.Cell{X: 2, Y: 2}, DirDown, []Direction{DirLeft, DirRight}},
		{"junction heading up", maze.Cell{X: 2, Y: 2}, DirUp, []Direction{DirUp, DirLeft, DirRight}},
		{"junction stopped", maze.Cell{X: 2, Y: 2}, DirStop, []Direction{DirUp, DirLeft, DirRight}},
		{"dead end reverses", maze.Cell{X: 1, Y: 2}, DirLeft, []Direction{DirRight}},
		{"walled in", maze.Cell{X: 0, Y: 0}, DirUp, []Direction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := legalDirections(tt.at, tt.current, open)
			if !slices.Equal(got, tt.want) {
				t.Errorf("legalDirections = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNearestToTiesFollowScanOrder(t *testing.T) {
	from := maze.Cell{X: 5, Y: 5}

	// Up and Left both end one cell from (4,4); Up is scanned first.
	if d := nearestTo(from, maze.Cell{X: 4, Y: 4}, []Direction{DirUp, DirDown, DirLeft, DirRight}); d != DirUp {
		t.Errorf("tie = %s, want up", d)
	}
	if d := nearestTo(from, maze.Cell{X: 9, Y: 5}, []Direction{DirUp, DirLeft, DirRight}); d != DirRight {
		t.Errorf("nearest = %s, want right", d)
	}
}

func TestChooseSeekingPolicies(t *testing.T) {
	from := maze.Cell{X: 5, Y: 5}
	legal := []Direction{DirUp, DirDown, DirLeft, DirRight}
	target := maze.Cell{X: 5, Y: 10}
	corner := maze.Cell{X: 0, Y: 5}
	rng := rand.New(rand.NewSource(7))

	if d := chooseSeeking(BehaviorDirect, from, legal, target, corner, rng); d != DirDown {
		t.Errorf("direct = %s, want down", d)
	}
	if d := chooseSeeking(BehaviorScatter, from, legal, target, corner, rng); d != DirLeft {
		t.Errorf("scatter = %s, want left", d)
	}
	for range 50 {
		if d := chooseSeeking(BehaviorRandom, from, legal[:2], target, corner, rng); d != DirUp && d != DirDown {
			t.Fatalf("random = %s, want up or down", d)
		}
	}
}

func TestCaptureOnlyFromFrightened(t *testing.T) {
	_, p := pursuerAt(t, teeJunction, maze.Cell{X: 2, Y: 2}, BehaviorDirect, 1)

	if p.Capture() {
		t.Fatal("seeking pursuer must not be capturable")
	}
	if p.Mode() != ModeSeeking {
		t.Fatalf("mode = %s, want seeking", p.Mode())
	}

	p.Frighten(time.Second)
	if !p.Capture() {
		t.Fatal("frightened pursuer should be capturable")
	}
	if p.Mode() != ModeCaptured || p.Frightened() {
		t.Errorf("mode = %s frightened = %v, want captured and not frightened", p.Mode(), p.Frightened())
	}
	if p.Capture() {
		t.Error("captured pursuer must not be captured twice")
	}

	p.Frighten(time.Second)
	if p.Frightened() {
		t.Error("captured pursuer must ignore frighten")
	}
}

func TestCapturedReturnsToExactSpawnCenter(t *testing.T) {
	_, p := pursuerAt(t, []string{
		"#######",
		"#.....#",
		"#######",
	}, maze.Cell{X: 1, Y: 1}, BehaviorDirect, 1)

	home := SnapToCenter(p.Spawn(), 30)
	p.pos = Vec{X: home.X + 97, Y: home.Y}
	p.cell = CellOf(p.pos, 30)
	p.Frighten(time.Second)
	p.Capture()

	frames := 0
	for p.Captured() {
		p.Advance(maze.Cell{X: 5, Y: 1}, frame)
		frames++
		if frames > 100 {
			t.Fatal("pursuer never reached spawn")
		}
	}

	if p.Position() != home {
		t.Errorf("position = %s, want exact spawn center %s", p.Position(), home)
	}
	if p.Cell() != p.Spawn() {
		t.Errorf("cell = %s, want spawn %s", p.Cell(), p.Spawn())
	}
	if p.Mode() != ModeSeeking {
		t.Errorf("mode = %s, want seeking", p.Mode())
	}
}

func TestCapturedMovesAtReturnSpeed(t *testing.T) {
	_, p := pursuerAt(t, []string{
		"#######",
		"#.....#",
		"#######",
	}, maze.Cell{X: 1, Y: 1}, BehaviorDirect, 1)

	home := SnapToCenter(p.Spawn(), 30)
	p.pos = Vec{X: home.X + 60, Y: home.Y}
	p.Frighten(time.Second)
	p.Capture()
	p.Advance(maze.Cell{}, frame)

	if got, want := p.Position().X, home.X+54; got != want {
		t.Errorf("x = %.1f, want %.1f", got, want)
	}
}

func TestCapturedArrivalEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		factor    float64
		tolerance float64
	}{
		{"already home with zero tolerance", 0, 2, 0},
		{"step longer than tolerance band", 7, 5, 5},
		{"fast return from afar", 97, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := pursuerAt(t, []string{
				"#######",
				"#.....#",
				"#######",
			}, maze.Cell{X: 1, Y: 1}, BehaviorDirect, 1)
			p.returnFactor = tt.factor
			p.returnTolerance = tt.tolerance

			home := SnapToCenter(p.Spawn(), 30)
			p.pos = Vec{X: home.X + tt.offset, Y: home.Y}
			p.cell = CellOf(p.pos, 30)
			p.Frighten(time.Second)
			p.Capture()

			for frames := 0; p.Captured(); frames++ {
				if frames > 50 {
					t.Fatalf("pursuer never arrived, at %s", p.Position())
				}
				p.Advance(maze.Cell{X: 5, Y: 1}, frame)
				if math.IsNaN(p.Position().X) || math.IsNaN(p.Position().Y) {
					t.Fatal("position became NaN")
				}
			}

			if p.Position() != home || p.Cell() != p.Spawn() {
				t.Errorf("arrived at %s (cell %s), want %s", p.Position(), p.Cell(), home)
			}
		})
	}
}

func TestPursuerBlockedMoveTakesFirstLegal(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		cell maze.Cell
		pos  Vec
		dir  Direction
		want Direction
	}{
		{
			name: "dead end reverses",
			rows: []string{
				"#######",
				"#.....#",
				"#######",
			},
			cell: maze.Cell{X: 5, Y: 1},
			pos:  Vec{X: 167, Y: 45},
			dir:  DirRight,
			want: DirLeft,
		},
		{
			name: "junction wall picks first in scan order",
			rows: teeJunction,
			cell: maze.Cell{X: 2, Y: 2},
			pos:  Vec{X: 75, Y: 77},
			dir:  DirDown,
			want: DirLeft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := pursuerAt(t, tt.rows, tt.cell, BehaviorDirect, 1)
			p.pos = tt.pos
			p.cell = CellOf(tt.pos, 30)
			p.dir = tt.dir

			p.Advance(maze.Cell{X: 1, Y: 1}, frame)

			if p.Direction() != tt.want {
				t.Errorf("direction = %s, want %s", p.Direction(), tt.want)
			}
			if p.Position() != tt.pos {
				t.Errorf("position = %s, want unchanged %s", p.Position(), tt.pos)
			}
		})
	}
}

func TestPursuerTunnelWrap(t *testing.T) {
	tunnel := []string{
		"#####",
		".....",
		"#####",
	}

	tests := []struct {
		name string
		dir  Direction
	}{
		{"west exit", DirLeft},
		{"east exit", DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, p := pursuerAt(t, tunnel, maze.Cell{X: 2, Y: 1}, BehaviorDirect, 1)
			p.dir = tt.dir
			width := float64(m.Width()) * 30

			wrapped := false
			prev := p.Position().X
			for range 120 {
				p.Advance(maze.Cell{X: 2, Y: 1}, frame)
				x := p.Position().X
				if (tt.dir == DirLeft && x > prev) || (tt.dir == DirRight && x < prev) {
					wrapped = true
				}
				prev = x

				if x < -p.Radius() || x > width+p.Radius() {
					t.Fatalf("x = %.1f escaped the wrap band", x)
				}
				if !m.IsTraversable(m.WrapColumn(p.Cell())) {
					t.Fatalf("pursuer in non-traversable cell %s", p.Cell())
				}
			}

			if !wrapped {
				t.Error("pursuer never wrapped through the tunnel")
			}
			if p.Direction() != tt.dir {
				t.Errorf("direction = %s, want %s", p.Direction(), tt.dir)
			}
		})
	}
}

func TestFrightenedCountdownExpires(t *testing.T) {
	_, p := pursuerAt(t, teeJunction, maze.Cell{X: 2, Y: 2}, BehaviorDirect, 1)

	p.Frighten(40 * time.Millisecond)
	p.Advance(maze.Cell{X: 2, Y: 1}, frame)
	p.Advance(maze.Cell{X: 2, Y: 1}, frame)
	if !p.Frightened() {
		t.Fatal("pursuer should still be frightened after 32ms")
	}

	p.Advance(maze.Cell{X: 2, Y: 1}, frame)
	if p.Frightened() || p.FrightenedLeft() != 0 {
		t.Errorf("frightened=%v left=%v, want cleared", p.Frightened(), p.FrightenedLeft())
	}
}

func TestSetPhase(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := maze.MustParse(maze.Classic)
	spawn := m.PursuerSpawns()[0]
	tun := DefaultTuning()

	direct := NewPursuer(0, m, spawn, BehaviorDirect, tun, rng)
	random := NewPursuer(3, m, spawn, BehaviorRandom, tun, rng)
	scared := NewPursuer(1, m, spawn, BehaviorDirect, tun, rng)
	scared.Frighten(time.Second)

	for _, p := range []*Pursuer{direct, random, scared} {
		p.SetPhase(true)
	}

	if direct.Active() != BehaviorScatter {
		t.Errorf("direct active = %s, want scatter", direct.Active())
	}
	if random.Active() != BehaviorRandom {
		t.Errorf("random active = %s, want random", random.Active())
	}
	if scared.Active() != BehaviorDirect {
		t.Errorf("frightened active = %s, want unchanged direct", scared.Active())
	}

	direct.SetPhase(false)
	if direct.Active() != BehaviorDirect {
		t.Errorf("direct active = %s, want direct", direct.Active())
	}
}

func TestPursuerCornersFollowID(t *testing.T) {
	m := maze.MustParse(maze.Classic)
	rng := rand.New(rand.NewSource(1))
	corners := m.Corners()

	for id := range maze.PursuerCount {
		p := NewPursuer(id, m, m.PursuerSpawns()[id], DefaultBehaviors[id], DefaultTuning(), rng)
		if p.Corner() != corners[id] {
			t.Errorf("pursuer %d corner = %s, want %s", id, p.Corner(), corners[id])
		}
	}
}

func TestDirectPursuerClosesOnTarget(t *testing.T) {
	m, p := pursuerAt(t, []string{
		"#########",
		"#.......#",
		"#########",
	}, maze.Cell{X: 1, Y: 1}, BehaviorDirect, 1)
	target := maze.Cell{X: 7, Y: 1}

	reached := false
	for range 200 {
		p.Advance(target, frame)
		if !m.IsTraversable(p.Cell()) {
			t.Fatalf("pursuer left the corridor at %s", p.Cell())
		}
		if p.Cell() == target {
			reached = true
		}
	}
	if !reached {
		t.Errorf("pursuer never reached %s", target)
	}
}
