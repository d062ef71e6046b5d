// Package chase adapts the maze-chase simulation to the game registry and terminal UI.
// It maps input actions to agent intent, feeds the session a fixed frame
// time, and draws the maze into the screen buffer.
package chase

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/chase/sim"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "chase"

var (
	// configPath is the custom config path set via CLI.
	configPath string
	// difficultyPreset is the preset applied on every Reset.
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes session events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of a sim.Session.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ChaseConfig
	session *sim.Session
	rng     *rand.Rand // restart seeds only

	seed   int64
	tick   uint64
	paused bool
	facing sim.Direction // last non-stop agent direction, for the sprite
}

// New creates an unstarted game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Maze Chase" }

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Clear the maze of pellets while four pursuers hunt you down"
}

// Reset loads tuning and starts a fresh session from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	chaseCfg, err := config.LoadChase(configPath)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
		chaseCfg = config.DefaultChaseConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChasePreset(&chaseCfg, difficultyPreset)
	}

	g.runtime = cfg
	g.cfg = chaseCfg
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.facing = sim.DirLeft
	g.session = sim.NewSession(TuningFromConfig(chaseCfg), cfg.Seed, sim.WithLogger(logger))

	logger.Debug("session started", "seed", cfg.Seed, "difficulty", g.Difficulty(), "lives", chaseCfg.Gameplay.Lives)
}

// TuningFromConfig converts loaded YAML tuning into simulation parameters.
func TuningFromConfig(c config.ChaseConfig) sim.Tuning {
	return sim.Tuning{
		CellSize: c.Grid.CellSize,

		AgentSpeed:  c.Agent.Speed,
		AgentRadius: c.Agent.Radius,

		PursuerSpeed:       c.Pursuer.Speed,
		PursuerRadius:      c.Pursuer.Radius,
		PursuerSpeedStep:   c.Difficulty.SpeedStep,
		PursuerSpeedMargin: c.Difficulty.SpeedMargin,
		LevelSpeedUp:       c.Difficulty.LevelSpeedUp,

		ReturnSpeedFactor: c.Pursuer.ReturnSpeedFactor,
		ReturnTolerance:   c.Pursuer.ReturnTolerance,
		OverlapTolerance:  c.Scoring.OverlapTolerance,

		PowerDuration: c.Timing.PowerDuration,
		PhaseDuration: c.Timing.PhaseDuration,

		Lives:        c.Gameplay.Lives,
		CaptureScore: c.Scoring.Capture,
		LevelBonus:   c.Scoring.LevelBonus,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.session.Over() {
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW:  g.runtime.ScreenW,
				ScreenH:  g.runtime.ScreenH,
				TickRate: g.runtime.TickRate,
				Seed:     g.rng.Int63(),
			})
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if d := directionFor(in); d != sim.DirStop {
		g.session.SetDesiredDirection(d)
	}

	out := g.session.Advance(g.runtime.FrameTime())
	if d := g.session.Agent().Direction(); d != sim.DirStop {
		g.facing = d
	}

	return core.StepResult{State: g.State(), Events: events(out, g.session.Level())}
}

// directionFor picks the agent intent for this tick. When several
// direction keys are held, the first in Up, Down, Left, Right order wins.
func directionFor(in core.InputFrame) sim.Direction {
	switch {
	case in.Has(core.ActionUp):
		return sim.DirUp
	case in.Has(core.ActionDown):
		return sim.DirDown
	case in.Has(core.ActionLeft):
		return sim.DirLeft
	case in.Has(core.ActionRight):
		return sim.DirRight
	}
	return sim.DirStop
}

func events(out sim.Outcome, level int) []string {
	var ev []string
	if out.PowerPellets > 0 {
		ev = append(ev, "power")
	}
	for range out.Captures {
		ev = append(ev, "capture")
	}
	if out.Died {
		ev = append(ev, "died")
	}
	if out.LevelAdvanced {
		ev = append(ev, fmt.Sprintf("level %d", level))
	}
	if out.GameOver {
		ev = append(ev, "game over")
	}
	return ev
}

// State returns the current score and status flags.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Seed returns the seed the running session was started from.
func (g *Game) Seed() int64 { return g.seed }

// Difficulty returns the applied preset name, "normal" when none was set.
func (g *Game) Difficulty() string {
	if difficultyPreset == "" {
		return string(config.DifficultyNormal)
	}
	return string(difficultyPreset)
}

// Session exposes the running simulation for headless drivers.
func (g *Game) Session() *sim.Session { return g.session }
