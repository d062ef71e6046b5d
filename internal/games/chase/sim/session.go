package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/games/chase/maze"
)

// Session is one game from first frame to game over.
type Session struct {
	tuning   Tuning
	world    World
	state    State
	resolver Resolver
	logger   *log.Logger
	frame    uint64
}

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	logger *log.Logger
	build  maze.Builder
}

// WithLogger sets the logger for session events. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(o *sessionOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBuilder sets the maze builder used at start and on every level advance.
func WithBuilder(b maze.Builder) Option {
	return func(o *sessionOptions) {
		if b != nil {
			o.build = b
		}
	}
}

// NewSession starts a session at level 1. seed drives every random choice.
func NewSession(t Tuning, seed int64, opts ...Option) *Session {
	o := sessionOptions{
		logger: log.New(io.Discard),
		build:  maze.ClassicBuilder,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rng := rand.New(rand.NewSource(seed))
	m := o.build(1)

	spawns := m.PursuerSpawns()
	pursuers := make([]*Pursuer, len(spawns))
	for i, spawn := range spawns {
		pursuers[i] = NewPursuer(i, m, spawn, DefaultBehaviors[i], t, rng)
	}

	return &Session{
		tuning: t,
		world: World{
			Maze:     m,
			Agent:    NewAgent(m, t),
			Pursuers: pursuers,
		},
		state:    NewState(t),
		resolver: NewResolver(t, o.build),
		logger:   o.logger,
	}
}

// SetDesiredDirection forwards player intent to the agent.
func (s *Session) SetDesiredDirection(d Direction) {
	s.world.Agent.SetDesiredDirection(d)
}

// Advance runs one frame: timers, agent motion, pursuer motion, then
// collision resolution. elapsed should already be capped by the caller.
func (s *Session) Advance(elapsed time.Duration) Outcome {
	if s.state.Over {
		return Outcome{GameOver: true}
	}
	s.frame++

	if s.state.tickPhase(elapsed, s.tuning.PhaseDuration) {
		for _, p := range s.world.Pursuers {
			p.SetPhase(s.state.Scatter)
		}
		s.logger.Debug("behavior phase", "scatter", s.state.Scatter, "frame", s.frame)
	}

	if s.state.tickPower(elapsed) {
		for _, p := range s.world.Pursuers {
			p.ClearFrightened()
		}
		s.logger.Debug("power mode ended", "frame", s.frame)
	}

	s.world.Agent.Advance()
	target := s.world.Agent.Cell()
	for _, p := range s.world.Pursuers {
		p.Advance(target, elapsed)
	}

	out := s.resolver.Resolve(&s.state, &s.world)
	s.logOutcome(out)
	return out
}

func (s *Session) logOutcome(out Outcome) {
	if out.PowerPellets > 0 {
		s.logger.Info("power mode", "duration", s.tuning.PowerDuration, "frame", s.frame)
	}
	if out.Captures > 0 {
		s.logger.Info("pursuer captured", "count", out.Captures, "score", s.state.Score)
	}
	switch {
	case out.GameOver:
		s.logger.Info("game over", "score", s.state.Score, "level", s.state.Level, "frame", s.frame)
	case out.Died:
		s.logger.Info("agent died", "lives", s.state.Lives, "frame", s.frame)
	}
	if out.LevelAdvanced {
		s.logger.Info("level complete", "level", s.state.Level, "score", s.state.Score)
	}
}

// Score returns the current score.
func (s *Session) Score() int { return s.state.Score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.state.Lives }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.state.Level }

// PowerActive reports whether pursuers are in a power-mode window.
func (s *Session) PowerActive() bool { return s.state.PowerActive() }

// ScatterPhase reports whether seeking pursuers currently scatter.
func (s *Session) ScatterPhase() bool { return s.state.Scatter }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.state.Over }

// State returns a copy of the session counters.
func (s *Session) State() State { return s.state }

// Frame returns the number of frames advanced.
func (s *Session) Frame() uint64 { return s.frame }

// Tuning returns the parameters the session was built with.
func (s *Session) Tuning() Tuning { return s.tuning }

// Maze returns the current level's maze.
func (s *Session) Maze() *maze.Maze { return s.world.Maze }

// Agent returns the player agent.
func (s *Session) Agent() *Agent { return s.world.Agent }

// Pursuers returns the pursuers in construction order.
func (s *Session) Pursuers() []*Pursuer { return s.world.Pursuers }
