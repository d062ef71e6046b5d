// Package config loads the YAML tuning for the chase game and applies
// difficulty presets on top of it.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// ChaseConfig contains all tunable numbers of the chase game.
// Maze layouts are compiled in and are not part of the config.
type ChaseConfig struct {
	Grid       ChaseGrid       `yaml:"grid"`
	Agent      ChaseAgent      `yaml:"agent"`
	Pursuer    ChasePursuer    `yaml:"pursuer"`
	Timing     ChaseTiming     `yaml:"timing"`
	Scoring    ChaseScoring    `yaml:"scoring"`
	Gameplay   ChaseGameplay   `yaml:"gameplay"`
	Difficulty ChaseDifficulty `yaml:"difficulty"`
}

// ChaseGrid defines the simulation grid.
type ChaseGrid struct {
	CellSize float64 `yaml:"cell_size"` // pixels per cell
}

// ChaseAgent defines the player agent.
type ChaseAgent struct {
	Speed  float64 `yaml:"speed"` // pixels per frame
	Radius float64 `yaml:"radius"`
}

// ChasePursuer defines the pursuers.
type ChasePursuer struct {
	Speed             float64 `yaml:"speed"` // pixels per frame
	Radius            float64 `yaml:"radius"`
	ReturnSpeedFactor float64 `yaml:"return_speed_factor"`
	ReturnTolerance   float64 `yaml:"return_tolerance"`
}

// ChaseTiming defines the global timers.
type ChaseTiming struct {
	PowerDuration time.Duration `yaml:"power_duration"`
	PhaseDuration time.Duration `yaml:"phase_duration"`
}

// ChaseScoring defines point values and contact tolerance.
type ChaseScoring struct {
	Capture          int     `yaml:"capture"`
	LevelBonus       int     `yaml:"level_bonus"`
	OverlapTolerance float64 `yaml:"overlap_tolerance"`
}

// ChaseGameplay defines session rules.
type ChaseGameplay struct {
	Lives int `yaml:"lives"`
}

// ChaseDifficulty defines per-level pursuer speed-up.
type ChaseDifficulty struct {
	LevelSpeedUp bool    `yaml:"level_speed_up"`
	SpeedStep    float64 `yaml:"speed_step"`   // added to pursuer speed per level
	SpeedMargin  float64 `yaml:"speed_margin"` // pursuers never exceed agent speed minus this
}

// Validate reports the first nonsensical value in cfg.
func (c ChaseConfig) Validate() error {
	switch {
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("config: grid.cell_size must be positive: %w", ErrInvalid)
	case c.Agent.Speed <= 0 || c.Pursuer.Speed <= 0:
		return fmt.Errorf("config: speeds must be positive: %w", ErrInvalid)
	case c.Agent.Radius <= 0 || c.Pursuer.Radius <= 0:
		return fmt.Errorf("config: radii must be positive: %w", ErrInvalid)
	case c.Agent.Radius*2 >= c.Grid.CellSize || c.Pursuer.Radius*2 >= c.Grid.CellSize:
		return fmt.Errorf("config: radius %.1f does not fit a %.1f cell: %w",
			max(c.Agent.Radius, c.Pursuer.Radius), c.Grid.CellSize, ErrInvalid)
	case c.Pursuer.ReturnSpeedFactor <= 0:
		return fmt.Errorf("config: pursuer.return_speed_factor must be positive: %w", ErrInvalid)
	case c.Pursuer.ReturnTolerance <= 0:
		return fmt.Errorf("config: pursuer.return_tolerance must be positive: %w", ErrInvalid)
	case c.Timing.PowerDuration <= 0 || c.Timing.PhaseDuration <= 0:
		return fmt.Errorf("config: timing durations must be positive: %w", ErrInvalid)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: gameplay.lives must be positive: %w", ErrInvalid)
	}
	return nil
}
