package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the built-in chase configuration. It matches
// defaults/chase.yaml and is used when the embedded file cannot be parsed.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Grid: ChaseGrid{
			CellSize: 30,
		},
		Agent: ChaseAgent{
			Speed:  4,
			Radius: 12,
		},
		Pursuer: ChasePursuer{
			Speed:             3,
			Radius:            12,
			ReturnSpeedFactor: 2,
			ReturnTolerance:   5,
		},
		Timing: ChaseTiming{
			PowerDuration: 8 * time.Second,
			PhaseDuration: 7 * time.Second,
		},
		Scoring: ChaseScoring{
			Capture:          200,
			LevelBonus:       1000,
			OverlapTolerance: 5,
		},
		Gameplay: ChaseGameplay{
			Lives: 3,
		},
		Difficulty: ChaseDifficulty{
			LevelSpeedUp: true,
			SpeedStep:    0.1,
			SpeedMargin:  0.5,
		},
	}
}
