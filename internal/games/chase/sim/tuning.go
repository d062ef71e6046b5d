package sim

import "time"

// Fixed motion constants.
const (
	// CenterThreshold is the per-axis pixel offset under which a position
	// counts as centered in its cell, independent of cell size.
	CenterThreshold = 2.0

	mouthMax       = 45.0
	mouthStep      = 8.0
	mouthCloseStep = 4.0
)

// Tuning holds the numeric parameters of a session.
// Speeds are pixels per frame; durations are consumed by elapsed time.
type Tuning struct {
	CellSize float64

	AgentSpeed  float64
	AgentRadius float64

	PursuerSpeed       float64
	PursuerRadius      float64
	PursuerSpeedStep   float64 // added to pursuer speed on each level advance
	PursuerSpeedMargin float64 // pursuer speed is capped at AgentSpeed - margin
	LevelSpeedUp       bool

	ReturnSpeedFactor float64 // captured pursuers move at speed * factor
	ReturnTolerance   float64 // pixels from spawn center that count as arrived
	OverlapTolerance  float64 // subtracted from summed radii in contact checks

	PowerDuration time.Duration
	PhaseDuration time.Duration

	Lives        int
	CaptureScore int
	LevelBonus   int
}

// DefaultTuning returns the stock parameters for a 30px cell grid at 60 fps.
func DefaultTuning() Tuning {
	return Tuning{
		CellSize: 30,

		AgentSpeed:  4,
		AgentRadius: 12,

		PursuerSpeed:       3,
		PursuerRadius:      12,
		PursuerSpeedStep:   0.1,
		PursuerSpeedMargin: 0.5,
		LevelSpeedUp:       true,

		ReturnSpeedFactor: 2,
		ReturnTolerance:   5,
		OverlapTolerance:  5,

		PowerDuration: 8 * time.Second,
		PhaseDuration: 7 * time.Second,

		Lives:        3,
		CaptureScore: 200,
		LevelBonus:   1000,
	}
}

// pursuerSpeedCap returns the highest base speed a pursuer may reach.
func (t Tuning) pursuerSpeedCap() float64 {
	return t.AgentSpeed - t.PursuerSpeedMargin
}
