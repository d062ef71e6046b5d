package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. The empty string means
// "keep the config as loaded" and parses to "".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyChasePreset adjusts lives and pursuer pacing for a preset.
// normal leaves the loaded values untouched; fixed disables the per-level speed-up.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Pursuer.Speed = 2.5
		cfg.Difficulty.LevelSpeedUp = true
		cfg.Difficulty.SpeedStep = 0.05
		cfg.Timing.PowerDuration = cfg.Timing.PowerDuration * 5 / 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Pursuer.Speed = 3.3
		cfg.Difficulty.LevelSpeedUp = true
		cfg.Difficulty.SpeedStep = 0.15
		cfg.Timing.PowerDuration = cfg.Timing.PowerDuration * 3 / 4
	case DifficultyFixed:
		cfg.Difficulty.LevelSpeedUp = false
	}

	// Pursuers start at or below the per-level cap.
	if speedCap := cfg.Agent.Speed - cfg.Difficulty.SpeedMargin; cfg.Pursuer.Speed > speedCap {
		cfg.Pursuer.Speed = speedCap
	}
}
