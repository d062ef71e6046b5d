package sim

import "time"

// State holds the session counters and global timers. It is threaded
// explicitly through the resolver rather than kept in package globals, so
// independent sessions never share it.
type State struct {
	Score int
	Lives int
	Level int

	PowerLeft time.Duration // global power-mode countdown
	PhaseLeft time.Duration // time until the scatter/direct phase flips
	Scatter   bool          // current phase

	Over bool
}

// NewState returns the counters for a fresh session.
func NewState(t Tuning) State {
	st := State{
		Lives: t.Lives,
		Level: 1,
	}
	st.resetTimers(t)
	return st
}

// PowerActive reports whether power mode is running.
func (st State) PowerActive() bool {
	return st.PowerLeft > 0
}

// resetTimers clears power mode and restarts the behavior phase in scatter.
func (st *State) resetTimers(t Tuning) {
	st.PowerLeft = 0
	st.PhaseLeft = t.PhaseDuration
	st.Scatter = true
}

// tickPower counts power mode down and reports whether it expired this frame.
func (st *State) tickPower(elapsed time.Duration) bool {
	if st.PowerLeft <= 0 {
		return false
	}
	st.PowerLeft -= elapsed
	if st.PowerLeft <= 0 {
		st.PowerLeft = 0
		return true
	}
	return false
}

// tickPhase counts the behavior phase down and reports whether it flipped.
func (st *State) tickPhase(elapsed time.Duration, period time.Duration) bool {
	st.PhaseLeft -= elapsed
	if st.PhaseLeft > 0 {
		return false
	}
	st.Scatter = !st.Scatter
	st.PhaseLeft = period
	return true
}
