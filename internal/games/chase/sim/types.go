// Package sim implements the chase simulation: continuous-position motion
// over a discrete maze, pursuer behavior and collision scoring.
// It has no rendering or input dependencies and never reads a clock.
package sim

import "fmt"

// Vec is a continuous position in pixels.
type Vec struct {
	X, Y float64
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%.1f,%.1f)", v.X, v.Y)
}

// Direction is one of the four axis directions or Stop.
type Direction int

const (
	DirStop Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// scanOrder is the order legal directions are collected in.
// Ties in distance-based choices resolve to the earliest entry.
var scanOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit grid offset of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction. Stop reverses to Stop.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStop
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirStop:
		return "stop"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// step returns p moved by speed pixels along d.
func step(p Vec, d Direction, speed float64) Vec {
	dx, dy := d.Delta()
	return Vec{X: p.X + float64(dx)*speed, Y: p.Y + float64(dy)*speed}
}
