// Package game ties the collision grid, character controller, animator
// and camera together into a running session. It owns the per-frame
// ordering: camera orbit, facing, movement, vertical resolution, then
// animation and the derived presentation state.
package game

import "github.com/haemwend/haemwend/pkg/math"

// Input is one frame's worth of player input, already resolved from
// whatever backend produced it.
type Input struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool

	Sprint bool
	Jump   bool // Held state; the session edge-triggers it.

	// AimHeld locks the agent's facing to the camera and turns the
	// turn keys into strafes.
	AimHeld bool
	// OrbitHeld gates whether LookDelta orbits the camera.
	OrbitHeld bool

	LookDelta   math.Vec2
	ScrollDelta float32
}

func axis(positive, negative bool) float32 {
	var value float32
	if positive {
		value += 1
	}
	if negative {
		value -= 1
	}
	return value
}
