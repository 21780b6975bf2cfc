// Package camera implements the third person orbit rig that follows
// the agent. The rig owns its yaw, pitch and zoom state; callers feed
// it accumulated look and scroll deltas each frame and ask for the
// resulting eye and focus points.
package camera

import (
	"github.com/haemwend/haemwend/pkg/math"
)

const (
	minPitch = -1.2
	maxPitch = 0.6
)

// Rig is a third person orbit camera anchored to a moving target.
type Rig struct {
	yaw   float32
	pitch float32

	lookSensitivity float32
	zoomSensitivity float32

	distance    float32
	minDistance float32
	maxDistance float32

	height      float32
	focusHeight float32
}

// Frame is the camera placement computed for one rendered frame.
type Frame struct {
	Eye   math.Vec3
	Focus math.Vec3
}

// NewRig returns a rig with the stock follow distances and
// sensitivities.
func NewRig() *Rig {
	return &Rig{
		yaw:             0,
		pitch:           -0.35,
		lookSensitivity: 0.0025,
		zoomSensitivity: 0.35,
		distance:        8.0,
		minDistance:     2.5,
		maxDistance:     20.0,
		height:          2.0,
		focusHeight:     1.1,
	}
}

// Yaw reports the current orbit yaw in radians.
func (r *Rig) Yaw() float32 { return r.yaw }

// Pitch reports the current orbit pitch in radians.
func (r *Rig) Pitch() float32 { return r.pitch }

// Distance reports the current follow distance.
func (r *Rig) Distance() float32 { return r.distance }

// ApplyLook orbits the rig by an accumulated pointer delta. Positive
// deltas move the view right and down, matching pointer motion.
func (r *Rig) ApplyLook(dx, dy float32) {
	r.yaw -= dx * r.lookSensitivity
	r.pitch = math.Clamp(r.pitch-dy*r.lookSensitivity, minPitch, maxPitch)
}

// ApplyZoom adjusts the follow distance by an accumulated scroll
// delta. Scrolling up moves the camera closer.
func (r *Rig) ApplyZoom(scroll float32) {
	r.distance = math.Clamp(r.distance-scroll*r.zoomSensitivity, r.minDistance, r.maxDistance)
}

// Frame places the camera behind the target for the current orbit
// state. The eye sits at the orbit offset plus the rig height, and the
// focus point floats at the focus height above the target.
func (r *Rig) Frame(target math.Vec3) Frame {
	rotation := math.QuatFromYawPitch(r.yaw, r.pitch)
	offset := rotation.Rotate(math.Vec3{Z: r.distance})

	eye := target.Add(offset)
	eye.Y += r.height
	focus := target
	focus.Y += r.focusHeight

	return Frame{Eye: eye, Focus: focus}
}
