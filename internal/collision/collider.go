// Package collision provides the static-world broad-phase index and the
// geometric tests the character controller and animator run against it.
package collision

import "github.com/haemwend/haemwend/pkg/math"

// Box is a static axis-aligned collider. Immutable once inserted into a Grid.
type Box struct {
	Center math.Vec3
	Half   math.Vec3
}

// Top returns the world height of the box's upper face.
func (b Box) Top() float32 {
	return b.Center.Y + b.Half.Y
}

// Bottom returns the world height of the box's lower face.
func (b Box) Bottom() float32 {
	return b.Center.Y - b.Half.Y
}

// Capsule is the moving agent's collision shape. The axis is always
// vertical; the capsule never tilts.
type Capsule struct {
	Radius     float32
	HalfHeight float32
}

// ClampDegenerate returns a copy with zero or negative dimensions raised
// to small positive minimums.
func (c Capsule) ClampDegenerate() Capsule {
	if c.Radius < 0.01 {
		c.Radius = 0.01
	}
	if c.HalfHeight < c.Radius {
		c.HalfHeight = c.Radius
	}
	return c
}
