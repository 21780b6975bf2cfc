// Package character implements the kinematic capsule controller that
// moves the agent through the static collision grid.
package character

import (
	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/pkg/math"
)

const (
	// maxSlides bounds the iterative swept-slide resolution per frame.
	maxSlides = 4
	// skin is the tolerance kept between the capsule and static geometry.
	skin = 0.02
	// stepHeight is the tallest ledge the controller climbs while grounded.
	stepHeight = 0.38
	// stepDrop extends the landing search below the raised step position.
	stepDrop = 0.25
	// minStepProgress is the net horizontal gain required for a step
	// attempt to count as progress.
	minStepProgress = 0.02
)

// Kinematics is the agent's per-frame movement state. It is mutated
// exclusively by Controller.Step and read by the animator and camera.
type Kinematics struct {
	Position         math.Vec3 // capsule center
	VerticalVelocity float32
	Grounded         bool
}

// Tuning holds the agent's movement parameters.
type Tuning struct {
	WalkSpeed   float32
	SprintSpeed float32
	TurnSpeed   float32
	JumpSpeed   float32
	Gravity     float32
}

// DefaultTuning returns the sandbox player's movement parameters.
func DefaultTuning() Tuning {
	return Tuning{
		WalkSpeed:   5.5,
		SprintSpeed: 9.5,
		TurnSpeed:   2.8,
		JumpSpeed:   7.5,
		Gravity:     -20.0,
	}
}

// Intent is one frame of movement input: the desired horizontal
// displacement (already scaled by speed and dt) and an edge-triggered
// jump request.
type Intent struct {
	Displacement math.Vec3
	Jump         bool
}

// Controller resolves intended displacement against the collision grid.
type Controller struct {
	capsule collision.Capsule
	tuning  Tuning
	grid    *collision.Grid
}

// NewController creates a controller for one agent. Degenerate capsule
// dimensions are clamped to small positive values.
func NewController(capsule collision.Capsule, tuning Tuning, grid *collision.Grid) *Controller {
	return &Controller{
		capsule: capsule.ClampDegenerate(),
		tuning:  tuning,
		grid:    grid,
	}
}

// Capsule returns the agent's collision shape.
func (c *Controller) Capsule() collision.Capsule {
	return c.capsule
}

// Tuning returns the agent's movement parameters.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// Step advances the kinematic state by one frame: horizontal swept
// slide, step climbing when blocked on the ground, jump impulse,
// gravity integration, then landing or ceiling resolution.
func (c *Controller) Step(k *Kinematics, intent Intent, dt float32) {
	next := k.Position
	slid, blocked := c.moveWithSlide(next, intent.Displacement)
	next.X = slid.X
	next.Z = slid.Z

	if blocked && k.Grounded {
		if stepped, ok := c.tryStepMove(k.Position, intent.Displacement); ok {
			next = stepped
		}
	}

	if intent.Jump && k.Grounded {
		k.VerticalVelocity = c.tuning.JumpSpeed
		k.Grounded = false
	}

	verticalStart := next
	k.VerticalVelocity += c.tuning.Gravity * dt
	proposed := verticalStart
	proposed.Y += k.VerticalVelocity * dt

	if k.VerticalVelocity <= 0 {
		if top, ok := c.findLandingTop(verticalStart, proposed); ok {
			next.Y = top + c.capsule.HalfHeight
			k.VerticalVelocity = 0
			k.Grounded = true
		} else {
			next.Y = proposed.Y
			k.Grounded = false
		}
	} else if bottom, ok := c.findCeilingBottom(verticalStart, proposed); ok {
		next.Y = bottom - c.capsule.HalfHeight
		k.VerticalVelocity = 0
		k.Grounded = false
	} else {
		next.Y = proposed.Y
		k.Grounded = false
	}

	k.Position = next
}

// moveWithSlide resolves horizontal displacement by sweeping the
// capsule's footprint disc, advancing to the earliest impact and
// projecting the leftover onto the hit plane, up to maxSlides times.
// Returns the resolved position and whether any hit occurred.
func (c *Controller) moveWithSlide(start, displacement math.Vec3) (math.Vec3, bool) {
	position := start
	remaining := displacement.XZ()
	blocked := false

	for i := 0; i < maxSlides; i++ {
		remainingLen := remaining.Length()
		if remainingLen <= 1e-6 {
			break
		}

		bestTOI := float32(-1)
		var bestNormal math.Vec2
		queryRadius := c.capsule.Radius + remainingLen + skin + 0.1

		c.grid.QueryNearby(position, queryRadius, func(box collision.Box) {
			feetY := position.Y - c.capsule.HalfHeight

			// A surface the agent stands on is floor, not a side
			// blocker. Without this, walking off an edge can catch on
			// the same step's wall.
			if feetY >= box.Top()-skin {
				return
			}

			if !collision.OverlapsVertically(position.Y, c.capsule, box, skin*0.25) {
				return
			}

			toi, normal, hit := collision.SweepDiscBoxXZ(
				position.XZ(),
				remaining,
				c.capsule.Radius+skin,
				box.Center.XZ(),
				box.Half.XZ(),
			)
			if hit && (bestTOI < 0 || toi < bestTOI) {
				bestTOI = toi
				bestNormal = normal
			}
		})

		if bestTOI < 0 {
			position.X += remaining.X
			position.Z += remaining.Y
			break
		}

		blocked = true
		moveT := math.Clamp(bestTOI-0.001, 0, 1)
		position.X += remaining.X * moveT
		position.Z += remaining.Y * moveT

		leftover := remaining.Scale(1 - math.Clamp(bestTOI, 0, 1))
		intoWall := leftover.Dot(bestNormal)
		if intoWall < 0 {
			leftover = leftover.Sub(bestNormal.Scale(intoWall))
		}
		remaining = leftover
	}

	return position, blocked
}

// tryStepMove retries a blocked move from a virtually raised position
// and snaps onto a qualifying landing surface. A strictly higher
// landing (an actual step up) is preferred over a merely level one.
func (c *Controller) tryStepMove(start, displacement math.Vec3) (math.Vec3, bool) {
	if displacement.XZ().LengthSq() < 1e-6 {
		return math.Vec3{}, false
	}

	raised := start
	raised.Y += stepHeight
	if c.wouldCollide(raised) {
		return math.Vec3{}, false
	}

	raisedMoved, _ := c.moveWithSlide(raised, displacement)

	movedDist := raisedMoved.XZ().Sub(start.XZ()).Length()
	if movedDist < minStepProgress {
		return math.Vec3{}, false
	}

	currentTop := start.Y - c.capsule.HalfHeight
	var bestStepUpTop, bestFlatTop float32
	haveStepUp, haveFlat := false, false

	c.grid.QueryNearby(raisedMoved, c.capsule.Radius+0.1, func(box collision.Box) {
		if !collision.DiscOverlapsBoxXZ(raisedMoved, c.capsule.Radius, box) {
			return
		}

		top := box.Top()
		centerAfterSnap := top + c.capsule.HalfHeight
		drop := raisedMoved.Y - centerAfterSnap
		if drop < -skin || drop > stepHeight+stepDrop {
			return
		}

		stepUp := top - currentTop
		switch {
		case stepUp > skin:
			if !haveStepUp || top < bestStepUpTop {
				bestStepUpTop = top
			}
			haveStepUp = true
		case stepUp >= -skin:
			if !haveFlat || top > bestFlatTop {
				bestFlatTop = top
			}
			haveFlat = true
		}
	})

	var top float32
	switch {
	case haveStepUp:
		top = bestStepUpTop
	case haveFlat:
		top = bestFlatTop
	default:
		return math.Vec3{}, false
	}

	snapped := math.Vec3{X: raisedMoved.X, Y: top + c.capsule.HalfHeight, Z: raisedMoved.Z}
	if c.wouldCollide(snapped) {
		return math.Vec3{}, false
	}

	return snapped, true
}

// wouldCollide reports whether the capsule placed at center intersects
// any static collider.
func (c *Controller) wouldCollide(center math.Vec3) bool {
	hit := false
	c.grid.QueryNearby(center, c.capsule.Radius+0.1, func(box collision.Box) {
		if hit {
			return
		}
		hit = collision.CapsuleOverlapsBox(center, c.capsule, box)
	})
	return hit
}

// findLandingTop returns the highest static top surface whose height
// the capsule's feet crossed between the previous and proposed
// positions this frame.
func (c *Controller) findLandingTop(previous, proposed math.Vec3) (float32, bool) {
	previousBottom := previous.Y - c.capsule.HalfHeight
	proposedBottom := proposed.Y - c.capsule.HalfHeight
	const epsilon = 0.0001

	var topHit float32
	found := false

	c.grid.QueryNearby(proposed, c.capsule.Radius+0.1, func(box collision.Box) {
		if !collision.DiscOverlapsBoxXZ(proposed, c.capsule.Radius, box) {
			return
		}

		top := box.Top()
		crossed := previousBottom >= top-epsilon && proposedBottom <= top+epsilon
		if crossed {
			if !found || top > topHit {
				topHit = top
			}
			found = true
		}
	})

	return topHit, found
}

// findCeilingBottom is the symmetric upward test: the lowest static
// bottom surface the capsule's head crossed this frame.
func (c *Controller) findCeilingBottom(previous, proposed math.Vec3) (float32, bool) {
	previousTop := previous.Y + c.capsule.HalfHeight
	proposedTop := proposed.Y + c.capsule.HalfHeight
	const epsilon = 0.0001

	var bottomHit float32
	found := false

	c.grid.QueryNearby(proposed, c.capsule.Radius+0.1, func(box collision.Box) {
		if !collision.DiscOverlapsBoxXZ(proposed, c.capsule.Radius, box) {
			return
		}

		bottom := box.Bottom()
		crossed := previousTop <= bottom+epsilon && proposedTop >= bottom-epsilon
		if crossed {
			if !found || bottom < bottomHit {
				bottomHit = bottom
			}
			found = true
		}
	})

	return bottomHit, found
}
