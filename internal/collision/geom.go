package collision

import (
	"github.com/chewxy/math32"

	"github.com/haemwend/haemwend/pkg/math"
)

// DiscOverlapsBoxXZ reports whether a horizontal disc overlaps the box's
// XZ footprint. Vertical extents are ignored.
func DiscOverlapsBoxXZ(discCenter math.Vec3, discRadius float32, box Box) bool {
	dx := math32.Abs(discCenter.X-box.Center.X) - box.Half.X
	dz := math32.Abs(discCenter.Z-box.Center.Z) - box.Half.Z
	outsideX := math32.Max(dx, 0)
	outsideZ := math32.Max(dz, 0)
	distSq := outsideX*outsideX + outsideZ*outsideZ
	return distSq <= discRadius*discRadius+1e-5
}

// OverlapsVertically reports whether the capsule's body span at the
// given center height overlaps the box's vertical span, with an extra
// margin shrinking both ends of the box.
func OverlapsVertically(capsuleCenterY float32, capsule Capsule, box Box, margin float32) bool {
	capMin := capsuleCenterY - capsule.HalfHeight
	capMax := capsuleCenterY + capsule.HalfHeight
	return capMin < box.Top()-margin && capMax > box.Bottom()+margin
}

// CapsuleOverlapsBox reports whether a vertical capsule intersects the
// box, treating the capsule as a vertical segment with a radius.
func CapsuleOverlapsBox(capsuleCenter math.Vec3, capsule Capsule, box Box) bool {
	dx := math32.Abs(capsuleCenter.X-box.Center.X) - box.Half.X
	dz := math32.Abs(capsuleCenter.Z-box.Center.Z) - box.Half.Z
	outsideX := math32.Max(dx, 0)
	outsideZ := math32.Max(dz, 0)

	segHalf := math32.Max(capsule.HalfHeight-capsule.Radius, 0)
	segMin := capsuleCenter.Y - segHalf
	segMax := capsuleCenter.Y + segHalf

	var outsideY float32
	switch {
	case segMax < box.Bottom():
		outsideY = box.Bottom() - segMax
	case segMin > box.Top():
		outsideY = segMin - box.Top()
	}

	return outsideX*outsideX+outsideY*outsideY+outsideZ*outsideZ < capsule.Radius*capsule.Radius
}

// SweepDiscBoxXZ sweeps a disc from origin along delta against a box on
// the XZ plane, using a per-axis slab test on the box expanded by the
// disc radius. It returns the time of impact in [0, 1] and the surface
// normal. An origin already inside the expanded box reports an
// immediate hit with the nearest face normal.
func SweepDiscBoxXZ(origin, delta math.Vec2, radius float32, boxCenter, boxHalf math.Vec2) (float32, math.Vec2, bool) {
	expandedMin := boxCenter.Sub(boxHalf).Sub(math.Vec2{X: radius, Y: radius})
	expandedMax := boxCenter.Add(boxHalf).Add(math.Vec2{X: radius, Y: radius})

	if origin.X >= expandedMin.X && origin.X <= expandedMax.X &&
		origin.Y >= expandedMin.Y && origin.Y <= expandedMax.Y {
		left := origin.X - expandedMin.X
		right := expandedMax.X - origin.X
		down := origin.Y - expandedMin.Y
		up := expandedMax.Y - origin.Y
		minSide := math32.Min(math32.Min(left, right), math32.Min(down, up))

		var normal math.Vec2
		switch minSide {
		case left:
			normal = math.Vec2{X: -1}
		case right:
			normal = math.Vec2{X: 1}
		case down:
			normal = math.Vec2{Y: -1}
		default:
			normal = math.Vec2{Y: 1}
		}
		return 0, normal, true
	}

	tMin := float32(0)
	tMax := float32(1)
	var hitNormal math.Vec2

	for axis := 0; axis < 2; axis++ {
		var o, d, minV, maxV float32
		if axis == 0 {
			o, d, minV, maxV = origin.X, delta.X, expandedMin.X, expandedMax.X
		} else {
			o, d, minV, maxV = origin.Y, delta.Y, expandedMin.Y, expandedMax.Y
		}

		if math32.Abs(d) <= 1e-8 {
			if o < minV || o > maxV {
				return 0, math.Vec2{}, false
			}
			continue
		}

		inv := 1 / d
		t1 := (minV - o) * inv
		t2 := (maxV - o) * inv

		var n math.Vec2
		if axis == 0 {
			if d > 0 {
				n = math.Vec2{X: -1}
			} else {
				n = math.Vec2{X: 1}
			}
		} else {
			if d > 0 {
				n = math.Vec2{Y: -1}
			} else {
				n = math.Vec2{Y: 1}
			}
		}

		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
			hitNormal = n
		}
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, math.Vec2{}, false
		}
	}

	if tMin >= 0 && tMin <= 1 {
		return tMin, hitNormal, true
	}
	return 0, math.Vec2{}, false
}

// SampleGroundHeight probes downward from the given point and returns
// the highest static top surface at or below it within footRadius on
// the XZ plane. The second result is false when nothing supports the
// probe.
func SampleGroundHeight(grid *Grid, probe math.Vec3, footRadius float32) (float32, bool) {
	var bestTop float32
	found := false

	grid.QueryNearby(probe, footRadius+0.2, func(box Box) {
		if !DiscOverlapsBoxXZ(probe, footRadius, box) {
			return
		}

		top := box.Top()
		if top <= probe.Y {
			if !found || top > bestTop {
				bestTop = top
			}
			found = true
		}
	})

	return bestTop, found
}
