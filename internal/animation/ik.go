package animation

import (
	"github.com/chewxy/math32"

	"github.com/haemwend/haemwend/pkg/math"
)

// solveTwoBoneIK computes the hip pitch and knee bend for a two-segment
// leg whose ankle target sits at (dy, dz) relative to the hip pivot, in
// the pelvis's sagittal plane. The solution is closed-form via the law
// of cosines; an out-of-reach target is clamped just under full
// extension so the angles stay defined.
func solveTwoBoneIK(upperLen, lowerLen, dy, dz float32) (hipPitch, kneePitch float32) {
	total := upperLen + lowerLen
	dist := math.Clamp(math32.Sqrt(dy*dy+dz*dz), 0.05, total-0.001)

	baseAngle := math32.Atan2(dz, -dy)

	cosHip := (upperLen*upperLen + dist*dist - lowerLen*lowerLen) / (2 * upperLen * dist)
	hipPitch = baseAngle - math32.Acos(math.Clamp(cosHip, -1, 1))

	cosKnee := (upperLen*upperLen + lowerLen*lowerLen - dist*dist) / (2 * upperLen * lowerLen)
	kneePitch = math32.Pi - math32.Acos(math.Clamp(cosKnee, -1, 1))

	return hipPitch, kneePitch
}

// legMotion returns the gait-cycle swing, vertical lift and fore-aft
// stride for one leg at the given phase. Legs run half a cycle apart.
func legMotion(phase float32, side LimbSide, gait float32) (swing, lift, stride float32) {
	sidePhase := float32(0)
	if side == Right {
		sidePhase = math32.Pi
	}
	swing = math32.Sin(phase + sidePhase)
	lift = math32.Max(swing, 0) * gait
	stride = swing * (0.22 * gait)
	return swing, lift, stride
}
