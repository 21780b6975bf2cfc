// Package animation keeps a procedural humanoid rig grounded on the
// collision grid: gait phasing, foot planting via two-bone IK, pelvis
// drop compensation, arm swing and head aim.
package animation

import "github.com/haemwend/haemwend/pkg/math"

// LimbSide identifies the left or right limb of a pair.
type LimbSide int

// Limb sides.
const (
	Left LimbSide = iota
	Right
)

// Leg describes one leg chain: hip pivot, two segments, ankle clearance.
// Fixed at spawn; only the derived per-frame pose changes.
type Leg struct {
	Side        LimbSide
	BaseLocal   math.Vec3 // hip pivot in pelvis space
	UpperLen    float32
	LowerLen    float32
	AnkleHeight float32
}

// Arm describes one arm pivot.
type Arm struct {
	Side      LimbSide
	BaseLocal math.Vec3
	UpperLen  float32
	LowerLen  float32
}

// Head describes the head joint and its aim clamp angles in radians.
type Head struct {
	BaseLocal    math.Vec3
	MaxYaw       float32
	MaxPitchUp   float32
	MaxPitchDown float32
}

// Rig is the full set of joint descriptors for one humanoid instance.
type Rig struct {
	Legs [2]Leg
	Arms [2]Arm
	Head Head
}

// JointPose is a joint's derived local transform for one frame.
type JointPose struct {
	Translation math.Vec3
	Rotation    math.Quat
}

// Pose is the animator's per-frame output: local poses for the visual
// root and every driven joint, plus the root's world placement for
// collaborators that need it.
type Pose struct {
	Root      JointPose
	RootWorld math.Vec3
	Hips      [2]JointPose
	Knees     [2]JointPose
	Arms      [2]JointPose
	Head      JointPose
}

// DefaultRig returns the sandbox humanoid's joint descriptors.
func DefaultRig() Rig {
	leg := func(side LimbSide, x float32) Leg {
		return Leg{
			Side:        side,
			BaseLocal:   math.Vec3{X: x, Y: 0.92},
			UpperLen:    0.42,
			LowerLen:    0.44,
			AnkleHeight: 0.08,
		}
	}
	arm := func(side LimbSide, x float32) Arm {
		return Arm{
			Side:      side,
			BaseLocal: math.Vec3{X: x, Y: 1.52},
			UpperLen:  0.30,
			LowerLen:  0.28,
		}
	}
	return Rig{
		Legs: [2]Leg{leg(Left, -0.12), leg(Right, 0.12)},
		Arms: [2]Arm{arm(Left, -0.22), arm(Right, 0.22)},
		Head: Head{
			BaseLocal:    math.Vec3{Y: 1.68},
			MaxYaw:       1.1,
			MaxPitchUp:   0.7,
			MaxPitchDown: 0.55,
		},
	}
}

// clampDegenerate raises zero-length limb segments to small positive
// values so the closed-form IK stays defined.
func (r Rig) clampDegenerate() Rig {
	const minSegment = 0.01
	for i := range r.Legs {
		if r.Legs[i].UpperLen < minSegment {
			r.Legs[i].UpperLen = minSegment
		}
		if r.Legs[i].LowerLen < minSegment {
			r.Legs[i].LowerLen = minSegment
		}
	}
	for i := range r.Arms {
		if r.Arms[i].UpperLen < minSegment {
			r.Arms[i].UpperLen = minSegment
		}
		if r.Arms[i].LowerLen < minSegment {
			r.Arms[i].LowerLen = minSegment
		}
	}
	return r
}
