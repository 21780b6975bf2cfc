package animation

import (
	"github.com/chewxy/math32"

	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/pkg/math"
)

const (
	// speedSmoothingRate is the exponential filter rate for measured speed.
	speedSmoothingRate = 10.0
	// fullSpeedReference maps smoothed speed onto the [0,1] speed factor.
	fullSpeedReference = 8.0
	// gaitDeadZone and gaitRampRange shape the rest-to-moving blend.
	gaitDeadZone  = 0.10
	gaitRampRange = 0.25
	// pelvisDropPasses bounds the reachability relaxation.
	pelvisDropPasses = 2
	// pelvisDropMax caps how far the pelvis may be lowered.
	pelvisDropMax = 0.35
	// footProbeRadius is the disc radius used for ground sampling.
	footProbeRadius = 0.12
	// headBlendRate drives the head's exponential turn toward its target.
	headBlendRate = 12.0
)

// AimInput carries the camera aim state the head tracks while the aim
// input is held.
type AimInput struct {
	Held        bool
	CameraYaw   float32
	CameraPitch float32
}

// Animator owns the smoothed per-frame state that drives the rig. It
// reads the controller's committed kinematics and the collision grid;
// it writes joint poses only.
type Animator struct {
	rig Rig

	phase         float32
	smoothedSpeed float32
	lastPosition  math.Vec3
	visualCenterY float32
	headRotation  math.Quat
	initialized   bool
}

// NewAnimator creates an animator for one rig. Zero-length limb
// segments are clamped at construction.
func NewAnimator(rig Rig) *Animator {
	return &Animator{
		rig:          rig.clampDegenerate(),
		headRotation: math.QuatIdentity(),
	}
}

// Rig returns the animated rig's descriptors.
func (a *Animator) Rig() Rig {
	return a.rig
}

// Phase returns the current gait phase angle.
func (a *Animator) Phase() float32 {
	return a.phase
}

// SmoothedSpeed returns the low-pass-filtered horizontal speed estimate.
func (a *Animator) SmoothedSpeed() float32 {
	return a.smoothedSpeed
}

// Update derives one frame of joint poses from the agent's committed
// position and facing yaw. elapsed is total scene time, used for idle
// sway so it survives phase wrapping.
func (a *Animator) Update(grid *collision.Grid, position math.Vec3, yaw float32, dt, elapsed float32, aim AimInput) Pose {
	dt = math32.Max(dt, 1e-5)

	if !a.initialized {
		a.lastPosition = position
		a.visualCenterY = position.Y
		a.initialized = true
	}

	delta := position.Sub(a.lastPosition)
	measuredSpeed := delta.XZ().Length() / dt
	a.lastPosition = position

	// The visual center follows vertical snaps smoothly, slower on the
	// way up so step-ups read as a climb rather than a teleport.
	followRate := float32(16.0)
	if position.Y > a.visualCenterY {
		followRate = 9.0
	}
	follow := 1 - math32.Exp(-dt*followRate)
	a.visualCenterY += (position.Y - a.visualCenterY) * follow

	smooth := 1 - math32.Exp(-dt*speedSmoothingRate)
	a.smoothedSpeed += (measuredSpeed - a.smoothedSpeed) * smooth
	speedFactor := math.Clamp(a.smoothedSpeed/fullSpeedReference, 0, 1)

	a.phase += dt * (2 + a.smoothedSpeed*2)
	if a.phase > math.Tau {
		a.phase -= math.Tau
	}

	strideBob := math32.Sin(a.phase*2) * (0.01 + 0.045*speedFactor)
	idleBob := math32.Sin(elapsed*1.5) * (0.006 * (1 - speedFactor))
	leanRoll := math32.Sin(a.phase) * 0.06 * speedFactor

	agentRotation := math.QuatRotationY(yaw)
	rootLocal := math.Vec3{Y: -0.9 + strideBob + idleBob}
	rootLocalRotation := math.QuatRotationY(math32.Pi).Mul(math.QuatRotationZ(leanRoll))
	rootWorldRotation := agentRotation.Mul(rootLocalRotation)
	visualTranslation := math.Vec3{X: position.X, Y: a.visualCenterY, Z: position.Z}
	rootWorld := visualTranslation.Add(agentRotation.Rotate(rootLocal))

	var headYawTarget, headPitchTarget float32
	if aim.Held {
		headYawTarget = math.ShortestAngleDelta(yaw, aim.CameraYaw)
		headPitchTarget = -aim.CameraPitch
	}

	gait := math.Smoothstep01(math.Clamp((speedFactor-gaitDeadZone)/gaitRampRange, 0, 1))

	// If one foot is supported lower (edge of stairs), lower the pelvis
	// so stance feet can still reach their planted targets.
	pelvisDrop := a.solvePelvisDrop(grid, rootWorld, rootWorldRotation, gait)
	if pelvisDrop > 0 {
		rootLocal.Y -= pelvisDrop
		rootWorld = visualTranslation.Add(agentRotation.Rotate(rootLocal))
	}

	pose := Pose{
		Root:      JointPose{Translation: rootLocal, Rotation: rootLocalRotation},
		RootWorld: rootWorld,
	}

	for i := range a.rig.Legs {
		leg := a.rig.Legs[i]
		_, lift, stride := legMotion(a.phase, leg.Side, gait)

		ankleTarget := a.nominalAnkleWorld(leg, rootWorld, rootWorldRotation, lift, stride, gait)
		ankleTarget = a.plantAnkle(grid, leg, rootWorld, ankleTarget, lift, gait)

		targetLocal := rootWorldRotation.Conjugate().Rotate(ankleTarget.Sub(rootWorld))
		toTarget := targetLocal.Sub(leg.BaseLocal)
		hipPitch, kneePitch := solveTwoBoneIK(leg.UpperLen, leg.LowerLen, toTarget.Y, toTarget.Z)

		pose.Hips[leg.Side] = JointPose{
			Translation: leg.BaseLocal,
			Rotation:    math.QuatRotationX(hipPitch),
		}
		pose.Knees[leg.Side] = JointPose{
			Translation: math.Vec3{Y: -leg.UpperLen},
			Rotation:    math.QuatRotationX(kneePitch),
		}
	}

	for i := range a.rig.Arms {
		arm := a.rig.Arms[i]
		sidePhase := float32(0)
		if arm.Side == Left {
			sidePhase = math32.Pi
		}
		swing := math32.Sin(a.phase + sidePhase)
		idle := math32.Sin(elapsed*1.8+sidePhase) * 0.07 * (1 - speedFactor)
		pitch := swing*(0.15+0.72*speedFactor) + idle

		pose.Arms[arm.Side] = JointPose{
			Translation: arm.BaseLocal,
			Rotation:    math.QuatRotationX(pitch),
		}
	}

	headBlend := 1 - math32.Exp(-dt*headBlendRate)
	head := a.rig.Head
	headYaw := math.Clamp(headYawTarget, -head.MaxYaw, head.MaxYaw)
	headPitch := math.Clamp(headPitchTarget, -head.MaxPitchDown, head.MaxPitchUp)
	targetRotation := math.QuatFromYawPitch(headYaw, headPitch)
	a.headRotation = a.headRotation.Slerp(targetRotation, headBlend)
	pose.Head = JointPose{Translation: head.BaseLocal, Rotation: a.headRotation}

	return pose
}

// nominalAnkleWorld computes the un-planted gait target for one ankle
// in world space.
func (a *Animator) nominalAnkleWorld(leg Leg, rootWorld math.Vec3, rootRotation math.Quat, lift, stride, gait float32) math.Vec3 {
	nominalLocal := leg.BaseLocal.Add(math.Vec3{
		Y: -(leg.UpperLen + leg.LowerLen) + lift*(0.10+0.08*gait),
		Z: stride,
	})
	return rootWorld.Add(rootRotation.Rotate(nominalLocal))
}

// plantAnkle blends an ankle target toward the sampled ground height,
// strongly during stance and not at all at the top of the swing. With
// no ground under the probe the nominal target is returned unchanged.
func (a *Animator) plantAnkle(grid *collision.Grid, leg Leg, rootWorld, ankleTarget math.Vec3, lift, gait float32) math.Vec3 {
	probe := math.Vec3{X: ankleTarget.X, Y: rootWorld.Y + 2, Z: ankleTarget.Z}
	groundY, ok := collision.SampleGroundHeight(grid, probe, footProbeRadius)
	if !ok {
		return ankleTarget
	}

	plantedY := groundY + leg.AnkleHeight
	stance := 1 - lift
	plantStrength := math.Clamp(0.82+(1-gait)*0.16, 0, 0.98)
	ankleTarget.Y = math32.Max(ankleTarget.Y, plantedY)
	ankleTarget.Y = ankleTarget.Y*(1-stance*plantStrength) + plantedY*(stance*plantStrength)
	return ankleTarget
}

// solvePelvisDrop runs a bounded relaxation: for each leg, find how far
// the pelvis must drop for the planted target to stay within the leg's
// maximum extension, and take the worst case across both legs,
// de-weighted while a leg swings.
func (a *Animator) solvePelvisDrop(grid *collision.Grid, rootWorld math.Vec3, rootRotation math.Quat, gait float32) float32 {
	var pelvisDrop float32

	for pass := 0; pass < pelvisDropPasses; pass++ {
		testRoot := rootWorld.Sub(math.Vec3{Y: pelvisDrop})
		var requiredDrop float32

		for i := range a.rig.Legs {
			leg := a.rig.Legs[i]
			swing, lift, stride := legMotion(a.phase, leg.Side, gait)

			ankleTarget := a.nominalAnkleWorld(leg, testRoot, rootRotation, lift, stride, gait)
			probe := math.Vec3{X: ankleTarget.X, Y: testRoot.Y + 2, Z: ankleTarget.Z}
			groundY, ok := collision.SampleGroundHeight(grid, probe, footProbeRadius)
			if !ok {
				continue
			}

			plantedY := groundY + leg.AnkleHeight
			stance := 1 - lift
			plantStrength := math.Clamp(0.82+(1-gait)*0.16, 0, 0.98)
			ankleTarget.Y = math32.Max(ankleTarget.Y, plantedY)
			ankleTarget.Y = ankleTarget.Y*(1-stance*plantStrength) + plantedY*(stance*plantStrength)

			targetLocal := rootRotation.Conjugate().Rotate(ankleTarget.Sub(testRoot))
			toTarget := targetLocal.Sub(leg.BaseLocal)

			legTotal := leg.UpperLen + leg.LowerLen
			maxReach := math32.Max(legTotal-0.015, 0.05)
			if math32.Abs(toTarget.Z) >= maxReach {
				continue
			}

			reachableY := -math32.Sqrt(maxReach*maxReach - toTarget.Z*toTarget.Z)
			needed := math32.Max(reachableY-toTarget.Y, 0)
			weighted := needed * (1 - 0.35*math32.Abs(swing))
			if weighted > requiredDrop {
				requiredDrop = weighted
			}
		}

		if requiredDrop <= 0.0005 {
			break
		}
		pelvisDrop = math32.Min(pelvisDrop+requiredDrop, pelvisDropMax)
	}

	return pelvisDrop
}
