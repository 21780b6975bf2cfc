package game

import (
	"github.com/haemwend/haemwend/internal/animation"
	"github.com/haemwend/haemwend/internal/camera"
	"github.com/haemwend/haemwend/internal/character"
	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/internal/config"
	"github.com/haemwend/haemwend/internal/logger"
	"github.com/haemwend/haemwend/internal/scenario"
	"github.com/haemwend/haemwend/pkg/math"
)

const (
	agentRadius     = 0.35
	agentHalfHeight = 0.9
	gridCellSize    = 4.0
)

// Session is one running scenario: the static world, the agent moving
// through it and the camera watching it.
type Session struct {
	cfg *config.Config
	def *scenario.Definition

	grid       *collision.Grid
	controller *character.Controller
	animator   *animation.Animator
	rig        *camera.Rig

	kinematics character.Kinematics
	yaw        float32
	elapsed    float32
	prevJump   bool
	paused     bool
	hasAgent   bool

	pose   animation.Pose
	shadow BlobShadow
	frame  camera.Frame
	stats  FrameStats
}

// NewSession builds the scenario world and places the agent at the
// spawn point.
func NewSession(cfg *config.Config, def *scenario.Definition) *Session {
	boxes := scenario.BuildColliders(def)
	grid := collision.NewGrid(boxes, gridCellSize)

	capsule := collision.Capsule{Radius: agentRadius, HalfHeight: agentHalfHeight}
	tuning := character.Tuning{
		WalkSpeed:   cfg.Movement.WalkSpeed,
		SprintSpeed: cfg.Movement.SprintSpeed,
		TurnSpeed:   cfg.Movement.TurnSpeed,
		JumpSpeed:   cfg.Movement.JumpSpeed,
		Gravity:     cfg.Movement.Gravity,
	}

	s := &Session{
		cfg:        cfg,
		def:        def,
		grid:       grid,
		controller: character.NewController(capsule, tuning, grid),
		animator:   animation.NewAnimator(animation.DefaultRig()),
		rig:        camera.NewRig(),
		kinematics: character.Kinematics{
			Position: math.Vec3{Y: agentHalfHeight},
		},
		hasAgent: true,
	}
	s.frame = s.rig.Frame(s.kinematics.Position)

	logger.Sugar.Infow("session started",
		"scenario", def.ID,
		"colliders", grid.Len(),
		"grid_cell_size", grid.CellSize(),
	)

	return s
}

// Scenario returns the loaded scenario definition.
func (s *Session) Scenario() *scenario.Definition { return s.def }

// Kinematics returns the agent's current motion state.
func (s *Session) Kinematics() character.Kinematics { return s.kinematics }

// Yaw returns the agent's facing in radians.
func (s *Session) Yaw() float32 { return s.yaw }

// Pose returns the last computed skeleton pose.
func (s *Session) Pose() animation.Pose { return s.pose }

// Shadow returns the last computed blob shadow placement.
func (s *Session) Shadow() BlobShadow { return s.shadow }

// CameraFrame returns the last computed camera placement.
func (s *Session) CameraFrame() camera.Frame { return s.frame }

// Stats returns the smoothed frame timing.
func (s *Session) Stats() *FrameStats { return &s.stats }

// DespawnAgent removes the agent, as when leaving a scenario for the
// menu. Advance becomes a no-op until the agent respawns.
func (s *Session) DespawnAgent() { s.hasAgent = false }

// SpawnAgent places the agent back at the spawn point.
func (s *Session) SpawnAgent() {
	s.kinematics = character.Kinematics{Position: math.Vec3{Y: agentHalfHeight}}
	s.yaw = 0
	s.prevJump = false
	s.animator = animation.NewAnimator(animation.DefaultRig())
	s.hasAgent = true
}

// HasAgent reports whether an agent is spawned.
func (s *Session) HasAgent() bool { return s.hasAgent }

// SetPaused suspends simulation, leaving all state in place.
func (s *Session) SetPaused(paused bool) { s.paused = paused }

// Paused reports whether the session is suspended.
func (s *Session) Paused() bool { return s.paused }

// Advance runs one simulation frame.
func (s *Session) Advance(input Input, dt float32) {
	s.stats.Update(dt)
	if s.paused || !s.hasAgent || dt <= 0 {
		return
	}

	if input.OrbitHeld {
		s.rig.ApplyLook(input.LookDelta.X, input.LookDelta.Y)
	}
	s.rig.ApplyZoom(input.ScrollDelta)

	tuning := s.controller.Tuning()

	// Aim mode locks the facing to the camera; otherwise the turn
	// keys rotate the agent in place.
	if input.AimHeld {
		s.yaw = s.rig.Yaw()
	} else if turnAxis := axis(input.TurnRight, input.TurnLeft); turnAxis != 0 {
		s.yaw -= turnAxis * tuning.TurnSpeed * dt
	}

	rotation := math.QuatRotationY(s.yaw)
	forward := rotation.Rotate(math.Vec3{Z: -1})
	right := rotation.Rotate(math.Vec3{X: 1})

	forwardAxis := axis(input.Forward, input.Backward)
	var strafeAxis float32
	if input.AimHeld {
		strafeAxis = axis(input.StrafeRight || input.TurnRight, input.StrafeLeft || input.TurnLeft)
	} else {
		strafeAxis = axis(input.StrafeRight, input.StrafeLeft)
	}

	movement := forward.Scale(forwardAxis).Add(right.Scale(strafeAxis))
	if movement.LengthSq() > 1e-12 {
		movement = movement.Normalize()
	} else {
		movement = math.Vec3{}
	}

	speed := tuning.WalkSpeed
	if input.Sprint {
		speed = tuning.SprintSpeed
	}

	jumpPressed := input.Jump && !s.prevJump
	s.prevJump = input.Jump

	intent := character.Intent{
		Displacement: movement.Scale(speed * dt),
		Jump:         jumpPressed,
	}
	s.controller.Step(&s.kinematics, intent, dt)

	s.elapsed += dt
	s.pose = s.animator.Update(s.grid, s.kinematics.Position, s.yaw, dt, s.elapsed, animation.AimInput{
		Held:        input.AimHeld,
		CameraYaw:   s.rig.Yaw(),
		CameraPitch: s.rig.Pitch(),
	})

	if s.cfg.Game.ShadowMode == "blob" {
		s.shadow = updateBlobShadow(s.grid, s.kinematics.Position, s.controller.Capsule())
	} else {
		s.shadow = BlobShadow{}
	}

	s.frame = s.rig.Frame(s.kinematics.Position)
}
