package game

import (
	"testing"

	"github.com/haemwend/haemwend/internal/config"
	"github.com/haemwend/haemwend/internal/scenario"
	"github.com/haemwend/haemwend/pkg/math"
)

const testDT = float32(1.0 / 60.0)

func flatScenario() *scenario.Definition {
	return &scenario.Definition{
		ID:           "flat",
		Name:         "Flat",
		GroundExtent: 60,
		WallZ:        -15,
		TowerZ:       -25,
	}
}

func newTestSession() *Session {
	return NewSession(config.Default(), flatScenario())
}

func settle(s *Session) {
	for i := 0; i < 30; i++ {
		s.Advance(Input{}, testDT)
	}
}

func TestSessionAgentSettlesOnGround(t *testing.T) {
	s := newTestSession()

	settle(s)

	k := s.Kinematics()
	if !k.Grounded {
		t.Fatal("agent did not settle on the ground")
	}
	if diff := k.Position.Y - agentHalfHeight; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("settled height = %v, want %v", k.Position.Y, agentHalfHeight)
	}
}

func TestSessionWalksForward(t *testing.T) {
	s := newTestSession()
	settle(s)

	for i := 0; i < 60; i++ {
		s.Advance(Input{Forward: true}, testDT)
	}

	pos := s.Kinematics().Position
	// Facing is -Z at the spawn yaw, so a second of walking covers
	// roughly the walk speed in that direction.
	if pos.Z > -5.0 {
		t.Errorf("walked to z=%v, want beyond -5", pos.Z)
	}
	if pos.X > 0.01 || pos.X < -0.01 {
		t.Errorf("drifted to x=%v while walking straight", pos.X)
	}
}

func TestSessionSprintIsFaster(t *testing.T) {
	walk := newTestSession()
	sprint := newTestSession()
	settle(walk)
	settle(sprint)

	for i := 0; i < 60; i++ {
		walk.Advance(Input{Forward: true}, testDT)
		sprint.Advance(Input{Forward: true, Sprint: true}, testDT)
	}

	if sprint.Kinematics().Position.Z >= walk.Kinematics().Position.Z {
		t.Errorf("sprint covered %v, walk %v; sprint should be farther",
			sprint.Kinematics().Position.Z, walk.Kinematics().Position.Z)
	}
}

func TestSessionTurnKeysRotateFacing(t *testing.T) {
	s := newTestSession()
	settle(s)

	before := s.Yaw()
	for i := 0; i < 10; i++ {
		s.Advance(Input{TurnRight: true}, testDT)
	}
	if s.Yaw() >= before {
		t.Errorf("yaw after turning right = %v, want less than %v", s.Yaw(), before)
	}

	// Yaw accumulates without wrapping, so ten right-turn frames from
	// zero land at exactly -10 * turn speed * dt, not its positive
	// two-pi complement.
	wantYaw := before - 10*config.Default().Movement.TurnSpeed*testDT
	if diff := s.Yaw() - wantYaw; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("yaw after turning right = %v, want %v", s.Yaw(), wantYaw)
	}

	after := s.Yaw()
	for i := 0; i < 20; i++ {
		s.Advance(Input{TurnLeft: true}, testDT)
	}
	if s.Yaw() <= after {
		t.Errorf("yaw after turning left = %v, want more than %v", s.Yaw(), after)
	}
}

func TestSessionAimLocksFacingToCamera(t *testing.T) {
	s := newTestSession()
	settle(s)

	// Orbit the camera while aiming; the agent must snap to the
	// camera yaw rather than obey the turn keys.
	in := Input{
		AimHeld:   true,
		OrbitHeld: true,
		TurnRight: true,
		LookDelta: math.Vec2{X: 100},
	}
	s.Advance(in, testDT)

	// 100 pixels at the stock look sensitivity is a quarter radian.
	want := float32(-0.25)
	if diff := s.Yaw() - want; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("aimed yaw = %v, want %v", s.Yaw(), want)
	}
}

func TestSessionAimTurnsTurnKeysIntoStrafes(t *testing.T) {
	s := newTestSession()
	settle(s)

	for i := 0; i < 30; i++ {
		s.Advance(Input{AimHeld: true, TurnRight: true}, testDT)
	}

	pos := s.Kinematics().Position
	if pos.X < 0.5 {
		t.Errorf("strafed to x=%v, want rightward motion past 0.5", pos.X)
	}
	if s.Yaw() != 0 {
		t.Errorf("yaw = %v, want 0 while aim locks facing", s.Yaw())
	}
}

func TestSessionJumpIsEdgeTriggered(t *testing.T) {
	s := newTestSession()
	settle(s)

	// Hold jump: the agent leaves the ground once.
	s.Advance(Input{Jump: true}, testDT)
	if s.Kinematics().Grounded {
		t.Fatal("agent did not leave the ground on jump")
	}

	// Keep holding until it lands again.
	landed := false
	for i := 0; i < 300; i++ {
		s.Advance(Input{Jump: true}, testDT)
		if s.Kinematics().Grounded {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("agent never landed from the jump")
	}

	// A held key must not re-trigger the jump.
	for i := 0; i < 30; i++ {
		s.Advance(Input{Jump: true}, testDT)
		if !s.Kinematics().Grounded {
			t.Fatal("held jump key re-triggered a jump")
		}
	}
}

func TestSessionPausedFreezesSimulation(t *testing.T) {
	s := newTestSession()
	settle(s)
	before := s.Kinematics().Position

	s.SetPaused(true)
	for i := 0; i < 30; i++ {
		s.Advance(Input{Forward: true, Jump: true}, testDT)
	}

	if got := s.Kinematics().Position; got != before {
		t.Errorf("paused agent moved from %+v to %+v", before, got)
	}

	s.SetPaused(false)
	s.Advance(Input{Forward: true}, testDT)
	if got := s.Kinematics().Position; got == before {
		t.Error("unpaused agent did not move")
	}
}

func TestSessionShadowFollowsAgent(t *testing.T) {
	s := newTestSession()
	settle(s)

	for i := 0; i < 60; i++ {
		s.Advance(Input{Forward: true}, testDT)
	}

	shadow := s.Shadow()
	if !shadow.Visible {
		t.Fatal("blob shadow not visible in blob mode")
	}
	pos := s.Kinematics().Position
	if shadow.Center.X != pos.X || shadow.Center.Z != pos.Z {
		t.Errorf("shadow at (%v, %v), agent at (%v, %v)",
			shadow.Center.X, shadow.Center.Z, pos.X, pos.Z)
	}
	if diff := shadow.Center.Y - 0.015; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("shadow height = %v, want just above the ground", shadow.Center.Y)
	}
}

func TestSessionStencilModeDisablesBlobShadow(t *testing.T) {
	cfg := config.Default()
	cfg.Game.ShadowMode = "stencil"
	s := NewSession(cfg, flatScenario())

	settle(s)

	if s.Shadow().Visible {
		t.Error("blob shadow visible in stencil mode")
	}
}

func TestSessionAnimatorSeesCommittedPosition(t *testing.T) {
	s := newTestSession()
	settle(s)

	s.Advance(Input{Forward: true}, testDT)

	// The pose root must track the position the controller committed
	// this frame, not last frame's.
	pos := s.Kinematics().Position
	root := s.Pose().RootWorld
	if root.X != pos.X || root.Z != pos.Z {
		t.Errorf("pose root at (%v, %v), agent at (%v, %v)", root.X, root.Z, pos.X, pos.Z)
	}
}

func TestSessionSkipsWithoutAgent(t *testing.T) {
	s := newTestSession()
	settle(s)
	before := s.Kinematics().Position

	s.DespawnAgent()
	for i := 0; i < 30; i++ {
		s.Advance(Input{Forward: true, Jump: true}, testDT)
	}
	if got := s.Kinematics().Position; got != before {
		t.Errorf("despawned agent moved from %+v to %+v", before, got)
	}

	s.SpawnAgent()
	if !s.HasAgent() {
		t.Fatal("agent not respawned")
	}
	if got := s.Kinematics().Position; got.X != 0 || got.Z != 0 {
		t.Errorf("respawned agent at %+v, want the spawn point", got)
	}
}

func TestSessionCameraFollowsAgent(t *testing.T) {
	s := newTestSession()
	settle(s)

	for i := 0; i < 60; i++ {
		s.Advance(Input{Forward: true}, testDT)
	}

	frame := s.CameraFrame()
	pos := s.Kinematics().Position
	if frame.Focus.X != pos.X || frame.Focus.Z != pos.Z {
		t.Errorf("camera focus at (%v, %v), agent at (%v, %v)",
			frame.Focus.X, frame.Focus.Z, pos.X, pos.Z)
	}
	if frame.Eye.Z <= pos.Z {
		t.Errorf("camera eye z=%v should trail the agent at z=%v", frame.Eye.Z, pos.Z)
	}
}
