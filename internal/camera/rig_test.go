package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/haemwend/haemwend/pkg/math"
)

func TestRigPitchClamps(t *testing.T) {
	rig := NewRig()

	rig.ApplyLook(0, -10000)
	if got := rig.Pitch(); got != 0.6 {
		t.Errorf("pitch after looking far up = %v, want 0.6", got)
	}

	rig.ApplyLook(0, 10000)
	if got := rig.Pitch(); got != -1.2 {
		t.Errorf("pitch after looking far down = %v, want -1.2", got)
	}
}

func TestRigZoomClamps(t *testing.T) {
	rig := NewRig()

	rig.ApplyZoom(1000)
	if got := rig.Distance(); got != 2.5 {
		t.Errorf("distance after zooming in = %v, want 2.5", got)
	}

	rig.ApplyZoom(-1000)
	if got := rig.Distance(); got != 20.0 {
		t.Errorf("distance after zooming out = %v, want 20", got)
	}
}

func TestRigLookTurnsLeftForRightwardDelta(t *testing.T) {
	rig := NewRig()
	before := rig.Yaw()

	rig.ApplyLook(100, 0)

	if got := rig.Yaw(); got >= before {
		t.Errorf("yaw after rightward delta = %v, want less than %v", got, before)
	}
}

func TestRigFrameLevelOrbit(t *testing.T) {
	rig := NewRig()
	// Cancel the default downward pitch so the eye sits level with the
	// rig height, straight behind the target.
	rig.pitch = 0

	frame := rig.Frame(math.Vec3{X: 3, Y: 1, Z: -2})

	wantEye := math.Vec3{X: 3, Y: 3, Z: 6}
	if frame.Eye.Distance(wantEye) > 1e-4 {
		t.Errorf("eye = %+v, want %+v", frame.Eye, wantEye)
	}
	wantFocus := math.Vec3{X: 3, Y: 2.1, Z: -2}
	if frame.Focus.Distance(wantFocus) > 1e-4 {
		t.Errorf("focus = %+v, want %+v", frame.Focus, wantFocus)
	}
}

func TestRigFrameYawOrbitsAroundTarget(t *testing.T) {
	rig := NewRig()
	rig.pitch = 0
	rig.yaw = math32.Pi / 2

	frame := rig.Frame(math.Vec3{})

	wantEye := math.Vec3{X: 8, Y: 2, Z: 0}
	if frame.Eye.Distance(wantEye) > 1e-4 {
		t.Errorf("eye = %+v, want %+v", frame.Eye, wantEye)
	}
}

func TestRigFrameDefaultPitchLooksDown(t *testing.T) {
	rig := NewRig()

	frame := rig.Frame(math.Vec3{})

	if frame.Eye.Y <= rig.height {
		t.Errorf("eye height = %v, want above %v for a downward pitch", frame.Eye.Y, rig.height)
	}
	horizontal := frame.Eye.XZ().Length()
	if horizontal >= rig.distance {
		t.Errorf("horizontal offset = %v, want less than %v", horizontal, rig.distance)
	}
}
