package game

import (
	"testing"

	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/pkg/math"
)

func testShadowGrid() *collision.Grid {
	boxes := []collision.Box{
		{Center: math.Vec3{Y: -0.05}, Half: math.Vec3{X: 40, Y: 0.05, Z: 40}},
		{Center: math.Vec3{X: 6, Y: 0.5, Z: 0}, Half: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
	}
	return collision.NewGrid(boxes, 4.0)
}

func TestBlobShadowOnGround(t *testing.T) {
	grid := testShadowGrid()
	capsule := collision.Capsule{Radius: agentRadius, HalfHeight: agentHalfHeight}

	shadow := updateBlobShadow(grid, math.Vec3{Y: agentHalfHeight}, capsule)

	if !shadow.Visible {
		t.Fatal("shadow not visible")
	}
	if shadow.Radius != 0.95 {
		t.Errorf("grounded shadow radius = %v, want 0.95", shadow.Radius)
	}
	if diff := shadow.Alpha - 0.58; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("grounded shadow alpha = %v, want 0.58", shadow.Alpha)
	}
	if diff := shadow.Center.Y - 0.015; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("shadow height = %v, want 0.015", shadow.Center.Y)
	}
}

func TestBlobShadowOnCrateTop(t *testing.T) {
	grid := testShadowGrid()
	capsule := collision.Capsule{Radius: agentRadius, HalfHeight: agentHalfHeight}

	// Standing on the crate: the shadow projects onto its top face.
	shadow := updateBlobShadow(grid, math.Vec3{X: 6, Y: 1.0 + agentHalfHeight}, capsule)

	if diff := shadow.Center.Y - 1.015; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("shadow height = %v, want on the crate top", shadow.Center.Y)
	}
}

func TestBlobShadowFadesAndShrinksWithHover(t *testing.T) {
	grid := testShadowGrid()
	capsule := collision.Capsule{Radius: agentRadius, HalfHeight: agentHalfHeight}

	// Feet three units above the ground.
	shadow := updateBlobShadow(grid, math.Vec3{Y: agentHalfHeight + 3}, capsule)

	if diff := shadow.Radius - 0.71; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("hovering shadow radius = %v, want 0.71", shadow.Radius)
	}
	if diff := shadow.Alpha - 0.37; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("hovering shadow alpha = %v, want 0.37", shadow.Alpha)
	}
}

func TestBlobShadowClampsAtLargeHover(t *testing.T) {
	grid := testShadowGrid()
	capsule := collision.Capsule{Radius: agentRadius, HalfHeight: agentHalfHeight}

	shadow := updateBlobShadow(grid, math.Vec3{Y: agentHalfHeight + 10}, capsule)

	if shadow.Radius != 0.55 {
		t.Errorf("far shadow radius = %v, want clamp at 0.55", shadow.Radius)
	}
	if diff := shadow.Alpha - 0.16; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("far shadow alpha = %v, want the fade floor 0.16", shadow.Alpha)
	}
}
