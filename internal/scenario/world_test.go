package scenario

import (
	"testing"

	"github.com/haemwend/haemwend/internal/collision"
)

func testDefinition() *Definition {
	return &Definition{
		ID:              "test",
		Name:            "Test",
		GroundExtent:    40,
		CrateGridRadius: 2,
		CrateSpacing:    2.0,
		CratePatternMod: 2,
		WallCount:       1,
		WallSpacing:     3.0,
		WallZ:           -10,
		TowerZ:          -15,
	}
}

func TestBuildCollidersLayout(t *testing.T) {
	boxes := BuildColliders(testDefinition())

	// Crate cells with an even coordinate sum inside radius 2, minus
	// the cleared 3x3 spawn area, leaves 8 crates. Plus the ground,
	// 3 wall segments and the tower.
	if got, want := len(boxes), 1+8+3+1; got != want {
		t.Fatalf("built %d boxes, want %d", got, want)
	}

	ground := boxes[0]
	if ground.Center.Y != -0.05 || ground.Half.X != 20 || ground.Half.Z != 20 {
		t.Errorf("ground slab = %+v, want 40x40 slab at y=-0.05", ground)
	}
	if ground.Top() != 0 {
		t.Errorf("ground top = %v, want 0", ground.Top())
	}
}

func TestBuildCollidersClearsSpawnArea(t *testing.T) {
	boxes := BuildColliders(testDefinition())

	for _, box := range boxes[1:] {
		if box.Half.X == 0.5 && box.Center.X == 0 && box.Center.Z == 0 {
			t.Error("crate placed on the spawn point")
		}
	}
}

func TestBuildCollidersPatternModClampsToOne(t *testing.T) {
	def := testDefinition()
	def.CratePatternMod = 0
	def.CrateGridRadius = 1

	// Every non-spawn cell qualifies when the pattern divides all
	// sums; radius 1 leaves none outside the spawn area.
	boxes := BuildColliders(def)
	for _, box := range boxes[1:] {
		if box.Half.X == 0.5 && box.Half.Y == 0.5 {
			t.Errorf("unexpected crate at %+v", box.Center)
		}
	}
}

func TestBuildCollidersStairLanes(t *testing.T) {
	def := testDefinition()
	def.Stairs = true

	withStairs := BuildColliders(def)
	def.Stairs = false
	without := BuildColliders(def)

	wantStairs := len(stairProfiles) * stairsPerProfile
	if got := len(withStairs) - len(without); got != wantStairs {
		t.Fatalf("stairs added %d boxes, want %d", got, wantStairs)
	}

	// The first lane climbs in equal rises from the lane origin.
	var lane []collision.Box
	for _, box := range withStairs {
		if box.Center.X == float32(stairBaseX) && box.Half.Z == stairDepth*0.5 {
			lane = append(lane, box)
		}
	}
	if len(lane) != stairsPerProfile {
		t.Fatalf("first lane has %d steps, want %d", len(lane), stairsPerProfile)
	}
	rise := stairProfiles[0].rise
	for i, step := range lane {
		wantTop := rise * float32(i+1)
		if diff := step.Top() - wantTop; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("step %d top = %v, want %v", i, step.Top(), wantTop)
		}
		if i > 0 && step.Center.Z <= lane[i-1].Center.Z {
			t.Errorf("step %d does not advance along the lane", i)
		}
	}
}
