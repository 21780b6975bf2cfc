package scenario

import (
	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/pkg/math"
)

// stairProfile is one rise/run grade of the stair lanes.
type stairProfile struct {
	rise float32
	run  float32
}

var stairProfiles = []stairProfile{
	{rise: 0.16, run: 1.05},
	{rise: 0.20, run: 0.92},
	{rise: 0.24, run: 0.80},
	{rise: 0.30, run: 0.72},
	{rise: 0.36, run: 0.64},
}

const (
	stairWidth       = 2.2
	stairDepth       = 0.82
	stairsPerProfile = 5
	stairBaseX       = -18.0
	stairLaneSpacing = 4.5
	stairBaseZ       = 8.0
)

// BuildColliders lays out the static geometry for a scenario: the
// ground slab, a crate grid with a cleared spawn area, a wall row, a
// watch tower and optionally the graded stair lanes.
func BuildColliders(def *Definition) []collision.Box {
	var boxes []collision.Box

	boxes = append(boxes, collision.Box{
		Center: math.Vec3{Y: -0.05},
		Half:   math.Vec3{X: def.GroundExtent * 0.5, Y: 0.05, Z: def.GroundExtent * 0.5},
	})

	patternMod := def.CratePatternMod
	if patternMod < 1 {
		patternMod = 1
	}
	for x := -def.CrateGridRadius; x <= def.CrateGridRadius; x++ {
		for z := -def.CrateGridRadius; z <= def.CrateGridRadius; z++ {
			nearSpawn := x >= -1 && x <= 1 && z >= -1 && z <= 1
			if remEuclid(x+z, patternMod) != 0 || nearSpawn {
				continue
			}
			boxes = append(boxes, collision.Box{
				Center: math.Vec3{
					X: float32(x) * def.CrateSpacing,
					Y: 0.5,
					Z: float32(z) * def.CrateSpacing,
				},
				Half: math.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
			})
		}
	}

	for i := -def.WallCount; i <= def.WallCount; i++ {
		boxes = append(boxes, collision.Box{
			Center: math.Vec3{X: float32(i) * def.WallSpacing, Y: 1.5, Z: def.WallZ},
			Half:   math.Vec3{X: 1.5, Y: 1.5, Z: 1.5},
		})
	}

	boxes = append(boxes, collision.Box{
		Center: math.Vec3{Y: 4.0, Z: def.TowerZ},
		Half:   math.Vec3{X: 2.0, Y: 4.0, Z: 2.0},
	})

	if def.Stairs {
		boxes = append(boxes, buildStairLanes()...)
	}

	return boxes
}

// buildStairLanes places one lane of stacked steps per grade, from
// shallow to steep, so the step controller can be exercised against a
// range of rises.
func buildStairLanes() []collision.Box {
	var boxes []collision.Box
	for lane, profile := range stairProfiles {
		laneX := float32(stairBaseX) + stairLaneSpacing*float32(lane)
		for step := 0; step < stairsPerProfile; step++ {
			idx := float32(step)
			boxes = append(boxes, collision.Box{
				Center: math.Vec3{
					X: laneX,
					Y: profile.rise*0.5 + idx*profile.rise,
					Z: stairBaseZ + idx*profile.run + stairDepth*0.5,
				},
				Half: math.Vec3{X: stairWidth * 0.5, Y: profile.rise * 0.5, Z: stairDepth * 0.5},
			})
		}
	}
	return boxes
}

// remEuclid is the non-negative remainder of a mod m.
func remEuclid(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
