package game

import (
	"github.com/haemwend/haemwend/internal/collision"
	"github.com/haemwend/haemwend/pkg/math"
)

// BlobShadow is the fake contact shadow rendered under the agent. It
// sits on the highest support surface below the agent and fades and
// shrinks with hover height.
type BlobShadow struct {
	Center  math.Vec3
	Radius  float32
	Alpha   float32
	Visible bool
}

func updateBlobShadow(grid *collision.Grid, position math.Vec3, capsule collision.Capsule) BlobShadow {
	var supportTop float32
	grid.QueryNearby(position, capsule.Radius+1.0, func(box collision.Box) {
		if !collision.DiscOverlapsBoxXZ(position, capsule.Radius, box) {
			return
		}
		if top := box.Top(); top <= position.Y+0.2 && top > supportTop {
			supportTop = top
		}
	})

	feetHeight := position.Y - capsule.HalfHeight
	hoverHeight := feetHeight - supportTop
	if hoverHeight < 0 {
		hoverHeight = 0
	}
	fade := math.Clamp(1.0-hoverHeight/6.0, 0, 1)
	radius := math.Clamp(0.95-hoverHeight*0.08, 0.55, 0.95)

	return BlobShadow{
		Center:  math.Vec3{X: position.X, Y: supportTop + 0.015, Z: position.Z},
		Radius:  radius,
		Alpha:   0.16 + 0.42*fade,
		Visible: true,
	}
}
