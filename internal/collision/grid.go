package collision

import (
	"github.com/chewxy/math32"

	"github.com/haemwend/haemwend/pkg/math"
)

// minCellSize keeps degenerate cell sizes from producing unbounded buckets.
const minCellSize = 0.25

type cellKey struct {
	X, Z int32
}

// Grid is a uniform broad-phase index over static boxes. Colliders are
// bucketed by their XZ footprint only; queries filter vertically
// themselves. Built once at scene load and read-only afterwards; a
// scene change rebuilds the grid wholesale.
type Grid struct {
	cellSize float32
	cells    map[cellKey][]Box
	count    int
}

// NewGrid builds a grid from the scene's static colliders. Each box is
// inserted into every cell its XZ footprint overlaps, so a box spanning
// several cells can be visited more than once per query.
func NewGrid(boxes []Box, cellSize float32) *Grid {
	if cellSize < minCellSize {
		cellSize = minCellSize
	}

	g := &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey][]Box),
		count:    len(boxes),
	}

	for _, box := range boxes {
		minX, maxX := g.cellRange(box.Center.X, box.Half.X)
		minZ, maxZ := g.cellRange(box.Center.Z, box.Half.Z)
		for cx := minX; cx <= maxX; cx++ {
			for cz := minZ; cz <= maxZ; cz++ {
				key := cellKey{cx, cz}
				g.cells[key] = append(g.cells[key], box)
			}
		}
	}

	return g
}

// Len returns the number of colliders the grid was built from.
func (g *Grid) Len() int {
	return g.count
}

// CellSize returns the grid's cell edge length.
func (g *Grid) CellSize() float32 {
	return g.cellSize
}

// QueryNearby invokes visit for every collider bucketed within radius of
// center on the XZ plane. A collider spanning multiple cells may be
// visited more than once; callers are expected to run idempotent tests
// (overlap checks, min/max folds) so duplicates are harmless. No
// vertical filtering happens here.
func (g *Grid) QueryNearby(center math.Vec3, radius float32, visit func(Box)) {
	if g == nil || len(g.cells) == 0 {
		return
	}

	minX, maxX := g.cellRange(center.X, radius)
	minZ, maxZ := g.cellRange(center.Z, radius)
	for cx := minX; cx <= maxX; cx++ {
		for cz := minZ; cz <= maxZ; cz++ {
			for _, box := range g.cells[cellKey{cx, cz}] {
				visit(box)
			}
		}
	}
}

func (g *Grid) cellRange(center, halfExtent float32) (int32, int32) {
	lo := int32(math32.Floor((center - halfExtent) / g.cellSize))
	hi := int32(math32.Floor((center + halfExtent) / g.cellSize))
	return lo, hi
}
