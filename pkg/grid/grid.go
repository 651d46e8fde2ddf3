// pkg/grid/grid.go
package grid

import (
	"elemental-td/pkg/geom"
)

// Cell addresses one square of the build grid on the XZ ground plane.
type Cell struct {
	Col, Row int
}

// Grid tracks which cells are buildable and which are occupied by towers.
// The enemy path runs across the same plane; cells too close to it are
// rejected so towers never block the walkway.
type Grid struct {
	Cols, Rows int
	CellSize   float64
	path       []geom.Vec3
	clearance  float64
	occupied   map[Cell]bool
}

func New(cols, rows int, cellSize float64, path []geom.Vec3, clearance float64) *Grid {
	return &Grid{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cellSize,
		path:      path,
		clearance: clearance,
		occupied:  make(map[Cell]bool),
	}
}

// CellCenter returns the world-space center of a cell. The grid is centered
// on the origin.
func (g *Grid) CellCenter(c Cell) geom.Vec3 {
	halfW := float64(g.Cols) * g.CellSize / 2
	halfH := float64(g.Rows) * g.CellSize / 2
	return geom.Vec3{
		X: float64(c.Col)*g.CellSize - halfW + g.CellSize/2,
		Z: float64(c.Row)*g.CellSize - halfH + g.CellSize/2,
	}
}

// CellAt converts a world-space point to the cell containing it.
func (g *Grid) CellAt(p geom.Vec3) Cell {
	halfW := float64(g.Cols) * g.CellSize / 2
	halfH := float64(g.Rows) * g.CellSize / 2
	col := int((p.X + halfW) / g.CellSize)
	row := int((p.Z + halfH) / g.CellSize)
	return Cell{Col: col, Row: row}
}

func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Cols && c.Row >= 0 && c.Row < g.Rows
}

func (g *Grid) IsOccupied(c Cell) bool {
	return g.occupied[c]
}

// CanPlace reports whether a tower may be built on the cell: in bounds,
// not occupied, and at least the clearance distance away from every path
// segment.
func (g *Grid) CanPlace(c Cell) bool {
	if !g.InBounds(c) || g.occupied[c] {
		return false
	}
	center := g.CellCenter(c)
	for i := 0; i+1 < len(g.path); i++ {
		if geom.DistanceToSegment(center, g.path[i], g.path[i+1]) < g.clearance {
			return false
		}
	}
	return true
}

func (g *Grid) Occupy(c Cell) {
	g.occupied[c] = true
}

func (g *Grid) Release(c Cell) {
	delete(g.occupied, c)
}

// Path returns the waypoint list enemies walk, start to exit.
func (g *Grid) Path() []geom.Vec3 {
	return g.path
}
