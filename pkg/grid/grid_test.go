// pkg/grid/grid_test.go
package grid

import (
	"testing"

	"elemental-td/pkg/geom"
)

func TestCellCenterRoundTrip(t *testing.T) {
	g := New(10, 8, 1.0, nil, 0.75)

	for _, c := range []Cell{{0, 0}, {9, 7}, {4, 3}} {
		center := g.CellCenter(c)
		if got := g.CellAt(center); got != c {
			t.Errorf("CellAt(CellCenter(%v)) = %v", c, got)
		}
	}

	// The grid is centered on the origin.
	if got := g.CellCenter(Cell{Col: 0, Row: 0}); got != (geom.Vec3{X: -4.5, Z: -3.5}) {
		t.Errorf("Corner cell center = %+v, want {-4.5 0 -3.5}", got)
	}
}

func TestCanPlaceRespectsBoundsAndOccupancy(t *testing.T) {
	g := New(10, 10, 1.0, nil, 0.75)

	if g.CanPlace(Cell{Col: -1, Row: 0}) || g.CanPlace(Cell{Col: 10, Row: 0}) {
		t.Error("CanPlace accepted an out-of-bounds cell")
	}

	c := Cell{Col: 3, Row: 3}
	if !g.CanPlace(c) {
		t.Fatal("CanPlace rejected a free in-bounds cell")
	}
	g.Occupy(c)
	if g.CanPlace(c) {
		t.Error("CanPlace accepted an occupied cell")
	}
	g.Release(c)
	if !g.CanPlace(c) {
		t.Error("CanPlace rejected a released cell")
	}
}

func TestCanPlaceKeepsClearOfPath(t *testing.T) {
	// Path runs straight along z=0.5 through the middle of row 5.
	path := []geom.Vec3{{X: -5, Z: 0.5}, {X: 5, Z: 0.5}}
	g := New(10, 10, 1.0, path, 0.75)

	onPath := Cell{Col: 4, Row: 5} // center (-0.5, 0.5), distance 0
	if g.CanPlace(onPath) {
		t.Error("CanPlace accepted a cell on the path")
	}
	nextToPath := Cell{Col: 4, Row: 6} // center (-0.5, 1.5), distance 1.0
	if !g.CanPlace(nextToPath) {
		t.Error("CanPlace rejected a cell beyond the clearance distance")
	}
}

func TestDefaultLevelHasBuildableGround(t *testing.T) {
	g := DefaultLevel()
	if len(g.Path()) < 2 {
		t.Fatalf("Default level path has %d waypoints", len(g.Path()))
	}

	buildable := 0
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < g.Rows; row++ {
			if g.CanPlace(Cell{Col: col, Row: row}) {
				buildable++
			}
		}
	}
	if buildable == 0 {
		t.Fatal("Default level has no buildable cells")
	}
	if buildable == g.Cols*g.Rows {
		t.Error("Path clearance excluded no cells at all")
	}
}
