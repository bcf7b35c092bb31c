package crossing

import (
	"testing"

	"github.com/roadhop/roadhop/internal/assets"
)

func testLibrary(t *testing.T) *assets.Library {
	t.Helper()
	lib, err := assets.Load()
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	return lib
}

func TestNewGridShape(t *testing.T) {
	lib := testLibrary(t)
	g, err := newGrid([]RowType{RowWater, RowRoad, RowGrass}, 4, lib)
	if err != nil {
		t.Fatalf("newGrid() failed: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("grid shape = %dx%d, expected 3x4", g.Rows(), g.Cols())
	}

	if got := g.Cell(0, 0).CellType; got != RowWater {
		t.Errorf("Cell(0,0).CellType = %v, expected water", got)
	}
	if got := g.Cell(1, 3).CellType; got != RowRoad {
		t.Errorf("Cell(1,3).CellType = %v, expected road", got)
	}
	if got := g.Cell(2, 0).CellType; got != RowGrass {
		t.Errorf("Cell(2,0).CellType = %v, expected grass", got)
	}
}

func TestGridHasCell(t *testing.T) {
	lib := testLibrary(t)
	g, err := newGrid([]RowType{RowGrass, RowGrass}, 3, lib)
	if err != nil {
		t.Fatalf("newGrid() failed: %v", err)
	}

	tests := []struct {
		row, col int
		expected bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	}
	for _, tc := range tests {
		if got := g.HasCell(tc.row, tc.col); got != tc.expected {
			t.Errorf("HasCell(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.expected)
		}
	}
}

func TestGridCellPosition(t *testing.T) {
	lib := testLibrary(t)
	g, err := newGrid([]RowType{RowGrass, RowRoad, RowGrass}, 5, lib)
	if err != nil {
		t.Fatalf("newGrid() failed: %v", err)
	}

	// Placement scales by the occupied dims, not the full sprite dims.
	p := g.CellPosition(2, 3)
	if p.X != 3*g.cellW || p.Y != 2*g.cellH {
		t.Errorf("CellPosition(2, 3) = %v, expected {%v %v}", p, 3*g.cellW, 2*g.cellH)
	}

	if g.cellH >= float64(g.spriteH) {
		t.Error("occupied cell height must be smaller than the sprite height for row overlap")
	}
}

func TestGridZOrderAscendsPerRow(t *testing.T) {
	lib := testLibrary(t)
	g, err := newGrid([]RowType{RowGrass, RowRoad, RowRoad, RowGrass}, 2, lib)
	if err != nil {
		t.Fatalf("newGrid() failed: %v", err)
	}

	prevZ := -1
	prevStep := 0
	for r := 0; r < g.Rows(); r++ {
		z := g.Cell(r, 0).Z
		if z <= prevZ {
			t.Errorf("row %d z = %d, must exceed previous row z %d", r, z, prevZ)
		}
		if r > 0 {
			step := z - prevZ
			if step < prevStep {
				t.Errorf("row %d z-step = %d, must not shrink (previous %d)", r, step, prevStep)
			}
			prevStep = step
		}
		prevZ = z
	}

	// Entities standing on a row fit inside that row's z band.
	if zForRow(0)+zPlayerShift >= zForRow(1) {
		t.Error("player z shift must stay below the next row's base z")
	}
}

func TestGridVisualSizeInvariant(t *testing.T) {
	lib := testLibrary(t)
	rows := []RowType{RowWater, RowRoad, RowRoad, RowGrass}
	g, err := newGrid(rows, 6, lib)
	if err != nil {
		t.Fatalf("newGrid() failed: %v", err)
	}

	w, h := g.VisualSize()
	expectedW := int(6 * g.cellW)
	expectedH := int(float64(len(rows)-1)*g.cellH) + g.spriteH
	if w != expectedW || h != expectedH {
		t.Errorf("VisualSize() = %dx%d, expected %dx%d", w, h, expectedW, expectedH)
	}

	area := g.Area()
	if area.Dim.W != 6*g.cellW || area.Dim.H != float64(len(rows))*g.cellH {
		t.Errorf("Area() = %v, unexpected occupied dimensions", area)
	}
}
