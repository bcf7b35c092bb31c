package crossing

import (
	"fmt"

	"github.com/roadhop/roadhop/internal/assets"
	"github.com/roadhop/roadhop/internal/core"
)

// Z-order layout. Each row gets a widening band of z values so entities
// standing on a row paint above that row's cells but below the next
// row's, producing the pseudo-depth stacking.
const (
	zRowStride    = 10
	zDiamondShift = 2
	zBloodShift   = 3
	zEnemyShift   = 4
	zPlayerShift  = 5
)

// zForRow returns the base z-index for a row. The step between rows
// grows with the row index.
func zForRow(row int) int {
	return zRowStride*row + row*(row+1)/2
}

// Grid is a fixed rows×columns matrix of cell entities. Cell pixel
// placement derives from the shared cell sprite template's occupied
// dimensions, not the full sprite, so consecutive rows overlap visually.
type Grid struct {
	rows, cols int
	cellW      float64 // Occupied width of the cell template
	cellH      float64 // Occupied height of the cell template
	spriteH    int     // Full art height of the cell template
	cells      [][]*Entity
}

// newGrid builds the cell matrix from an ordered row-type sequence.
// All cell sprites must share the template dimensions.
func newGrid(rowTypes []RowType, cols int, lib *assets.Library) (*Grid, error) {
	template, err := lib.Get(RowGrass.spriteID())
	if err != nil {
		return nil, err
	}

	g := &Grid{
		rows:    len(rowTypes),
		cols:    cols,
		cellW:   template.Occupied.Dim.W,
		cellH:   template.Occupied.Dim.H,
		spriteH: template.H,
	}

	g.cells = make([][]*Entity, g.rows)
	for r, rt := range rowTypes {
		sprite, err := lib.Get(rt.spriteID())
		if err != nil {
			return nil, err
		}
		if sprite.Occupied != template.Occupied || sprite.H != template.H {
			return nil, fmt.Errorf("crossing: cell sprite %q does not match the grid template", sprite.ID)
		}

		g.cells[r] = make([]*Entity, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = newCellEntity(sprite, rt, r, c, g.CellPosition(r, c))
		}
	}
	return g, nil
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// HasCell reports whether (row, col) addresses a cell.
func (g *Grid) HasCell(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col). Access is unchecked: callers
// guard with HasCell, out-of-range indices panic.
func (g *Grid) Cell(row, col int) *Entity {
	return g.cells[row][col]
}

// CellPosition computes the deterministic placement of a cell: indices
// scaled by the template's occupied dimensions.
func (g *Grid) CellPosition(row, col int) core.Point {
	return core.Point{
		X: float64(col) * g.cellW,
		Y: float64(row) * g.cellH,
	}
}

// Area returns the grid's total occupied area, used for on-board tests.
func (g *Grid) Area() core.Area {
	return core.AreaOf(0, 0, float64(g.cols)*g.cellW, float64(g.rows)*g.cellH)
}

// VisualSize returns the board's fixed pixel dimensions: full columns
// wide, and stacked occupied rows plus the last row's visual overhang.
func (g *Grid) VisualSize() (int, int) {
	w := int(float64(g.cols) * g.cellW)
	h := int(float64(g.rows-1)*g.cellH) + g.spriteH
	return w, h
}
