package crossing

import (
	"github.com/roadhop/roadhop/internal/assets"
	"github.com/roadhop/roadhop/internal/core"
)

// Player is the single player-controlled entity. It deliberately is not
// an Entity: the only movement it exposes is grid stepping, so free-form
// position changes are unrepresentable rather than forbidden at runtime.
type Player struct {
	Sprite   *assets.Sprite
	Pos      core.Point
	Z        int
	Row, Col int
	Score    int
}

// newPlayer creates a player snapped onto the given grid cell.
func newPlayer(sprite *assets.Sprite, g *Grid, row, col int) *Player {
	p := &Player{Sprite: sprite, Row: row, Col: col}
	p.snap(g)
	return p
}

// OccupiedArea returns the player's hitbox in board coordinates.
func (p *Player) OccupiedArea() core.Area {
	return p.Sprite.Occupied.Offset(p.Pos.X, p.Pos.Y)
}

// CanMoveInGrid reports whether the adjacent cell in the given direction
// exists. Non-direction actions never permit movement.
func (p *Player) CanMoveInGrid(g *Grid, dir core.Action) bool {
	row, col, ok := p.target(dir)
	return ok && g.HasCell(row, col)
}

// MoveInGrid steps the player one cell in the given direction and
// re-snaps its position. Returns whether the move occurred.
func (p *Player) MoveInGrid(g *Grid, dir core.Action) bool {
	if !p.CanMoveInGrid(g, dir) {
		return false
	}
	p.Row, p.Col, _ = p.target(dir)
	p.snap(g)
	return true
}

// target returns the grid position one step in the given direction.
func (p *Player) target(dir core.Action) (row, col int, ok bool) {
	switch dir {
	case core.ActionLeft:
		return p.Row, p.Col - 1, true
	case core.ActionUp:
		return p.Row - 1, p.Col, true
	case core.ActionRight:
		return p.Row, p.Col + 1, true
	case core.ActionDown:
		return p.Row + 1, p.Col, true
	default:
		return p.Row, p.Col, false
	}
}

// snap centers the player's hitbox on its current cell and assigns the
// z band for that row.
func (p *Player) snap(g *Grid) {
	p.Pos = snapToCell(p.Sprite, g.Cell(p.Row, p.Col))
	p.Z = zForRow(p.Row) + zPlayerShift
}
