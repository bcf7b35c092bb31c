// Package crossing implements a Frogger-style road crossing game: the
// player hops across a grid of grass, road and water rows, dodging
// traffic and collecting diamonds. Reaching the water row at the top
// scores and sends the player back to the start.
package crossing

import (
	"fmt"

	"github.com/roadhop/roadhop/internal/assets"
	"github.com/roadhop/roadhop/internal/config"
	"github.com/roadhop/roadhop/internal/core"
)

// RowType classifies a board row.
type RowType int

const (
	RowWater RowType = iota
	RowRoad
	RowGrass
)

// ParseRowType converts a config row-type string.
func ParseRowType(s string) (RowType, error) {
	switch s {
	case config.RowWater:
		return RowWater, nil
	case config.RowRoad:
		return RowRoad, nil
	case config.RowGrass:
		return RowGrass, nil
	default:
		return 0, fmt.Errorf("%w: %q", config.ErrUnknownRowType, s)
	}
}

func (t RowType) String() string {
	switch t {
	case RowWater:
		return "water"
	case RowRoad:
		return "road"
	case RowGrass:
		return "grass"
	default:
		return "unknown"
	}
}

// spriteID returns the cell sprite used to draw rows of this type.
func (t RowType) spriteID() string {
	switch t {
	case RowWater:
		return "cell-water"
	case RowRoad:
		return "cell-road"
	default:
		return "cell-grass"
	}
}

// Kind tags the variant of a board entity. The player is not an Entity:
// it lives in the board's dedicated player slot with its own type, so
// free-form movement simply does not exist in its API.
type Kind int

const (
	KindCell Kind = iota
	KindDiamond
	KindEnemy
	KindBlood
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindDiamond:
		return "diamond"
	case KindEnemy:
		return "enemy"
	case KindBlood:
		return "blood"
	default:
		return "unknown"
	}
}

// Entity is a single board object. Only the fields relevant to its Kind
// are populated; behavior dispatches on Kind instead of a type hierarchy.
type Entity struct {
	Kind   Kind
	Sprite *assets.Sprite
	Pos    core.Point // Top-left corner, board coordinates
	Z      int        // Paint order, lower draws first

	// Collision effects on the player.
	HitScore    int
	RemoveOnHit bool

	// Cell fields.
	CellType RowType
	Row, Col int

	// Enemy fields. Velocity is in board units (screen cells) per second.
	Velocity    core.Point
	FreeRoaming bool // May leave the board (enemies)
	Entered     bool // Has intersected the board at least once
	Recycle     bool // Fully off-board after entering; replaced next pass
}

// newCellEntity creates the static cell entity for a grid position.
func newCellEntity(sprite *assets.Sprite, t RowType, row, col int, pos core.Point) *Entity {
	return &Entity{
		Kind:     KindCell,
		Sprite:   sprite,
		Pos:      pos,
		Z:        zForRow(row),
		CellType: t,
		Row:      row,
		Col:      col,
	}
}

// newDiamond creates a collectible snapped onto the given road cell.
func newDiamond(g *Grid, sprite *assets.Sprite, row, col, hitScore int) *Entity {
	d := &Entity{
		Kind:        KindDiamond,
		Sprite:      sprite,
		Z:           zForRow(row) + zDiamondShift,
		HitScore:    hitScore,
		RemoveOnHit: true,
		Row:         row,
		Col:         col,
	}
	d.MoveToCell(g, row, col)
	return d
}

// newEnemy creates a free-roaming enemy snapped onto a cell. The caller
// shifts it off-board and assigns its velocity.
func newEnemy(g *Grid, sprite *assets.Sprite, row, col int) *Entity {
	e := &Entity{
		Kind:        KindEnemy,
		Sprite:      sprite,
		Z:           zForRow(row) + zEnemyShift,
		Row:         row,
		FreeRoaming: true,
	}
	e.MoveToCell(g, row, col)
	return e
}

// newBloodMark creates a persistent death mark at the given position.
func newBloodMark(sprite *assets.Sprite, pos core.Point, row int) *Entity {
	return &Entity{
		Kind:   KindBlood,
		Sprite: sprite,
		Pos:    pos,
		Z:      zForRow(row) + zBloodShift,
		Row:    row,
	}
}

// OccupiedArea returns the entity's hitbox in board coordinates: the
// sprite's occupied sub-rectangle offset by the entity position.
func (e *Entity) OccupiedArea() core.Area {
	return e.Sprite.Occupied.Offset(e.Pos.X, e.Pos.Y)
}

// Touches reports whether two entities' hitboxes intersect. Collision is
// always evaluated on occupied areas, never full sprite bounds.
func (e *Entity) Touches(other *Entity) bool {
	return e.OccupiedArea().Intersects(other.OccupiedArea())
}

// SomeOnBoard reports whether any part of the hitbox intersects the
// grid's occupied area.
func (e *Entity) SomeOnBoard(gridArea core.Area) bool {
	return e.OccupiedArea().Intersects(gridArea)
}

// AllOnBoard reports whether the hitbox lies fully inside the grid's
// occupied area.
func (e *Entity) AllOnBoard(gridArea core.Area) bool {
	return gridArea.ContainsArea(e.OccupiedArea())
}

// CanMove reports whether the entity may translate by (dx, dy).
// Free-roaming entities always may; others must keep at least part of
// their hitbox on the board.
func (e *Entity) CanMove(dx, dy float64, gridArea core.Area) bool {
	if e.FreeRoaming {
		return true
	}
	return e.OccupiedArea().Offset(dx, dy).Intersects(gridArea)
}

// Move translates the entity by (dx, dy) if permitted and reports
// whether the move happened. A rejected move is a silent no-op.
func (e *Entity) Move(dx, dy float64, gridArea core.Area) bool {
	if !e.CanMove(dx, dy, gridArea) {
		return false
	}
	e.Pos = e.Pos.Offset(dx, dy)
	return true
}

// MoveToCell snaps the entity onto a grid cell: the hitbox is centered
// on the cell's occupied rectangle and the top-left position derived
// from the resulting offset. This is the sole grid-alignment mechanism.
func (e *Entity) MoveToCell(g *Grid, row, col int) {
	e.Pos = snapToCell(e.Sprite, g.Cell(row, col))
}

// advance moves an enemy by Velocity*dt and updates its recycle flag:
// once an enemy has been on the board and leaves it completely, it is
// marked for replacement on the next board pass.
func (e *Entity) advance(dt float64, gridArea core.Area) {
	e.Pos = e.Pos.Offset(e.Velocity.X*dt, e.Velocity.Y*dt)
	if e.SomeOnBoard(gridArea) {
		e.Entered = true
		e.Recycle = false
		return
	}
	e.Recycle = e.Entered
}

// snapToCell returns the top-left position that centers a sprite's
// occupied area on the cell's occupied area.
func snapToCell(sprite *assets.Sprite, cell *Entity) core.Point {
	occ := sprite.Occupied.CenterOnArea(cell.OccupiedArea())
	return core.Point{
		X: occ.Pos.X - sprite.Occupied.Pos.X,
		Y: occ.Pos.Y - sprite.Occupied.Pos.Y,
	}
}
