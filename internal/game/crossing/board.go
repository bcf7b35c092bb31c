package crossing

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/roadhop/roadhop/internal/assets"
	"github.com/roadhop/roadhop/internal/config"
	"github.com/roadhop/roadhop/internal/core"
)

// Board owns the grid, the player and every other entity, and runs the
// per-frame update/collision/respawn pass. All entity state lives in the
// board's tables; entities carry no back-pointers.
type Board struct {
	cfg      config.CrossingConfig
	lib      *assets.Library
	rng      *rand.Rand
	grid     *Grid
	player   *Player
	entities []*Entity // Cells, diamonds, enemies, blood marks
	roadRows []int
}

// NewBoard validates the configuration and builds a fully populated
// board: grid cells, randomly placed diamonds, the player at the start
// cell and the configured number of enemies. Any error is fatal; a board
// is never partially constructed.
func NewBoard(cfg config.CrossingConfig, lib *assets.Library, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rowTypes := make([]RowType, len(cfg.Board.Rows))
	for i, s := range cfg.Board.Rows {
		rt, err := ParseRowType(s)
		if err != nil {
			return nil, err
		}
		rowTypes[i] = rt
	}

	grid, err := newGrid(rowTypes, cfg.Board.Columns, lib)
	if err != nil {
		return nil, err
	}

	b := &Board{
		cfg:  cfg,
		lib:  lib,
		rng:  rng,
		grid: grid,
	}

	// Seed the entity list with every grid cell, row-major, so cells
	// render in ascending row order by construction.
	for r := 0; r < grid.Rows(); r++ {
		if rowTypes[r] == RowRoad {
			b.roadRows = append(b.roadRows, r)
		}
		for c := 0; c < grid.Cols(); c++ {
			cell := grid.Cell(r, c)
			if cell.CellType == RowWater {
				cell.HitScore = cfg.Scoring.Water
			}
			b.entities = append(b.entities, cell)
		}
	}

	if err := b.placeDiamonds(); err != nil {
		return nil, err
	}

	playerSprite, err := lib.Get("player")
	if err != nil {
		return nil, err
	}
	startRow, startCol := b.startCell()
	b.player = newPlayer(playerSprite, grid, startRow, startCol)

	if err := b.RespawnEnemies(); err != nil {
		return nil, err
	}
	return b, nil
}

// Grid returns the board's grid.
func (b *Board) Grid() *Grid { return b.grid }

// Player returns the current player instance. Respawns replace it.
func (b *Board) Player() *Player { return b.player }

// Score returns the player's current score.
func (b *Board) Score() int { return b.player.Score }

// startCell is the player's canonical spawn: bottom row, horizontally
// centered with the rounding toward the right half.
func (b *Board) startCell() (row, col int) {
	return b.grid.Rows() - 1, b.grid.Cols() / 2
}

// placeDiamonds puts the configured number of diamonds on distinct,
// randomly chosen road cells. Placement happens once, at construction.
func (b *Board) placeDiamonds() error {
	if b.cfg.Diamonds.Count == 0 {
		return nil
	}

	var roadCells []*Entity
	for _, r := range b.roadRows {
		for c := 0; c < b.grid.Cols(); c++ {
			roadCells = append(roadCells, b.grid.Cell(r, c))
		}
	}
	// Validate() already bounds the count; keep the guard for callers
	// constructing configs directly.
	if b.cfg.Diamonds.Count > len(roadCells) {
		return fmt.Errorf("%w: %d diamonds, %d road cells",
			config.ErrTooManyDiamonds, b.cfg.Diamonds.Count, len(roadCells))
	}

	sprite, err := b.lib.Get("diamond")
	if err != nil {
		return err
	}

	for _, idx := range b.rng.Perm(len(roadCells))[:b.cfg.Diamonds.Count] {
		cell := roadCells[idx]
		d := newDiamond(b.grid, sprite, cell.Row, cell.Col, b.cfg.Scoring.Diamond)
		b.entities = append(b.entities, d)
	}
	return nil
}

// SpawnEnemy adds one enemy with random road row, travel direction and
// speed, placed just outside the board edge so it drives in from
// off-screen.
func (b *Board) SpawnEnemy() error {
	row := b.roadRows[b.rng.Intn(len(b.roadRows))]
	rightward := b.rng.Intn(2) == 1
	speed := b.cfg.Enemies.MinSpeed + b.rng.Float64()*(b.cfg.Enemies.MaxSpeed-b.cfg.Enemies.MinSpeed)
	return b.spawnEnemy(row, rightward, speed)
}

// spawnEnemy places an enemy on the given road row. Speed is in grid
// cells per second; the velocity sign follows the travel direction. The
// enemy snaps to the row's boundary cell and is then shifted fully
// outside the visible edge, with a one-cell gap so it starts off-board.
func (b *Board) spawnEnemy(row int, rightward bool, speed float64) error {
	spriteID := "enemy-left"
	boundaryCol := b.grid.Cols() - 1
	if rightward {
		spriteID = "enemy-right"
		boundaryCol = 0
	}
	sprite, err := b.lib.Get(spriteID)
	if err != nil {
		return err
	}

	e := newEnemy(b.grid, sprite, row, boundaryCol)

	vx := speed * b.grid.cellW
	gridArea := b.grid.Area()
	occ := e.OccupiedArea()
	if rightward {
		e.Pos.X -= occ.Right() - gridArea.Left() + 1
	} else {
		e.Pos.X += gridArea.Right() - occ.Left() + 1
		vx = -vx
	}
	e.Velocity = core.Point{X: vx}

	b.entities = append(b.entities, e)
	return nil
}

// RespawnEnemies purges all enemies and spawns the configured count.
func (b *Board) RespawnEnemies() error {
	for i := len(b.entities) - 1; i >= 0; i-- {
		if b.entities[i].Kind == KindEnemy {
			b.removeAt(i)
		}
	}
	for i := 0; i < b.cfg.Enemies.Count; i++ {
		if err := b.SpawnEnemy(); err != nil {
			return err
		}
	}
	return nil
}

// RespawnPlayer replaces the player with a fresh instance at the start
// cell, carrying the score over if keepScore is set.
func (b *Board) RespawnPlayer(keepScore bool) {
	score := 0
	if keepScore {
		score = b.player.Score
	}
	startRow, startCol := b.startCell()
	b.player = newPlayer(b.player.Sprite, b.grid, startRow, startCol)
	b.player.Score = score
}

// MovePlayer routes a direction token to the player's grid stepping.
// Returns whether the move occurred.
func (b *Board) MovePlayer(dir core.Action) bool {
	return b.player.MoveInGrid(b.grid, dir)
}

// bleed drops a blood mark at the player's position. The sprite faces
// the way the killing enemy was traveling. Marks last for the session.
func (b *Board) bleed(vx float64) {
	spriteID := "blood-right"
	if vx < 0 {
		spriteID = "blood-left"
	}
	sprite, err := b.lib.Get(spriteID)
	if err != nil {
		return // Sprite set was validated at construction
	}

	occ := sprite.Occupied.CenterOnArea(b.player.OccupiedArea())
	pos := core.Point{
		X: occ.Pos.X - sprite.Occupied.Pos.X,
		Y: occ.Pos.Y - sprite.Occupied.Pos.Y,
	}
	b.entities = append(b.entities, newBloodMark(sprite, pos, b.player.Row))
}

// Update advances the simulation by dt seconds: player collisions,
// score mutation, respawns and enemy motion. Iteration runs from high
// to low index so in-loop removal never skips an element.
func (b *Board) Update(dt float64) {
	for i := len(b.entities) - 1; i >= 0; i-- {
		e := b.entities[i]

		if b.player.OccupiedArea().Intersects(e.OccupiedArea()) {
			b.player.Score += e.HitScore
			if e.RemoveOnHit {
				b.removeAt(i)
			}
			switch {
			case e.Kind == KindEnemy:
				b.bleed(e.Velocity.X)
				b.RespawnPlayer(true)
			case e.Kind == KindCell && e.CellType == RowWater:
				b.RespawnPlayer(true)
			}
		}

		if e.Kind == KindEnemy {
			e.advance(dt, b.grid.Area())
			if e.Recycle {
				b.removeAt(i)
				//nolint:errcheck // Sprite set was validated at construction
				b.SpawnEnemy()
			}
		}
	}
}

// removeAt deletes the entity at index i, preserving order.
func (b *Board) removeAt(i int) {
	b.entities = append(b.entities[:i], b.entities[i+1:]...)
}

// Render draws every entity plus the player in ascending z-order onto
// the screen at the given offset. Ties keep their relative insertion
// order, so the paint order is stable across frames.
func (b *Board) Render(dst *core.Screen, offsetX, offsetY int) {
	type drawable struct {
		z      int
		sprite *assets.Sprite
		pos    core.Point
	}

	order := make([]drawable, 0, len(b.entities)+1)
	for _, e := range b.entities {
		order = append(order, drawable{z: e.Z, sprite: e.Sprite, pos: e.Pos})
	}
	order = append(order, drawable{z: b.player.Z, sprite: b.player.Sprite, pos: b.player.Pos})

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].z < order[j].z
	})

	for _, d := range order {
		x := offsetX + int(math.Round(d.pos.X))
		y := offsetY + int(math.Round(d.pos.Y))
		d.sprite.Draw(dst, x, y)
	}
}

// counts tallies entities by kind, for state reporting and tests.
func (b *Board) counts() map[Kind]int {
	m := make(map[Kind]int)
	for _, e := range b.entities {
		m[e.Kind]++
	}
	return m
}
