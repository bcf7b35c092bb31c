package crossing

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/roadhop/roadhop/internal/config"
	"github.com/roadhop/roadhop/internal/core"
)

func testBoardConfig(cols int, rows []string, enemies, diamonds int) config.CrossingConfig {
	var cfg config.CrossingConfig
	cfg.Board.Columns = cols
	cfg.Board.Rows = rows
	cfg.Enemies.Count = enemies
	cfg.Enemies.MinSpeed = 2
	cfg.Enemies.MaxSpeed = 4
	cfg.Diamonds.Count = diamonds
	cfg.Scoring.Diamond = 1
	cfg.Scoring.Water = 2
	return cfg
}

func newTestBoard(t *testing.T, cfg config.CrossingConfig, seed int64) *Board {
	t.Helper()
	b, err := NewBoard(cfg, testLibrary(t), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

func TestNewBoardPopulation(t *testing.T) {
	cfg := testBoardConfig(5, []string{"water", "road", "road", "grass"}, 3, 4)
	b := newTestBoard(t, cfg, 42)

	counts := b.counts()
	if counts[KindCell] != 20 {
		t.Errorf("cell count = %d, expected 20", counts[KindCell])
	}
	if counts[KindDiamond] != 4 {
		t.Errorf("diamond count = %d, expected 4", counts[KindDiamond])
	}
	if counts[KindEnemy] != 3 {
		t.Errorf("enemy count = %d, expected 3", counts[KindEnemy])
	}
	if counts[KindBlood] != 0 {
		t.Errorf("blood count = %d, expected 0 on a fresh board", counts[KindBlood])
	}

	// Diamonds sit on distinct road cells.
	seen := make(map[[2]int]bool)
	for _, e := range b.entities {
		if e.Kind != KindDiamond {
			continue
		}
		if b.grid.Cell(e.Row, e.Col).CellType != RowRoad {
			t.Errorf("diamond at (%d, %d) is not on a road cell", e.Row, e.Col)
		}
		key := [2]int{e.Row, e.Col}
		if seen[key] {
			t.Errorf("two diamonds share cell (%d, %d)", e.Row, e.Col)
		}
		seen[key] = true
	}

	// Enemies start fully off-board and drive inward.
	for _, e := range b.entities {
		if e.Kind != KindEnemy {
			continue
		}
		if e.SomeOnBoard(b.grid.Area()) {
			t.Errorf("freshly spawned enemy at %v already on board", e.Pos)
		}
		if e.Velocity.X == 0 {
			t.Error("enemy spawned with zero horizontal velocity")
		}
	}
}

func TestNewBoardRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.CrossingConfig
		expected error
	}{
		{
			name:     "too many diamonds",
			cfg:      testBoardConfig(2, []string{"water", "road", "grass"}, 0, 3),
			expected: config.ErrTooManyDiamonds,
		},
		{
			name:     "enemies without roads",
			cfg:      testBoardConfig(3, []string{"water", "grass"}, 2, 0),
			expected: config.ErrNoRoadRows,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBoard(tc.cfg, testLibrary(t), rand.New(rand.NewSource(1)))
			if !errors.Is(err, tc.expected) {
				t.Errorf("NewBoard() error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestPlayerStartCell(t *testing.T) {
	tests := []struct {
		cols        int
		expectedCol int
	}{
		{1, 0},
		{4, 2},
		{5, 2},
		{10, 5},
	}
	for _, tc := range tests {
		cfg := testBoardConfig(tc.cols, []string{"water", "grass"}, 0, 0)
		b := newTestBoard(t, cfg, 1)
		p := b.Player()
		if p.Row != 1 || p.Col != tc.expectedCol {
			t.Errorf("%d columns: start = (%d, %d), expected (1, %d)",
				tc.cols, p.Row, p.Col, tc.expectedCol)
		}
	}
}

func TestMovePlayerBounds(t *testing.T) {
	cfg := testBoardConfig(1, []string{"water", "road", "grass"}, 0, 0)
	b := newTestBoard(t, cfg, 1)

	if b.MovePlayer(core.ActionLeft) {
		t.Error("left move on a single-column board must be rejected")
	}
	if b.MovePlayer(core.ActionRight) {
		t.Error("right move on a single-column board must be rejected")
	}
	if b.MovePlayer(core.ActionDown) {
		t.Error("down move from the bottom row must be rejected")
	}
	if !b.MovePlayer(core.ActionUp) {
		t.Error("up move from the bottom row must succeed")
	}
	if b.Player().Row != 1 {
		t.Errorf("player row = %d after moving up, expected 1", b.Player().Row)
	}
	if b.MovePlayer(core.ActionPause) {
		t.Error("non-direction action must never move the player")
	}
}

func TestReachingWaterScoresAndRespawns(t *testing.T) {
	cfg := testBoardConfig(1, []string{"water", "road", "grass"}, 0, 0)
	b := newTestBoard(t, cfg, 1)
	dt := 1.0 / 60

	b.Update(dt) // Standing on grass scores nothing
	if b.Score() != 0 {
		t.Fatalf("score = %d on grass, expected 0", b.Score())
	}

	b.MovePlayer(core.ActionUp)
	b.Update(dt) // Road scores nothing either
	if b.Score() != 0 {
		t.Fatalf("score = %d on road, expected 0", b.Score())
	}

	b.MovePlayer(core.ActionUp)
	b.Update(dt) // Water is the goal: score and restart the run
	if b.Score() != 2 {
		t.Errorf("score = %d after reaching water, expected 2", b.Score())
	}
	if b.Player().Row != 2 || b.Player().Col != 0 {
		t.Errorf("player at (%d, %d) after goal, expected respawn at (2, 0)",
			b.Player().Row, b.Player().Col)
	}
}

func TestDiamondPickup(t *testing.T) {
	cfg := testBoardConfig(1, []string{"water", "road", "grass"}, 0, 1)
	b := newTestBoard(t, cfg, 1)
	dt := 1.0 / 60

	if got := b.counts()[KindDiamond]; got != 1 {
		t.Fatalf("diamond count = %d, expected 1", got)
	}

	b.MovePlayer(core.ActionUp) // Onto the only road cell
	b.Update(dt)

	if b.Score() != 1 {
		t.Errorf("score = %d after pickup, expected 1", b.Score())
	}
	if got := b.counts()[KindDiamond]; got != 0 {
		t.Errorf("diamond count = %d after pickup, expected 0", got)
	}

	b.Update(dt) // No double scoring once the diamond is gone
	if b.Score() != 1 {
		t.Errorf("score = %d on second update, expected still 1", b.Score())
	}
}

func TestEnemyCollisionRespawnsPlayer(t *testing.T) {
	cfg := testBoardConfig(3, []string{"water", "road", "grass"}, 0, 0)
	b := newTestBoard(t, cfg, 1)

	b.player.Score = 5
	b.MovePlayer(core.ActionUp) // Onto the road row, center column

	if err := b.spawnEnemy(1, true, 3); err != nil {
		t.Fatalf("spawnEnemy() failed: %v", err)
	}
	enemy := b.entities[len(b.entities)-1]
	enemy.MoveToCell(b.grid, 1, 1) // Drop it onto the player's cell

	before := b.player
	b.Update(1.0 / 60)

	if b.player == before {
		t.Error("collision must replace the player instance")
	}
	if b.Player().Score != 5 {
		t.Errorf("score = %d after death, expected the score kept at 5", b.Player().Score)
	}
	if b.Player().Row != 2 || b.Player().Col != 1 {
		t.Errorf("player at (%d, %d) after death, expected start cell (2, 1)",
			b.Player().Row, b.Player().Col)
	}
	if got := b.counts()[KindBlood]; got != 1 {
		t.Errorf("blood mark count = %d after death, expected 1", got)
	}
}

func TestEnemyDrivesInAndGetsRecycled(t *testing.T) {
	cfg := testBoardConfig(3, []string{"water", "road", "grass"}, 0, 0)
	b := newTestBoard(t, cfg, 1)

	if err := b.spawnEnemy(1, true, 4); err != nil {
		t.Fatalf("spawnEnemy() failed: %v", err)
	}
	enemy := b.entities[len(b.entities)-1]

	if enemy.SomeOnBoard(b.grid.Area()) {
		t.Fatal("spawned enemy must start fully off-board")
	}
	if enemy.Velocity.X <= 0 {
		t.Fatalf("rightward enemy velocity = %v, expected positive", enemy.Velocity.X)
	}

	// Keep the player out of the traffic row.
	dt := 1.0 / 60
	entered := false
	for tick := 0; tick < 600; tick++ {
		b.Update(dt)
		if enemy.Entered {
			entered = true
			break
		}
	}
	if !entered {
		t.Fatal("enemy never entered the board")
	}

	// Drive it all the way across; the board replaces it with a fresh one.
	for tick := 0; tick < 3000 && b.counts()[KindEnemy] == 1; tick++ {
		b.Update(dt)
		if !containsEntity(b.entities, enemy) {
			break
		}
	}
	if containsEntity(b.entities, enemy) {
		t.Fatal("enemy was never recycled after crossing the board")
	}
	if got := b.counts()[KindEnemy]; got != 1 {
		t.Errorf("enemy count = %d after recycle, expected 1", got)
	}
}

func containsEntity(entities []*Entity, target *Entity) bool {
	for _, e := range entities {
		if e == target {
			return true
		}
	}
	return false
}

func TestBoardRenderPaintsGrid(t *testing.T) {
	cfg := testBoardConfig(2, []string{"water", "road", "grass"}, 0, 0)
	b := newTestBoard(t, cfg, 1)

	w, h := b.Grid().VisualSize()
	screen := core.NewScreen(w, h)
	b.Render(screen, 0, 0)

	drawn := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if screen.Get(x, y) != ' ' {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("Render() painted nothing")
	}
}
