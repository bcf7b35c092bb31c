package crossing

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateFailed      GameStateType = "failed"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	PlayerRow  int
	PlayerCol  int
	Cells      int
	Diamonds   int
	Enemies    int
	BloodMarks int
	EnemyX     []float64 // Enemy x positions in entity-list order
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateFailed
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		State: state,
	}
	if g.board == nil {
		return snap
	}

	snap.Score = g.board.Score()
	snap.PlayerRow = g.board.Player().Row
	snap.PlayerCol = g.board.Player().Col

	counts := g.board.counts()
	snap.Cells = counts[KindCell]
	snap.Diamonds = counts[KindDiamond]
	snap.Enemies = counts[KindEnemy]
	snap.BloodMarks = counts[KindBlood]

	for _, e := range g.board.entities {
		if e.Kind == KindEnemy {
			snap.EnemyX = append(snap.EnemyX, e.Pos.X)
		}
	}
	return snap
}
