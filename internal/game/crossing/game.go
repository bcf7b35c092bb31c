package crossing

import (
	"fmt"
	"math/rand"

	"github.com/roadhop/roadhop/internal/assets"
	"github.com/roadhop/roadhop/internal/config"
	"github.com/roadhop/roadhop/internal/core"
	"github.com/roadhop/roadhop/internal/registry"
)

const hudHeight = 2 // Top HUD lines

// Package-level knobs set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the crossing game behind the platform Game interface.
// All simulation state lives in the Board; Game adds input routing,
// fixed-tick timing and screen layout.
type Game struct {
	cfg   config.CrossingConfig
	lib   *assets.Library
	rng   *rand.Rand
	board *Board

	tick     uint64
	tickRate int
	paused   bool
	tooSmall bool
	loadErr  error

	screenW int
	screenH int
	seed    int64
}

// New creates a new crossing game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "crossing"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Road Crossing"
}

// Reset initializes/restarts the game. Configuration or asset failures
// are latched: the game stays alive and renders the error instead of a
// board, matching the platform's expectation that Step never fails.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.seed = cfg.Seed
	g.tick = 0
	g.paused = false
	g.board = nil
	g.loadErr = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	gameCfg, err := config.LoadCrossing(configPath)
	if err != nil {
		g.loadErr = err
		return
	}
	config.ApplyCrossingPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = gameCfg

	if g.lib == nil {
		lib, err := assets.Load()
		if err != nil {
			g.loadErr = err
			return
		}
		g.lib = lib
	}

	board, err := NewBoard(g.cfg, g.lib, g.rng)
	if err != nil {
		g.loadErr = err
		return
	}
	g.board = board

	g.checkScreenSize()
}

// checkScreenSize flags the too-small state when the fixed board does
// not fit the current screen.
func (g *Game) checkScreenSize() {
	if g.board == nil {
		return
	}
	w, h := g.board.Grid().VisualSize()
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart: fresh board, score reset
	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.loadErr != nil || g.board == nil {
		return core.StepResult{State: g.State()}
	}

	// Route direction tokens to grid stepping; anything else is ignored
	for _, dir := range core.Directions {
		if input.Has(dir) {
			g.board.MovePlayer(dir)
		}
	}

	g.board.Update(1.0 / float64(g.tickRate))

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The run is endless: GameOver
// stays false, deaths respawn the player with the score kept.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return core.GameState{
		Score:  score,
		Paused: g.paused,
	}
}

// Render draws the HUD and the board centered on the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Cannot start game", g.loadErr.Error())
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	case g.board == nil:
		return
	}

	w, h := g.board.Grid().VisualSize()
	offsetX := (dst.Width() - w) / 2
	offsetY := hudHeight + (dst.Height()-hudHeight-h)/2
	if offsetY < hudHeight {
		offsetY = hudHeight
	}
	g.board.Render(dst, offsetX, offsetY)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	diamonds := 0
	if g.board != nil {
		diamonds = g.board.counts()[KindDiamond]
	}
	hud := fmt.Sprintf(" Road Crossing | Score: %d  Diamonds left: %d", g.State().Score, diamonds)

	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
