// Package runner implements a side-scrolling endless runner: procedural
// terrain, parallax background, jump physics and collision scoring on a
// pixel-addressed surface.
package runner

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Clip names the game plays.
const (
	ClipMusic    = "bg"
	ClipJump     = "jump"
	ClipGameOver = "gameOver"
)

// ErrAssetsNotReady is returned by Start before every asset has loaded.
var ErrAssetsNotReady = errors.New("runner: assets not loaded")

// AssetSource provides images and reports whether loading has finished.
type AssetSource interface {
	Bitmaps
	Ready() bool
}

// SoundPlayer controls named sound clips.
type SoundPlayer interface {
	Play(name string)
	Pause(name string)
	Rewind(name string)
	SetLoop(name string, loop bool)
}

// Game drives runs of the endless runner.
type Game struct {
	assets AssetSource
	sound  SoundPlayer
	cfg    config.RunnerConfig
	logger *log.Logger

	world  *World
	paused bool
	runID  string
	seed   int64
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for run lifecycle messages.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a game. A nil sound player plays nothing.
func New(assets AssetSource, sound SoundPlayer, cfg config.RunnerConfig, opts ...Option) *Game {
	if sound == nil {
		sound = silence{}
	}
	g := &Game{
		assets: assets,
		sound:  sound,
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start begins a new run from a blank slate. It is safe to call at any
// time; any current run is discarded.
func (g *Game) Start(seed int64) error {
	if g.assets == nil || !g.assets.Ready() {
		return ErrAssetsNotReady
	}

	g.world = NewWorld(g.cfg, g.assets, seed)
	g.paused = false
	g.seed = seed
	g.runID = uuid.NewString()

	g.sound.Pause(ClipGameOver)
	g.sound.Rewind(ClipMusic)
	g.sound.SetLoop(ClipMusic, true)
	g.sound.Play(ClipMusic)

	g.logger.Info("run started",
		"run_id", g.runID,
		"seed", seed,
		"speed", g.world.Player.Speed,
	)
	return nil
}

// Stop halts the current run. The next Step does nothing.
func (g *Game) Stop() {
	if g.world == nil || !g.world.Running {
		return
	}
	g.world.Stop()
	g.sound.Pause(ClipMusic)
	g.logger.Info("run stopped", "run_id", g.runID, "score", g.world.Score, "ticks", g.world.Ticks)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil || !g.world.Running {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.world.Tick(in.Has(core.ActionJump))
	for _, e := range events {
		switch e {
		case core.EventJump:
			g.sound.Play(ClipJump)
		case core.EventSpeedUp:
			g.logger.Debug("speed up",
				"run_id", g.runID,
				"speed", g.world.Player.Speed,
				"cadence", g.world.Cadence(),
				"score", g.world.Score,
			)
		case core.EventGameOver:
			g.sound.Pause(ClipMusic)
			g.sound.Rewind(ClipGameOver)
			g.sound.Play(ClipGameOver)
			g.logger.Info("game over",
				"run_id", g.runID,
				"cause", g.world.Cause,
				"score", g.world.Score,
				"ticks", g.world.Ticks,
				"speed", g.world.Player.Speed,
			)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current frame. Before the first run only the screen is cleared.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w, h := g.world.SurfaceSize()
	canvas := core.NewCanvas(dst, w, h)
	g.world.Draw(canvas)

	// Draw HUD
	canvas.DrawText(w-140, 30, fmt.Sprintf("Score: %dm", g.world.Score), core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.world.Cause == CauseEnemy || g.world.Cause == CauseFall {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("You ran %dm  |  R restart  |  B menu", g.world.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Score,
		Running:  g.world.Running,
		GameOver: !g.world.Running,
		Paused:   g.paused,
	}
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool {
	return g.world != nil && g.world.Running
}

// World returns the current run, or nil before the first Start.
func (g *Game) World() *World {
	return g.world
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 {
	return g.seed
}

type silence struct{}

func (silence) Play(string)          {}
func (silence) Pause(string)         {}
func (silence) Rewind(string)        {}
func (silence) SetLoop(string, bool) {}
