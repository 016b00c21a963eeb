package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Bitmaps resolves image names to drawable bitmaps. Unknown or unloaded
// names resolve to nil, which draws nothing.
type Bitmaps interface {
	Bitmap(name string) core.Bitmap
}

// RunState is the mutable state of one run.
type RunState struct {
	Score   int  // +1 per generator step
	Ticker  int  // Ticks since the run started or the speed last ramped
	Ticks   int  // Ticks since the run started
	Height  int  // Current terrain row, 0..max
	Length  int  // Blocks left in the current run
	Gap     int  // Empty generator steps left before the next run
	Running bool // False once the run is over
	Cause   Cause
}

// World owns everything a run touches. A new World is built for every run.
type World struct {
	RunState

	Player      *Player
	Ground      *Queue
	Water       *Queue
	Environment *Queue
	Enemies     *Queue
	Background  *Background

	cfg        config.RunnerConfig
	gen        *Generator
	difficulty *config.DifficultyManager
	images     map[Kind]core.Bitmap
	surfaceW   float64
	surfaceH   float64
	pw         float64
}

// NewWorld builds a fresh run: seeded ground under the player, a water
// ribbon along the bottom and a reset background.
func NewWorld(cfg config.RunnerConfig, art Bitmaps, seed int64) *World {
	if art == nil {
		art = noBitmaps{}
	}

	w := &World{
		RunState: RunState{
			Height:  cfg.Terrain.StartHeight,
			Length:  cfg.Terrain.StartLength,
			Running: true,
		},
		Player:      NewPlayer(cfg, art.Bitmap(cfg.Player.Sheet)),
		Ground:      NewQueue(),
		Water:       NewQueue(),
		Environment: NewQueue(),
		Enemies:     NewQueue(),
		cfg:         cfg,
		gen:         NewGenerator(seed, cfg),
		difficulty:  config.NewDifficultyManager(cfg.Difficulty, cfg.Terrain.PlatformWidth, cfg.Physics.MaxSpeed),
		images:      make(map[Kind]core.Bitmap, len(allKinds)),
		surfaceW:    float64(cfg.Surface.Width),
		surfaceH:    float64(cfg.Surface.Height),
		pw:          float64(cfg.Terrain.PlatformWidth),
	}
	for _, k := range allKinds {
		w.images[k] = art.Bitmap(k.Asset())
	}

	layers := make([]Layer, 0, len(cfg.Background))
	for _, l := range cfg.Background {
		layers = append(layers, Layer{Name: l.Image, Image: art.Bitmap(l.Image), Speed: l.Speed})
	}
	w.Background = NewBackground(art.Bitmap("bg"), layers, w.surfaceW)

	groundY := w.gen.GroundY(w.Height)
	step := float64(cfg.Terrain.PlatformWidth - cfg.Terrain.SeedOverlap)
	for i := 0; i < cfg.Terrain.SeedBlocks; i++ {
		w.Ground.Push(NewEntity(KindBrick, float64(i)*step, groundY, w.pw))
	}

	waterY := w.gen.GroundY(0)
	tiles := cfg.Surface.Width/cfg.Terrain.PlatformWidth + 2
	for i := 0; i < tiles; i++ {
		w.Water.Push(NewEntity(KindWater, float64(i)*w.pw, waterY, w.pw))
	}

	return w
}

// Tick advances the run by one step with the given jump input and returns
// what happened. Nothing changes once the run is over.
func (w *World) Tick(jumpHeld bool) []core.Event {
	if !w.Running {
		return nil
	}

	var events []core.Event
	speed := w.Player.Speed

	w.Background.Scroll()

	w.Water.Update(speed)
	w.Water.Recycle(w.pw)

	w.Environment.Update(speed)
	w.Environment.DropOffScreen()

	if w.Player.Update(jumpHeld) {
		events = append(events, core.EventJump)
	}
	if fellOut(w.Player, w.surfaceH) {
		return append(events, w.end(CauseFall))
	}

	w.updateGround(speed)

	if w.updateEnemies(speed) {
		return append(events, w.end(CauseEnemy))
	}

	if w.Ticker%w.difficulty.Cadence(w.Player.Speed) == 0 {
		w.gen.Spawn(w)
	}

	if w.difficulty.ShouldRamp(w.Ticker, w.Player.Speed, w.Player.Airborne()) {
		w.Player.Speed = w.difficulty.NextSpeed(w.Player.Speed)
		w.Player.WalkAnimation().SetFrameSpeed(w.difficulty.WalkFrameSpeed(w.Player.Speed))
		w.Ticker = 0
		w.gen.FillGap(w)
		events = append(events, core.EventSpeedUp)
	}

	w.Ticker++
	w.Ticks++
	return events
}

// updateGround scrolls the ground and lands the player on any block
// beneath. The player counts as falling unless a block catches it.
func (w *World) updateGround(speed int) {
	w.Player.IsFalling = true
	for _, g := range w.Ground.Items() {
		g.Update(speed)
		if landsOn(w.Player, g, w.pw) {
			w.Player.Land(g.Y, w.cfg.Player.LandingOffset)
		}
	}
	w.Ground.DropOffScreen()
}

// updateEnemies scrolls the enemies and reports a hit on the player.
func (w *World) updateEnemies(speed int) bool {
	for _, e := range w.Enemies.Items() {
		e.Update(speed)
		if touchesEnemy(w.Player, e, w.pw) {
			return true
		}
	}
	w.Enemies.DropOffScreen()
	return false
}

// Stop ends the run without a collision.
func (w *World) Stop() {
	if w.Running {
		w.end(CauseStopped)
	}
}

func (w *World) end(cause Cause) core.Event {
	w.Running = false
	w.Cause = cause
	return core.EventGameOver
}

// Cadence returns the generator interval at the current speed.
func (w *World) Cadence() int {
	return w.difficulty.Cadence(w.Player.Speed)
}

// SurfaceSize returns the logical surface size in pixels.
func (w *World) SurfaceSize() (float64, float64) {
	return w.surfaceW, w.surfaceH
}

// Draw paints the run back to front.
func (w *World) Draw(c *core.Canvas) {
	w.Background.Draw(c)
	w.Water.Draw(c, w.images)
	w.Environment.Draw(c, w.images)
	w.Player.Draw(c)
	w.Ground.Draw(c, w.images)
	w.Enemies.Draw(c, w.images)
}

type noBitmaps struct{}

func (noBitmaps) Bitmap(string) core.Bitmap { return nil }
