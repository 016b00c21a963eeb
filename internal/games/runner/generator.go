package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Spawn thresholds. These are tuned by feel and kept as literals.
const (
	cliffOdds          = 3   // 1 in cliffOdds+1 chance for the last block of a short run
	cliffMaxHeight     = 3   // Cliffs only appear below this height
	decorationMinScore = 40  // No decorations before this score
	decorationOdds     = 20  // 1 in decorationOdds+1 chance per block
	decorationMaxRow   = 3   // Decorations only below this height
	bushMinRun         = 2   // Bush pairs need more blocks than this left in the run
	enemyMinScore      = 100 // No enemies before this score
	enemyChance        = 0.96
	maxEnemies         = 3
	enemyMinRun        = 5 // Enemies need more blocks than this left in the run
	enemyFarSpacing    = 3 // Block widths a new enemy keeps from the last one
)

// Generator produces terrain, decorations and enemies off the right edge.
type Generator struct {
	rng       *rand.Rand
	pw        int     // Platform width in pixels
	spacer    float64 // Vertical distance between terrain rows
	base      float64 // y of the bottom terrain row
	surfaceW  float64
	maxHeight int
}

// NewGenerator creates a generator seeded for deterministic runs.
func NewGenerator(seed int64, cfg config.RunnerConfig) *Generator {
	pw := cfg.Terrain.PlatformWidth
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		pw:        pw,
		spacer:    float64(cfg.Terrain.PlatformSpacer),
		base:      float64(cfg.Surface.Height - pw),
		surfaceW:  float64(cfg.Surface.Width),
		maxHeight: cfg.Terrain.MaxHeight,
	}
}

// rand returns a uniform integer in [lo, hi].
func (g *Generator) rand(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Spawn runs one generator step: score, then a gap tick, a block, or a
// reseed of the run counters.
func (g *Generator) Spawn(w *World) {
	rs := &w.RunState
	rs.Score++

	switch {
	case rs.Gap > 0:
		rs.Gap--
	case rs.Length > 0:
		w.Ground.Push(g.block(rs, w.Player.Speed))
		rs.Length--
		g.spawnDecoration(w)
		g.spawnEnemy(w)
	default:
		g.Reseed(rs, w.Player.Speed)
	}
}

// Reseed starts a new run: a gap, a new height near the old one, and a length.
func (g *Generator) Reseed(rs *RunState, speed int) {
	rs.Gap = max(g.rand(speed-2, speed), 0)
	rs.Height = core.Clamp(g.rand(rs.Height-2, rs.Height+g.rand(0, 2)), 0, g.maxHeight)
	rs.Length = g.rand(speed/2, speed*4)
}

// FillGap emits a block right away when no gap is pending, so a speed
// change does not open an unplanned hole in the terrain.
func (g *Generator) FillGap(w *World) bool {
	rs := &w.RunState
	if rs.Gap != 0 {
		return false
	}
	w.Ground.Push(g.block(rs, w.Player.Speed))
	rs.Length = max(rs.Length-1, 0)
	return true
}

// BlockKind picks the ground texture for the current run state.
func (g *Generator) BlockKind(rs *RunState) Kind {
	var kind Kind
	switch {
	case rs.Height <= 1:
		if g.rng.Float64() > 0.5 {
			kind = KindBrickLow1
		} else {
			kind = KindBrickLow2
		}
	case rs.Height == 2:
		kind = KindBrick
	case rs.Height == 3:
		kind = KindBones
	default:
		kind = KindSkull
	}
	if rs.Length == 1 && rs.Height < cliffMaxHeight && g.rand(0, cliffOdds) == 0 {
		kind = KindCliff
	}
	return kind
}

// SpawnX returns the x where new entities appear at the given speed.
func (g *Generator) SpawnX(speed int) float64 {
	return g.surfaceW + float64(g.pw%max(speed, 1))
}

// GroundY returns the top of a block on the given terrain row.
func (g *Generator) GroundY(height int) float64 {
	return g.base - float64(height)*g.spacer
}

func (g *Generator) block(rs *RunState, speed int) *Entity {
	return NewEntity(g.BlockKind(rs), g.SpawnX(speed), g.GroundY(rs.Height), float64(g.pw))
}

func (g *Generator) spawnDecoration(w *World) {
	rs := &w.RunState
	if rs.Score <= decorationMinScore || g.rand(0, decorationOdds) != 0 || rs.Height >= decorationMaxRow {
		return
	}

	pw := float64(g.pw)
	x := g.SpawnX(w.Player.Speed)
	y := g.GroundY(rs.Height) - pw
	if g.rng.Float64() > 0.5 {
		w.Environment.Push(NewEntity(KindPlant, x, y, pw))
	} else if rs.Length > bushMinRun {
		w.Environment.Push(NewEntity(KindBush1, x, y, pw))
		w.Environment.Push(NewEntity(KindBush2, x+pw, y, pw))
	}
}

func (g *Generator) spawnEnemy(w *World) {
	rs := &w.RunState
	if rs.Score <= enemyMinScore || g.rng.Float64() <= enemyChance {
		return
	}
	if w.Enemies.Len() >= maxEnemies || rs.Length <= enemyMinRun {
		return
	}

	pw := float64(g.pw)
	if last := w.Enemies.Back(); last != nil {
		ahead := g.surfaceW - last.X
		if ahead < enemyFarSpacing*pw && ahead >= pw {
			return
		}
	}

	kind := KindBigFire
	if g.rng.Float64() > 0.5 {
		kind = KindFire
	}
	w.Enemies.Push(NewEntity(kind, g.SpawnX(w.Player.Speed), g.GroundY(rs.Height)-pw, pw))
}
