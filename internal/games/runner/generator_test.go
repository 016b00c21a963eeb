package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReseedAtSpeedSix(t *testing.T) {
	for seed := int64(0); seed < 500; seed++ {
		w := newTestWorld(seed)
		for _, start := range []int{0, 2, 4} {
			w.Player.Speed = 6
			w.Gap, w.Length, w.Height = 0, 0, start
			score := w.Score

			w.gen.Spawn(w)

			assert.Equal(t, score+1, w.Score)
			assert.GreaterOrEqual(t, w.Gap, 4)
			assert.LessOrEqual(t, w.Gap, 6)
			assert.GreaterOrEqual(t, w.Length, 3)
			assert.LessOrEqual(t, w.Length, 24)
			assert.GreaterOrEqual(t, w.Height, 0)
			assert.LessOrEqual(t, w.Height, 4)
			assert.LessOrEqual(t, w.Height-start, 2, "seed %d", seed)
			assert.GreaterOrEqual(t, w.Height-start, -2, "seed %d", seed)
		}
	}
}

func TestReseedLowSpeedNeverNegative(t *testing.T) {
	w := newTestWorld(1)
	for i := 0; i < 200; i++ {
		w.gen.Reseed(&w.RunState, 1)
		assert.GreaterOrEqual(t, w.Gap, 0)
		assert.GreaterOrEqual(t, w.Length, 0)
	}
}

func TestSpawnGapEmitsNothing(t *testing.T) {
	w := newTestWorld(3)
	w.Gap = 2
	ground := w.Ground.Len()

	w.gen.Spawn(w)

	assert.Equal(t, 1, w.Gap)
	assert.Equal(t, ground, w.Ground.Len())
	assert.Equal(t, 1, w.Score)
}

func TestSpawnBlock(t *testing.T) {
	w := newTestWorld(3)
	w.Height, w.Length = 2, 5
	ground := w.Ground.Len()

	w.gen.Spawn(w)

	require.Equal(t, ground+1, w.Ground.Len())
	b := w.Ground.Back()
	assert.Equal(t, KindBrick, b.Kind)
	assert.Equal(t, 802.0, b.X, "surface width plus platform width mod speed")
	assert.Equal(t, 320.0, b.Y)
	assert.Equal(t, 32.0, b.W)
	assert.Equal(t, 4, w.Length)
}

func TestBlockKindByHeight(t *testing.T) {
	w := newTestWorld(9)
	rs := &w.RunState
	rs.Length = 4

	for i := 0; i < 50; i++ {
		rs.Height = 0
		assert.Contains(t, []Kind{KindBrickLow1, KindBrickLow2}, w.gen.BlockKind(rs))
		rs.Height = 1
		assert.Contains(t, []Kind{KindBrickLow1, KindBrickLow2}, w.gen.BlockKind(rs))
	}
	rs.Height = 2
	assert.Equal(t, KindBrick, w.gen.BlockKind(rs))
	rs.Height = 3
	assert.Equal(t, KindBones, w.gen.BlockKind(rs))
	rs.Height = 4
	assert.Equal(t, KindSkull, w.gen.BlockKind(rs))
}

func TestBlockKindCliff(t *testing.T) {
	w := newTestWorld(11)
	rs := &w.RunState
	rs.Length = 1

	cliffs := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		rs.Height = 2
		if w.gen.BlockKind(rs) == KindCliff {
			cliffs++
		}
		rs.Height = 3
		assert.NotEqual(t, KindCliff, w.gen.BlockKind(rs), "no cliffs on high rows")
	}
	assert.InDelta(t, 0.25, float64(cliffs)/draws, 0.05)
}

func TestNoDecorationsOrEnemiesEarly(t *testing.T) {
	w := newTestWorld(5)
	w.Height = 1
	for i := 0; i < 40; i++ {
		w.Length = 10
		w.gen.Spawn(w)
	}
	assert.Zero(t, w.Environment.Len())
	assert.Zero(t, w.Enemies.Len())
}

func TestDecorationsAppearLater(t *testing.T) {
	w := newTestWorld(5)
	w.Score = 1000
	w.Height = 1
	for i := 0; i < 2000; i++ {
		w.Length = 10
		w.gen.Spawn(w)
	}
	require.Positive(t, w.Environment.Len())
	for _, e := range w.Environment.Items() {
		assert.Contains(t, []Kind{KindPlant, KindBush1, KindBush2}, e.Kind)
		assert.Equal(t, w.gen.GroundY(1)-32, e.Y, "one block above the ground")
	}
}

func TestEnemyLimits(t *testing.T) {
	w := newTestWorld(8)
	w.Score = 1000
	for i := 0; i < 5000; i++ {
		w.Length = 10
		w.gen.Spawn(w)
		require.LessOrEqual(t, w.Enemies.Len(), maxEnemies)
	}
	assert.Equal(t, maxEnemies, w.Enemies.Len())
	for _, e := range w.Enemies.Items() {
		assert.True(t, e.Kind.IsEnemy())
	}
}

func TestEnemyNeedsLongRun(t *testing.T) {
	w := newTestWorld(8)
	w.Score = 1000
	for i := 0; i < 2000; i++ {
		w.Length = 5 // 4 left after the block
		w.gen.Spawn(w)
	}
	assert.Zero(t, w.Enemies.Len())
}

func TestEnemySpacing(t *testing.T) {
	w := newTestWorld(8)
	w.Score = 1000

	// Last enemy 2 blocks in from the spawn edge: too close to add another.
	w.Enemies.Push(NewEntity(KindFire, 800-64, 0, 32))
	for i := 0; i < 2000; i++ {
		w.Length = 10
		w.gen.Spawn(w)
	}
	assert.Equal(t, 1, w.Enemies.Len())
}

func TestFillGap(t *testing.T) {
	w := newTestWorld(2)
	w.Gap, w.Length, w.Height = 0, 0, 2
	ground := w.Ground.Len()

	assert.True(t, w.gen.FillGap(w))
	assert.Equal(t, ground+1, w.Ground.Len())
	assert.Zero(t, w.Length, "length never goes negative")

	w.Gap = 3
	assert.False(t, w.gen.FillGap(w))
	assert.Equal(t, ground+1, w.Ground.Len())
}
