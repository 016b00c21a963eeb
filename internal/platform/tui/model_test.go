package tui

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	manifest, err := assets.DefaultManifest()
	require.NoError(t, err)

	logger := log.New(io.Discard)
	return NewModel(Options{
		Manifest: manifest,
		Config:   config.DefaultRunnerConfig(),
		Mixer:    audio.NewMixer(logger),
		Logger:   logger,
		Seed:     7,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// loadedModel returns a model whose assets finished loading.
func loadedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m, _ = update(t, m, loadedMsg{err: m.lib.LoadAll(context.Background())})
	require.Equal(t, pageMenu, m.current)
	return m
}

// playingModel returns a model in the middle of a run.
func playingModel(t *testing.T) Model {
	t.Helper()
	m := loadedModel(t)
	m, cmd := update(t, m, keyMsg("enter"))
	require.NotNil(t, cmd, "starting a run schedules ticks")
	require.Equal(t, pageGame, m.current)
	return m
}

func TestLoadingScreen(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, pageLoading, m.current)
	assert.Contains(t, m.View(), "Loading assets 0/20")

	m, cmd := update(t, m, progressMsg{loaded: 5, total: 20})
	assert.NotNil(t, cmd, "keeps listening for progress")
	assert.Contains(t, m.View(), "Loading assets 5/20 (25%)")

	m, cmd = update(t, m, keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, pageLoading, m.current, "menu keys do nothing while loading")
}

func TestLoadedRegistersClips(t *testing.T) {
	m := loadedModel(t)

	for _, name := range []string{runner.ClipMusic, runner.ClipJump, runner.ClipGameOver} {
		assert.True(t, m.mixer.Has(name), name)
	}
	assert.Contains(t, m.View(), "Play")
}

func TestLoadFailure(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, loadedMsg{err: errors.New("disk on fire")})

	assert.Equal(t, pageLoading, m.current)
	assert.Contains(t, m.View(), "disk on fire")
}

func TestMenuNavigation(t *testing.T) {
	m := loadedModel(t)

	m, _ = update(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")

	m, _ = update(t, m, keyMsg("down"))
	m, _ = update(t, m, keyMsg("enter"))
	assert.Equal(t, pageRules, m.current)
	assert.Contains(t, m.View(), "RULES")

	m, _ = update(t, m, keyMsg("esc"))
	assert.Equal(t, pageMenu, m.current)

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, keyMsg("down"))
	}
	assert.Equal(t, len(menuItems)-1, m.cursor, "cursor stops at the bottom")

	_, cmd := update(t, m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSoundToggle(t *testing.T) {
	m := loadedModel(t)
	require.False(t, m.muted)

	m.cursor = int(itemSound)
	m, _ = update(t, m, keyMsg("enter"))
	assert.True(t, m.muted)
	assert.True(t, m.mixer.Muted())
	assert.Contains(t, m.View(), "Sound: off")

	m, _ = update(t, m, keyMsg("m"))
	assert.False(t, m.muted)
	assert.False(t, m.mixer.Muted())
}

func TestStartRun(t *testing.T) {
	m := playingModel(t)

	assert.True(t, m.game.Running())
	assert.Equal(t, int64(7), m.game.Seed())
	assert.True(t, m.mixer.Playing(runner.ClipMusic))
}

func TestTickStepsGame(t *testing.T) {
	m := playingModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	assert.NotNil(t, cmd, "next tick scheduled")
	assert.Equal(t, 1, m.game.World().Ticks)
	assert.Contains(t, m.View(), "Score:")
}

func TestJumpHeldThroughLatch(t *testing.T) {
	m := playingModel(t)
	m, _ = update(t, m, TickMsg(time.Now())) // land on the seeded ground

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, runner.Ascending, m.game.World().Player.State())

	m, _ = update(t, m, tea.BlurMsg{})
	assert.False(t, m.latch.Held(time.Now()), "focus loss releases jump")
}

func TestPauseKey(t *testing.T) {
	m := playingModel(t)

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.game.State().Paused)

	ticks := m.game.World().Ticks
	m, _ = update(t, m, TickMsg(time.Now()))
	assert.Equal(t, ticks, m.game.World().Ticks)
}

func TestGameOverRestartAndBack(t *testing.T) {
	m := playingModel(t)
	first := m.game.RunID()

	w := m.game.World()
	cx, cy := w.Player.Center()
	w.Enemies.Push(runner.NewEntity(runner.KindFire, cx-16+6, cy-16, 32))
	m, _ = update(t, m, TickMsg(time.Now()))
	require.False(t, m.game.Running())
	assert.Contains(t, m.View(), "GAME OVER")

	m, cmd := update(t, m, keyMsg("r"))
	assert.Nil(t, cmd, "tick loop already running")
	assert.True(t, m.game.Running())
	assert.NotEqual(t, first, m.game.RunID())

	m, _ = update(t, m, keyMsg("esc"))
	assert.Equal(t, pageMenu, m.current)
	assert.False(t, m.game.Running(), "leaving mid-run stops it")

	m, cmd = update(t, m, TickMsg(time.Now()))
	assert.Nil(t, cmd, "ticks stop outside the game")
	assert.False(t, m.ticking)
}

func TestQuitStopsRun(t *testing.T) {
	m := playingModel(t)

	m, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.False(t, m.game.Running())
	assert.Empty(t, m.View())
}

func TestResize(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
}

func TestRunWithoutMixer(t *testing.T) {
	manifest, err := assets.DefaultManifest()
	require.NoError(t, err)
	m := NewModel(Options{Manifest: manifest, Config: config.DefaultRunnerConfig(), Logger: log.New(io.Discard)})
	m, _ = update(t, m, loadedMsg{err: m.lib.LoadAll(context.Background())})

	m, _ = update(t, m, keyMsg("enter"))
	require.Equal(t, pageGame, m.current)
	m, _ = update(t, m, keyMsg("m"))
	assert.True(t, m.muted)
	assert.NotPanics(t, func() { update(t, m, TickMsg(time.Now())) })
}
