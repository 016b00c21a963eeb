package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

const progressWidth = 40

// page identifies what the app is showing.
type page int

const (
	pageLoading page = iota
	pageMenu
	pageRules
	pageGame
)

// Options configures the app.
type Options struct {
	Manifest   assets.Manifest
	Config     config.RunnerConfig
	Mixer      *audio.Mixer // nil plays nothing
	Logger     *log.Logger
	TickRate   int
	Seed       int64 // 0 picks a time-based seed per run
	Muted      bool
	HoldWindow time.Duration
}

// Model is the Bubble Tea model hosting the runner.
type Model struct {
	opts   Options
	logger *log.Logger
	lib    *assets.Library
	game   *runner.Game
	mixer  *audio.Mixer

	progressCh chan progressMsg
	loaded     int
	total      int
	bar        progress.Model

	keys  KeyMap
	help  help.Model
	theme Theme

	screen     *core.Screen
	current    page
	cursor     int
	muted      bool
	latch      *JumpLatch
	inputFrame core.InputFrame
	ticking    bool
	err        error
	quitting   bool
	width      int
	height     int
}

// NewModel creates the app model. Assets start loading in Init.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}

	total := opts.Manifest.Size()
	progressCh := make(chan progressMsg, total+1)
	lib := assets.NewLibrary(opts.Manifest,
		assets.WithLogger(logger),
		assets.OnProgress(func(loaded, total int) {
			progressCh <- progressMsg{loaded: loaded, total: total}
		}),
	)

	var sound runner.SoundPlayer
	if opts.Mixer != nil {
		sound = opts.Mixer
		opts.Mixer.SetMuted(opts.Muted)
	}

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = progressWidth

	def := core.DefaultConfig()
	return Model{
		opts:       opts,
		logger:     logger,
		lib:        lib,
		game:       runner.New(lib, sound, opts.Config, runner.WithLogger(logger)),
		mixer:      opts.Mixer,
		progressCh: progressCh,
		total:      total,
		bar:        bar,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      DefaultTheme(),
		screen:     core.NewScreen(def.ScreenW, def.ScreenH),
		current:    pageLoading,
		muted:      opts.Muted,
		latch:      NewJumpLatch(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		width:      def.ScreenW,
		height:     def.ScreenH,
	}
}

// Init starts loading every asset.
func (m Model) Init() tea.Cmd {
	lib := m.lib
	load := func() tea.Msg {
		return loadedMsg{err: lib.LoadAll(context.Background())}
	}
	return tea.Batch(load, waitForProgress(m.progressCh))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.latch.Clear()
		return m, nil

	case progressMsg:
		m.loaded, m.total = msg.loaded, msg.total
		if m.loaded < m.total {
			return m, waitForProgress(m.progressCh)
		}
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.logger.Error("asset loading failed", "err", msg.err)
		return m, nil
	}

	if m.mixer != nil {
		for _, name := range m.lib.ClipNames() {
			buf, err := m.lib.Clip(name)
			if err != nil {
				m.logger.Warn("clip unavailable", "clip", name, "err", err)
				continue
			}
			m.mixer.Add(name, buf)
		}
	}

	m.loaded = m.lib.Loaded()
	m.current = pageMenu
	m.logger.Debug("assets loaded", "count", m.loaded)
	return m, nil
}

// handleKey dispatches keyboard input by screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.game.Stop()
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Sound) && m.current != pageLoading {
		m.toggleSound()
		return m, nil
	}

	switch m.current {
	case pageMenu:
		return m.handleMenuKey(msg)
	case pageRules:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
			m.current = pageMenu
		}
	case pageGame:
		return m.handleGameKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select), msg.String() == " ":
		switch menuItems[m.cursor] {
		case itemPlay:
			return m.startRun()
		case itemRules:
			m.current = pageRules
		case itemSound:
			m.toggleSound()
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if !m.game.Running() {
		switch action {
		case core.ActionRestart:
			return m.startRun()
		case core.ActionBack:
			m.current = pageMenu
		}
		return m, nil
	}

	switch action {
	case core.ActionJump:
		m.latch.Press(time.Now())
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionBack:
		m.game.Stop()
		m.current = pageMenu
	}
	return m, nil
}

// handleResize processes window resize events. One row is kept for the help footer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.bar.Width = min(progressWidth, max(msg.Width-4, 10))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.current != pageGame {
		m.ticking = false
		return m, nil
	}

	if m.latch.Held(now) {
		m.inputFrame.Set(core.ActionJump)
	}
	m.game.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.opts.TickRate)
}

// startRun begins a fresh run and makes sure the tick loop is running.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := m.game.Start(seed); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.current = pageGame
	m.latch.Clear()
	m.inputFrame.Clear()

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.opts.TickRate)
}

func (m *Model) toggleSound() {
	m.muted = !m.muted
	if m.mixer != nil {
		m.mixer.SetMuted(m.muted)
	}
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.current {
	case pageLoading:
		bar := m.bar.ViewAs(m.progress())
		body = renderLoading(m.theme, bar, m.loaded, m.total, m.width)
	case pageMenu:
		body = renderMenu(m.theme, m.cursor, m.muted, m.width)
	case pageRules:
		body = renderRules(m.theme, m.width)
	case pageGame:
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	var b strings.Builder
	b.WriteString(body)
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(m.err.Error()))
	}
	b.WriteString("\n")
	gameOver := m.current == pageGame && !m.game.Running()
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys.helpFor(m.current, gameOver))))
	return b.String()
}

// progress returns the loaded fraction in [0, 1].
func (m Model) progress() float64 {
	if m.total == 0 {
		return 1
	}
	return float64(m.loaded) / float64(m.total)
}

// Game returns the hosted game.
func (m Model) Game() *runner.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Blur releases a held jump
	)

	_, err := p.Run()
	return err
}
