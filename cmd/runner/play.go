package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var (
	flagMute       bool
	flagLogFile    string
	flagHoldWindow time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game",
	Long: `Open the game in the terminal. Assets load first, then the main menu opens.

Controls:
  Space/Up   - Jump
  P          - Pause
  M          - Sound on/off
  R          - Restart (after game over)
  B/Esc      - Back to menu
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start slow, speed up over time
  normal - Default start speed, speed up over time
  hard   - Start fast, speed up over time
  fixed  - No speed-up, stays at the configured start speed

Examples:
  runner play
  runner play --difficulty easy
  runner play --mute --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Log file for the session")
	cmd.Flags().DurationVar(&flagHoldWindow, "hold-window", tui.DefaultHoldWindow, "How long one key press keeps jump held; raise it if your terminal repeats keys late")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal; try 'runner sim'")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	manifest, err := assets.DefaultManifest()
	if err != nil {
		return err
	}

	// Stdout belongs to the alt screen, so the session logs to a file.
	logPath := expandPath(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		logger.Debug("terminal", "width", w, "height", h)
	}

	// Sound is optional: without an audio device the game runs silent.
	mixer := audio.NewMixer(logger)
	if openErr := mixer.Open(); openErr == nil {
		defer mixer.Close()
	}

	return tui.Run(tui.Options{
		Manifest:   manifest,
		Config:     cfg,
		Mixer:      mixer,
		Logger:     logger,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Muted:      flagMute,
		HoldWindow: flagHoldWindow,
	})
}
