// runner is a side-scrolling endless runner for the terminal.
//
// Usage:
//
//	runner                 - Open the game (same as "runner play")
//	runner play            - Open the game
//	runner sim             - Run games headless with a scripted jump policy
//	runner config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible runs
//	--config <path>         - Custom runner config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Cliff Runner - an endless runner in your terminal",
	Long: `Cliff Runner is a side-scrolling endless runner played in the terminal.
Jump across the cliffs, stay out of the water and avoid the fires.

Available commands:
  play     - Open the game (default)
  sim      - Run games headless and print their results
  config   - Print the default configuration

Examples:
  runner
  runner play --difficulty hard
  runner sim --runs 10 --seed 42 --jump-every 30
  runner config > ~/.runner/configs/runner.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	registerPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the runner config and applies the difficulty preset.
func loadConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}

	cfg, err := config.LoadRunner(expandPath(flagConfig))
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	}), nil
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
