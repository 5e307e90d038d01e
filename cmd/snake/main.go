// snake is a classic single-player snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake play     - Play in this terminal
//	snake serve    - Start SSH server for remote play
//	snake web      - Serve the game to browsers
//	snake config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Config file (default: ~/.snake/config.yaml, then ./configs/snake.yaml)
//	--board-size <n>      - Board side length (default: 15)
//	--interval <dur>      - Tick interval (default: 1s)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--tail-chase          - Allow moving into the cell the tail is leaving
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	// Global flags
	flagConfig    string
	flagBoardSize int
	flagInterval  time.Duration
	flagSeed      int64
	flagLogLevel  string
	flagTailChase bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake moves one cell per tick on a square board. Eat food to grow,
avoid the walls and your own body.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Serve the game to browsers
  config   - Print the effective configuration

Examples:
  snake play
  snake play --board-size 20 --interval 200ms
  snake serve --ssh :2222
  snake web --addr :8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	addConfigFlags(rootCmd.PersistentFlags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the flags that override config file values.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to config YAML")
	fs.IntVar(&flagBoardSize, "board-size", snake.DefaultBoardSize, "Board side length in cells")
	fs.DurationVar(&flagInterval, "interval", snake.DefaultTickInterval, "Time between ticks")
	fs.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	fs.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&flagTailChase, "tail-chase", false, "Allow moving into the cell the tail is leaving")
}

// loadConfig resolves the config file, layers explicitly set flags on top
// and validates the result.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("board-size") {
		cfg.Board.Size = flagBoardSize
	}
	if flags.Changed("interval") {
		cfg.Timing.TickInterval = flagInterval
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("tail-chase") {
		cfg.Rules.TailChase = flagTailChase
	}

	if err := cfg.Validate(); err != nil {
		if flagConfig != "" {
			return cfg, fmt.Errorf("%s: %w", flagConfig, err)
		}
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. A nil writer discards output.
func newLogger(w io.Writer, cfg config.SnakeConfig, prefix string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
}
