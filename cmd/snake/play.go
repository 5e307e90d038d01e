package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Enter/R      - Restart (after game over)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

The terminal is taken over by the game, so logs are discarded unless
--log-file is given.

Examples:
  snake play
  snake play --board-size 10
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rules, err := snake.RulesFromConfig(cfg)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg, "snake")

	// Get terminal size early so the first frame is laid out correctly
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger.Info("starting game", "board", rules.BoardSize, "interval", cfg.Timing.TickInterval, "seed", cfg.Seed)

	return tui.Run(tui.Options{
		Rules:    rules,
		Interval: cfg.Timing.TickInterval,
		Seed:     cfg.Seed,
		Logger:   logger,
		Width:    width,
		Height:   height,
	})
}
