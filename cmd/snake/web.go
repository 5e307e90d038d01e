package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/web"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the game to browsers",
	Long: `Start an HTTP server with a browser version of the game.

Every open tab plays its own game over a websocket.

Tabs are seeded independently unless --seed (or seed: in the config file)
is set; a fixed seed gives every tab the same food sequence, which is
useful for demos and debugging.

Examples:
  snake web
  snake web --addr :9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address, overrides web.address")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagWebAddr != "" {
		cfg.Web.Address = flagWebAddr
	}

	rules, err := snake.RulesFromConfig(cfg)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg, "snake-web")
	server := web.NewServer(web.Config{
		Address:  cfg.Web.Address,
		Rules:    rules,
		Interval: cfg.Timing.TickInterval,
		Seed:     cfg.Seed,
	}, logger)

	fmt.Printf("Open %s in a browser\n", browseURL(cfg.Web.Address))
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// browseURL returns a local URL for a listen address, keeping only its port.
func browseURL(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return "http://localhost"
	}
	return "http://localhost:" + port
}
