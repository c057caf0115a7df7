// Command termfield runs the particle background in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/devakorn/portfolio/config"
	"github.com/devakorn/portfolio/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := config.Cfg()

	// The screen owns stdout, so logs go to a file or nowhere.
	logOut := os.DevNull
	if cfg.Terminal.LogFile != "" {
		logOut = cfg.Terminal.LogFile
	}
	lf, err := os.OpenFile(logOut, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer lf.Close()
	slog.SetDefault(slog.New(slog.NewJSONHandler(lf, nil)))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host, err := tui.NewHost(screen, cfg, seed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
