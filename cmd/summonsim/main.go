package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/udisondev/cavesummon/internal/config"
)

const defaultConfigPath = "config/summoner.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// app carries state shared by all subcommands.
type app struct {
	cfgPath string
	cfg     config.Summoner
}

func rootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "summonsim",
		Short:         "Monster summoning simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cfgPath := defaultConfigPath
	if p := os.Getenv("CAVESUMMON_CONFIG"); p != "" {
		cfgPath = p
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", cfgPath, "Path to the YAML config")

	root.AddCommand(runCmd(a))
	root.AddCommand(shapeCmd(a))
	root.AddCommand(describeCmd(a))
	root.AddCommand(migrateCmd(a))
	root.AddCommand(importCmd(a))
	root.AddCommand(exportCmd(a))
	return root
}

// setup loads config and configures slog from its log level.
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Debug("config loaded",
		"path", a.cfgPath,
		"catalog", cfg.Catalog.Source,
		"depth", cfg.Player.Depth)
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
