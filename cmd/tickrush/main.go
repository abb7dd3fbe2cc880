package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zappabad/tickrush/config"
	"github.com/zappabad/tickrush/internal/game"
	"github.com/zappabad/tickrush/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config")
	skipSetup := flag.Bool("no-setup", false, "skip the interactive setup form")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	gameCfg := game.DefaultConfig()
	gameCfg.ProfileDir = cfg.ProfileDir
	gameCfg.Seed = cfg.Seed

	percent := gameCfg.Session.PurchasePercent
	if !*skipSetup {
		persist := cfg.ProfileDir != ""
		if err := runSetupForm(&percent, &persist); err != nil {
			fmt.Fprintf(os.Stderr, "setup: %v\n", err)
			os.Exit(1)
		}
		if !persist {
			gameCfg.ProfileDir = ""
		}
	}

	g, err := game.New(gameCfg, logger)
	if err != nil {
		logger.Error("failed to start game", zap.Error(err))
		fmt.Fprintf(os.Stderr, "game: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	if err := g.SetPurchasePercent(percent); err != nil {
		logger.Warn("invalid purchase percent from setup", zap.Int("percent", percent), zap.Error(err))
	}

	if err := ui.Run(g); err != nil {
		logger.Error("ui exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "ui: %v\n", err)
		os.Exit(1)
	}
}

// runSetupForm asks for the starting buy size and whether progress should be
// saved between runs.
func runSetupForm(percent *int, persist *bool) error {
	options := make([]huh.Option[int], 0, 10)
	for p := 10; p <= 100; p += 10 {
		options = append(options, huh.NewOption(fmt.Sprintf("%d%%", p), p))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Buy size").
				Description("Fraction of cash spent on each buy.").
				Options(options...).
				Value(percent),
			huh.NewConfirm().
				Title("Save progress?").
				Description("Reward currency and unlocks persist between runs.").
				Value(persist),
		),
	)
	return form.Run()
}

// newLogger writes structured logs to the configured file; stdout belongs to
// the TUI.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	var level zapcore.Level
	if err := level.Set(cfg.LogLevel); err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.LogFile}
	zcfg.ErrorOutputPaths = []string{cfg.LogFile}
	return zcfg.Build()
}
