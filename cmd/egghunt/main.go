// Package main is the entry point for the egg hunt.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/egghunt/internal/config"
	"github.com/Faultbox/egghunt/internal/game"
	"github.com/Faultbox/egghunt/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("egg hunt failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== Egg Hunt ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if cfg.Path == "" {
		// First run: leave an editable copy of the defaults behind.
		if err := config.Default().Save(); err != nil {
			logger.Warn("could not write default config", zap.Error(err))
		} else {
			logger.Info("wrote default config", zap.String("dir", config.ConfigDir()))
		}
	} else {
		logger.Info("config loaded", zap.String("path", cfg.Path))
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		return err
	}

	logger.Info("game closed normally")
	return nil
}
