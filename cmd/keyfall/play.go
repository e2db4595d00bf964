package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/keyfall/audio"
	"github.com/lixenwraith/keyfall/config"
	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/core"
	"github.com/lixenwraith/keyfall/engine"
	"github.com/lixenwraith/keyfall/input"
	"github.com/lixenwraith/keyfall/leaderboard"
	"github.com/lixenwraith/keyfall/render"
	"github.com/lixenwraith/keyfall/status"
)

// play runs the interactive game until the player quits or ctx ends
func play(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	tiers, err := cfg.Tiers()
	if err != nil {
		return err
	}

	reg := status.NewRegistry()
	board := leaderboard.NewBoard(cfg.Store(logger), logger, reg)

	screen, err := tcell.NewScreen()
	if err != nil {
		board.Close()
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		board.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()

	var player engine.SoundPlayer = audio.Silent{}
	audioOn := false
	if cfg.Audio {
		sm := audio.NewSoundManager(cfg.Volume, logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio initialization failed, continuing without sound", "err", err)
		} else {
			player = sm
			audioOn = true
			defer sm.Close()
		}
	}

	var hud *status.Registry
	if cfg.Debug {
		hud = reg
	}
	renderer := render.NewRenderer(screen, logger, hud)

	game, err := engine.NewGame(engine.Options{
		Tiers:       tiers,
		Audio:       player,
		Notifier:    renderer,
		Leaderboard: board,
		Logger:      logger,
		Status:      reg,
	})
	if err != nil {
		board.Close()
		return err
	}
	// Stops the clock and flushes the leaderboard
	defer game.Close()

	handler := input.NewHandler(game, logger)
	logger.Info("keyfall started", "tiers", tiers.Names(), "audio", audioOn)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.Draw(game.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				renderer.Sync()
				continue
			}
			if !handler.HandleEvent(ev) {
				logger.Info("player quit", "metrics", reg.Summary())
				return nil
			}

		case <-frameTicker.C:
			renderer.Draw(game.Snapshot())
		}
	}
}
