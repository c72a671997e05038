package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/transport/console"
	"github.com/rocketscienceinc/battleship/internal/usecase"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			// unblocks the pending read
			_ = os.Stdin.Close()
		case <-ctx.Done():
		}
	}()

	rules := RulesFromConfig(conf)
	terminal := console.New(logger, os.Stdin, os.Stdout, rules.Glyphs, console.Options{
		ClearScreen: !conf.NoClearScreen,
		Pause:       !conf.NoPause,
	})
	gameManager := usecase.NewGameManager(logger, rules, terminal)

	_, err := gameManager.Play(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) || ctx.Err() != nil:
		log.Info("Game abandoned", "error", err)
		fmt.Fprintln(os.Stdout, "\n quitting....")
		return nil
	default:
		return fmt.Errorf("game failed: %w", err)
	}
}

// RulesFromConfig - a missing fleet means the standard one.
func RulesFromConfig(conf *config.Config) battleship.Rules {
	fleet := battleship.DefaultFleet()
	if conf.Fleet != nil {
		fleet = make([]battleship.ShipSpec, 0, len(conf.Fleet))
		for _, spec := range conf.Fleet {
			fleet = append(fleet, battleship.ShipSpec{Name: spec.Name, Size: spec.Size})
		}
	}

	return battleship.Rules{
		BoardSize: conf.BoardSize,
		Fleet:     fleet,
		Glyphs: entity.Glyphs{
			Vertical:   conf.Markers.Vertical,
			Horizontal: conf.Markers.Horizontal,
			Empty:      conf.Markers.Empty,
			Miss:       conf.Markers.Miss,
			Hit:        conf.Markers.Hit,
			Sunk:       conf.Markers.Sunk,
		},
	}
}
