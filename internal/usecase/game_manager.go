package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// console - whatever talks to the humans. Ask* calls block until input arrives.
type console interface {
	AskName(ctx context.Context, moniker string) (string, error)
	AskPlacement(ctx context.Context, player *entity.Player, ship battleship.ShipSpec) (string, string, error)
	AskGuess(ctx context.Context, player, opponent *entity.Player) (string, error)

	ShowRejection(ctx context.Context, err error)
	ShowFleetPlaced(ctx context.Context, player *entity.Player) error
	ShowGuess(ctx context.Context, player, opponent *entity.Player, result battleship.GuessResult) error
	ShowWinner(ctx context.Context, winner *entity.Player, players [2]*entity.Player) error
}

type GameManager struct {
	logger  *slog.Logger
	rules   battleship.Rules
	console console
}

func NewGameManager(logger *slog.Logger, rules battleship.Rules, console console) *GameManager {
	return &GameManager{
		logger:  logger,
		rules:   rules,
		console: console,
	}
}

// Play - runs one whole game: names, both fleets, then turns until somebody wins.
func (that *GameManager) Play(ctx context.Context) (*battleship.Game, error) {
	log := that.logger.With("method", "Play")

	firstName, err := that.askName(ctx, "Player 1")
	if err != nil {
		return nil, fmt.Errorf("failed to get first player name: %w", err)
	}

	secondName, err := that.askName(ctx, "Player 2")
	if err != nil {
		return nil, fmt.Errorf("failed to get second player name: %w", err)
	}

	game, err := battleship.NewGame(that.rules, firstName, secondName)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "first", firstName, "second", secondName,
		"board_size", that.rules.BoardSize, "fleet_size", len(that.rules.Fleet))

	if err = that.placeFleets(ctx, game); err != nil {
		return game, fmt.Errorf("failed to place fleets: %w", err)
	}

	if err = that.playTurns(ctx, game); err != nil {
		return game, fmt.Errorf("failed to play: %w", err)
	}

	winner := game.Winner()
	log.Info("game finished", "winner", winner.Name, "guesses", len(winner.Guesses()))

	if err = that.console.ShowWinner(ctx, winner, game.Players()); err != nil {
		return game, fmt.Errorf("failed to show winner: %w", err)
	}

	return game, nil
}

func (that *GameManager) askName(ctx context.Context, moniker string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		name, err := that.console.AskName(ctx, moniker)
		if err != nil {
			return "", err
		}

		name = strings.TrimSpace(name)
		if name != "" {
			return name, nil
		}

		that.reject(ctx, apperror.ErrEmptyName)
	}
}

// placeFleets - asks every player for every ship until each placement is accepted.
func (that *GameManager) placeFleets(ctx context.Context, game *battleship.Game) error {
	log := that.logger.With("method", "placeFleets")

	for game.IsSetup() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := game.SetupPlayer()
		spec, _ := game.PendingShip()

		anchor, orientationText, err := that.console.AskPlacement(ctx, player, spec)
		if err != nil {
			return fmt.Errorf("failed to get placement: %w", err)
		}

		orientation, err := entity.ParseOrientation(orientationText)
		if err != nil {
			that.reject(ctx, err)
			continue
		}

		ship, err := game.PlaceShip(anchor, orientation)
		if apperror.IsRecoverable(err) {
			that.reject(ctx, err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to place %s: %w", spec.Name, err)
		}

		log.Debug("ship placed", "player", player.Name, "ship", ship.Name, "coords", ship.Coords)

		if game.SetupPlayer() != player {
			if err = that.console.ShowFleetPlaced(ctx, player); err != nil {
				return fmt.Errorf("failed to show fleet: %w", err)
			}
		}
	}

	return nil
}

// playTurns - alternates guesses until the game is finished.
func (that *GameManager) playTurns(ctx context.Context, game *battleship.Game) error {
	log := that.logger.With("method", "playTurns")

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		player, opponent := game.CurrentPlayer(), game.Opponent()

		guess, err := that.console.AskGuess(ctx, player, opponent)
		if err != nil {
			return fmt.Errorf("failed to get guess: %w", err)
		}

		result, err := game.MakeGuess(guess)
		if apperror.IsRecoverable(err) {
			that.reject(ctx, err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make guess: %w", err)
		}

		log.Debug("guess made", "player", player.Name, "coord", result.Coord.String(),
			"outcome", result.Outcome, "sunk", result.SunkShip)

		if err = that.console.ShowGuess(ctx, player, opponent, result); err != nil {
			return fmt.Errorf("failed to show guess: %w", err)
		}
	}

	return nil
}

func (that *GameManager) reject(ctx context.Context, err error) {
	that.logger.Debug("input rejected", "error", err)
	that.console.ShowRejection(ctx, err)
}
