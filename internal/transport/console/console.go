package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

type Options struct {
	ClearScreen bool
	Pause       bool
}

// Console - line based terminal front end for the game manager.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	glyphs entity.Glyphs
	opts   Options

	// what is currently on screen, so a rejected answer does not redraw it
	screen string

	names         []string
	fleetsStarted int
	gameStarted   bool
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, glyphs entity.Glyphs, opts Options) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		glyphs: glyphs,
		opts:   opts,
	}
}

func (that *Console) AskName(ctx context.Context, moniker string) (string, error) {
	if that.screen == "" {
		that.clear()
		that.showBanner()
		that.screen = "names"
	}

	name, err := that.readLine(ctx, fmt.Sprintf("Enter the name of %s: ", moniker))
	if err != nil {
		return "", err
	}

	if name != "" {
		that.names = append(that.names, name)
		that.println("Thanks " + name + "!")
	}

	return name, nil
}

func (that *Console) AskPlacement(ctx context.Context, player *entity.Player, ship battleship.ShipSpec) (string, string, error) {
	screen := "place:" + player.Name + ":" + strconv.Itoa(len(player.Ships))
	if that.screen != screen {
		if len(player.Ships) == 0 {
			if err := that.handOffFleet(ctx, player); err != nil {
				return "", "", err
			}
		}

		that.clear()
		that.showBanner()
		that.println(fmt.Sprintf("Placing Ships for %s:\n", player.Name))
		that.printRows(player.Board.RenderOwnerView())
		that.println(legend(that.glyphs))
		that.println(fmt.Sprintf("Placing %s (size:%d)\n", ship.Name, ship.Size))
		that.screen = screen
	}

	orientation, err := that.readLine(ctx, "Does this ship run [V]ertical, or [H]orizontal: ")
	if err != nil {
		return "", "", err
	}

	anchor, err := that.readLine(ctx, "What is the upper-most or left-most ship position (for example D4): ")
	if err != nil {
		return "", "", err
	}

	return anchor, orientation, nil
}

func (that *Console) AskGuess(ctx context.Context, player, opponent *entity.Player) (string, error) {
	screen := "guess:" + player.Name + ":" + strconv.Itoa(len(player.Guesses()))
	if that.screen != screen {
		if !that.gameStarted {
			that.gameStarted = true
			if err := that.pause(ctx, fmt.Sprintf("Game Time! %s goes first. Hit ENTER to continue....", player.Name)); err != nil {
				return "", err
			}
		}

		that.clear()
		that.showBanner()
		if err := that.pause(ctx, fmt.Sprintf("It's %s's turn. Hit ENTER to continue....", player.Name)); err != nil {
			return "", err
		}

		that.showTurn(player, opponent)
		that.screen = screen
	}

	return that.readLine(ctx, fmt.Sprintf("Enter %s's guess (for example D4): ", player.Name))
}

func (that *Console) ShowRejection(_ context.Context, err error) {
	that.println(RejectionMessage(err) + "\n")
}

func (that *Console) ShowFleetPlaced(ctx context.Context, player *entity.Player) error {
	that.clear()
	that.showBanner()
	that.println(fmt.Sprintf("Placing Ships for %s:\n", player.Name))
	that.printRows(player.Board.RenderOwnerView())

	if err := that.pause(ctx, fmt.Sprintf("All ships placed for %s. Hit ENTER to continue....", player.Name)); err != nil {
		return err
	}

	that.clear()
	that.screen = ""

	return nil
}

func (that *Console) ShowGuess(ctx context.Context, player, opponent *entity.Player, result battleship.GuessResult) error {
	that.showTurn(player, opponent)
	that.println(GuessMessage(result) + "\n")

	if err := that.pause(ctx, "Hit ENTER to clear screen and end your turn...."); err != nil {
		return err
	}

	that.clear()
	that.screen = ""

	return nil
}

func (that *Console) ShowWinner(ctx context.Context, winner *entity.Player, players [2]*entity.Player) error {
	that.showBanner()
	if err := that.pause(ctx, fmt.Sprintf("%s WINS!!! Hit ENTER to see final boards....", winner.Name)); err != nil {
		return err
	}

	that.printRows(sideBySide(
		players[0].Name+"'s board:", players[1].Name+"'s board:",
		players[0].Board.RenderOwnerView(), players[1].Board.RenderOwnerView(),
	))

	return nil
}

// handOffFleet - asks the other player to look away before a fleet is placed.
func (that *Console) handOffFleet(ctx context.Context, player *entity.Player) error {
	that.fleetsStarted++
	if that.fleetsStarted > 1 {
		return that.pause(ctx, fmt.Sprintf("Time to add %s's ships. Hit ENTER to continue....", player.Name))
	}

	other := "Player 2"
	for _, name := range that.names {
		if name != player.Name {
			other = name
			break
		}
	}

	return that.pause(ctx, fmt.Sprintf("\nNext you'll each add your ships. %s first. (No peeking %s)\n\nHit ENTER to continue....", player.Name, other))
}

// showTurn - the opponent's hidden board next to the player's own.
func (that *Console) showTurn(player, opponent *entity.Player) {
	that.clear()
	that.showBanner()
	that.println(fmt.Sprintf("It's %s's turn:\n", player.Name))
	that.printRows(sideBySide(
		opponent.Name+"'s board:", player.Name+"'s board:",
		opponent.Board.RenderOpponentView(), player.Board.RenderOwnerView(),
	))
	that.println("")
	that.println(legend(that.glyphs))
}

func (that *Console) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(that.out, prompt)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	line := strings.TrimSpace(that.in.Text())
	that.logger.Debug("input read", "prompt", strings.TrimSpace(prompt), "length", len(line))

	return line, nil
}

func (that *Console) pause(ctx context.Context, prompt string) error {
	if !that.opts.Pause {
		return nil
	}

	_, err := that.readLine(ctx, prompt)

	return err
}

func (that *Console) clear() {
	if that.opts.ClearScreen {
		fmt.Fprint(that.out, clearSequence)
	}
}

func (that *Console) showBanner() {
	that.println(banner)
}

func (that *Console) println(line string) {
	fmt.Fprintln(that.out, line)
}

func (that *Console) printRows(rows []string) {
	that.println(strings.Join(rows, "\n"))
}
