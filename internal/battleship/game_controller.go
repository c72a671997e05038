package battleship

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/coord"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - two players, setup first then alternating guesses until a fleet is gone.
type Game struct {
	rules   Rules
	players [2]*entity.Player
	status  string

	// setup cursor: whose fleet is being placed and which entry comes next
	placing  int
	nextShip int

	turn   int
	winner *entity.Player
}

func NewGame(rules Rules, firstName, secondName string) (*Game, error) {
	if err := validateRules(rules); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	game := &Game{
		rules:  rules,
		status: StatusSetup,
	}

	for i, name := range []string{firstName, secondName} {
		board, err := entity.NewBoard(rules.BoardSize, rules.Glyphs)
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}
		game.players[i] = entity.NewPlayer(name, board)
	}

	if len(rules.Fleet) == 0 {
		game.status = StatusOngoing
	}

	return game, nil
}

func (that *Game) Rules() Rules {
	return that.rules
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) Players() [2]*entity.Player {
	return that.players
}

func (that *Game) IsSetup() bool {
	return that.status == StatusSetup
}

func (that *Game) IsOngoing() bool {
	return that.status == StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsSetup():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.status)
	}
}

// SetupPlayer - the player placing ships, nil once setup is over.
func (that *Game) SetupPlayer() *entity.Player {
	if !that.IsSetup() {
		return nil
	}

	return that.players[that.placing]
}

// PendingShip - the fleet entry the setup player has to place next.
func (that *Game) PendingShip() (ShipSpec, bool) {
	if !that.IsSetup() {
		return ShipSpec{}, false
	}

	return that.rules.Fleet[that.nextShip], true
}

// CurrentPlayer - the player whose turn it is to guess.
func (that *Game) CurrentPlayer() *entity.Player {
	return that.players[that.turn]
}

func (that *Game) Opponent() *entity.Player {
	return that.players[1-that.turn]
}

func (that *Game) Winner() *entity.Player {
	return that.winner
}

// PlaceShip - places the pending ship for the setup player. On error nothing changes.
func (that *Game) PlaceShip(anchorText string, orientation entity.Orientation) (*entity.Ship, error) {
	spec, ok := that.PendingShip()
	if !ok {
		return nil, apperror.ErrSetupFinished
	}

	player := that.players[that.placing]

	anchor, err := coord.Parse(anchorText, that.rules.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("invalid anchor: %w", err)
	}

	coords, err := entity.ShipCoords(anchor, spec.Size, orientation, that.rules.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("can't place %s: %w", spec.Name, err)
	}

	if !player.Board.VerifyUnoccupied(coords) {
		return nil, fmt.Errorf("can't place %s at %s: %w", spec.Name, anchor, apperror.ErrOverlap)
	}

	ship := entity.NewShip(spec.Name, spec.Size, coords, orientation)
	player.AddShip(ship)
	player.Board.PlaceShip(ship)

	that.advanceSetup()

	return ship, nil
}

// MakeGuess - the current player guesses a cell on the opponent's board.
func (that *Game) MakeGuess(text string) (GuessResult, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return GuessResult{}, err
	}

	c, err := validateGuess(that, text)
	if err != nil {
		return GuessResult{}, fmt.Errorf("invalid guess: %w", err)
	}

	player, opponent := that.CurrentPlayer(), that.Opponent()

	outcome, sunkShip, err := opponent.Board.ApplyGuess(c)
	if err != nil {
		return GuessResult{}, fmt.Errorf("failed to apply guess: %w", err)
	}

	player.RecordGuess(c)

	result := GuessResult{
		Guesser:  player.Name,
		Coord:    c,
		Outcome:  outcome,
		SunkShip: sunkShip,
	}

	that.updateGameStatus()
	result.GameOver = that.IsFinished()

	return result, nil
}

// validateGuess - checks the guess is on the board and new for the guesser.
func validateGuess(game *Game, text string) (coord.Coordinate, error) {
	c, err := coord.Parse(text, game.rules.BoardSize)
	if err != nil {
		return coord.Coordinate{}, err
	}

	if game.CurrentPlayer().HasGuessed(c) {
		return coord.Coordinate{}, fmt.Errorf("%w: %s", apperror.ErrDuplicateGuess, c)
	}

	return c, nil
}

// updateGameStatus - checks the opponent's fleet right after a guess.
func (that *Game) updateGameStatus() {
	if !that.Opponent().HasRemainingFleet() {
		that.winner = that.CurrentPlayer()
		that.status = StatusFinished
		return
	}

	that.turn = toggleTurn(that.turn)
}

func (that *Game) advanceSetup() {
	that.nextShip++
	if that.nextShip < len(that.rules.Fleet) {
		return
	}

	that.nextShip = 0
	that.placing++
	if that.placing < len(that.players) {
		return
	}

	that.placing = 0
	that.turn = 0
	that.status = StatusOngoing
}

func toggleTurn(turn int) int {
	return 1 - turn
}

func validateRules(rules Rules) error {
	if rules.BoardSize < 1 || rules.BoardSize > coord.MaxBoardSize {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, rules.BoardSize)
	}

	for _, spec := range rules.Fleet {
		if spec.Size < 1 || spec.Size > rules.BoardSize {
			return fmt.Errorf("%w: %s has size %d on a %dx%d board",
				apperror.ErrInvalidShipSize, spec.Name, spec.Size, rules.BoardSize, rules.BoardSize)
		}
	}

	return nil
}
