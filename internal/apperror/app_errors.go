package apperror

import "errors"

var (
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	ErrOutOfBounds         = errors.New("coordinate is off the board")
	ErrOverlap             = errors.New("ship overlaps another ship")
	ErrDuplicateGuess      = errors.New("coordinate already guessed")
	ErrInvalidOrientation  = errors.New("orientation must be vertical or horizontal")
	ErrInvalidShipSize     = errors.New("invalid ship size")
	ErrInvalidBoardSize    = errors.New("invalid board size")
	ErrEmptyName           = errors.New("empty name not allowed")

	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrSetupFinished    = errors.New("all ships are already placed")
)

// IsRecoverable - reports whether err comes from bad player input, so the caller can ask again.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrMalformedCoordinate) ||
		errors.Is(err, ErrOutOfBounds) ||
		errors.Is(err, ErrOverlap) ||
		errors.Is(err, ErrDuplicateGuess) ||
		errors.Is(err, ErrInvalidOrientation) ||
		errors.Is(err, ErrEmptyName)
}
