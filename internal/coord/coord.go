package coord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

// MaxBoardSize - one column per letter of the alphabet.
const MaxBoardSize = 26

// Coordinate - zero based offset of a board cell.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func New(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Normalize - trims blanks and uppercases the column letter.
func Normalize(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// ToOffset - converts "D4" into Coordinate{Row: 3, Col: 3}.
func ToOffset(text string) (Coordinate, error) {
	text = Normalize(text)
	if len(text) < 2 {
		return Coordinate{}, fmt.Errorf("%w: %q is too short", apperror.ErrMalformedCoordinate, text)
	}

	letter := text[0]
	if letter < 'A' || letter > 'Z' {
		return Coordinate{}, fmt.Errorf("%w: %q must start with a column letter", apperror.ErrMalformedCoordinate, text)
	}

	digits := text[1:]
	if !isCanonicalNumber(digits) {
		return Coordinate{}, fmt.Errorf("%w: %q has no valid row number", apperror.ErrMalformedCoordinate, text)
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %w", apperror.ErrMalformedCoordinate, err)
	}

	return Coordinate{Row: row - 1, Col: int(letter - 'A')}, nil
}

// ToText - inverse of ToOffset.
func ToText(row, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// IsLegal - true if text parses and lies on a board of the given size.
func IsLegal(text string, boardSize int) bool {
	c, err := ToOffset(text)
	if err != nil {
		return false
	}

	return c.InBounds(boardSize)
}

// Parse - ToOffset plus a bounds check against boardSize.
func Parse(text string, boardSize int) (Coordinate, error) {
	c, err := ToOffset(text)
	if err != nil {
		return Coordinate{}, err
	}

	if !c.InBounds(boardSize) {
		return Coordinate{}, fmt.Errorf("%w: %s on a %dx%d board", apperror.ErrOutOfBounds, Normalize(text), boardSize, boardSize)
	}

	return c, nil
}

func (that Coordinate) InBounds(boardSize int) bool {
	return that.Row >= 0 && that.Row < boardSize &&
		that.Col >= 0 && that.Col < boardSize
}

func (that Coordinate) String() string {
	return ToText(that.Row, that.Col)
}

// isCanonicalNumber - digits only, no sign and no leading zero, so that "A01" does not alias "A1".
func isCanonicalNumber(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
