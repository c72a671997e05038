package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const banner = `
 ____        _   _   _           _     _
| __ )  __ _| |_| |_| | ___  ___| |__ (_)_ __
|  _ \ / _` + "`" + ` | __| __| |/ _ \/ __| '_ \| | '_ \
| |_) | (_| | |_| |_| |  __/\__ \ | | | | |_) |
|____/ \__,_|\__|\__|_|\___||___/_| |_|_| .__/
                                        |_|
`

// clearSequence - VT100 "reset to initial state".
const clearSequence = "\033c"

const minBoardWidth = 22

// GuessMessage - the line shown to the guesser after a guess.
func GuessMessage(result battleship.GuessResult) string {
	switch result.Outcome {
	case entity.StateSunk:
		return fmt.Sprintf("Guess [%s]: You SUNK my %s!!!", result.Coord, result.SunkShip)
	case entity.StateHit:
		return fmt.Sprintf("Guess [%s]: You Hit!!", result.Coord)
	default:
		return fmt.Sprintf("Guess [%s]: You Missed!", result.Coord)
	}
}

// RejectionMessage - tells the player what to fix.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrEmptyName):
		return "Empty name not allowed"
	case errors.Is(err, apperror.ErrInvalidOrientation):
		return "Error: Response not valid. Please Enter 'v' or 'h'!"
	case errors.Is(err, apperror.ErrMalformedCoordinate):
		return "Error: Please enter Letter and Number as one word (for example D4)."
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Error: coordinates not all on the board. Try again"
	case errors.Is(err, apperror.ErrOverlap):
		return "Error: ship coordinates collide with other ships. Try again"
	case errors.Is(err, apperror.ErrDuplicateGuess):
		return "Error: coordinate already guessed. Try again"
	default:
		return "Error: " + err.Error()
	}
}

func legend(glyphs entity.Glyphs) string {
	return fmt.Sprintf("Legend: Ships %s or %s   Empty %s   Miss %s   Hit %s   Sunk %s",
		glyphs.Vertical, glyphs.Horizontal, glyphs.Empty, glyphs.Miss, glyphs.Hit, glyphs.Sunk)
}

// sideBySide - two titled board views next to each other.
func sideBySide(leftTitle, rightTitle string, left, right []string) []string {
	width := minBoardWidth
	for _, rows := range [][]string{left, right} {
		for _, row := range rows {
			width = max(width, len([]rune(row)))
		}
	}

	lines := make([]string, 0, len(left)+2)
	lines = append(lines, fmt.Sprintf("   %s        %s", center(leftTitle, width), center(rightTitle, width)), "")

	for i := 0; i < max(len(left), len(right)); i++ {
		lines = append(lines, strings.TrimRight(fmt.Sprintf("   %-*s        %-*s", width, at(left, i), width, at(right, i)), " "))
	}

	return lines
}

// center - title padded with underscores on both sides to width.
func center(title string, width int) string {
	padding := width - len([]rune(title))
	if padding <= 0 {
		return title
	}

	left := padding / 2

	return strings.Repeat("_", left) + title + strings.Repeat("_", padding-left)
}

func at(rows []string, i int) string {
	if i < len(rows) {
		return rows[i]
	}

	return ""
}
