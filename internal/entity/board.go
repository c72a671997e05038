package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/coord"
)

// Board - square grid of Locations owned by one player.
type Board struct {
	size   int
	grid   [][]*Location
	glyphs Glyphs
}

func NewBoard(size int, glyphs Glyphs) (*Board, error) {
	if size < 1 || size > coord.MaxBoardSize {
		return nil, fmt.Errorf("%w: %d, must be between 1 and %d", apperror.ErrInvalidBoardSize, size, coord.MaxBoardSize)
	}

	grid := make([][]*Location, size)
	for row := 0; row < size; row++ {
		grid[row] = make([]*Location, size)
		for col := 0; col < size; col++ {
			grid[row][col] = NewLocation(coord.New(row, col))
		}
	}

	return &Board{
		size:   size,
		grid:   grid,
		glyphs: glyphs,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Location - nil when c is off the board.
func (that *Board) Location(c coord.Coordinate) *Location {
	if !c.InBounds(that.size) {
		return nil
	}

	return that.grid[c.Row][c.Col]
}

// VerifyUnoccupied - true if none of coords holds a ship. Off board coordinates count as occupied.
func (that *Board) VerifyUnoccupied(coords []coord.Coordinate) bool {
	for _, c := range coords {
		location := that.Location(c)
		if location == nil || location.IsOccupied() {
			return false
		}
	}

	return true
}

// PlaceShip - binds every cell of the ship to it. Bounds and overlap must be checked by the caller.
func (that *Board) PlaceShip(ship *Ship) {
	for _, c := range ship.Coords {
		if location := that.Location(c); location != nil {
			location.Ship = ship
		}
	}
}

// ApplyGuess - resolves a guess; the ship name is returned only when the guess sank it.
func (that *Board) ApplyGuess(c coord.Coordinate) (State, string, error) {
	location := that.Location(c)
	if location == nil {
		return "", "", fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	state := location.RecordGuess()
	if state == StateSunk {
		return state, location.Ship.Name, nil
	}

	return state, "", nil
}

// RenderOwnerView - rows of glyphs with ships revealed.
func (that *Board) RenderOwnerView() []string {
	return that.render((*Location).OwnerView)
}

// RenderOpponentView - rows of glyphs with intact ship segments hidden.
func (that *Board) RenderOpponentView() []string {
	return that.render((*Location).OpponentView)
}

func (that *Board) render(view func(*Location) State) []string {
	rows := make([]string, 0, that.size+1)
	rows = append(rows, that.heading())

	cells := make([]string, that.size)
	for i, row := range that.grid {
		for j, location := range row {
			cells[j] = that.glyphs.For(view(location))
		}
		rows = append(rows, fmt.Sprintf("%2d %s", i+1, strings.Join(cells, " ")))
	}

	return rows
}

func (that *Board) heading() string {
	letters := make([]string, that.size)
	for col := range letters {
		letters[col] = string(rune('A' + col))
	}

	return "   " + strings.Join(letters, " ")
}
