package entity

import (
	"testing"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/coord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, size int) *Board {
	t.Helper()

	board, err := NewBoard(size, DefaultGlyphs())
	require.NoError(t, err)

	return board
}

func placeTestShip(t *testing.T, board *Board, name string, size int, anchor string, orientation Orientation) *Ship {
	t.Helper()

	coords, err := ShipCoords(mustCoord(t, anchor), size, orientation, board.Size())
	require.NoError(t, err)
	require.True(t, board.VerifyUnoccupied(coords))

	ship := NewShip(name, size, coords, orientation)
	board.PlaceShip(ship)

	return ship
}

func TestNewBoard(t *testing.T) {
	t.Run("Every location knows its own coordinate", func(t *testing.T) {
		board := newTestBoard(t, 10)

		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				c := coord.New(row, col)
				location := board.Location(c)
				require.NotNil(t, location)
				assert.Equal(t, c, location.Coord)
				assert.Equal(t, StateEmpty, location.State)
			}
		}
	})

	t.Run("Rejects sizes the letter columns cannot address", func(t *testing.T) {
		for _, size := range []int{0, -1, 27} {
			_, err := NewBoard(size, DefaultGlyphs())
			require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
		}
	})

	t.Run("Off board location is nil", func(t *testing.T) {
		board := newTestBoard(t, 5)

		assert.Nil(t, board.Location(coord.New(5, 0)))
		assert.Nil(t, board.Location(coord.New(0, -1)))
	})
}

func TestBoard_VerifyUnoccupied(t *testing.T) {
	// Given: a board with a cruiser on A1..A3
	board := newTestBoard(t, 10)
	placeTestShip(t, board, "Cruiser", 3, "A1", Vertical)

	t.Run("Free cells are unoccupied", func(t *testing.T) {
		assert.True(t, board.VerifyUnoccupied(coordsOf(t, "B1", "C1", "D1")))
	})

	t.Run("One shared cell is enough to fail", func(t *testing.T) {
		assert.False(t, board.VerifyUnoccupied(coordsOf(t, "B3", "A3")))
	})

	t.Run("Off board cells fail", func(t *testing.T) {
		assert.False(t, board.VerifyUnoccupied([]coord.Coordinate{coord.New(10, 0)}))
	})

	t.Run("Checking does not change the board", func(t *testing.T) {
		before := board.RenderOwnerView()
		board.VerifyUnoccupied(coordsOf(t, "A1", "B1"))
		assert.Equal(t, before, board.RenderOwnerView())
	})
}

func TestBoard_PlaceShip(t *testing.T) {
	// Given: an empty board
	board := newTestBoard(t, 10)

	// When: a horizontal ship is placed at C4
	ship := placeTestShip(t, board, "Battleship", 4, "C4", Horizontal)

	// Then: every occupied location references that ship
	for _, c := range ship.Coords {
		assert.Same(t, ship, board.Location(c).Ship)
	}
	assert.Nil(t, board.Location(mustCoord(t, "G4")).Ship)
	assert.Nil(t, board.Location(mustCoord(t, "B4")).Ship)
}

func TestBoard_ApplyGuess(t *testing.T) {
	t.Run("Miss on an empty cell leaves ships untouched", func(t *testing.T) {
		// Given: a board with one ship
		board := newTestBoard(t, 10)
		ship := placeTestShip(t, board, "Patrol Boat", 2, "A1", Horizontal)

		// When: guessing an empty cell
		state, name, err := board.ApplyGuess(mustCoord(t, "C3"))

		// Then: it is a miss
		require.NoError(t, err)
		assert.Equal(t, StateMiss, state)
		assert.Empty(t, name)
		assert.Empty(t, ship.Hits())
	})

	t.Run("Hit then sunk reports the ship name", func(t *testing.T) {
		// Given: a patrol boat on A1 B1
		board := newTestBoard(t, 10)
		placeTestShip(t, board, "Patrol Boat", 2, "A1", Horizontal)

		// When: guessing A1
		state, name, err := board.ApplyGuess(mustCoord(t, "A1"))

		// Then: it is a hit
		require.NoError(t, err)
		assert.Equal(t, StateHit, state)
		assert.Empty(t, name)

		// When: guessing B1
		state, name, err = board.ApplyGuess(mustCoord(t, "B1"))

		// Then: the patrol boat is sunk
		require.NoError(t, err)
		assert.Equal(t, StateSunk, state)
		assert.Equal(t, "Patrol Boat", name)
	})

	t.Run("Off board guess fails without mutation", func(t *testing.T) {
		board := newTestBoard(t, 10)
		before := board.RenderOwnerView()

		_, _, err := board.ApplyGuess(coord.New(0, 10))

		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Equal(t, before, board.RenderOwnerView())
	})

	t.Run("Empty board always misses", func(t *testing.T) {
		board := newTestBoard(t, 10)

		state, _, err := board.ApplyGuess(mustCoord(t, "C3"))

		require.NoError(t, err)
		assert.Equal(t, StateMiss, state)
	})
}

func TestBoard_Render(t *testing.T) {
	// Given: a 4x4 board with a vertical ship on B1..B3 and a horizontal one on C4 D4
	board := newTestBoard(t, 4)
	placeTestShip(t, board, "Cruiser", 3, "B1", Vertical)
	placeTestShip(t, board, "Patrol Boat", 2, "C4", Horizontal)

	// And: a miss on A1, a hit on B2 and the patrol boat sunk
	for _, text := range []string{"A1", "B2", "C4", "D4"} {
		_, _, err := board.ApplyGuess(mustCoord(t, text))
		require.NoError(t, err)
	}

	t.Run("Owner view reveals ships", func(t *testing.T) {
		expected := []string{
			"   A B C D",
			" 1 . | O O",
			" 2 O * O O",
			" 3 O | O O",
			" 4 O O # #",
		}

		assert.Equal(t, expected, board.RenderOwnerView())
	})

	t.Run("Opponent view hides intact segments", func(t *testing.T) {
		expected := []string{
			"   A B C D",
			" 1 . O O O",
			" 2 O * O O",
			" 3 O O O O",
			" 4 O O # #",
		}

		assert.Equal(t, expected, board.RenderOpponentView())
	})

	t.Run("Rendering is repeatable", func(t *testing.T) {
		assert.Equal(t, board.RenderOpponentView(), board.RenderOpponentView())
		assert.Equal(t, board.RenderOwnerView(), board.RenderOwnerView())
	})

	t.Run("Horizontal marker and two digit rows", func(t *testing.T) {
		big := newTestBoard(t, 10)
		placeTestShip(t, big, "Patrol Boat", 2, "A10", Horizontal)

		view := big.RenderOwnerView()

		require.Len(t, view, 11)
		assert.Equal(t, "   A B C D E F G H I J", view[0])
		assert.Equal(t, "10 — — O O O O O O O O", view[10])
	})
}
