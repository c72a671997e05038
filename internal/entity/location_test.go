package entity

import (
	"testing"

	"github.com/rocketscienceinc/battleship/internal/coord"
	"github.com/stretchr/testify/assert"
)

func TestLocation_RecordGuess(t *testing.T) {
	t.Run("Empty cell becomes a miss", func(t *testing.T) {
		// Given: an unoccupied location
		location := NewLocation(coord.New(2, 2))

		// When: it is guessed
		state := location.RecordGuess()

		// Then: it is a miss and stays a miss
		assert.Equal(t, StateMiss, state)
		assert.Equal(t, StateMiss, location.OwnerView())
		assert.Equal(t, StateMiss, location.OpponentView())
	})

	t.Run("Occupied cell delegates to its ship", func(t *testing.T) {
		// Given: a location holding one cell of a 2 long ship
		ship := NewShip("Patrol Boat", 2, coordsOf(t, "A1", "B1"), Horizontal)
		location := NewLocation(mustCoord(t, "A1"))
		location.Ship = ship

		// When: it is guessed
		state := location.RecordGuess()

		// Then: the ship records the hit
		assert.Equal(t, StateHit, state)
		assert.Equal(t, StateHit, location.State)
		assert.True(t, ship.IsHit(mustCoord(t, "A1")))
	})

	t.Run("Guessing a cell twice does not count a second hit", func(t *testing.T) {
		// Given: a 2 long ship with one cell already guessed
		ship := NewShip("Patrol Boat", 2, coordsOf(t, "A1", "B1"), Horizontal)
		location := NewLocation(mustCoord(t, "A1"))
		location.Ship = ship
		location.RecordGuess()

		// When: the same cell is guessed again
		state := location.RecordGuess()

		// Then: the ship is still afloat
		assert.Equal(t, StateHit, state)
		assert.False(t, ship.IsSunk())
	})

	t.Run("Repeated miss stays a miss", func(t *testing.T) {
		location := NewLocation(coord.New(0, 0))
		location.RecordGuess()

		assert.Equal(t, StateMiss, location.RecordGuess())
	})
}

func TestLocation_Views(t *testing.T) {
	t.Run("Unguessed empty cell shows empty", func(t *testing.T) {
		location := NewLocation(coord.New(0, 0))

		assert.Equal(t, StateEmpty, location.OwnerView())
		assert.Equal(t, StateEmpty, location.OpponentView())
	})

	t.Run("Unguessed ship cell is visible only to the owner", func(t *testing.T) {
		location := NewLocation(mustCoord(t, "A1"))
		location.Ship = NewShip("Cruiser", 3, coordsOf(t, "A1", "A2", "A3"), Vertical)

		assert.Equal(t, StateVertical, location.OwnerView())
		assert.Equal(t, StateEmpty, location.OpponentView())
	})
}
