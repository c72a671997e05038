package entity

import (
	"slices"

	"github.com/rocketscienceinc/battleship/internal/coord"
)

type Player struct {
	Name  string  `json:"name"`
	Board *Board  `json:"-"`
	Ships []*Ship `json:"ships"`

	guesses []coord.Coordinate
}

func NewPlayer(name string, board *Board) *Player {
	return &Player{
		Name:  name,
		Board: board,
	}
}

func (that *Player) AddShip(ship *Ship) {
	that.Ships = append(that.Ships, ship)
}

// HasRemainingFleet - true while at least one ship is afloat. An empty fleet has nothing left.
func (that *Player) HasRemainingFleet() bool {
	for _, ship := range that.Ships {
		if !ship.IsSunk() {
			return true
		}
	}

	return false
}

func (that *Player) RecordGuess(c coord.Coordinate) {
	that.guesses = append(that.guesses, c)
}

func (that *Player) HasGuessed(c coord.Coordinate) bool {
	return slices.Contains(that.guesses, c)
}

func (that *Player) Guesses() []coord.Coordinate {
	return slices.Clone(that.guesses)
}
