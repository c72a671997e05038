package battleship

import (
	"github.com/rocketscienceinc/battleship/internal/coord"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	StatusSetup    = "setup"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// ShipSpec - one entry of the fleet every player has to place.
type ShipSpec struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Rules - everything that used to be a process wide constant.
type Rules struct {
	BoardSize int
	Fleet     []ShipSpec
	Glyphs    entity.Glyphs
}

func DefaultFleet() []ShipSpec {
	return []ShipSpec{
		{Name: "Aircraft Carrier", Size: 5},
		{Name: "Battleship", Size: 4},
		{Name: "Submarine", Size: 3},
		{Name: "Cruiser", Size: 3},
		{Name: "Patrol Boat", Size: 2},
	}
}

func DefaultRules() Rules {
	return Rules{
		BoardSize: 10,
		Fleet:     DefaultFleet(),
		Glyphs:    entity.DefaultGlyphs(),
	}
}

type GuessResult struct {
	Guesser  string           `json:"guesser"`
	Coord    coord.Coordinate `json:"coord"`
	Outcome  entity.State     `json:"outcome"`
	SunkShip string           `json:"sunk_ship,omitempty"`
	GameOver bool             `json:"game_over"`
}
