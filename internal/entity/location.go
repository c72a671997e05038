package entity

import "github.com/rocketscienceinc/battleship/internal/coord"

// Location - one board cell. Hit and Sunk are rendered live from the ship,
// while Miss is only ever remembered here.
type Location struct {
	Coord coord.Coordinate `json:"coord"`
	Ship  *Ship            `json:"-"`
	State State            `json:"state"`
}

func NewLocation(c coord.Coordinate) *Location {
	return &Location{
		Coord: c,
		State: StateEmpty,
	}
}

func (that *Location) IsOccupied() bool {
	return that.Ship != nil
}

// RecordGuess - resolves a guess at this cell. A cell that was already guessed keeps its state.
func (that *Location) RecordGuess() State {
	if that.State != StateEmpty {
		return that.OpponentView()
	}

	if that.Ship == nil {
		that.State = StateMiss
		return that.State
	}

	that.State = that.Ship.RegisterHit(that.Coord)

	return that.State
}

func (that *Location) OwnerView() State {
	if that.Ship != nil {
		return that.Ship.OwnerView(that.Coord)
	}

	return that.State
}

func (that *Location) OpponentView() State {
	if that.Ship != nil {
		return that.Ship.OpponentView(that.Coord)
	}

	return that.State
}
