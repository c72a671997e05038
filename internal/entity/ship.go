package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/coord"
)

type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParseOrientation - accepts anything starting with "v" or "h", case-insensitive.
func ParseOrientation(text string) (Orientation, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return "", fmt.Errorf("%w: blank", apperror.ErrInvalidOrientation)
	}

	switch text[0] {
	case 'v':
		return Vertical, nil
	case 'h':
		return Horizontal, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidOrientation, text)
	}
}

// ShipCoords - generates size coordinates starting at anchor, running right for Horizontal
// and down for Vertical. Only the two ends are bounds checked; a straight run between two
// on-board cells is on board.
func ShipCoords(anchor coord.Coordinate, size int, orientation Orientation, boardSize int) ([]coord.Coordinate, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidShipSize, size)
	}

	var rowStep, colStep int
	switch orientation {
	case Vertical:
		rowStep = 1
	case Horizontal:
		colStep = 1
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidOrientation, orientation)
	}

	coords := make([]coord.Coordinate, 0, size)
	for i := 0; i < size; i++ {
		coords = append(coords, coord.New(anchor.Row+i*rowStep, anchor.Col+i*colStep))
	}

	first, last := coords[0], coords[len(coords)-1]
	if !first.InBounds(boardSize) || !last.InBounds(boardSize) {
		return nil, fmt.Errorf("%w: ship from %s to %s", apperror.ErrOutOfBounds, first, last)
	}

	return coords, nil
}

type Ship struct {
	Name        string             `json:"name"`
	Size        int                `json:"size"`
	Coords      []coord.Coordinate `json:"coords"`
	Orientation Orientation        `json:"orientation"`

	hits []coord.Coordinate
	sunk bool
}

func NewShip(name string, size int, coords []coord.Coordinate, orientation Orientation) *Ship {
	return &Ship{
		Name:        name,
		Size:        size,
		Coords:      coords,
		Orientation: orientation,
		hits:        make([]coord.Coordinate, 0, size),
	}
}

func (that *Ship) Occupies(c coord.Coordinate) bool {
	return slices.Contains(that.Coords, c)
}

func (that *Ship) IsHit(c coord.Coordinate) bool {
	return slices.Contains(that.hits, c)
}

func (that *Ship) IsSunk() bool {
	return that.sunk
}

func (that *Ship) Hits() []coord.Coordinate {
	return slices.Clone(that.hits)
}

// RegisterHit - records a hit at c and returns StateHit, or StateSunk once every cell is hit.
// A coordinate the ship does not occupy is ignored and StateEmpty is returned.
func (that *Ship) RegisterHit(c coord.Coordinate) State {
	if !that.Occupies(c) {
		return StateEmpty
	}

	if !that.IsHit(c) {
		that.hits = append(that.hits, c)
	}

	if len(that.hits) == that.Size {
		that.sunk = true
	}

	if that.sunk {
		return StateSunk
	}

	return StateHit
}

// OwnerView - Sunk, Hit, or the orientation marker.
func (that *Ship) OwnerView(c coord.Coordinate) State {
	switch {
	case that.sunk:
		return StateSunk
	case that.IsHit(c):
		return StateHit
	case that.Orientation == Vertical:
		return StateVertical
	default:
		return StateHorizontal
	}
}

// OpponentView - like OwnerView but never gives away an intact segment.
func (that *Ship) OpponentView(c coord.Coordinate) State {
	switch {
	case that.sunk:
		return StateSunk
	case that.IsHit(c):
		return StateHit
	default:
		return StateEmpty
	}
}
