package entity

// State - what a cell shows, and the outcome of a guess (Miss, Hit or Sunk).
type State string

const (
	StateEmpty State = "empty"
	StateMiss  State = "miss"
	StateHit   State = "hit"
	StateSunk  State = "sunk"

	// intact ship segments, only ever shown to the owner
	StateVertical   State = "vertical"
	StateHorizontal State = "horizontal"
)

// Glyphs - single characters used to render each State.
type Glyphs struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
	Empty      string `json:"empty"`
	Miss       string `json:"miss"`
	Hit        string `json:"hit"`
	Sunk       string `json:"sunk"`
}

func DefaultGlyphs() Glyphs {
	return Glyphs{
		Vertical:   "|",
		Horizontal: "—",
		Empty:      "O",
		Miss:       ".",
		Hit:        "*",
		Sunk:       "#",
	}
}

func (that Glyphs) For(state State) string {
	switch state {
	case StateVertical:
		return that.Vertical
	case StateHorizontal:
		return that.Horizontal
	case StateMiss:
		return that.Miss
	case StateHit:
		return that.Hit
	case StateSunk:
		return that.Sunk
	default:
		return that.Empty
	}
}
