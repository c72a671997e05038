package coord

import (
	"strconv"
	"testing"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOffset(t *testing.T) {
	t.Run("Parses letter column and one based row", func(t *testing.T) {
		// When: parsing a well formed coordinate
		c, err := ToOffset("D4")

		// Then: the offset is zero based
		require.NoError(t, err)
		assert.Equal(t, Coordinate{Row: 3, Col: 3}, c)
	})

	t.Run("Tolerates case and surrounding blanks", func(t *testing.T) {
		// When: parsing a lowercase coordinate with blanks
		c, err := ToOffset("  j10 ")

		// Then: it maps to the last cell of a 10x10 board
		require.NoError(t, err)
		assert.Equal(t, Coordinate{Row: 9, Col: 9}, c)
	})

	t.Run("Rejects malformed text", func(t *testing.T) {
		for _, text := range []string{"", "A", "1A", "AA", "A-1", "A+1", "A01", "A 1", "?3"} {
			// When: parsing text that is not letter + number
			_, err := ToOffset(text)

			// Then: ErrMalformedCoordinate is returned
			require.ErrorIs(t, err, apperror.ErrMalformedCoordinate, text)
		}
	})
}

func TestToText(t *testing.T) {
	assert.Equal(t, "A1", ToText(0, 0))
	assert.Equal(t, "J10", ToText(9, 9))
	assert.Equal(t, "C7", Coordinate{Row: 6, Col: 2}.String())
}

func TestRoundTrip(t *testing.T) {
	// Given: every legal coordinate of a 26x26 board
	for row := 0; row < MaxBoardSize; row++ {
		for col := 0; col < MaxBoardSize; col++ {
			text := ToText(row, col)

			// When: converting text -> offset -> text
			c, err := ToOffset(text)
			require.NoError(t, err)

			// Then: the text comes back unchanged
			assert.Equal(t, text, c.String())
			assert.Equal(t, Coordinate{Row: row, Col: col}, c)
		}
	}

	t.Run("Lowercase input round trips to its normalized form", func(t *testing.T) {
		c, err := ToOffset(" b7")
		require.NoError(t, err)
		assert.Equal(t, Normalize(" b7"), c.String())
	})
}

func TestIsLegal(t *testing.T) {
	t.Run("Accepts exactly the N*N cells of the board", func(t *testing.T) {
		for _, size := range []int{1, 5, 10} {
			accepted := 0
			for letter := 'A'; letter <= 'Z'; letter++ {
				for row := 0; row <= size+1; row++ {
					text := string(letter) + strconv.Itoa(row)
					inside := int(letter-'A') < size && row >= 1 && row <= size
					assert.Equal(t, inside, IsLegal(text, size), text)
					if IsLegal(text, size) {
						accepted++
					}
				}
			}
			assert.Equal(t, size*size, accepted)
		}
	})

	t.Run("Rejects malformed and off board text without failing", func(t *testing.T) {
		for _, text := range []string{"", "1A", "Z99", "K1", "A11", "A0", "A", "-"} {
			assert.False(t, IsLegal(text, 10), text)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("Returns ErrOutOfBounds for a well formed but off board coordinate", func(t *testing.T) {
		_, err := Parse("K1", 10)
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
	})

	t.Run("Returns ErrMalformedCoordinate for garbage", func(t *testing.T) {
		_, err := Parse("hello", 10)
		require.ErrorIs(t, err, apperror.ErrMalformedCoordinate)
	})

	t.Run("Returns the coordinate when legal", func(t *testing.T) {
		c, err := Parse("e5", 10)
		require.NoError(t, err)
		assert.Equal(t, New(4, 4), c)
	})
}
