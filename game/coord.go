package game

import (
	"strconv"
	"strings"
)

// MaxSize is the largest board whose columns can be named with one letter.
const MaxSize = 26

// Coord is a board cell. Rows are numbered top to bottom and columns left to
// right, both from zero.
type Coord struct {
	Row int
	Col int
}

// String formats c in board notation: the 1-based row number followed by the
// column letter, e.g. Coord{Row: 2, Col: 1} is "3B".
func (c Coord) String() string {
	return strconv.Itoa(c.Row+1) + string(rune('A'+c.Col))
}

// ParseCoord reads a cell in board notation ("3B", "10c") for a board of the
// given size. It fails on malformed text and on cells outside the board.
func ParseCoord(s string, size int) (Coord, bool) {
	s = strings.TrimSpace(s)
	pos := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	if pos == 0 || pos != len(s)-1 {
		return Coord{}, false
	}

	row, err := strconv.Atoi(s[:pos])
	if err != nil {
		return Coord{}, false
	}
	letter := s[pos]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return Coord{}, false
	}

	c := Coord{Row: row - 1, Col: int(letter - 'A')}
	if !c.In(size) {
		return Coord{}, false
	}
	return c, true
}

// In reports whether c lies on a board of the given size.
func (c Coord) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// neighbors lists the hex offsets of a cell: NW, NE, W, E, SW, SE.
var neighbors = [6]Coord{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 0},
}

// Neighbors returns the cells adjacent to c on a board of the given size.
func (c Coord) Neighbors(size int) []Coord {
	out := make([]Coord, 0, len(neighbors))
	for _, d := range neighbors {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.In(size) {
			out = append(out, n)
		}
	}
	return out
}
