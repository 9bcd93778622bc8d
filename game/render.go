package game

import (
	"bufio"
	"hex/graph"
	"io"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the board as a slanted grid with column letters above and
// below and row numbers on both sides. Empty cells are ".", Blue stones "o"
// and Red stones "x"; stones are colored when colored is true.
func (b *Board) Render(w io.Writer, colored bool) error {
	au := aurora.NewAurora(colored)
	bw := bufio.NewWriter(w)

	letters := b.letters()
	bw.WriteString(" " + letters + "\n")
	for row := 0; row < b.size; row++ {
		label := strconv.Itoa(row + 1)
		// Keep the grid slanted by one column per row whatever the width of
		// the row label.
		bw.WriteString(strings.Repeat(" ", row+1-len(label)))
		bw.WriteString(label + " ")
		for col := 0; col < b.size; col++ {
			switch b.Color(Coord{Row: row, Col: col}) {
			case graph.Blue:
				bw.WriteString(au.Blue("o").String())
			case graph.Red:
				bw.WriteString(au.Red("x").String())
			default:
				bw.WriteString(".")
			}
			bw.WriteString(" ")
		}
		bw.WriteString(label + "\n")
	}
	bw.WriteString(strings.Repeat(" ", b.size) + letters + "\n")

	return bw.Flush()
}

func (b *Board) letters() string {
	var sb strings.Builder
	for col := 0; col < b.size; col++ {
		sb.WriteString(" ")
		sb.WriteRune(rune('A' + col))
	}
	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder
	b.Render(&sb, false)
	return sb.String()
}
