package game

import "hex/graph"

// WinScore is the value of a won position for the winner.
const WinScore = 5.0

// Evaluate scores b from the point of view of color: WinScore if color has
// won, -WinScore if its opponent has, and 0 while there is no winner.
func Evaluate(b *Board, color graph.Color) float64 {
	switch b.Winner() {
	case graph.None:
		return 0
	case color:
		return WinScore
	default:
		return -WinScore
	}
}
