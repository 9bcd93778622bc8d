package searcher

import (
	"hex/game"
	"hex/graph"
	"math"
	"sync"
)

// node is a position of the UCT tree. Statistics are kept from the point of
// view of player, the color whose move led here, so a parent picks the child
// that is best for the side it moves for.
type node struct {
	sync.Mutex
	parent   *node
	player   graph.Color
	moves    []game.Coord
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, b *game.Board, player graph.Color) *node {
	var moves []game.Coord
	if b.Winner() == graph.None {
		moves = b.EmptyCells()
	}

	return &node{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// SelectOrExpand descends one level. It returns the chosen child, the board
// that child stands for and whether the descent should continue: true after
// selecting an existing child, false after expanding a new one or when b is
// terminal (the node itself is returned).
func (n *node) SelectOrExpand(b *game.Board) (*node, *game.Board, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, b, false
	}

	toMove := n.player.Opponent()
	if len(n.moves) > len(n.children) { // Expandable node
		next := successor(b, n.moves[len(n.children)], toMove)
		child := newNode(n, next, toMove)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, next, false
	}

	// Fully expanded node
	ith := n.pickChild()
	child := n.children[ith]
	child.applyLoss()
	return child, successor(b, n.moves[ith], toMove), true
}

func (n *node) pickChild() int {
	// Concurrent episodes may expand every child before the first backup
	// reaches n.
	normalizer := CSquared * math.Log(float64(max(n.visits, 1)))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss counts an in-flight visit as a loss so that concurrent episodes
// spread over different children.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += LOSS
	n.visits++
}

func (n *node) reverseLoss() {
	n.rewards -= LOSS
	n.visits--
}

func (n *node) score(normalizer float64) float64 {
	n.Lock()
	defer n.Unlock()

	return ucb1(n.rewards, n.visits, normalizer)
}

// Backup records the outcome of an episode and returns the parent.
func (n *node) Backup(winner graph.Color) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.reverseLoss()
	}

	n.rewards += reward(winner, n.player)
	n.visits++

	return n.parent
}

func (n *node) Visits() int {
	n.Lock()
	defer n.Unlock()

	return n.visits
}

// bestMove returns the most visited move and its mean reward for the mover.
func (n *node) bestMove() (game.Coord, float64) {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	best := n.children[0]
	bestIndex := 0
	for i, child := range n.children[1:] {
		if child.Visits() > best.Visits() {
			best = child
			bestIndex = i + 1
		}
	}
	if best.visits == 0 {
		return n.moves[bestIndex], 0
	}
	return n.moves[bestIndex], best.rewards / float64(best.visits)
}
