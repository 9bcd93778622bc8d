package searcher

import (
	"hex/game"
	"hex/graph"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

/*
UCT nodes with virtual loss:
- select or expand:
	- expandable node -> next unexplored move as new child + loss, child board
	- fully expanded node -> max UCB child + loss, child board
	- terminal node -> same node, same board
- backup: reverse loss, visits++, reward for the player who moved into the node
- root: no loss to reverse
*/

func TestNodeSelectOrExpand(t *testing.T) {
	t.Run("expanding the next unexplored move", func(t *testing.T) {
		b := game.NewBoard(2)
		root := newNode(nil, b, graph.Red)

		child, childBoard, selected := root.SelectOrExpand(b)

		require.False(t, selected, "Expansion should end the descent")
		require.Len(t, root.children, 1)
		require.Same(t, root.children[0], child)
		require.Equal(t, graph.Blue, child.player, "Child should belong to the player to move")
		require.Equal(t, LOSS, child.rewards, "Child should apply a temporary loss")
		require.Equal(t, 1, child.visits, "Child should apply a temporary loss")
		require.Equal(t, graph.Blue, childBoard.Color(game.Coord{Row: 0, Col: 0}))
		require.Equal(t, graph.None, b.Color(game.Coord{Row: 0, Col: 0}), "Parent board should not change")
		require.Len(t, child.moves, 3)
	})

	t.Run("selecting fully expanded node", func(t *testing.T) {
		maxChild := &node{player: graph.Blue, rewards: 1, visits: 1}
		otherChild := &node{player: graph.Blue, rewards: -1, visits: 1}
		n := &node{
			player:   graph.Red,
			moves:    []game.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
			children: []*node{otherChild, maxChild},
			visits:   2,
		}

		child, childBoard, selected := n.SelectOrExpand(game.NewBoard(2))

		require.True(t, selected, "Node should perform selection")
		require.Same(t, maxChild, child, "Node should select child with max UCB value")
		require.Equal(t, 1+LOSS, maxChild.rewards, "Child should apply a temporary loss")
		require.Equal(t, 2, maxChild.visits, "Child should apply a temporary loss")
		require.Equal(t, graph.Blue, childBoard.Color(game.Coord{Row: 0, Col: 1}))
		require.Equal(t, 2, n.visits, "Node stats should not change")
	})

	t.Run("selecting unvisited child first", func(t *testing.T) {
		visited := &node{player: graph.Blue, rewards: 1, visits: 1}
		unvisited := &node{player: graph.Blue}
		n := &node{
			player:   graph.Red,
			moves:    []game.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
			children: []*node{visited, unvisited},
			visits:   1,
		}

		child, _, _ := n.SelectOrExpand(game.NewBoard(2))

		require.Same(t, unvisited, child)
	})

	t.Run("terminal node", func(t *testing.T) {
		b := game.NewBoard(2)
		b.Play(game.Coord{Row: 0, Col: 0}, graph.Blue)
		b.Play(game.Coord{Row: 0, Col: 1}, graph.Blue)
		n := newNode(nil, b, graph.Blue)

		child, childBoard, selected := n.SelectOrExpand(b)

		require.False(t, selected)
		require.Same(t, n, child)
		require.Same(t, b, childBoard)
		require.Empty(t, n.moves, "A won position has no moves")
	})
}

func TestNodeBackup(t *testing.T) {
	root := &node{player: graph.Red}
	child := &node{parent: root, player: graph.Blue}
	child.applyLoss()

	parent := child.Backup(graph.Blue)
	require.Same(t, root, parent)
	require.Equal(t, WIN, child.rewards, "Backup should reverse the loss and add the reward")
	require.Equal(t, 1, child.visits)

	require.Nil(t, root.Backup(graph.Blue))
	require.Equal(t, LOSS, root.rewards, "Root has no loss to reverse")
	require.Equal(t, 1, root.visits)
}

func TestBestMove(t *testing.T) {
	n := &node{
		moves: []game.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
		children: []*node{
			{rewards: 1, visits: 3},
			{rewards: 4, visits: 5},
			{rewards: 2, visits: 5},
		},
	}

	move, score := n.bestMove()

	require.Equal(t, game.Coord{Row: 0, Col: 1}, move, "Most visited child should win, first on ties")
	require.Equal(t, 0.8, score)
}

func TestTreeSearch(t *testing.T) {
	t.Run("finds a winning move", func(t *testing.T) {
		s := New(TreeSearch, WithIterations(3000), WithSeed(7), WithMetrics())

		got := s.Search(threatBoard(t), graph.Blue)

		winning := []game.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}
		require.Contains(t, winning, got.Move)
		require.Positive(t, got.Score)
		require.Equal(t, "uct", got.Metric.Strategy)
		require.Positive(t, got.Metric.Rollouts)
	})

	t.Run("parallel episodes are all backed up", func(t *testing.T) {
		b := game.NewBoard(3)
		s := New(TreeSearch, WithIterations(500), WithGoroutines(4), WithSeed(3))
		root := newNode(nil, b, graph.Red)

		s.iterate(root, b)

		require.Equal(t, 500, root.visits)
		total := 0
		for _, child := range root.children {
			total += child.visits
			require.LessOrEqual(t, child.rewards, float64(child.visits), "Virtual losses should all be reversed")
			require.GreaterOrEqual(t, child.rewards, -float64(child.visits))
		}
		require.Equal(t, 500, total)
	})

	t.Run("runs until the duration elapses", func(t *testing.T) {
		s := New(TreeSearch, WithDuration(20*time.Millisecond), WithGoroutines(2))

		got := s.Search(game.NewBoard(3), graph.Red)

		require.True(t, got.Move.In(3))
	})

	t.Run("finished board", func(t *testing.T) {
		b := game.NewBoard(2)
		b.Play(game.Coord{Row: 0, Col: 0}, graph.Red)
		b.Play(game.Coord{Row: 1, Col: 0}, graph.Red)

		got := New(TreeSearch, WithIterations(10)).Search(b, graph.Red)

		require.Equal(t, game.WinScore, got.Score)
		require.Equal(t, game.Coord{}, got.Move)
	})
}
