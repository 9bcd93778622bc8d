package graph

import (
	"github.com/rhartert/sparsesets"
	"golang.org/x/exp/slices"
)

// Component is a set of vertices reached by a connectivity query.
type Component struct {
	set *sparsesets.Set
}

func (c Component) Contains(v int) bool {
	return c.set.Contains(v)
}

// Members returns the vertices of the component in ascending order.
func (c Component) Members() []int {
	members := slices.Clone(c.set.Content())
	slices.Sort(members)
	return members
}

func (c Component) Len() int {
	return len(c.set.Content())
}

// Connections returns every vertex of the seed's color reachable from seed by
// following only edges of that color. Vertices of another color are walked
// through but are not members. The seed itself is always a member, even when
// it is uncolored and has no matching edges.
func Connections(g *Graph, seed int) Component {
	color := g.VertexColor(seed)
	visited := sparsesets.New(g.Len())
	members := sparsesets.New(g.Len())
	visited.Insert(seed)
	members.Insert(seed)

	stack := []int{seed}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Edges(v) {
			if e.Color != color || visited.Contains(e.To) {
				continue
			}
			visited.Insert(e.To)
			if g.VertexColor(e.To) == color {
				members.Insert(e.To)
			}
			stack = append(stack, e.To)
		}
	}

	return Component{set: members}
}
