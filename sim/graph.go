package sim

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Edge is a directed pin-to-pin connection.
type Edge struct {
	From Pin
	To   Pin
}

// ConnectivityGraph records which pins current can reach directly from which,
// as found by tracing source-to-ground paths.
type ConnectivityGraph struct {
	out map[Pin]map[Pin]struct{}
}

// NewConnectivityGraph returns an empty graph.
func NewConnectivityGraph() *ConnectivityGraph {
	return &ConnectivityGraph{out: make(map[Pin]map[Pin]struct{})}
}

// GraphFromPaths chains every path into edges path[i] -> path[i+1].
func GraphFromPaths(paths [][]Pin) *ConnectivityGraph {
	g := NewConnectivityGraph()
	for _, path := range paths {
		g.AddPath(path)
	}
	return g
}

func (g *ConnectivityGraph) AddEdge(from, to Pin) {
	succ, ok := g.out[from]
	if !ok {
		succ = make(map[Pin]struct{})
		g.out[from] = succ
	}
	succ[to] = struct{}{}
}

func (g *ConnectivityGraph) AddPath(path []Pin) {
	for i := 0; i+1 < len(path); i++ {
		g.AddEdge(path[i], path[i+1])
	}
}

// Union adds every edge of other to g.
func (g *ConnectivityGraph) Union(other *ConnectivityGraph) {
	for from, succ := range other.out {
		for to := range succ {
			g.AddEdge(from, to)
		}
	}
}

func (g *ConnectivityGraph) HasEdge(from, to Pin) bool {
	_, ok := g.out[from][to]
	return ok
}

// Successors returns the out-neighbours of p in ascending order.
func (g *ConnectivityGraph) Successors(p Pin) []Pin {
	out := make([]Pin, 0, len(g.out[p]))
	for to := range g.out[p] {
		out = append(out, to)
	}
	slices.Sort(out)
	return out
}

// Edges returns all edges ordered by (From, To).
func (g *ConnectivityGraph) Edges() []Edge {
	var edges []Edge
	for from, succ := range g.out {
		for to := range succ {
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})
	return edges
}

// Len returns the number of edges.
func (g *ConnectivityGraph) Len() int {
	n := 0
	for _, succ := range g.out {
		n += len(succ)
	}
	return n
}

func (g *ConnectivityGraph) String() string {
	var sb strings.Builder
	sb.WriteString("ConnectivityGraph{")
	for i, e := range g.Edges() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d->%d", e.From, e.To)
	}
	sb.WriteString("}")
	return sb.String()
}
