package sim

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
)

// FindPaths returns every pin sequence current could follow from start to a
// pin carrying a ground terminal. A branch never revisits a pin already on it,
// so the search terminates on any finite circuit. Branches that dead-end
// without reaching ground are dropped.
func (c *Circuit) FindPaths(start Pin) [][]Pin {
	var paths [][]Pin
	c.walk([]Pin{start}, &paths)
	return paths
}

// walk extends path by one pin per candidate. path is never mutated after the
// call returns: each branch gets its own copy via a full slice expression.
func (c *Circuit) walk(path []Pin, paths *[][]Pin) {
	at := path[len(path)-1]
	if c.isGround(at) {
		*paths = append(*paths, path)
		return
	}
	for _, next := range c.candidates(at) {
		if slices.Contains(path, next) {
			continue
		}
		c.walk(append(path[:len(path):len(path)], next), paths)
	}
}

// candidates lists the distinct pins reachable in one hop from at, in
// component construction order.
func (c *Circuit) candidates(at Pin) []Pin {
	var out []Pin
	for _, comp := range c.pinIndex[at] {
		for _, p := range comp.topology(at) {
			if !slices.Contains(out, p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// FindPathsFromSources runs FindPaths from every positive terminal and unions
// the results into one graph.
func (c *Circuit) FindPathsFromSources() (*ConnectivityGraph, error) {
	sources := c.Sources()
	if len(sources) == 0 {
		return nil, ErrNoPositiveSource
	}
	g := NewConnectivityGraph()
	found := 0
	for _, src := range sources {
		paths := c.FindPaths(src)
		logrus.Debugf("source %d: %d path(s) to ground", src, len(paths))
		found += len(paths)
		g.Union(GraphFromPaths(paths))
	}
	if found == 0 {
		return nil, fmt.Errorf("%w: none of %d source(s) reaches ground", ErrUnresolvedPath, len(sources))
	}
	return g, nil
}
