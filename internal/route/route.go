// Package route implements the Dijkstra shortest-path search that moves
// the rat between maze locations.
// See design doc Section 3.2.
package route

import (
	"errors"
	"fmt"

	"github.com/kbrimm/Flowers-for-Algorithm/internal/maze"
)

// ErrUnreachable reports that the search exhausted its frontier without
// reaching the target. The fixed topology never produces this; it exists
// so a bad graph file cannot loop forever.
var ErrUnreachable = errors.New("target unreachable")

// Find runs a single-source Dijkstra search over g and returns the
// shortest travel distance from one node to another, plus the node
// arrived at (always the target on success).
//
// Find prunes g as vertices settle, so pass a Clone of the base graph;
// callers own one working copy per search and discard it afterward.
func Find(g *maze.Graph, from, to maze.Node) (int, maze.Node, error) {
	if from == to {
		return 0, to, nil
	}

	// Infinity stand-in: strictly greater than any achievable path sum.
	inf := g.TotalWeight() + 1

	var dist [maze.NodeCount]int
	var visited [maze.NodeCount]bool
	for i := range dist {
		dist[i] = inf
	}
	dist[from] = 0

	current := from
	for current != to {
		// Relax all corridors leading out of the current vertex.
		for _, e := range g.Edges {
			if e.From != current {
				continue
			}
			if d := dist[current] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
		}

		// Settle the current vertex: nothing may relax into it again.
		g.RemoveInbound(current)
		visited[current] = true

		next, ok := nearest(&dist, &visited, inf)
		if !ok {
			return inf, current, fmt.Errorf("%s to %s: %w", from, to, ErrUnreachable)
		}
		current = next
	}

	return dist[to], to, nil
}

// nearest picks the unsettled vertex with the smallest finite tentative
// distance. Earliest index wins ties.
func nearest(dist *[maze.NodeCount]int, visited *[maze.NodeCount]bool, inf int) (maze.Node, bool) {
	best := inf
	var pick maze.Node
	found := false
	for i := 0; i < maze.NodeCount; i++ {
		if !visited[i] && dist[i] < best {
			best = dist[i]
			pick = maze.Node(i)
			found = true
		}
	}
	return pick, found
}
