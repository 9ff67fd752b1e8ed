package maze

// EdgeCount is the number of directed edges in the fixed maze topology.
const EdgeCount = 18

// Edge is one directed, weighted corridor segment.
type Edge struct {
	From   Node
	To     Node
	Weight int
}

// Graph holds the maze edge list. The base graph loaded at startup is
// immutable; searches operate on a Clone and may prune it.
type Graph struct {
	Edges []Edge
}

// Clone returns an independent working copy for a single search.
func (g *Graph) Clone() *Graph {
	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)
	return &Graph{Edges: edges}
}

// RemoveInbound drops every edge terminating at n, so a settled vertex
// can never be relaxed into again. Call only on a working copy.
func (g *Graph) RemoveInbound(n Node) {
	kept := g.Edges[:0]
	for _, e := range g.Edges {
		if e.To != n {
			kept = append(kept, e)
		}
	}
	g.Edges = kept
}

// TotalWeight returns the sum of all edge weights. Any real path costs
// strictly less, which makes TotalWeight+1 a safe infinity stand-in.
func (g *Graph) TotalWeight() int {
	sum := 0
	for _, e := range g.Edges {
		sum += e.Weight
	}
	return sum
}
