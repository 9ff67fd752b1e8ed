// Package maze provides the fixed node set, the weighted edge list, and
// graph file loading for the rat maze.
// See design doc Section 3.1.
package maze

import "fmt"

// Node identifies one location in the fixed maze topology.
type Node uint8

const (
	Exit     Node = iota // Vestibule where the rat enters and is released
	Nest                 // Sleep
	Food                 // Hunger
	AlcoveA              // Corridor junction, never a destination
	Wheel                // Fun
	AlcoveB              // Corridor junction, never a destination
	Medicine             // Health
)

// NodeCount is the number of vertices in the fixed topology.
const NodeCount = 7

// labels maps each Node to its single-character graph-file label.
var labels = [NodeCount]byte{'E', 'N', 'F', 'A', 'W', 'B', 'M'}

var names = [NodeCount]string{
	"Exit", "Nest", "Food", "AlcoveA", "Wheel", "AlcoveB", "Medicine",
}

// Label returns the node's graph-file character.
func (n Node) Label() byte {
	return labels[n]
}

func (n Node) String() string {
	if int(n) >= NodeCount {
		return fmt.Sprintf("Node(%d)", uint8(n))
	}
	return names[n]
}

// ParseNode maps a graph-file label back to its Node.
func ParseNode(label byte) (Node, error) {
	for i, l := range labels {
		if l == label {
			return Node(i), nil
		}
	}
	return 0, fmt.Errorf("unknown node label %q", string(label))
}
