// Package arena stores search nodes in a flat slice and links them by index.
package arena

// Handle identifies a node inside an Arena.
type Handle int

// NoParent marks the root of a search tree.
const NoParent Handle = -1

// Node is a single search record.
type Node[ValueType any] struct {
	Value  ValueType
	G      int
	H      int
	Parent Handle
}

// F returns the estimated total cost through the node.
func (n Node[ValueType]) F() int { return n.G + n.H }

// Arena owns every node created by one search.
type Arena[ValueType any] struct {
	nodes []Node[ValueType]
}

// New returns an arena with room for sizeHint nodes.
func New[ValueType any](sizeHint int) *Arena[ValueType] {
	return &Arena[ValueType]{nodes: make([]Node[ValueType], 0, sizeHint)}
}

// Add appends a node and returns its handle.
func (a *Arena[ValueType]) Add(value ValueType, g, h int, parent Handle) Handle {
	a.nodes = append(a.nodes, Node[ValueType]{Value: value, G: g, H: h, Parent: parent})
	return Handle(len(a.nodes) - 1)
}

// Get returns a copy of the node behind handle.
func (a *Arena[ValueType]) Get(handle Handle) Node[ValueType] {
	return a.nodes[handle]
}

// Len reports how many nodes were allocated.
func (a *Arena[ValueType]) Len() int { return len(a.nodes) }

// Trace follows parent links from handle to the root and returns the values
// in root-first order.
func (a *Arena[ValueType]) Trace(handle Handle) []ValueType {
	depth := 0
	for h := handle; h != NoParent; h = a.nodes[h].Parent {
		depth++
	}
	path := make([]ValueType, depth)
	for h := handle; h != NoParent; h = a.nodes[h].Parent {
		depth--
		path[depth] = a.nodes[h].Value
	}
	return path
}
