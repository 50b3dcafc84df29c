package view

import "github.com/phanxgames/sunflower"

// nodeIDCounter is a plain counter (no atomic, the viewer is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is one entry of the display tree. Containers have no shape; shape
// nodes draw a tessellated geometry filled with Color.
type Node struct {
	// Identity
	ID    uint32
	Name  string
	Index int // element index, 0 for containers

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64 // radians, counter-clockwise in a y-up world
	// Z orders drawing. Children add their Z to the parent's.
	Z float64

	// Computed during traversal
	worldTransform [6]float64
	worldZ         float64
	transformDirty bool

	Visible bool
	Color   sunflower.Color

	mesh *meshData

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Color = sunflower.ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// newShapeNode creates a node drawing mesh with the given fill.
func newShapeNode(name string, mesh *meshData, fill sunflower.Color) *Node {
	n := &Node{Name: name, mesh: mesh}
	nodeDefaults(n)
	n.Color = fill
	return n
}

// HasShape reports whether the node draws anything itself.
func (n *Node) HasShape() bool {
	return n.mesh != nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this node.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("view: cannot add nil child")
	}
	if child.IsDisposed() || n.IsDisposed() {
		panic("view: AddChild on disposed node")
	}
	if isAncestor(child, n) {
		panic("view: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("view: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// DisposeChildren disposes every child and its subtree.
func (n *Node) DisposeChildren() {
	for i, child := range n.children {
		child.Parent = nil
		child.dispose()
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.mesh = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
