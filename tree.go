package glint

import "iter"

// NodeID identifies a node in the tree arena.
type NodeID int16

// None marks the absence of a node.
const None NodeID = -1

// treeNode is the compact link record for one node. Nodes only carry
// structure; all behavioral data lives in the Store keyed by NodeID.
type treeNode struct {
	parent     NodeID
	firstChild NodeID
	lastChild  NodeID // for O(1) append
	nextSib    NodeID
}

// Tree is an arena of nodes linked by parent indices. A child is always
// appended after its parent exists, so every parent index is strictly less
// than its child's index: ancestor walks terminate by construction and the
// tree can never contain a cycle.
type Tree struct {
	nodes []treeNode
}

// NewTree creates a tree with pre-allocated capacity.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]treeNode, 0, capacity)}
}

// Reset clears the tree for rebuild, keeping the backing array.
func (t *Tree) Reset() {
	t.nodes = t.nodes[:0]
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Valid reports whether id names a live node.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Add appends a node under parent (None for a root) and returns its id.
func (t *Tree) Add(parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		parent:     parent,
		firstChild: None,
		lastChild:  None,
		nextSib:    None,
	})
	if t.Valid(parent) {
		t.linkChild(parent, id)
	}
	return id
}

// linkChild appends child to parent's child list (O(1) with lastChild tracking).
func (t *Tree) linkChild(parent, child NodeID) {
	p := &t.nodes[parent]
	if p.firstChild < 0 {
		p.firstChild = child
		p.lastChild = child
	} else {
		t.nodes[p.lastChild].nextSib = child
		p.lastChild = child
	}
}

// Parent returns the parent of id, or None for a root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return None
	}
	return t.nodes[id].parent
}

// Children returns an iterator over id's direct children in tree order.
func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Valid(id) {
			return
		}
		for c := t.nodes[id].firstChild; c >= 0; c = t.nodes[c].nextSib {
			if !yield(c) {
				return
			}
		}
	}
}

// IsAncestor reports whether anc is id itself or one of its ancestors.
// Terminates because parent indices strictly decrease toward the root.
func (t *Tree) IsAncestor(anc, id NodeID) bool {
	if !t.Valid(anc) || !t.Valid(id) {
		return false
	}
	for n := id; n >= 0; n = t.nodes[n].parent {
		if n == anc {
			return true
		}
	}
	return false
}

// Descendants returns an iterator over id's subtree in tree order,
// excluding id itself.
func (t *Tree) Descendants(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		if !t.Valid(id) {
			return
		}
		// Node ids are assigned in creation order, so the subtree is a
		// subset of the ids after id. A linear scan with an ancestor
		// check keeps this allocation-free.
		for n := id + 1; int(n) < len(t.nodes); n++ {
			if t.IsAncestor(id, n) && n != id {
				if !yield(n) {
					return
				}
			}
		}
	}
}
