// Package ett implements an Euler-tour tree: each maximal connected
// component of an undirected forest is represented as the sequence of
// node/edge occurrences visited by an Euler tour of that component,
// maintained in an ost.Sequence. Link, cut, connectivity, and cluster
// enumeration all reduce to splits and joins of that sequence.
//
// Package ett is deliberately concrete rather than generic: unlike
// ost, there is exactly one shape of Euler-tour tree in this module,
// and dsf/hdt each embed *Node/*Edge directly rather than
// parameterizing over them.
package ett

import "github.com/cnrc-go/dynagraph/ost"

// occurrence is one visit to a Node in the Euler tour. Every Node has
// exactly one occurrence marked active at any time; Node.active
// always points at it. Occurrences are ordinary garbage-collected
// values: once an occurrence is spliced out of every sequence and no
// Edge or Node references it, it is simply no longer reachable, with
// nothing to reclaim by hand.
type occurrence struct {
	ost.Mixin[*occurrence]

	node      *Node
	leftEdge  *Edge
	rightEdge *Edge
	isActive  bool
}

// Node is one vertex of the forest. Embed it (by value) into a
// domain-specific node type to participate in an Euler-tour tree.
type Node struct {
	active *occurrence
	owner  interface{}
}

// Owner returns the value passed to Init, typically a pointer to the
// domain-specific type that embeds this Node. NodeView walks *Node
// values directly; callers that embedded Node recover their own type
// through Owner.
func (n *Node) Owner() interface{} {
	return n.owner
}

// Edge is one tree edge of the forest, created by CreateEdge and
// consumed by DeleteEdge. Embed it (by value) into a domain-specific
// edge type. An Edge that has never been linked, or that has been
// deleted, holds no occurrences and must not be passed to DeleteEdge
// again.
type Edge struct {
	o1, o2, o3, o4 *occurrence
}

// Init prepares n for use. A Node must be initialized before it is
// passed to CreateEdge, HasPath, or any other ett operation. owner is
// stored for later retrieval via Owner; pass n itself if the caller
// has no enclosing type.
func (n *Node) Init(owner interface{}) {
	o := &occurrence{node: n, isActive: true}
	ost.Singleton(o)
	n.active = o
	n.owner = owner
}
