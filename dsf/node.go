// Package dsf implements a dynamic spanning forest without edge
// levels over an Euler-tour tree (the leveled Holm-de
// Lichtenberg-Thorup variant is package hdt): it classifies edges as
// tree or non-tree, and on deletion of a tree edge searches the
// smaller of the two resulting components for a non-tree edge that
// can replace it.
package dsf

import "github.com/cnrc-go/dynagraph/ett"

// Node is one vertex of the forest.
type Node struct {
	ett.Node
	edges map[*Edge]struct{}
}

// Edge is one edge of the graph, either a tree edge of the current
// spanning forest or a non-tree edge held in reserve as a
// replacement candidate.
type Edge struct {
	ett.Edge
	nodeA, nodeB *Node
	treeEdge     bool
}

// Init prepares n for use. A Node must be initialized before it is
// passed to any dsf operation.
func (n *Node) Init() {
	n.Node.Init(n)
	n.edges = make(map[*Edge]struct{})
}

// owner recovers the *Node that embeds an *ett.Node returned by one
// of ett's cluster views.
func owner(n *ett.Node) *Node {
	return n.Owner().(*Node)
}

// Valid reports whether e currently denotes a live edge. An Edge that
// has never been created, or that has been deleted, is invalid.
func (e *Edge) Valid() bool {
	return e.nodeA != nil && e.nodeB != nil
}

// IsTreeEdge reports whether e is currently part of the spanning
// forest (as opposed to a held-in-reserve non-tree edge).
func (e *Edge) IsTreeEdge() bool {
	return e.treeEdge
}

func (e *Edge) invalidate() {
	e.nodeA = nil
	e.nodeB = nil
}

// Cluster is a read-through view of one connected component.
type Cluster struct {
	rep *Node
}

// Representative returns the canonical node of the cluster.
func (c Cluster) Representative() *Node { return c.rep }

// Size returns the number of nodes in the cluster.
func (c Cluster) Size() int {
	if c.rep == nil {
		return 0
	}
	return ett.ClusterSize(&c.rep.Node)
}

// Nodes returns an iterator over every node in the cluster.
func (c Cluster) Nodes() *NodeIterator {
	return &NodeIterator{it: ett.NodeView(&c.rep.Node)}
}

// NodeIterator walks the nodes of a Cluster.
type NodeIterator struct {
	it *ett.NodeIterator
}

// Done reports whether the iterator has visited every node.
func (it *NodeIterator) Done() bool { return it.it.Done() }

// Node returns the node the iterator currently refers to.
func (it *NodeIterator) Node() *Node { return owner(it.it.Node()) }

// Next advances to the following node.
func (it *NodeIterator) Next() { it.it.Next() }
