// Package hdt implements the leveled variant of the Holm-de
// Lichtenberg-Thorup dynamic spanning forest: every node carries a
// stack of "level" Euler-tour trees, and a tree-edge deletion's
// replacement search walks levels from the edge's own level down to
// 0, promoting the edges it passes over so that the amortized cost of
// future deletions stays bounded.
package hdt

import "github.com/cnrc-go/dynagraph/ett"

// levelNode is one node's participation in the Euler-tour tree at a
// single level. Every Node always has a levelNode at level 0; higher
// levels are allocated lazily as edges are promoted into them.
type levelNode struct {
	ett.Node
	edges     map[*Edge]struct{}
	superNode *Node
}

// levelEdge is one tree edge's participation in the Euler-tour tree
// at a single level. A tree Edge holds one levelEdge per level from 0
// up to its current level.
type levelEdge struct {
	ett.Edge
	superEdge *Edge
}

// Node is one vertex of the forest.
type Node struct {
	levelNodes []*levelNode
}

// Edge is one edge of the graph, either a tree edge of the current
// spanning forest or a non-tree edge held as a replacement candidate.
// Either kind starts at level 0 and may be promoted to higher levels
// by a replacement search.
type Edge struct {
	nodeA, nodeB *Node
	level        int
	isTreeEdge   bool
	levelEdges   []*levelEdge
}

// Init prepares n for use. A Node must be initialized before it is
// passed to any hdt operation.
func (n *Node) Init() {
	n.levelNodes = nil
	n.level(0)
}

// level returns n's levelNode at level l, allocating it if this is
// the first time n has been promoted to that level. Levels are always
// allocated in order, one at a time, matching the depth an edge
// actually reaches.
func (n *Node) level(l int) *levelNode {
	if l == len(n.levelNodes) {
		ln := &levelNode{superNode: n, edges: make(map[*Edge]struct{})}
		ln.Node.Init(ln)
		n.levelNodes = append(n.levelNodes, ln)
	}
	return n.levelNodes[l]
}

func ownerLN(n *ett.Node) *levelNode {
	return n.Owner().(*levelNode)
}

// Valid reports whether e currently denotes a live edge.
func (e *Edge) Valid() bool {
	return e.nodeA != nil && e.nodeB != nil
}

// IsTreeEdge reports whether e is currently part of the spanning
// forest (as opposed to a held-in-reserve non-tree edge).
func (e *Edge) IsTreeEdge() bool {
	return e.isTreeEdge
}

// Level returns e's current level in the replacement-search hierarchy.
func (e *Edge) Level() int {
	return e.level
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
	return ett.ClusterSize(&c.rep.levelNodes[0].Node)
}

// Nodes returns an iterator over every node in the cluster.
func (c Cluster) Nodes() *NodeIterator {
	return &NodeIterator{it: ett.NodeView(&c.rep.levelNodes[0].Node)}
}

// NodeIterator walks the nodes of a Cluster.
type NodeIterator struct {
	it *ett.NodeIterator
}

// Done reports whether the iterator has visited every node.
func (it *NodeIterator) Done() bool { return it.it.Done() }

// Node returns the node the iterator currently refers to.
func (it *NodeIterator) Node() *Node { return ownerLN(it.it.Node()).superNode }

// Next advances to the following node.
func (it *NodeIterator) Next() { it.it.Next() }
