package ett

import "github.com/cnrc-go/dynagraph/ost"

// NodeIterator walks the distinct nodes of a component in tour order.
// Every node appears in the tour once per incident tree edge, except
// the node at the head of the tour, which appears once more (a node
// with no tree edges appears exactly once); NodeIterator skips every
// occurrence but the active one so each node surfaces exactly once.
type NodeIterator struct {
	it ost.Iterator[*occurrence]
}

// NodeView returns an iterator over every node in n's component.
func NodeView(n *Node) *NodeIterator {
	seq := ost.Of(n.active)
	it := &NodeIterator{it: seq.Begin()}
	it.skipToActive()
	return it
}

func (it *NodeIterator) skipToActive() {
	for !it.it.Done() && !it.it.Node().isActive {
		it.it.Next()
	}
}

// Done reports whether the iterator has visited every node.
func (it *NodeIterator) Done() bool { return it.it.Done() }

// Node returns the node the iterator currently refers to.
func (it *NodeIterator) Node() *Node { return it.it.Node().node }

// Next advances to the following node.
func (it *NodeIterator) Next() {
	it.it.Next()
	it.skipToActive()
}

// EdgeIterator walks the distinct tree edges of a component. Each
// edge is bracketed by two occurrence pairs (o1,o2) and (o3,o4); the
// iterator only stops on the o2 occurrence of each edge so every edge
// surfaces exactly once.
type EdgeIterator struct {
	it ost.Iterator[*occurrence]
}

// EdgeView returns an iterator over every tree edge in n's component.
func EdgeView(n *Node) *EdgeIterator {
	seq := ost.Of(n.active)
	it := &EdgeIterator{it: seq.Begin()}
	it.skipToEdge()
	return it
}

func (it *EdgeIterator) isStop() bool {
	o := it.it.Node()
	return o.leftEdge != nil && o.leftEdge.o2 == o
}

func (it *EdgeIterator) skipToEdge() {
	for !it.it.Done() && !it.isStop() {
		it.it.Next()
	}
}

// Done reports whether the iterator has visited every edge.
func (it *EdgeIterator) Done() bool { return it.it.Done() }

// Edge returns the edge the iterator currently refers to.
func (it *EdgeIterator) Edge() *Edge { return it.it.Node().leftEdge }

// Next advances to the following edge.
func (it *EdgeIterator) Next() {
	it.it.Next()
	it.skipToEdge()
}
