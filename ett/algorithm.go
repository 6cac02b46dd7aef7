package ett

import "github.com/cnrc-go/dynagraph/ost"

// CreateEdge links n1 and n2 with e, splicing the tour of n2's
// component into n1's tour. n1 and n2 must not already be connected.
func CreateEdge(n1, n2 *Node, e *Edge) {
	o1h := makeHead(n1)
	o1r := ost.FindRoot(o1h)
	o1t := ost.FindTail(o1r)
	o2h := makeHead(n2)
	o2r := ost.FindRoot(o2h)
	o2t := ost.FindTail(o2r)
	ost.Join(o1t, o2h)

	ont := &occurrence{node: n1, isActive: false}
	ost.Singleton(ont)
	ost.InsertAfter(o2t, ont)

	o1t.rightEdge = e
	o2h.leftEdge = e
	e.o1 = o1t
	e.o2 = o2h
	ont.leftEdge = e
	o2t.rightEdge = e
	e.o3 = o2t
	e.o4 = ont
}

// DeleteEdge removes e from its component, splitting the tour into
// the two pieces that were joined at e.
func DeleteEdge(e *Edge) {
	ost.SplitAfter(e.o1)
	ost.SplitAfter(e.o3)
	if ost.FindRoot(e.o1) == ost.FindRoot(e.o4) {
		join(e.o3, e.o2)
		e.o4.leftEdge = nil
		e.o1.rightEdge = nil
	} else {
		join(e.o1, e.o4)
		e.o2.leftEdge = nil
		e.o3.rightEdge = nil
	}
	e.o1, e.o2, e.o3, e.o4 = nil, nil, nil, nil
}

// HasPath reports whether a and b lie in the same component.
func HasPath(a, b *Node) bool {
	return ost.FindRoot(a.active) == ost.FindRoot(b.active)
}

// IsClusterRep reports whether n is the canonical representative of
// its component (the node whose occurrence heads the tour).
func IsClusterRep(n *Node) bool {
	return ClusterRep(n) == n
}

// ClusterRep returns the canonical representative of n's component:
// the node at the head of the Euler tour.
func ClusterRep(n *Node) *Node {
	return ost.FindHead(ost.FindRoot(n.active)).node
}

// ClusterSize returns the number of nodes in n's component.
func ClusterSize(n *Node) int {
	r := ost.FindRoot(n.active)
	return (ost.Size(r) + 1) / 2
}

// join merges the tour ending at p with the tour starting at q,
// collapsing p's occurrence into q's (the adjacent-occurrence merge
// that keeps the Euler tour from accumulating one inert occurrence
// per edge deletion/makeHead).
func join(p, q *occurrence) {
	if pp, ok := ost.Previous(p); ok {
		ost.Remove(p)
		ost.Join(pp, q)
		putOccurrenceOnEdge(pp, q)
	}
	if p.isActive {
		p.node.active = q
		q.isActive = true
	}
}

// makeHead rotates n's component's tour so that n's active occurrence
// becomes the first element of the sequence, and returns it.
func makeHead(n *Node) *occurrence {
	newHead := n.active
	oldRoot := ost.FindRoot(newHead)
	oldHead := ost.FindHead(oldRoot)
	if oldHead.node == n {
		return oldHead
	}
	oldTail := ost.FindTail(oldRoot)
	leftOfOldTail, _ := ost.Previous(oldTail)
	leftOfNewTail, _ := ost.Previous(newHead)

	newTail := &occurrence{node: n, isActive: false}
	ost.Singleton(newTail)

	ost.SplitBefore(newHead)
	ost.Remove(oldTail)
	ost.Join(leftOfOldTail, oldHead)
	ost.InsertAfter(leftOfNewTail, newTail)

	newHead.leftEdge = nil
	putOccurrenceOnEdge(leftOfOldTail, oldHead)
	putOccurrenceOnEdge(leftOfNewTail, newTail)

	if oldTail.isActive {
		oldTail.node.active = oldHead
		oldHead.isActive = true
	}
	return newHead
}

// putOccurrenceOnEdge re-points the edge bracketing left's tour
// position at right, after right has just been spliced in
// immediately after left.
func putOccurrenceOnEdge(left, right *occurrence) {
	e := left.rightEdge
	right.leftEdge = e
	if e.o1 == left {
		e.o2 = right
	} else {
		e.o4 = right
	}
}
