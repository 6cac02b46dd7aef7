package dsf

import "github.com/cnrc-go/dynagraph/ett"

// Forest provides the dynamic-spanning-forest operations. It holds no
// state of its own; all state lives in the Nodes and Edges passed to
// it. The zero Forest is ready to use.
type Forest struct{}

// CreateEdge adds e between n1 and n2. It reports whether e became a
// tree edge, merging the two clusters (false means n1 and n2 were
// already connected and e is held as a non-tree edge).
func (g *Forest) CreateEdge(n1, n2 *Node, e *Edge) bool {
	e.nodeA = n1
	e.nodeB = n2
	n1.edges[e] = struct{}{}
	n2.edges[e] = struct{}{}
	if ett.HasPath(&n1.Node, &n2.Node) {
		e.treeEdge = false
		return false
	}
	replaceWith(e)
	return true
}

// DeleteEdge removes e from the graph. It reports whether removing e
// split a cluster (true only when e was a tree edge and no
// replacement edge could be found).
func (g *Forest) DeleteEdge(e *Edge) bool {
	delete(e.nodeA.edges, e)
	delete(e.nodeB.edges, e)
	clusterSplit := false
	if e.treeEdge {
		ett.DeleteEdge(&e.Edge)
		clusterSplit = !checkReplacement(e)
	}
	e.invalidate()
	return clusterSplit
}

// HasPath reports whether a and b lie in the same cluster.
func (g *Forest) HasPath(a, b *Node) bool {
	return ett.HasPath(&a.Node, &b.Node)
}

// Cluster returns a view of n's connected component.
func (g *Forest) Cluster(n *Node) Cluster {
	return Cluster{rep: g.ClusterRep(n)}
}

// ClusterSize returns the number of nodes in n's component.
func (g *Forest) ClusterSize(n *Node) int {
	return ett.ClusterSize(ett.ClusterRep(&n.Node))
}

// ClusterRep returns the canonical representative of n's component.
func (g *Forest) ClusterRep(n *Node) *Node {
	return owner(ett.ClusterRep(&n.Node))
}

// IsClusterRep reports whether n is its component's representative.
func (g *Forest) IsClusterRep(n *Node) bool {
	return g.ClusterRep(n) == n
}

// Edges returns every edge (tree and non-tree) incident to n.
func (g *Forest) Edges(n *Node) []*Edge {
	out := make([]*Edge, 0, len(n.edges))
	for e := range n.edges {
		out = append(out, e)
	}
	return out
}

// Node1 returns e's first endpoint.
func (g *Forest) Node1(e *Edge) *Node { return e.nodeA }

// Node2 returns e's second endpoint.
func (g *Forest) Node2(e *Edge) *Node { return e.nodeB }

func replaceWith(e *Edge) {
	ett.CreateEdge(&e.nodeA.Node, &e.nodeB.Node, &e.Edge)
	e.treeEdge = true
}

// checkReplacement is called immediately after a tree edge has been
// removed from the Euler-tour tree. It searches the smaller of the
// two resulting components for a non-tree edge crossing back to the
// larger one, promoting the first one it finds.
func checkReplacement(e *Edge) bool {
	r1 := ett.ClusterRep(&e.nodeA.Node)
	r2 := ett.ClusterRep(&e.nodeB.Node)
	sz1 := ett.ClusterSize(r1)
	sz2 := ett.ClusterSize(r2)
	if sz1 < sz2 {
		return searchForReplacement(owner(r1), owner(r2))
	}
	return searchForReplacement(owner(r2), owner(r1))
}

func searchForReplacement(smaller, larger *Node) bool {
	for it := ett.NodeView(&smaller.Node); !it.Done(); it.Next() {
		n := owner(it.Node())
		for e := range n.edges {
			m := e.nodeB
			if m == n {
				m = e.nodeA
			}
			if owner(ett.ClusterRep(&m.Node)) == larger {
				replaceWith(e)
				return true
			}
		}
	}
	return false
}
