package hdt

import "github.com/cnrc-go/dynagraph/ett"

// Forest provides the leveled dynamic-spanning-forest operations. It
// holds no state of its own; all state lives in the Nodes and Edges
// passed to it. The zero Forest is ready to use.
type Forest struct{}

// CreateEdge adds e between n1 and n2 at level 0. It reports whether
// e became a tree edge, merging the two clusters.
func (g *Forest) CreateEdge(n1, n2 *Node, e *Edge) bool {
	e.nodeA = n1
	e.nodeB = n2
	e.level = 0
	n1.level(0).edges[e] = struct{}{}
	n2.level(0).edges[e] = struct{}{}
	if ett.HasPath(&n1.level(0).Node, &n2.level(0).Node) {
		e.isTreeEdge = false
		return false
	}
	replaceWith(e)
	return true
}

// DeleteEdge removes e from the graph. It reports whether removing e
// split a cluster.
func (g *Forest) DeleteEdge(e *Edge) bool {
	clusterSplit := false
	if e.isTreeEdge {
		eraseTreeEdge(e)
		clusterSplit = !checkReplacement(e)
	} else {
		eraseNonTreeEdge(e)
	}
	e.invalidate()
	return clusterSplit
}

// HasPath reports whether a and b lie in the same cluster.
func (g *Forest) HasPath(a, b *Node) bool {
	return ett.HasPath(&a.level(0).Node, &b.level(0).Node)
}

// Cluster returns a view of n's connected component.
func (g *Forest) Cluster(n *Node) Cluster {
	return Cluster{rep: g.ClusterRep(n)}
}

// ClusterSize returns the number of nodes in n's component.
func (g *Forest) ClusterSize(n *Node) int {
	return ett.ClusterSize(ett.ClusterRep(&n.level(0).Node))
}

// ClusterRep returns the canonical representative of n's component.
func (g *Forest) ClusterRep(n *Node) *Node {
	return ownerLN(ett.ClusterRep(&n.level(0).Node)).superNode
}

// IsClusterRep reports whether n is its component's representative.
func (g *Forest) IsClusterRep(n *Node) bool {
	return g.ClusterRep(n) == n
}

// Edges returns every edge (tree and non-tree, at whatever level it
// currently sits) incident to n.
func (g *Forest) Edges(n *Node) []*Edge {
	seen := make(map[*Edge]struct{})
	var out []*Edge
	for _, ln := range n.levelNodes {
		for e := range ln.edges {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}
	}
	return out
}

// Node1 returns e's first endpoint.
func (g *Forest) Node1(e *Edge) *Node { return e.nodeA }

// Node2 returns e's second endpoint.
func (g *Forest) Node2(e *Edge) *Node { return e.nodeB }

func replaceWith(e *Edge) {
	e.levelEdges = make([]*levelEdge, 0, e.level+1)
	for l := 0; l <= e.level; l++ {
		le := &levelEdge{superEdge: e}
		e.levelEdges = append(e.levelEdges, le)
		ett.CreateEdge(&e.nodeA.level(l).Node, &e.nodeB.level(l).Node, &le.Edge)
	}
	e.isTreeEdge = true
}

func eraseTreeEdge(e *Edge) {
	for _, le := range e.levelEdges {
		ett.DeleteEdge(&le.Edge)
	}
	e.levelEdges = nil
	delete(e.nodeA.levelNodes[e.level].edges, e)
	delete(e.nodeB.levelNodes[e.level].edges, e)
}

func eraseNonTreeEdge(e *Edge) {
	delete(e.nodeA.levelNodes[e.level].edges, e)
	delete(e.nodeB.levelNodes[e.level].edges, e)
}

// checkReplacement is called immediately after a tree edge has been
// removed from every level it participated in. It walks levels from
// e's own level down to 0, looking for a replacement at each one, and
// stops at the first level that supplies one.
func checkReplacement(e *Edge) bool {
	for l := e.level; l >= 0; l-- {
		if checkReplacementAtLevel(e, l) {
			return true
		}
	}
	return false
}

func checkReplacementAtLevel(e *Edge, l int) bool {
	r1 := ett.ClusterRep(&e.nodeA.levelNodes[l].Node)
	r2 := ett.ClusterRep(&e.nodeB.levelNodes[l].Node)
	sz1 := ett.ClusterSize(r1)
	sz2 := ett.ClusterSize(r2)
	if sz1 < sz2 {
		return checkReplacementNodes(ownerLN(r1), ownerLN(r2), l)
	}
	return checkReplacementNodes(ownerLN(r2), ownerLN(r1), l)
}

// checkReplacementNodes scans every level-l non-tree edge incident to
// the smaller cluster. Edges that do not cross into the larger
// cluster are promoted to level l+1 (amortizing their cost over
// future searches) whether or not a replacement turns up; edges that
// do cross are candidates, stay at level l, and one of them is
// installed as the replacement tree edge.
func checkReplacementNodes(smaller, larger *levelNode, l int) bool {
	largerRep := ett.ClusterRep(&larger.superNode.level(0).Node)
	replacements := make(map[*Edge]struct{})
	var nodesInSmaller []*levelNode
	for it := ett.NodeView(&smaller.Node); !it.Done(); it.Next() {
		n := ownerLN(it.Node())
		nodesInSmaller = append(nodesInSmaller, n)
		for e := range n.edges {
			m := otherEndpointLevel0(e, n, l)
			if !e.isTreeEdge && ett.ClusterRep(&m.Node) == largerRep {
				delete(n.edges, e)
				replacements[e] = struct{}{}
			}
		}
	}
	for _, n := range nodesInSmaller {
		levelUpEdgesOf(n, l+1)
	}
	if len(replacements) == 0 {
		return false
	}
	var chosen *Edge
	for e := range replacements {
		e.nodeA.levelNodes[l].edges[e] = struct{}{}
		e.nodeB.levelNodes[l].edges[e] = struct{}{}
		chosen = e
	}
	replaceWith(chosen)
	return true
}

func otherEndpointLevel0(e *Edge, n *levelNode, l int) *levelNode {
	if e.nodeA.levelNodes[l] == n {
		return e.nodeB.levelNodes[0]
	}
	return e.nodeA.levelNodes[0]
}

func levelUpEdgesOf(n *levelNode, l int) {
	nn := n.superNode.level(l)
	for e := range n.edges {
		nn.edges[e] = struct{}{}
	}
	n.edges = make(map[*Edge]struct{})
	for e := range nn.edges {
		if e.isTreeEdge && e.level != l {
			levelUpTreeEdge(e, l)
		} else {
			e.level = l
		}
	}
}

func levelUpTreeEdge(e *Edge, l int) {
	e.level = l
	le := &levelEdge{superEdge: e}
	e.levelEdges = append(e.levelEdges, le)
	ett.CreateEdge(&e.nodeA.level(l).Node, &e.nodeB.level(l).Node, &le.Edge)
}
