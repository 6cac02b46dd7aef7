package ett

import "testing"

func newTestNode() *Node {
	n := &Node{}
	n.Init(n)
	return n
}

func TestCreateEdgeConnectsComponents(t *testing.T) {
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	if HasPath(a, b) {
		t.Fatal("a and b should not be connected yet")
	}
	var e1, e2 Edge
	CreateEdge(a, b, &e1)
	if !HasPath(a, b) {
		t.Fatal("a and b should be connected after CreateEdge")
	}
	if HasPath(a, c) {
		t.Fatal("a and c should not be connected")
	}
	CreateEdge(b, c, &e2)
	if !HasPath(a, c) {
		t.Fatal("a and c should be connected transitively")
	}
	if ClusterSize(a) != 3 {
		t.Fatalf("expected cluster size 3, got %d", ClusterSize(a))
	}
}

func TestDeleteEdgeSplitsComponents(t *testing.T) {
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	var eab, ebc Edge
	CreateEdge(a, b, &eab)
	CreateEdge(b, c, &ebc)

	DeleteEdge(&ebc)
	if !HasPath(a, b) {
		t.Fatal("a and b should remain connected")
	}
	if HasPath(a, c) {
		t.Fatal("a and c should be disconnected after deleting b-c")
	}
	if ClusterSize(a) != 2 {
		t.Fatalf("expected cluster size 2, got %d", ClusterSize(a))
	}
	if ClusterSize(c) != 1 {
		t.Fatalf("expected cluster size 1, got %d", ClusterSize(c))
	}
}

func TestClusterRepSharedWithinComponent(t *testing.T) {
	a, b := newTestNode(), newTestNode()
	var e Edge
	CreateEdge(a, b, &e)
	rep := ClusterRep(a)
	if !IsClusterRep(rep) {
		t.Fatal("cluster rep must report itself as the rep")
	}
	if ClusterRep(b) != rep {
		t.Fatal("a and b must share a cluster rep")
	}
}

func TestNodeAndEdgeViews(t *testing.T) {
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	var eab, ebc Edge
	CreateEdge(a, b, &eab)
	CreateEdge(b, c, &ebc)

	seen := map[*Node]bool{}
	for it := NodeView(a); !it.Done(); it.Next() {
		seen[it.Node()] = true
	}
	for _, n := range []*Node{a, b, c} {
		if !seen[n] {
			t.Fatalf("node view missed a node")
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct nodes, got %d", len(seen))
	}

	edges := map[*Edge]bool{}
	for it := EdgeView(a); !it.Done(); it.Next() {
		edges[it.Edge()] = true
	}
	if len(edges) != 2 {
		t.Fatalf("expected 2 distinct edges, got %d", len(edges))
	}
	if !edges[&eab] || !edges[&ebc] {
		t.Fatal("edge view missed an edge")
	}
}

func TestMakeHeadThenRelinkChain(t *testing.T) {
	a, b, c, d := newTestNode(), newTestNode(), newTestNode(), newTestNode()
	var eab, ebc Edge
	CreateEdge(a, b, &eab)
	CreateEdge(b, c, &ebc)

	// Force a makeHead rotation by linking through c, which is not
	// currently the head of its tour.
	var ecd Edge
	CreateEdge(c, d, &ecd)

	if !HasPath(a, d) {
		t.Fatal("a and d should be connected through the chain")
	}
	if ClusterSize(a) != 4 {
		t.Fatalf("expected cluster size 4, got %d", ClusterSize(a))
	}

	DeleteEdge(&eab)
	if HasPath(a, d) {
		t.Fatal("a should be isolated after deleting a-b")
	}
	if !HasPath(b, d) {
		t.Fatal("b, c, d should remain connected")
	}
}
