package dsf

import (
	"math/rand"
	"testing"
)

func newTestNode() *Node {
	n := &Node{}
	n.Init()
	return n
}

func TestCreateEdgeTreeVsNonTree(t *testing.T) {
	var g Forest
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	var eab, ebc, eac Edge

	if !g.CreateEdge(a, b, &eab) {
		t.Fatal("first edge between a new pair must become a tree edge")
	}
	if !g.CreateEdge(b, c, &ebc) {
		t.Fatal("b-c should become a tree edge, connecting a's and c's clusters")
	}
	if g.CreateEdge(a, c, &eac) {
		t.Fatal("a-c closes a cycle and must be held as a non-tree edge")
	}
	if eac.IsTreeEdge() {
		t.Fatal("a-c must not be marked as a tree edge")
	}
}

func TestDeleteTreeEdgeFindsReplacement(t *testing.T) {
	var g Forest
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	var eab, ebc, eac Edge
	g.CreateEdge(a, b, &eab)
	g.CreateEdge(b, c, &ebc)
	g.CreateEdge(a, c, &eac)

	if g.DeleteEdge(&ebc) {
		t.Fatal("deleting b-c should not split the cluster: a-c covers it")
	}
	if !g.HasPath(a, c) || !g.HasPath(b, c) {
		t.Fatal("all three nodes must remain connected through the replacement edge")
	}
	if !eac.IsTreeEdge() {
		t.Fatal("a-c should have been promoted to a tree edge")
	}
}

func TestDeleteTreeEdgeSplitsWithoutReplacement(t *testing.T) {
	var g Forest
	a, b := newTestNode(), newTestNode()
	var eab Edge
	g.CreateEdge(a, b, &eab)

	if !g.DeleteEdge(&eab) {
		t.Fatal("deleting the only edge between a and b must split the cluster")
	}
	if g.HasPath(a, b) {
		t.Fatal("a and b must be disconnected")
	}
}

func TestClusterViewAndSize(t *testing.T) {
	var g Forest
	a, b, c := newTestNode(), newTestNode(), newTestNode()
	var eab, ebc Edge
	g.CreateEdge(a, b, &eab)
	g.CreateEdge(b, c, &ebc)

	cl := g.Cluster(a)
	if cl.Size() != 3 {
		t.Fatalf("expected cluster size 3, got %d", cl.Size())
	}
	seen := map[*Node]bool{}
	for it := cl.Nodes(); !it.Done(); it.Next() {
		seen[it.Node()] = true
	}
	if len(seen) != 3 || !seen[a] || !seen[b] || !seen[c] {
		t.Fatalf("cluster view missed a node: %v", seen)
	}
}

// TestRandomizedAgainstBruteForce builds a random sequence of edge
// insertions and deletions and checks HasPath against a brute-force
// union-find recomputed from the currently-live edge set after every
// step.
func TestRandomizedAgainstBruteForce(t *testing.T) {
	t.Parallel()
	const n = 30
	var g Forest
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = newTestNode()
	}
	live := map[*Edge][2]int{}
	allEdges := make([]*Edge, 0)

	bruteConnected := func(a, b int) bool {
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			for parent[x] != x {
				x = parent[x]
			}
			return x
		}
		for _, ends := range live {
			ra, rb := find(ends[0]), find(ends[1])
			if ra != rb {
				parent[ra] = rb
			}
		}
		return find(a) == find(b)
	}

	for step := 0; step < 400; step++ {
		if len(live) == 0 || rand.Float64() < 0.6 {
			i, j := rand.Intn(n), rand.Intn(n)
			if i == j {
				continue
			}
			e := &Edge{}
			g.CreateEdge(nodes[i], nodes[j], e)
			live[e] = [2]int{i, j}
			allEdges = append(allEdges, e)
		} else {
			idx := rand.Intn(len(allEdges))
			e := allEdges[idx]
			if _, ok := live[e]; !ok {
				continue
			}
			g.DeleteEdge(e)
			delete(live, e)
			allEdges[idx] = allEdges[len(allEdges)-1]
			allEdges = allEdges[:len(allEdges)-1]
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if got, want := g.HasPath(nodes[i], nodes[j]), bruteConnected(i, j); got != want {
					t.Fatalf("step %d: HasPath(%d,%d)=%v, want %v", step, i, j, got, want)
				}
			}
		}
	}
}
