// Package kcore implements k-core peeling over either spanning-forest
// backend in this module (dsf or hdt): repeatedly deleting every node
// whose incident-edge count is below k until no such node remains,
// and reporting how the graph's giant cluster and its k-degree
// boundary (the "corona") changed shape along the way.
package kcore

import (
	"container/heap"

	"github.com/cnrc-go/dynagraph/dsf"
	"github.com/cnrc-go/dynagraph/hdt"
)

// Backend is the capability Prune needs from a spanning-forest
// implementation. dsf.Forest and hdt.Forest are each adapted to it by
// PruneDSF/PruneHDT, so the same peeling logic drives both.
type Backend[N comparable, E comparable] interface {
	Edges(n N) []E
	DeleteEdge(e E) bool
	IsClusterRep(n N) bool
	ClusterSize(n N) int
	Node1(e E) N
	Node2(e E) N
}

// Result reports the outcome of a Prune run.
type Result[N comparable] struct {
	InitialGiantClusterSize int
	FinalGiantClusterSize   int
	Removed                 int
	CoronaClusterSizes      map[int]int
}

// Prune removes nodes of degree below k, globally lowest-degree
// first, until every surviving node has degree at least k. It reports
// the giant cluster's size before and after peeling, how many nodes
// were removed, and the cluster-size distribution of the corona: the
// surviving nodes whose degree is exactly k, once every higher-degree
// survivor has also been stripped of its edges.
func Prune[N comparable, E comparable](b Backend[N, E], nodes []N, k int) Result[N] {
	initial := giantClusterSize(b, nodes)

	currentDegree := make(map[N]int, len(nodes))
	h := make(degreeHeap[N], 0, len(nodes))
	for _, n := range nodes {
		d := len(b.Edges(n))
		currentDegree[n] = d
		h = append(h, &degreeItem[N]{node: n, degree: d})
	}
	heap.Init(&h)

	removed := make(map[N]bool, len(nodes))
	removedCount := 0
	for h.Len() > 0 {
		it := heap.Pop(&h).(*degreeItem[N])
		if removed[it.node] || it.degree != currentDegree[it.node] {
			continue // stale entry; a fresher one for this node is still queued
		}
		if it.degree >= k {
			continue
		}
		removed[it.node] = true
		removedCount++
		for _, e := range b.Edges(it.node) {
			m := otherEndpoint(b, it.node, e)
			b.DeleteEdge(e)
			if removed[m] || m == it.node {
				continue
			}
			currentDegree[m]--
			heap.Push(&h, &degreeItem[N]{node: m, degree: currentDegree[m]})
		}
	}

	survivors := make([]N, 0, len(nodes)-removedCount)
	for _, n := range nodes {
		if !removed[n] {
			survivors = append(survivors, n)
		}
	}

	return Result[N]{
		InitialGiantClusterSize: initial,
		FinalGiantClusterSize:   giantClusterSize(b, survivors),
		Removed:                 removedCount,
		CoronaClusterSizes:      corona(b, survivors, k),
	}
}

// corona isolates the nodes whose surviving degree is exactly k by
// deleting every edge incident to a higher-degree survivor, then
// groups the remaining corona nodes by the size of the cluster each
// one's own cluster representative now heads.
func corona[N comparable, E comparable](b Backend[N, E], survivors []N, k int) map[int]int {
	dist := make(map[int]int)
	coronaSet := make(map[N]bool, len(survivors))
	var rest []N
	for _, n := range survivors {
		if len(b.Edges(n)) == k {
			coronaSet[n] = true
		} else {
			rest = append(rest, n)
		}
	}
	for _, n := range rest {
		for _, e := range b.Edges(n) {
			b.DeleteEdge(e)
		}
	}
	for n := range coronaSet {
		if b.IsClusterRep(n) {
			dist[b.ClusterSize(n)]++
		}
	}
	return dist
}

func giantClusterSize[N comparable, E comparable](b Backend[N, E], nodes []N) int {
	best := 0
	for _, n := range nodes {
		if sz := b.ClusterSize(n); sz > best {
			best = sz
		}
	}
	return best
}

func otherEndpoint[N comparable, E comparable](b Backend[N, E], n N, e E) N {
	if n1 := b.Node1(e); n1 == n {
		return b.Node2(e)
	}
	return b.Node1(e)
}

type degreeItem[N comparable] struct {
	node   N
	degree int
}

type degreeHeap[N comparable] []*degreeItem[N]

func (h degreeHeap[N]) Len() int           { return len(h) }
func (h degreeHeap[N]) Less(i, j int) bool { return h[i].degree < h[j].degree }
func (h degreeHeap[N]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *degreeHeap[N]) Push(x any) {
	*h = append(*h, x.(*degreeItem[N]))
}

func (h *degreeHeap[N]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

type dsfBackend struct{ g *dsf.Forest }

func (b dsfBackend) Edges(n *dsf.Node) []*dsf.Edge    { return b.g.Edges(n) }
func (b dsfBackend) DeleteEdge(e *dsf.Edge) bool      { return b.g.DeleteEdge(e) }
func (b dsfBackend) IsClusterRep(n *dsf.Node) bool    { return b.g.IsClusterRep(n) }
func (b dsfBackend) ClusterSize(n *dsf.Node) int      { return b.g.ClusterSize(n) }
func (b dsfBackend) Node1(e *dsf.Edge) *dsf.Node      { return b.g.Node1(e) }
func (b dsfBackend) Node2(e *dsf.Edge) *dsf.Node      { return b.g.Node2(e) }

// PruneDSF runs Prune over a dsf.Forest.
func PruneDSF(g *dsf.Forest, nodes []*dsf.Node, k int) Result[*dsf.Node] {
	return Prune[*dsf.Node, *dsf.Edge](dsfBackend{g: g}, nodes, k)
}

type hdtBackend struct{ g *hdt.Forest }

func (b hdtBackend) Edges(n *hdt.Node) []*hdt.Edge    { return b.g.Edges(n) }
func (b hdtBackend) DeleteEdge(e *hdt.Edge) bool      { return b.g.DeleteEdge(e) }
func (b hdtBackend) IsClusterRep(n *hdt.Node) bool    { return b.g.IsClusterRep(n) }
func (b hdtBackend) ClusterSize(n *hdt.Node) int      { return b.g.ClusterSize(n) }
func (b hdtBackend) Node1(e *hdt.Edge) *hdt.Node      { return b.g.Node1(e) }
func (b hdtBackend) Node2(e *hdt.Edge) *hdt.Node      { return b.g.Node2(e) }

// PruneHDT runs Prune over an hdt.Forest.
func PruneHDT(g *hdt.Forest, nodes []*hdt.Node, k int) Result[*hdt.Node] {
	return Prune[*hdt.Node, *hdt.Edge](hdtBackend{g: g}, nodes, k)
}
