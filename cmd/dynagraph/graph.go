package main

import (
	"fmt"

	"github.com/cnrc-go/dynagraph/dsf"
	"github.com/cnrc-go/dynagraph/hdt"
	"github.com/cnrc-go/dynagraph/internal/graphio"
	"github.com/cnrc-go/dynagraph/kcore"
	log "github.com/sirupsen/logrus"
)

func buildDSF(path string) (*dsf.Forest, map[string]*dsf.Node, error) {
	edges, err := graphio.ReadEdgeList(path)
	if err != nil {
		return nil, nil, err
	}
	g := &dsf.Forest{}
	names := graphio.NodeSet(edges)
	nodes := make(map[string]*dsf.Node, len(names))
	for _, name := range names {
		n := &dsf.Node{}
		n.Init()
		nodes[name] = n
	}
	for _, e := range edges {
		if g.CreateEdge(nodes[e.A], nodes[e.B], &dsf.Edge{}) {
			log.Debugf("%s-%s joined clusters", e.A, e.B)
		}
	}
	return g, nodes, nil
}

func buildHDT(path string) (*hdt.Forest, map[string]*hdt.Node, error) {
	edges, err := graphio.ReadEdgeList(path)
	if err != nil {
		return nil, nil, err
	}
	g := &hdt.Forest{}
	names := graphio.NodeSet(edges)
	nodes := make(map[string]*hdt.Node, len(names))
	for _, name := range names {
		n := &hdt.Node{}
		n.Init()
		nodes[name] = n
	}
	for _, e := range edges {
		if g.CreateEdge(nodes[e.A], nodes[e.B], &hdt.Edge{}) {
			log.Debugf("%s-%s joined clusters", e.A, e.B)
		}
	}
	return g, nodes, nil
}

func runKCoreDSF(path string, k int) error {
	g, nodes, err := buildDSF(path)
	if err != nil {
		return err
	}
	list := make([]*dsf.Node, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, n)
	}
	res := kcore.PruneDSF(g, list, k)
	printResult(res.InitialGiantClusterSize, res.FinalGiantClusterSize, res.Removed, res.CoronaClusterSizes)
	return nil
}

func runKCoreHDT(path string, k int) error {
	g, nodes, err := buildHDT(path)
	if err != nil {
		return err
	}
	list := make([]*hdt.Node, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, n)
	}
	res := kcore.PruneHDT(g, list, k)
	printResult(res.InitialGiantClusterSize, res.FinalGiantClusterSize, res.Removed, res.CoronaClusterSizes)
	return nil
}

func printResult(initial, final, removed int, corona map[int]int) {
	fmt.Printf("giant cluster: %d -> %d\n", initial, final)
	fmt.Printf("removed: %d\n", removed)
	fmt.Printf("corona cluster sizes: %v\n", corona)
}
