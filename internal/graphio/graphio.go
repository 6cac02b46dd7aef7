// Package graphio reads the edge-list files the dynagraph CLI operates
// on: one edge per line, two whitespace-separated node names, blank
// lines and "#"-prefixed comments ignored.
package graphio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Edge is one parsed line: an edge between two named nodes.
type Edge struct {
	A, B string
}

// ReadEdgeList parses the edge-list file at path.
func ReadEdgeList(path string) ([]Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "opening edge list %q", path)
	}
	defer f.Close()

	edges, err := parseEdgeList(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing edge list %q", path)
	}
	return edges, nil
}

func parseEdgeList(r io.Reader) ([]Edge, error) {
	var edges []Edge
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected two node names, got %q", lineNo, line)
		}
		log.Debugf("parsed edge %s-%s", fields[0], fields[1])
		edges = append(edges, Edge{A: fields[0], B: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.WithMessage(err, "scanning")
	}
	return edges, nil
}

// NodeSet collects the distinct node names mentioned by a list of
// edges, in first-seen order.
func NodeSet(edges []Edge) []string {
	seen := make(map[string]bool, len(edges)*2)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, e := range edges {
		add(e.A)
		add(e.B)
	}
	return names
}
