// Package config holds the constants and topology file schema shared by
// the lfid core and its CLI: named bounds plus a YAML-loadable
// topology struct.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const (
	// NodeIDLimit bounds the dense node id space a Topology may use.
	NodeIDLimit = 1000

	// MaxCost is the strict upper bound on any finite, real path cost.
	MaxCost = 1_000_000

	// CostInf is the reserved sentinel denoting "unreachable", distinct
	// from and larger than MaxCost so that masked/incomplete paths can
	// never be mistaken for a real finite cost.
	CostInf = 1 << 30
)

// Topology is the on-disk (YAML) description of a weighted undirected
// graph: a dense node id space plus a positively-weighted edge list.
// It is a convenience loader for the CLI demo only -- the core package
// itself never parses files or owns a file format.
type Topology struct {
	Nodes []TopologyNode `yaml:"nodes"`
	Edges []TopologyEdge `yaml:"edges"`
}

// TopologyNode names a single dense node id.
type TopologyNode struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// TopologyEdge is one undirected, positively-weighted link.
type TopologyEdge struct {
	A      int   `yaml:"a"`
	B      int   `yaml:"b"`
	Weight int64 `yaml:"weight"`
}

// LoadTopology reads and parses a topology YAML file from path.
func LoadTopology(path string) (*Topology, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read topology: %w", err)
	}

	var topo Topology
	if err := yaml.Unmarshal(raw, &topo); err != nil {
		return nil, fmt.Errorf("config: parse topology: %w", err)
	}

	return &topo, nil
}
