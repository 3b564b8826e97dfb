// Package main implements a demo CLI that loads a topology file and
// prints the forwarding tables lfid computes for it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arizona-ndn-sim/lfid/config"
	"github.com/arizona-ndn-sim/lfid/lfid"
	lfidgraph "github.com/arizona-ndn-sim/lfid/lfid/graph"
	"github.com/arizona-ndn-sim/lfid/lfid/log"
)

var verbose bool

var CmdRoute = &cobra.Command{
	Use:     "lfid-route TOPOLOGY-FILE",
	Short:   "Compute loop-free inport-dependent forwarding tables for a topology",
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE:    run,
}

func init() {
	CmdRoute.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.LevelDebug)
	}

	topoFile := args[0]
	topo, err := config.LoadTopology(topoFile)
	if err != nil {
		return fmt.Errorf("lfid-route: %w", err)
	}

	names := make([]string, len(topo.Nodes))
	for _, n := range topo.Nodes {
		names[n.ID] = n.Name
	}

	g := lfidgraph.New(names)
	for _, e := range topo.Edges {
		g.SetEdge(e.A, e.B, float64(e.Weight))
	}

	all := lfid.ComputeRoutes(g)
	printFibs(all, names)

	return nil
}

func printFibs(all lfid.AllNodeFib, names []string) {
	for nodeId := 0; nodeId < len(names); nodeId++ {
		fib, ok := all[lfid.NodeId(nodeId)]
		if !ok {
			continue
		}
		fmt.Printf("node %d (%s):\n", nodeId, names[nodeId])
		for _, dst := range fib.Destinations() {
			fmt.Printf("  -> %d (%s):", dst, names[dst])
			for _, nh := range fib.GetNhs(dst) {
				fmt.Printf(" %s", nh)
			}
			fmt.Println()
		}
	}
}

func main() {
	if err := CmdRoute.Execute(); err != nil {
		os.Exit(1)
	}
}
