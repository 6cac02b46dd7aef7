package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool
var useHDT bool

// Execute is the entry point to running the CLI.
func Execute(version string) {
	rootCmd := &cobra.Command{
		Use:          "dynagraph",
		Short:        "Query dynamic graph connectivity and k-core structure over an edge-list file.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&useHDT, "hdt", false, "use the leveled HDT backend instead of the plain DSF backend")

	rootCmd.AddCommand(newConnectedCmd())
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newKCoreCmd())

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newConnectedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connected <edge-list> <a> <b>",
		Short: "Report whether two nodes lie in the same cluster.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			path, a, b := args[0], args[1], args[2]
			if useHDT {
				g, nodes, err := buildHDT(path)
				if err != nil {
					return err
				}
				na, ok := nodes[a]
				if !ok {
					return fmt.Errorf("unknown node %q", a)
				}
				nb, ok := nodes[b]
				if !ok {
					return fmt.Errorf("unknown node %q", b)
				}
				fmt.Println(g.HasPath(na, nb))
				return nil
			}
			g, nodes, err := buildDSF(path)
			if err != nil {
				return err
			}
			na, ok := nodes[a]
			if !ok {
				return fmt.Errorf("unknown node %q", a)
			}
			nb, ok := nodes[b]
			if !ok {
				return fmt.Errorf("unknown node %q", b)
			}
			fmt.Println(g.HasPath(na, nb))
			return nil
		},
	}
}

func newClusterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster <edge-list> <node>",
		Short: "Report the size of a node's connected component.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			path, name := args[0], args[1]
			if useHDT {
				g, nodes, err := buildHDT(path)
				if err != nil {
					return err
				}
				n, ok := nodes[name]
				if !ok {
					return fmt.Errorf("unknown node %q", name)
				}
				fmt.Println(g.ClusterSize(n))
				return nil
			}
			g, nodes, err := buildDSF(path)
			if err != nil {
				return err
			}
			n, ok := nodes[name]
			if !ok {
				return fmt.Errorf("unknown node %q", name)
			}
			fmt.Println(g.ClusterSize(n))
			return nil
		},
	}
}

func newKCoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kcore <edge-list> <k>",
		Short: "Peel nodes of degree below k and report the resulting giant cluster and corona.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			path := args[0]
			k, err := parseK(args[1])
			if err != nil {
				return err
			}
			if useHDT {
				return runKCoreHDT(path, k)
			}
			return runKCoreDSF(path, k)
		},
	}
}

func parseK(s string) (int, error) {
	var k int
	if _, err := fmt.Sscanf(s, "%d", &k); err != nil {
		return 0, fmt.Errorf("invalid k %q: %w", s, err)
	}
	return k, nil
}
