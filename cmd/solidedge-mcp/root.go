package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "solidedge-mcp",
	Short: "MCP server for Solid Edge part modeling",
	Long: `solidedge-mcp exposes Solid Edge sketching, feature creation, and
topology queries as Model Context Protocol tools, so AI agents can drive
parametric part construction through a stable, indexed interface.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
}
