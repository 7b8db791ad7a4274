package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	solidedge "github.com/tylerwagler/SolidEdge-MCP-sub001"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of solidedge-mcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("solidedge-mcp version %s\n", strings.TrimSpace(solidedge.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
