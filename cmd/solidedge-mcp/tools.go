package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	solidedge "github.com/tylerwagler/SolidEdge-MCP-sub001"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
	mcpserver "github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/mcp"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/presentation/catalog"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long:  `Registers the full tool set against an in-memory kernel and prints the catalog, without starting a transport.`,
	Run: func(cmd *cobra.Command, args []string) {
		eng, err := solidedge.New(memory.NewKernel())
		if err != nil {
			log.Fatalf("Error initializing engine: %v", err)
		}
		srv := mcpserver.NewServer(solidedge.Version,
			eng.Sketch(), eng.Features(), eng.Query(), eng.Session())

		fmt.Println(catalog.Banner(solidedge.Version))
		fmt.Print(catalog.Render(srv.Catalog()))
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
