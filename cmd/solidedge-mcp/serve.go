package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	solidedge "github.com/tylerwagler/SolidEdge-MCP-sub001"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
	mcpserver "github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/mcp"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/config"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/journal"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/metrics"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Starts the Solid Edge MCP server.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))
		slog.SetDefault(logger)

		resolver, err := buildKernel(cfg.Kernel)
		if err != nil {
			log.Fatalf("Error initializing kernel: %v", err)
		}

		eng, err := solidedge.New(resolver, solidedge.WithLogger(logger))
		if err != nil {
			log.Fatalf("Error initializing engine: %v", err)
		}

		opts := []mcpserver.Option{mcpserver.WithLogger(logger)}
		if cfg.JournalPath != "" {
			j, err := journal.Open(cfg.JournalPath)
			if err != nil {
				log.Fatalf("Error opening journal: %v", err)
			}
			defer j.Close()
			opts = append(opts, mcpserver.WithJournal(j))
		}
		if cfg.Transport == "sse" {
			opts = append(opts, mcpserver.WithMetrics(metrics.New()))
		}

		srv := mcpserver.NewServer(solidedge.Version,
			eng.Sketch(), eng.Features(), eng.Query(), eng.Session(), opts...)

		switch cfg.Transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			logger.Info("Starting Solid Edge MCP server (stdio)", "kernel", cfg.Kernel)
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			logger.Info("Starting Solid Edge MCP server (SSE)", "port", cfg.Port, "kernel", cfg.Kernel)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.Port); err != nil && err != http.ErrServerClosed {
				logger.Error("MCP server execution failed", "err", err)
				os.Exit(1)
			}
			logger.Info("MCP server stopped gracefully")
		}
	},
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("transport") {
		cfg.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("kernel") {
		cfg.Kernel, _ = cmd.Flags().GetString("kernel")
	}
	if cmd.Flags().Changed("journal") {
		cfg.JournalPath, _ = cmd.Flags().GetString("journal")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildKernel selects the document resolver backend. The live COM backend
// attaches out of process and is not part of this tree; "memory" serves a
// fresh in-memory part document.
func buildKernel(name string) (ports.DocumentResolver, error) {
	switch name {
	case "memory":
		return memory.NewKernel(), nil
	default:
		return nil, fmt.Errorf("unknown kernel backend %q: supported is memory", name)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	serveCmd.Flags().String("kernel", "memory", "Kernel backend to resolve documents against")
	serveCmd.Flags().String("journal", "", "SQLite file to journal tool calls into")
}
