package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/config"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/journal"
)

// journalCmd represents the journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent tool calls from the journal",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				log.Fatalf("Error loading config: %v", err)
			}
			path = cfg.JournalPath
		}
		if path == "" {
			log.Fatal("No journal configured: pass --path or set journal_path in the config")
		}

		tool, _ := cmd.Flags().GetString("tool")
		limit, _ := cmd.Flags().GetInt("limit")

		j, err := journal.Open(path)
		if err != nil {
			log.Fatalf("Error opening journal: %v", err)
		}
		defer j.Close()

		entries, err := j.Recent(context.Background(), tool, limit)
		if err != nil {
			log.Fatalf("Error reading journal: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("No recorded tool calls.")
			return
		}
		for _, e := range entries {
			line := fmt.Sprintf("%s  %-24s %-5s %6dms", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Tool, e.Status, e.Duration.Milliseconds())
			if e.Error != "" {
				line += fmt.Sprintf("  [%s] %s", e.ErrorKind, e.Error)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().String("path", "", "Journal database file (overrides config)")
	journalCmd.Flags().String("tool", "", "Only show calls to this tool")
	journalCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}
