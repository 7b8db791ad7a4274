// Package catalog renders the registered tool list for the CLI.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	mcpserver "github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/mcp"
)

// Markdown builds a markdown document listing every tool.
func Markdown(tools []mcpserver.ToolInfo) string {
	var b strings.Builder
	b.WriteString("# Solid Edge MCP Tools\n\n")
	for _, t := range tools {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", t.Name, t.Description)
	}
	return b.String()
}

// Render returns the catalog styled for the current terminal. Piped output
// falls back to plain markdown so the list stays grep-able.
func Render(tools []mcpserver.ToolInfo) string {
	md := Markdown(tools)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return md
	}

	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// Banner prints the CLI header with the server version.
func Banner(version string) string {
	p := termenv.ColorProfile()
	title := termenv.String("solidedge-mcp").Foreground(p.Color("#818cf8")).Bold()
	return fmt.Sprintf("%s %s", title, version)
}
