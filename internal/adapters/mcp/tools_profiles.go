package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerProfileTools() {
	s.addTool(mcp.NewTool("get_accumulated_profiles",
		mcp.WithDescription("Get the number of closed sketch profiles awaiting a loft/sweep feature, and the session state."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		return s.session.Status(), nil
	})

	s.addTool(mcp.NewTool("clear_accumulated_profiles",
		mcp.WithDescription("Discard all accumulated profiles without creating a feature."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		drained := s.session.Drain()
		return map[string]any{"status": "cleared", "discarded": len(drained)}, nil
	})
}
