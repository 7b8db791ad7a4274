package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
)

type extrudeRequest struct {
	Distance  float64 `mapstructure:"distance"`
	Operation string  `mapstructure:"operation"`
}

type revolveRequest struct {
	Angle     float64 `mapstructure:"angle"`
	Operation string  `mapstructure:"operation"`
}

type loftRequest struct {
	ProfileIndices []int `mapstructure:"profile_indices"`
}

type sweepRequest struct {
	PathProfileIndex int `mapstructure:"path_profile_index"`
}

func parseOperation(op string) (cut bool, err error) {
	switch strings.ToLower(op) {
	case "", "add":
		return false, nil
	case "cut":
		return true, nil
	default:
		return false, &domain.InvalidArgumentError{
			Err: errInvalidOperation(op),
		}
	}
}

type errInvalidOperation string

func (e errInvalidOperation) Error() string {
	return "invalid operation " + string(e) + ": use Add or Cut"
}

func (s *Server) registerFeatureTools() {
	s.addTool(mcp.NewTool("create_extrude",
		mcp.WithDescription("Extrude the most recently closed sketch profile by a distance in meters."),
		mcp.WithNumber("distance", mcp.Required()),
		mcp.WithString("operation", mcp.Description("Add (default) or Cut")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req extrudeRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		cut, err := parseOperation(req.Operation)
		if err != nil {
			return nil, err
		}
		if err := s.features.Extrude(ctx, req.Distance, cut); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "extrude", "distance": req.Distance}, nil
	})

	s.addTool(mcp.NewTool("create_revolve",
		mcp.WithDescription("Revolve the most recently closed profile around the axis set with set_axis_of_revolution."),
		mcp.WithNumber("angle", mcp.Description("Revolution angle in degrees, default 360")),
		mcp.WithString("operation", mcp.Description("Add (default) or Cut")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		req := revolveRequest{Angle: 360}
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		cut, err := parseOperation(req.Operation)
		if err != nil {
			return nil, err
		}
		if err := s.features.Revolve(ctx, req.Angle, cut); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "revolve", "angle": req.Angle}, nil
	})

	s.addTool(mcp.NewTool("create_loft",
		mcp.WithDescription("Loft through the accumulated profiles (close 2+ sketches on different planes first). Consumes the accumulated profiles."),
		mcp.WithArray("profile_indices", mcp.Description("Optional subset of accumulated profile positions, in section order")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req loftRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		n, err := s.features.Loft(ctx, req.ProfileIndices, false)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "loft", "num_profiles": n}, nil
	})

	s.addTool(mcp.NewTool("create_lofted_cutout",
		mcp.WithDescription("Lofted cutout through the accumulated profiles. Consumes the accumulated profiles."),
		mcp.WithArray("profile_indices", mcp.Description("Optional subset of accumulated profile positions")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req loftRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		n, err := s.features.Loft(ctx, req.ProfileIndices, true)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "lofted_cutout", "num_profiles": n}, nil
	})

	s.addTool(mcp.NewTool("create_sweep",
		mcp.WithDescription("Sweep cross-sections along a path. The path is one accumulated profile (default the first); every other accumulated profile is a cross-section."),
		mcp.WithNumber("path_profile_index", mcp.Description("Position of the path profile, default 0")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req sweepRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		n, err := s.features.Sweep(ctx, req.PathProfileIndex, false)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "sweep", "num_sections": n}, nil
	})

	s.addTool(mcp.NewTool("create_swept_cutout",
		mcp.WithDescription("Swept cutout along a path profile. Consumes the accumulated profiles."),
		mcp.WithNumber("path_profile_index", mcp.Description("Position of the path profile, default 0")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req sweepRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		n, err := s.features.Sweep(ctx, req.PathProfileIndex, true)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "swept_cutout", "num_sections": n}, nil
	})
}
