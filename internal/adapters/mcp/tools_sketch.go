package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
)

type createSketchRequest struct {
	Plane string `mapstructure:"plane"`
}

type createSketchOnPlaneRequest struct {
	PlaneIndex int `mapstructure:"plane_index"`
}

type lineRequest struct {
	X1 float64 `mapstructure:"x1"`
	Y1 float64 `mapstructure:"y1"`
	X2 float64 `mapstructure:"x2"`
	Y2 float64 `mapstructure:"y2"`
}

type circleRequest struct {
	CenterX float64 `mapstructure:"center_x"`
	CenterY float64 `mapstructure:"center_y"`
	Radius  float64 `mapstructure:"radius"`
}

type arcRequest struct {
	CenterX    float64 `mapstructure:"center_x"`
	CenterY    float64 `mapstructure:"center_y"`
	Radius     float64 `mapstructure:"radius"`
	StartAngle float64 `mapstructure:"start_angle"`
	EndAngle   float64 `mapstructure:"end_angle"`
}

type polygonRequest struct {
	CenterX float64 `mapstructure:"center_x"`
	CenterY float64 `mapstructure:"center_y"`
	Radius  float64 `mapstructure:"radius"`
	Sides   int     `mapstructure:"sides"`
}

type ellipseRequest struct {
	CenterX     float64 `mapstructure:"center_x"`
	CenterY     float64 `mapstructure:"center_y"`
	MajorRadius float64 `mapstructure:"major_radius"`
	MinorRadius float64 `mapstructure:"minor_radius"`
	Angle       float64 `mapstructure:"angle"`
}

type splineRequest struct {
	Points [][]float64 `mapstructure:"points"`
}

func (s *Server) registerSketchTools() {
	s.addTool(mcp.NewTool("create_sketch",
		mcp.WithDescription("Create a new 2D sketch on a named base plane: Top, Front, Right (or XZ, XY, YZ)."),
		mcp.WithString("plane", mcp.Description("Plane name, default Top")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		req := createSketchRequest{Plane: "Top"}
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		name, err := s.sketch.Create(ctx, req.Plane)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "plane": name}, nil
	})

	s.addTool(mcp.NewTool("create_sketch_on_plane",
		mcp.WithDescription("Create a new 2D sketch on a reference plane addressed by 0-based index, covering user-created planes."),
		mcp.WithNumber("plane_index", mcp.Required(), mcp.Description("0-based reference plane index")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req createSketchOnPlaneRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		name, err := s.sketch.CreateOnPlane(ctx, req.PlaneIndex)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "plane": name}, nil
	})

	s.addTool(mcp.NewTool("draw_line",
		mcp.WithDescription("Draw a line in the active sketch. Coordinates in meters."),
		mcp.WithNumber("x1", mcp.Required()), mcp.WithNumber("y1", mcp.Required()),
		mcp.WithNumber("x2", mcp.Required()), mcp.WithNumber("y2", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req lineRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawLine(ctx, req.X1, req.Y1, req.X2, req.Y2); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "line"}, nil
	})

	s.addTool(mcp.NewTool("draw_circle",
		mcp.WithDescription("Draw a circle by center and radius in the active sketch. Meters."),
		mcp.WithNumber("center_x", mcp.Required()), mcp.WithNumber("center_y", mcp.Required()),
		mcp.WithNumber("radius", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req circleRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawCircle(ctx, req.CenterX, req.CenterY, req.Radius); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "circle"}, nil
	})

	s.addTool(mcp.NewTool("draw_rectangle",
		mcp.WithDescription("Draw a rectangle defined by two diagonal corners, as four lines."),
		mcp.WithNumber("x1", mcp.Required()), mcp.WithNumber("y1", mcp.Required()),
		mcp.WithNumber("x2", mcp.Required()), mcp.WithNumber("y2", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req lineRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawRectangle(ctx, req.X1, req.Y1, req.X2, req.Y2); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "rectangle", "lines": 4}, nil
	})

	s.addTool(mcp.NewTool("draw_arc",
		mcp.WithDescription("Draw an arc by center, radius, and start/end angles in degrees (0 = +X, 90 = +Y)."),
		mcp.WithNumber("center_x", mcp.Required()), mcp.WithNumber("center_y", mcp.Required()),
		mcp.WithNumber("radius", mcp.Required()),
		mcp.WithNumber("start_angle", mcp.Required()), mcp.WithNumber("end_angle", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req arcRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawArc(ctx, req.CenterX, req.CenterY, req.Radius, req.StartAngle, req.EndAngle); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "arc"}, nil
	})

	s.addTool(mcp.NewTool("draw_polygon",
		mcp.WithDescription("Draw a regular polygon inscribed in the given radius."),
		mcp.WithNumber("center_x", mcp.Required()), mcp.WithNumber("center_y", mcp.Required()),
		mcp.WithNumber("radius", mcp.Required()),
		mcp.WithNumber("sides", mcp.Required(), mcp.Description("Number of sides, at least 3")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req polygonRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawPolygon(ctx, req.CenterX, req.CenterY, req.Radius, req.Sides); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "polygon", "sides": req.Sides}, nil
	})

	s.addTool(mcp.NewTool("draw_ellipse",
		mcp.WithDescription("Draw an ellipse by center, radii, and rotation angle in degrees."),
		mcp.WithNumber("center_x", mcp.Required()), mcp.WithNumber("center_y", mcp.Required()),
		mcp.WithNumber("major_radius", mcp.Required()), mcp.WithNumber("minor_radius", mcp.Required()),
		mcp.WithNumber("angle", mcp.Description("Rotation in degrees, default 0")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req ellipseRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.DrawEllipse(ctx, req.CenterX, req.CenterY, req.MajorRadius, req.MinorRadius, req.Angle); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "ellipse"}, nil
	})

	s.addTool(mcp.NewTool("draw_spline",
		mcp.WithDescription("Draw a cubic B-spline through a list of [x, y] points."),
		mcp.WithArray("points", mcp.Required(), mcp.Description("List of [x, y] coordinate pairs")),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req splineRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		pts := make([]domain.Point2D, 0, len(req.Points))
		for _, p := range req.Points {
			if len(p) != 2 {
				return nil, &domain.InvalidArgumentError{
					Err: fmt.Errorf("invalid point %v: expected [x, y]", p),
				}
			}
			pts = append(pts, domain.Point2D{X: p[0], Y: p[1]})
		}
		if err := s.sketch.DrawSpline(ctx, pts); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "spline", "num_points": len(pts)}, nil
	})

	s.addTool(mcp.NewTool("set_axis_of_revolution",
		mcp.WithDescription("Draw the axis of revolution in the active sketch, for revolve features. Must run before close_sketch."),
		mcp.WithNumber("x1", mcp.Required()), mcp.WithNumber("y1", mcp.Required()),
		mcp.WithNumber("x2", mcp.Required()), mcp.WithNumber("y2", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req lineRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		if err := s.sketch.SetAxisOfRevolution(ctx, req.X1, req.Y1, req.X2, req.Y2); err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "type": "axis"}, nil
	})

	s.addTool(mcp.NewTool("close_sketch",
		mcp.WithDescription("Validate and close the active sketch. The finished profile joins the accumulated list consumed by loft/sweep features."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		count, err := s.sketch.Close(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "closed", "accumulated_profiles": count}, nil
	})

	s.addTool(mcp.NewTool("get_sketch_info",
		mcp.WithDescription("Get geometry counts for the active sketch."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		return s.sketch.Info(ctx)
	})
}
