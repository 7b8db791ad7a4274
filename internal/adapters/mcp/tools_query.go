package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type faceRequest struct {
	FaceIndex int `mapstructure:"face_index"`
}

type edgeRequest struct {
	FaceIndex int `mapstructure:"face_index"`
	EdgeIndex int `mapstructure:"edge_index"`
}

type vertexRequest struct {
	FaceIndex   int `mapstructure:"face_index"`
	EdgeIndex   int `mapstructure:"edge_index"`
	VertexIndex int `mapstructure:"vertex_index"`
}

func (s *Server) registerQueryTools() {
	s.addTool(mcp.NewTool("get_active_document",
		mcp.WithDescription("Get the name and collection sizes of the document currently active in the kernel."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		return s.query.Document(ctx)
	})

	s.addTool(mcp.NewTool("get_body_faces",
		mcp.WithDescription("List all faces of the body with area, edge count, and classified geometry kind. Indices are 0-based and only valid until the topology changes."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		faces, err := s.query.BodyFaces(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"faces": faces, "count": len(faces)}, nil
	})

	s.addTool(mcp.NewTool("get_face_count",
		mcp.WithDescription("Get the total number of faces on the body."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		n, err := s.query.FaceCount(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"face_count": n}, nil
	})

	s.addTool(mcp.NewTool("get_face_info",
		mcp.WithDescription("Get area and edge count for one face by 0-based index."),
		mcp.WithNumber("face_index", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req faceRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		return s.query.FaceInfo(ctx, req.FaceIndex)
	})

	s.addTool(mcp.NewTool("get_face_edges",
		mcp.WithDescription("Get the number of edges on a face by 0-based index."),
		mcp.WithNumber("face_index", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req faceRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		n, err := s.query.FaceEdgeCount(ctx, req.FaceIndex)
		if err != nil {
			return nil, err
		}
		return map[string]any{"face_index": req.FaceIndex, "edge_count": n}, nil
	})

	s.addTool(mcp.NewTool("get_edge_endpoints",
		mcp.WithDescription("Get the 3D endpoints of an edge, addressed by face and edge 0-based indices."),
		mcp.WithNumber("face_index", mcp.Required()),
		mcp.WithNumber("edge_index", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req edgeRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		start, end, err := s.query.EdgeEndpoints(ctx, req.FaceIndex, req.EdgeIndex)
		if err != nil {
			return nil, err
		}
		return map[string]any{"start": start, "end": end}, nil
	})

	s.addTool(mcp.NewTool("get_edge_length",
		mcp.WithDescription("Get the length of an edge, addressed by face and edge 0-based indices."),
		mcp.WithNumber("face_index", mcp.Required()),
		mcp.WithNumber("edge_index", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req edgeRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		l, err := s.query.EdgeLength(ctx, req.FaceIndex, req.EdgeIndex)
		if err != nil {
			return nil, err
		}
		return map[string]any{"length": l}, nil
	})

	s.addTool(mcp.NewTool("get_vertex_point",
		mcp.WithDescription("Get the position of a vertex, addressed by face, edge, and vertex 0-based indices."),
		mcp.WithNumber("face_index", mcp.Required()),
		mcp.WithNumber("edge_index", mcp.Required()),
		mcp.WithNumber("vertex_index", mcp.Required()),
	), func(ctx context.Context, args map[string]any) (any, error) {
		var req vertexRequest
		if err := decodeArgs(args, &req); err != nil {
			return nil, err
		}
		pt, err := s.query.VertexPoint(ctx, req.FaceIndex, req.EdgeIndex, req.VertexIndex)
		if err != nil {
			return nil, err
		}
		return map[string]any{"point": pt}, nil
	})

	s.addTool(mcp.NewTool("get_ref_planes",
		mcp.WithDescription("List the document's reference planes by 0-based index and name."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		names, err := s.query.RefPlanes(ctx)
		if err != nil {
			return nil, err
		}
		planes := make([]map[string]any, len(names))
		for i, n := range names {
			planes[i] = map[string]any{"index": i, "name": n}
		}
		return map[string]any{"planes": planes, "count": len(planes)}, nil
	})

	s.addTool(mcp.NewTool("get_solid_bodies",
		mcp.WithDescription("Get the number of solid bodies in the document."),
	), func(ctx context.Context, args map[string]any) (any, error) {
		n, err := s.query.BodyCount(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{"body_count": n}, nil
	})
}
