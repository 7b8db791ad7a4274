// Package query exposes read-only topology queries over the active document.
// Every ordinal it accepts or returns is 0-based and only as durable as the
// underlying topology: a feature added or removed between calls silently
// renumbers everything.
package query

import (
	"context"
	"log/slog"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/topology"
)

// Manager answers topology queries.
type Manager struct {
	resolver ports.DocumentResolver
	indexer  *topology.Indexer
	logger   *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a query Manager.
func NewManager(resolver ports.DocumentResolver, ix *topology.Indexer, opts ...Option) *Manager {
	m := &Manager{resolver: resolver, indexer: ix, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// BodyFaces lists every face of the body with its classified geometry kind.
func (m *Manager) BodyFaces(ctx context.Context) ([]domain.FaceInfo, error) {
	body, err := m.body(ctx)
	if err != nil {
		return nil, err
	}
	return m.indexer.ClassifyFaces(body)
}

// FaceCount returns the number of faces on the body.
func (m *Manager) FaceCount(ctx context.Context) (int, error) {
	body, err := m.body(ctx)
	if err != nil {
		return 0, err
	}
	faces, err := body.Faces(domain.QueryAll)
	if err != nil {
		return 0, &domain.StaleReferenceError{Kind: domain.KindFace, Err: err}
	}
	return faces.Count()
}

// FaceInfo describes one face by ordinal.
func (m *Manager) FaceInfo(ctx context.Context, faceOrdinal int) (domain.FaceInfo, error) {
	body, err := m.body(ctx)
	if err != nil {
		return domain.FaceInfo{}, err
	}
	face, err := m.indexer.ResolveFace(body, faceOrdinal)
	if err != nil {
		return domain.FaceInfo{}, err
	}
	info := domain.FaceInfo{Index: faceOrdinal, Geometry: domain.GeometryUnknown}
	if area, err := face.Area(); err == nil {
		info.Area = area
	}
	if n, err := face.Edges().Count(); err == nil {
		info.EdgeCount = n
	}
	return info, nil
}

// FaceEdgeCount returns the number of edges on a face.
func (m *Manager) FaceEdgeCount(ctx context.Context, faceOrdinal int) (int, error) {
	body, err := m.body(ctx)
	if err != nil {
		return 0, err
	}
	face, err := m.indexer.ResolveFace(body, faceOrdinal)
	if err != nil {
		return 0, err
	}
	return face.Edges().Count()
}

// EdgeEndpoints returns the 3D endpoints of an edge addressed by face and
// edge ordinals.
func (m *Manager) EdgeEndpoints(ctx context.Context, faceOrdinal, edgeOrdinal int) (start, end domain.Point3D, err error) {
	body, err := m.body(ctx)
	if err != nil {
		return start, end, err
	}
	face, err := m.indexer.ResolveFace(body, faceOrdinal)
	if err != nil {
		return start, end, err
	}
	edge, err := m.indexer.ResolveEdge(face, edgeOrdinal)
	if err != nil {
		return start, end, err
	}
	return edge.Endpoints()
}

// EdgeLength returns the length of an edge addressed by face and edge
// ordinals.
func (m *Manager) EdgeLength(ctx context.Context, faceOrdinal, edgeOrdinal int) (float64, error) {
	body, err := m.body(ctx)
	if err != nil {
		return 0, err
	}
	face, err := m.indexer.ResolveFace(body, faceOrdinal)
	if err != nil {
		return 0, err
	}
	edge, err := m.indexer.ResolveEdge(face, edgeOrdinal)
	if err != nil {
		return 0, err
	}
	return edge.Length()
}

// VertexPoint returns the position of a vertex addressed by face, edge, and
// vertex ordinals.
func (m *Manager) VertexPoint(ctx context.Context, faceOrdinal, edgeOrdinal, vertexOrdinal int) (domain.Point3D, error) {
	body, err := m.body(ctx)
	if err != nil {
		return domain.Point3D{}, err
	}
	face, err := m.indexer.ResolveFace(body, faceOrdinal)
	if err != nil {
		return domain.Point3D{}, err
	}
	edge, err := m.indexer.ResolveEdge(face, edgeOrdinal)
	if err != nil {
		return domain.Point3D{}, err
	}
	vertex, err := m.indexer.ResolveVertex(edge, vertexOrdinal)
	if err != nil {
		return domain.Point3D{}, err
	}
	return vertex.Point()
}

// DocumentInfo describes the active document at the time of the call.
type DocumentInfo struct {
	Name   string `json:"name"`
	Planes int    `json:"ref_planes"`
	Bodies int    `json:"bodies"`
}

// Document reports the active document's name and collection sizes.
func (m *Manager) Document(ctx context.Context) (DocumentInfo, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return DocumentInfo{}, err
	}
	info := DocumentInfo{Name: doc.Name()}
	if n, err := doc.RefPlanes().Count(); err == nil {
		info.Planes = n
	}
	if n, err := doc.Bodies().Count(); err == nil {
		info.Bodies = n
	}
	return info, nil
}

// RefPlanes lists the document's reference planes by ordinal and name.
func (m *Manager) RefPlanes(ctx context.Context) ([]string, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return nil, err
	}
	planes := doc.RefPlanes()
	n, err := planes.Count()
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: domain.KindRefPlane, Err: err}
	}
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		item, err := planes.Item(i)
		if err != nil {
			return nil, &domain.StaleReferenceError{Kind: domain.KindRefPlane, Err: err}
		}
		if ref, ok := item.(ports.RefPlane); ok {
			names = append(names, ref.Name())
		} else {
			names = append(names, "")
		}
	}
	return names, nil
}

// BodyCount returns the number of solid bodies in the document.
func (m *Manager) BodyCount(ctx context.Context) (int, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return 0, err
	}
	return doc.Bodies().Count()
}

// body resolves the active document once and returns its first model body.
func (m *Manager) body(ctx context.Context) (ports.Body, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Body()
}
