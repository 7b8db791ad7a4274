package memory

import (
	"fmt"
	"math"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// Body is a fake solid body holding a fixed face list.
type Body struct {
	faces []*Face

	// FacesErr fails every enumeration, filtered or not.
	FacesErr error

	kindErrs map[domain.GeometryKind]error
}

// NewBody creates a body from the given faces.
func NewBody(faces ...*Face) *Body {
	return &Body{faces: faces}
}

// NewBoxBody builds the six planar faces of an axis-aligned box, the fake
// counterpart of the box primitive used all over the original test scripts.
func NewBoxBody(x, y, z float64) *Body {
	areas := []float64{x * y, x * y, y * z, y * z, x * z, x * z}
	faces := make([]*Face, len(areas))
	for i, a := range areas {
		faces[i] = NewFace(domain.GeometryPlane, a, 4)
	}
	return NewBody(faces...)
}

// FailKind makes the kind-filtered enumeration for k fail with err.
func (b *Body) FailKind(k domain.GeometryKind, err error) {
	if b.kindErrs == nil {
		b.kindErrs = make(map[domain.GeometryKind]error)
	}
	b.kindErrs[k] = err
}

// Faces implements ports.Body.
func (b *Body) Faces(q domain.FaceQuery) (ports.Collection, error) {
	if b.FacesErr != nil {
		return nil, b.FacesErr
	}
	if q.Kind == "" {
		items := make([]any, len(b.faces))
		for i, f := range b.faces {
			items[i] = f
		}
		return &SliceCollection{Items: items}, nil
	}
	if err := b.kindErrs[q.Kind]; err != nil {
		return nil, err
	}
	var items []any
	for _, f := range b.faces {
		if f.kind == q.Kind {
			items = append(items, f)
		}
	}
	return &SliceCollection{Items: items}, nil
}

// Shells implements ports.Body.
func (b *Body) Shells() ports.Collection {
	return &SliceCollection{}
}

// Face is a fake face with a declared geometry kind, area, and edges.
type Face struct {
	kind  domain.GeometryKind
	area  float64
	edges []*Edge

	// AreaErr fails the area property.
	AreaErr error
}

// NewFace creates a face of the given kind and area with edgeCount unit
// edges laid along +X.
func NewFace(kind domain.GeometryKind, area float64, edgeCount int) *Face {
	f := &Face{kind: kind, area: area}
	for i := 0; i < edgeCount; i++ {
		start := domain.Point3D{X: float64(i)}
		end := domain.Point3D{X: float64(i + 1)}
		f.edges = append(f.edges, NewEdge(start, end))
	}
	return f
}

// Area implements ports.Face.
func (f *Face) Area() (float64, error) {
	if f.AreaErr != nil {
		return 0, f.AreaErr
	}
	return f.area, nil
}

// Edges implements ports.Face.
func (f *Face) Edges() ports.Collection {
	items := make([]any, len(f.edges))
	for i, e := range f.edges {
		items[i] = e
	}
	return &SliceCollection{Items: items}
}

// Edge is a straight fake edge between two points.
type Edge struct {
	start, end domain.Point3D
}

// NewEdge creates an edge with the given endpoints and a vertex at each.
func NewEdge(start, end domain.Point3D) *Edge {
	return &Edge{start: start, end: end}
}

// Vertices implements ports.Edge.
func (e *Edge) Vertices() ports.Collection {
	return &SliceCollection{Items: []any{
		&Vertex{pt: e.start},
		&Vertex{pt: e.end},
	}}
}

// Endpoints implements ports.Edge.
func (e *Edge) Endpoints() (domain.Point3D, domain.Point3D, error) {
	return e.start, e.end, nil
}

// Length implements ports.Edge.
func (e *Edge) Length() (float64, error) {
	dx := e.end.X - e.start.X
	dy := e.end.Y - e.start.Y
	dz := e.end.Z - e.start.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz), nil
}

// Vertex is a fake vertex.
type Vertex struct {
	pt domain.Point3D
}

// Point implements ports.Vertex.
func (v *Vertex) Point() (domain.Point3D, error) { return v.pt, nil }

// String helps test failure output.
func (v *Vertex) String() string {
	return fmt.Sprintf("vertex(%g,%g,%g)", v.pt.X, v.pt.Y, v.pt.Z)
}
