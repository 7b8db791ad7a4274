package ports

import (
	"context"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
)

// DocumentResolver yields the kernel's currently-active document.
//
// The user can switch documents between tool calls, so every manager method
// resolves the document exactly once at its start and works against that
// snapshot for the rest of the call. Resolving twice inside one call can
// silently target two different documents.
type DocumentResolver interface {
	ActiveDocument(ctx context.Context) (Document, error)
}

// Collection is a live, 1-based kernel collection. Count and Item re-enter
// the kernel on every call; nothing is cached. Items are opaque — callers
// type-assert to the concrete port they expect.
type Collection interface {
	Count() (int, error)
	Item(i int) (any, error) // 1-based, kernel convention
}

// Document is the single active kernel document.
type Document interface {
	Name() string

	// RefPlanes enumerates the document's reference planes. Items are RefPlane.
	RefPlanes() Collection

	// Body returns the body of the document's first model, or an error when
	// the document has no solid geometry yet.
	Body() (Body, error)

	// Bodies enumerates all solid bodies. Items are Body.
	Bodies() Collection

	// AddProfile opens a new sketch profile on the given reference plane.
	AddProfile(plane RefPlane) (Profile, error)

	// Features exposes the document's feature-creation surface.
	Features() FeatureOps
}

// RefPlane is an opaque reference plane handle.
type RefPlane interface {
	Name() string
}

// Body exposes the topology of one solid body.
type Body interface {
	// Faces enumerates faces matching the query. Items are Face. A failing
	// kind-filtered query is an error here, not a panic; classification
	// skips the kind and moves on.
	Faces(q domain.FaceQuery) (Collection, error)

	// Shells enumerates the body's shells. Items are opaque shell handles.
	Shells() Collection
}

// Face is one face of a body.
type Face interface {
	Area() (float64, error)

	// Edges enumerates the face's edges. Items are Edge.
	Edges() Collection
}

// Edge is one edge of a face.
type Edge interface {
	// Vertices enumerates the edge's vertices. Items are Vertex.
	Vertices() Collection

	Endpoints() (start, end domain.Point3D, err error)
	Length() (float64, error)
}

// Vertex is one vertex of an edge.
type Vertex interface {
	Point() (domain.Point3D, error)
}
