package topology

import (
	"fmt"
	"log/slog"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// Indexer resolves boundary ordinals against live kernel collections.
// It is stateless; one value is shared by all managers.
type Indexer struct {
	logger *slog.Logger
}

// Option configures the Indexer.
type Option func(*Indexer)

// WithLogger sets the logger used for classification diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Indexer) { ix.logger = logger }
}

// NewIndexer creates an Indexer.
func NewIndexer(opts ...Option) *Indexer {
	ix := &Indexer{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Resolve re-enumerates col and returns the element at the 0-based ordinal,
// translated to the kernel's 1-based convention. The resolved object must
// not be cached by the caller beyond the current tool call: correctness
// under topology drift depends on re-resolving every time.
func (ix *Indexer) Resolve(kind domain.CollectionKind, col ports.Collection, ordinal int) (any, error) {
	n, err := col.Count()
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: kind, Err: err}
	}
	if ordinal < 0 || ordinal >= n {
		return nil, &domain.IndexError{Kind: kind, Requested: ordinal, Observed: n}
	}
	item, err := col.Item(ordinal + 1)
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: kind, Err: err}
	}
	return item, nil
}

func resolveAs[T any](ix *Indexer, kind domain.CollectionKind, col ports.Collection, ordinal int) (T, error) {
	var zero T
	item, err := ix.Resolve(kind, col, ordinal)
	if err != nil {
		return zero, err
	}
	v, ok := item.(T)
	if !ok {
		return zero, fmt.Errorf("%s collection yielded unexpected %T", kind, item)
	}
	return v, nil
}

// ResolveFace resolves a face of the body by ordinal.
func (ix *Indexer) ResolveFace(body ports.Body, ordinal int) (ports.Face, error) {
	faces, err := body.Faces(domain.QueryAll)
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: domain.KindFace, Err: err}
	}
	return resolveAs[ports.Face](ix, domain.KindFace, faces, ordinal)
}

// ResolveEdge resolves an edge of the given face by ordinal.
func (ix *Indexer) ResolveEdge(face ports.Face, ordinal int) (ports.Edge, error) {
	return resolveAs[ports.Edge](ix, domain.KindEdge, face.Edges(), ordinal)
}

// ResolveVertex resolves a vertex of the given edge by ordinal.
func (ix *Indexer) ResolveVertex(edge ports.Edge, ordinal int) (ports.Vertex, error) {
	return resolveAs[ports.Vertex](ix, domain.KindVertex, edge.Vertices(), ordinal)
}

// ResolvePlane resolves a reference plane of the document by ordinal.
func (ix *Indexer) ResolvePlane(doc ports.Document, ordinal int) (ports.RefPlane, error) {
	return resolveAs[ports.RefPlane](ix, domain.KindRefPlane, doc.RefPlanes(), ordinal)
}

// ResolveBody resolves a solid body of the document by ordinal.
func (ix *Indexer) ResolveBody(doc ports.Document, ordinal int) (ports.Body, error) {
	return resolveAs[ports.Body](ix, domain.KindBody, doc.Bodies(), ordinal)
}
