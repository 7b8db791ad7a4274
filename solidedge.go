package solidedge

import (
	"fmt"
	"log/slog"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/features"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/query"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/sketch"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/topology"
)

// Version is the release version reported over the MCP handshake.
var Version = "0.4.0"

// Engine is the high-level entry point for the library. It wires one
// construction session, one topology indexer, and the three managers on
// top of a document resolver, and provides a simplified API for hosts
// that embed the server rather than run the CLI.
type Engine struct {
	resolver ports.DocumentResolver
	logger   *slog.Logger

	session  *session.Session
	indexer  *topology.Indexer
	sketch   *sketch.Manager
	features *features.Manager
	query    *query.Manager
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine and every
// manager under it.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes an Engine on top of the given document resolver.
// The resolver is consulted on every operation, so the engine follows
// whatever document is active in the kernel at call time.
func New(resolver ports.DocumentResolver, opts ...Option) (*Engine, error) {
	if resolver == nil {
		return nil, fmt.Errorf("a document resolver is required")
	}

	eng := &Engine{resolver: resolver}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.session = session.New(session.WithLogger(eng.logger))
	eng.indexer = topology.NewIndexer(topology.WithLogger(eng.logger))
	eng.sketch = sketch.NewManager(resolver, eng.session, eng.indexer, sketch.WithLogger(eng.logger))
	eng.features = features.NewManager(resolver, eng.session, features.WithLogger(eng.logger))
	eng.query = query.NewManager(resolver, eng.indexer, query.WithLogger(eng.logger))

	return eng, nil
}

// Session returns the construction session shared by all managers.
func (e *Engine) Session() *session.Session { return e.session }

// Indexer returns the topology indexer shared by all managers.
func (e *Engine) Indexer() *topology.Indexer { return e.indexer }

// Sketch returns the sketch manager.
func (e *Engine) Sketch() *sketch.Manager { return e.sketch }

// Features returns the feature manager.
func (e *Engine) Features() *features.Manager { return e.features }

// Query returns the topology query manager.
func (e *Engine) Query() *query.Manager { return e.query }
