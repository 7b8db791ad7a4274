// Package mcp adapts the managers to the Model Context Protocol. Every tool
// handler runs the same boundary: decode typed arguments, call the manager,
// fold any error into a structured payload. No error crosses this boundary
// as a transport failure — a broken geometric operation must not stop the
// next unrelated tool call from working.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/journal"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/metrics"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/features"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/query"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/sketch"
)

// ToolInfo is one entry of the tool catalog.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Server exposes the managers as an MCP server.
type Server struct {
	sketch   *sketch.Manager
	features *features.Manager
	query    *query.Manager
	session  *session.Session

	mcpServer *server.MCPServer
	logger    *slog.Logger
	journal   *journal.Journal
	metrics   *metrics.Metrics
	catalog   []ToolInfo
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithJournal enables tool-call journaling.
func WithJournal(j *journal.Journal) Option {
	return func(s *Server) { s.journal = j }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// NewServer creates the MCP server and registers all tools and resources.
func NewServer(version string, sk *sketch.Manager, ft *features.Manager, q *query.Manager, sess *session.Session, opts ...Option) *Server {
	s := &Server{
		sketch:    sk,
		features:  ft,
		query:     q,
		session:   sess,
		mcpServer: server.NewMCPServer("solidedge-mcp", version),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerSketchTools()
	s.registerFeatureTools()
	s.registerQueryTools()
	s.registerProfileTools()
	s.registerResources()
	return s
}

// Catalog lists the registered tools.
func (s *Server) Catalog() []ToolInfo { return s.catalog }

// ServeStdio serves MCP on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over Server-Sent Events on the given port, alongside
// the metrics and health endpoints.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	httpServer := &http.Server{Addr: addr, Handler: r}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handlerFunc is the shape every tool handler reduces to after decoding.
type handlerFunc func(ctx context.Context, args map[string]any) (any, error)

// addTool registers a tool with the journaling/metrics/error boundary
// wrapped around its handler.
func (s *Server) addTool(tool mcp.Tool, h handlerFunc) {
	s.catalog = append(s.catalog, ToolInfo{Name: tool.Name, Description: tool.Description})
	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		args := request.GetArguments()

		out, err := h(ctx, args)
		elapsed := time.Since(start)

		status := "ok"
		var payload any = out
		if err != nil {
			status = "error"
			payload = domain.PayloadFor(err)
		}
		s.record(ctx, tool.Name, args, status, err, elapsed)

		body, merr := json.Marshal(payload)
		if merr != nil {
			body = []byte(fmt.Sprintf(`{"error":%q,"kind":%q}`, merr.Error(), domain.ErrKindKernel))
			status = "error"
		}
		if status == "error" {
			return mcp.NewToolResultError(string(body)), nil
		}
		return mcp.NewToolResultText(string(body)), nil
	})
}

func (s *Server) record(ctx context.Context, tool string, args map[string]any, status string, err error, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.Observe(tool, status, elapsed)
	}
	if err != nil {
		s.logger.Warn("tool call failed", "tool", tool, "err", err)
	} else {
		s.logger.Debug("tool call ok", "tool", tool, "duration", elapsed)
	}
	if s.journal != nil {
		entry := journal.Entry{Tool: tool, Args: args, Status: status, Duration: elapsed}
		if err != nil {
			p := domain.PayloadFor(err)
			entry.ErrorKind = p.Kind
			entry.Error = p.Error
		}
		if _, jerr := s.journal.Record(ctx, entry); jerr != nil {
			s.logger.Warn("journal write failed", "err", jerr)
		}
	}
}

// decodeArgs maps the raw argument map into a typed request struct.
// Numbers arrive as float64 from JSON, so decoding is weakly typed; a field
// of the wrong shape still fails, naming the field, before any kernel call.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return &domain.InvalidArgumentError{Err: err}
	}
	if err := dec.Decode(args); err != nil {
		return &domain.InvalidArgumentError{Err: err}
	}
	return nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("solidedge://session", "Construction Session State",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		body, err := json.Marshal(s.session.Status())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "solidedge://session",
				MIMEType: "application/json",
				Text:     string(body),
			},
		}, nil
	})
}
