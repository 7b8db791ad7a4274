// Package sketch manages 2D sketch construction: opening a profile on a
// reference plane, drawing geometry into it, binding the axis of revolution,
// and closing it into the session's profile accumulator.
package sketch

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/topology"
)

// planeOrdinals maps the named base planes to their boundary ordinals.
// The kernel creates the three base planes in a fixed order, so Top/Front/
// Right are stable aliases for ordinals 0/1/2 (kernel items 1/2/3).
var planeOrdinals = map[string]int{
	"Top":   0,
	"XZ":    0,
	"Front": 1,
	"XY":    1,
	"Right": 2,
	"YZ":    2,
}

// Manager drives sketch construction against the active document.
type Manager struct {
	resolver ports.DocumentResolver
	session  *session.Session
	indexer  *topology.Indexer
	logger   *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a sketch Manager.
func NewManager(resolver ports.DocumentResolver, sess *session.Session, ix *topology.Indexer, opts ...Option) *Manager {
	m := &Manager{
		resolver: resolver,
		session:  sess,
		indexer:  ix,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create opens a new sketch on a named base plane: Top, Front, Right, or
// the XZ/XY/YZ aliases.
func (m *Manager) Create(ctx context.Context, plane string) (string, error) {
	ordinal, ok := planeOrdinals[plane]
	if !ok {
		return "", fmt.Errorf("invalid plane %q: use Top, Front, Right, XY, XZ, or YZ", plane)
	}
	return m.CreateOnPlane(ctx, ordinal)
}

// CreateOnPlane opens a new sketch on a reference plane addressed by its
// 0-based boundary ordinal, covering user-created planes as well.
func (m *Manager) CreateOnPlane(ctx context.Context, planeOrdinal int) (string, error) {
	// Reject before touching the kernel so no orphan profile is created.
	if _, err := m.session.ActiveProfile(); err == nil {
		return "", domain.ErrSketchAlreadyOpen()
	}
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return "", err
	}
	ref, err := m.indexer.ResolvePlane(doc, planeOrdinal)
	if err != nil {
		return "", err
	}
	profile, err := doc.AddProfile(ref)
	if err != nil {
		return "", fmt.Errorf("add profile: %w", err)
	}
	if err := m.session.Open(profile); err != nil {
		return "", err
	}
	m.logger.Debug("sketch opened", "plane", ref.Name())
	return ref.Name(), nil
}

// Close validates and finalizes the open sketch. On success the finalized
// profile is appended to the accumulator and the session returns to the
// no-sketch state. A sketch with no geometry fails kernel-side and stays
// open.
func (m *Manager) Close(ctx context.Context) (int, error) {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return 0, err
	}
	if err := profile.End(); err != nil {
		return 0, fmt.Errorf("end profile: %w", err)
	}
	if _, err := m.session.Close(); err != nil {
		return 0, err
	}
	return m.session.ProfileCount(), nil
}

// SetAxisOfRevolution draws the axis line into the open sketch and stores
// the resulting axis handle in the session for revolve-family features.
// Must run before the sketch is closed.
func (m *Manager) SetAxisOfRevolution(ctx context.Context, x1, y1, x2, y2 float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	axis, err := profile.SetAxisOfRevolution(x1, y1, x2, y2)
	if err != nil {
		return fmt.Errorf("set axis of revolution: %w", err)
	}
	return m.session.SetAxis(axis)
}

// Info reports geometry counts for the open sketch.
func (m *Manager) Info(ctx context.Context) (domain.SketchCounts, error) {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return domain.SketchCounts{}, err
	}
	return profile.Counts()
}

// DrawLine draws a line between two points. Coordinates in meters.
func (m *Manager) DrawLine(ctx context.Context, x1, y1, x2, y2 float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	return profile.AddLine(x1, y1, x2, y2)
}

// DrawCircle draws a circle by center and radius.
func (m *Manager) DrawCircle(ctx context.Context, cx, cy, r float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	return profile.AddCircle(cx, cy, r)
}

// DrawRectangle draws a rectangle as four lines between two diagonal corners.
func (m *Manager) DrawRectangle(ctx context.Context, x1, y1, x2, y2 float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	sides := [4][4]float64{
		{x1, y1, x2, y1}, // bottom
		{x2, y1, x2, y2}, // right
		{x2, y2, x1, y2}, // top
		{x1, y2, x1, y1}, // left
	}
	for _, s := range sides {
		if err := profile.AddLine(s[0], s[1], s[2], s[3]); err != nil {
			return err
		}
	}
	return nil
}

// DrawArc draws an arc by center, radius, and start/end angles in degrees
// (0 = +X, 90 = +Y). The kernel takes explicit endpoints, so the angle math
// happens here.
func (m *Manager) DrawArc(ctx context.Context, cx, cy, r, startDeg, endDeg float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	start := startDeg * math.Pi / 180
	end := endDeg * math.Pi / 180
	sx := cx + r*math.Cos(start)
	sy := cy + r*math.Sin(start)
	ex := cx + r*math.Cos(end)
	ey := cy + r*math.Sin(end)
	return profile.AddArc(cx, cy, sx, sy, ex, ey)
}

// DrawPolygon draws a regular polygon inscribed in the given radius.
func (m *Manager) DrawPolygon(ctx context.Context, cx, cy, r float64, sides int) error {
	if sides < 3 {
		return fmt.Errorf("polygon must have at least 3 sides, got %d", sides)
	}
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]domain.Point2D, sides)
	for i := range pts {
		angle := float64(i) * step
		pts[i] = domain.Point2D{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	for i := range pts {
		next := pts[(i+1)%sides]
		if err := profile.AddLine(pts[i].X, pts[i].Y, next.X, next.Y); err != nil {
			return err
		}
	}
	return nil
}

// DrawEllipse draws an ellipse by center, radii, and rotation in degrees.
// The rotation becomes the major-axis direction vector the kernel expects.
func (m *Manager) DrawEllipse(ctx context.Context, cx, cy, major, minor, angleDeg float64) error {
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	rad := angleDeg * math.Pi / 180
	return profile.AddEllipse(cx, cy, major, minor, math.Cos(rad), math.Sin(rad))
}

// DrawSpline fits a cubic B-spline through the given points.
func (m *Manager) DrawSpline(ctx context.Context, pts []domain.Point2D) error {
	if len(pts) < 2 {
		return fmt.Errorf("spline requires at least 2 points, got %d", len(pts))
	}
	profile, err := m.session.ActiveProfile()
	if err != nil {
		return err
	}
	return profile.AddSpline(3, pts)
}
