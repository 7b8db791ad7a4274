// Package features holds the feature-consumer glue: thin calls into the
// kernel's feature surface that read the session's accumulated profiles and
// axis. The geometric algorithms themselves live in the kernel; what this
// package owns is the consumption contract — preconditions are checked
// before anything is consumed, and once a kernel call is attempted the
// accumulator is drained whether or not the call succeeded.
package features

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
)

// Manager creates features from accumulated session state.
type Manager struct {
	resolver ports.DocumentResolver
	session  *session.Session
	logger   *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a feature Manager.
func NewManager(resolver ports.DocumentResolver, sess *session.Session, opts ...Option) *Manager {
	m := &Manager{resolver: resolver, session: sess, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// consumed wraps a kernel failure that happened after the accumulator was
// drained. The profiles are gone; the caller has to rebuild them, and the
// error message must say so.
func consumed(op string, err error) error {
	return fmt.Errorf("%s failed (accumulated profiles were consumed by this attempt and have been cleared): %w", op, err)
}

// Extrude creates an extruded protrusion (or cutout) from the most recently
// closed sketch profile.
func (m *Manager) Extrude(ctx context.Context, distance float64, cut bool) error {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return err
	}
	profile, err := m.session.LastProfile()
	if err != nil {
		return err
	}
	defer m.session.Drain()
	ops := doc.Features()
	if cut {
		err = ops.ExtrudeCut(profile, distance)
	} else {
		err = ops.ExtrudeAdd(profile, distance)
	}
	if err != nil {
		return consumed("extrude", err)
	}
	m.logger.Info("extrude created", "distance", distance, "cut", cut)
	return nil
}

// Revolve creates a revolved protrusion (or cutout) from the most recently
// closed profile around the axis set in that sketch session.
func (m *Manager) Revolve(ctx context.Context, angleDeg float64, cut bool) error {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return err
	}
	profile, err := m.session.LastProfile()
	if err != nil {
		return err
	}
	axis, err := m.session.Axis()
	if err != nil {
		return err
	}
	defer m.session.Drain()
	angleRad := angleDeg * math.Pi / 180
	ops := doc.Features()
	if cut {
		err = ops.RevolveCut(profile, axis, angleRad)
	} else {
		err = ops.Revolve(profile, axis, angleRad)
	}
	if err != nil {
		return consumed("revolve", err)
	}
	m.logger.Info("revolve created", "angle_deg", angleDeg, "cut", cut)
	return nil
}

// Loft creates a lofted protrusion (or cutout) through the accumulated
// profiles in insertion order. indices, when non-nil, narrows the sections
// to those positions; the accumulator is drained in full either way.
func (m *Manager) Loft(ctx context.Context, indices []int, cut bool) (int, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return 0, err
	}
	sections, err := m.sections(indices, 2)
	if err != nil {
		return 0, err
	}
	defer m.session.Drain()
	ops := doc.Features()
	if cut {
		err = ops.LoftCut(sections)
	} else {
		err = ops.Loft(sections)
	}
	if err != nil {
		return 0, consumed("loft", err)
	}
	m.logger.Info("loft created", "sections", len(sections), "cut", cut)
	return len(sections), nil
}

// Sweep creates a swept protrusion (or cutout). The profile at pathIndex is
// the path (an open profile); every other accumulated profile is a
// cross-section, in insertion order.
func (m *Manager) Sweep(ctx context.Context, pathIndex int, cut bool) (int, error) {
	doc, err := m.resolver.ActiveDocument(ctx)
	if err != nil {
		return 0, err
	}
	all, err := m.session.Require(2)
	if err != nil {
		return 0, err
	}
	path, err := m.session.Select([]int{pathIndex})
	if err != nil {
		return 0, err
	}
	sections := make([]ports.Profile, 0, len(all)-1)
	for i, p := range all {
		if i != pathIndex {
			sections = append(sections, p)
		}
	}
	defer m.session.Drain()
	ops := doc.Features()
	if cut {
		err = ops.SweepCut(path[0], sections)
	} else {
		err = ops.Sweep(path[0], sections)
	}
	if err != nil {
		return 0, consumed("sweep", err)
	}
	m.logger.Info("sweep created", "sections", len(sections), "cut", cut)
	return len(sections), nil
}

func (m *Manager) sections(indices []int, min int) ([]ports.Profile, error) {
	if indices == nil {
		return m.session.Require(min)
	}
	selected, err := m.session.Select(indices)
	if err != nil {
		return nil, err
	}
	if len(selected) < min {
		return nil, domain.ErrNotEnoughProfiles(min, len(selected))
	}
	return selected, nil
}
