package session

import (
	"log/slog"
	"sync"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/logging"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// Session is the construction state machine for one document: either no
// sketch is open, or exactly one is. Opening a second sketch while one is
// open is rejected — silently replacing it would lose user geometry.
//
// The axis of revolution is session state, not profile state: it survives
// Close (revolve-family features read it after the sketch is closed) and is
// reset by the next Open, so an axis never leaks across sketch sessions.
type Session struct {
	mu     sync.Mutex
	logger *slog.Logger

	open ports.Profile // nil when no sketch is open
	last ports.Profile // most recently closed profile, for single-profile features
	axis ports.Axis    // nil until set_axis_of_revolution
	acc  accumulator
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New creates an empty Session.
func New(opts ...Option) *Session {
	s := &Session{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open records p as the open sketch. Fails if a sketch is already open,
// leaving the open sketch's profile untouched. Resets the axis.
func (s *Session) Open(p ports.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open != nil {
		return domain.ErrSketchAlreadyOpen()
	}
	s.open = p
	s.axis = nil
	return nil
}

// ActiveProfile returns the open sketch's profile.
func (s *Session) ActiveProfile() (ports.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open == nil {
		return nil, domain.ErrNoActiveSketch()
	}
	return s.open, nil
}

// SetAxis stores the axis for later revolve/helix calls. Valid only while a
// sketch is open.
func (s *Session) SetAxis(a ports.Axis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open == nil {
		return domain.ErrNoActiveSketch()
	}
	s.axis = a
	return nil
}

// Axis returns the stored axis. Read-many: it is not cleared here.
func (s *Session) Axis() (ports.Axis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.axis == nil {
		return nil, domain.ErrNoAxisSet()
	}
	return s.axis, nil
}

// Close moves the session back to the no-sketch state and appends the
// finalized profile to the accumulator. The kernel-side End() must already
// have succeeded; an empty sketch never reaches this point.
func (s *Session) Close() (ports.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open == nil {
		return nil, domain.ErrNoActiveSketch()
	}
	p := s.open
	s.open = nil
	s.last = p
	s.acc.append(p)
	s.logger.Debug("sketch closed", "accumulated", s.acc.len())
	return p, nil
}

// LastProfile returns the most recently closed profile, for single-profile
// features (extrude, revolve) that run after close_sketch.
func (s *Session) LastProfile() (ports.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return nil, &domain.PreconditionError{Missing: "no closed sketch profile", Remedy: "close_sketch"}
	}
	return s.last, nil
}

// ProfileCount reports how many profiles are accumulated.
func (s *Session) ProfileCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.len()
}

// Profiles returns a copy of the accumulated list without draining it.
func (s *Session) Profiles() []ports.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.snapshot()
}

// Select narrows the accumulated list to the given 0-based positions. It
// does not drain; the consuming feature drains separately once its kernel
// call is attempted.
func (s *Session) Select(indices []int) ([]ports.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acc.selectByIndex(indices)
}

// Require fails with a precondition error unless at least min profiles are
// accumulated. It never mutates the accumulator, so the caller can add more
// profiles and retry.
func (s *Session) Require(min int) ([]ports.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acc.len() < min {
		return nil, domain.ErrNotEnoughProfiles(min, s.acc.len())
	}
	return s.acc.snapshot(), nil
}

// Drain returns the accumulated profiles in insertion order and resets the
// accumulator to empty, unconditionally and atomically. Also forgets the
// last-closed profile: it is consumed with the batch.
func (s *Session) Drain() []ports.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
	drained := s.acc.drain()
	s.logger.Debug("profiles drained", "count", len(drained))
	return drained
}

// Status is a point-in-time snapshot of the session for introspection.
type Status struct {
	SketchOpen          bool `json:"sketch_open"`
	AxisSet             bool `json:"axis_set"`
	AccumulatedProfiles int  `json:"accumulated_profiles"`
}

// Status reports the current session state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		SketchOpen:          s.open != nil,
		AxisSet:             s.axis != nil,
		AccumulatedProfiles: s.acc.len(),
	}
}

// Reset clears all session state. Used when the active document changes.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = nil
	s.last = nil
	s.axis = nil
	s.acc.drain()
}
