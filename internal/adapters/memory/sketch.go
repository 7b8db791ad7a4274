package memory

import (
	"errors"
	"sync"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// Profile is a fake sketch profile. It counts what is drawn into it and
// enforces the kernel rule that an empty profile cannot be finalized.
type Profile struct {
	mu     sync.Mutex
	plane  ports.RefPlane
	counts domain.SketchCounts
	ended  bool

	// EndErr, when set, fails End() regardless of content.
	EndErr error
}

var errProfileFinalized = errors.New("profile is finalized")

// Plane returns the reference plane the profile was opened on.
func (p *Profile) Plane() ports.RefPlane { return p.plane }

// Ended reports whether End has succeeded.
func (p *Profile) Ended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ended
}

func (p *Profile) draw(bump func(*domain.SketchCounts)) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ended {
		return errProfileFinalized
	}
	bump(&p.counts)
	return nil
}

// AddLine implements ports.Profile.
func (p *Profile) AddLine(x1, y1, x2, y2 float64) error {
	return p.draw(func(c *domain.SketchCounts) { c.Lines++ })
}

// AddCircle implements ports.Profile.
func (p *Profile) AddCircle(cx, cy, r float64) error {
	return p.draw(func(c *domain.SketchCounts) { c.Circles++ })
}

// AddArc implements ports.Profile.
func (p *Profile) AddArc(cx, cy, sx, sy, ex, ey float64) error {
	return p.draw(func(c *domain.SketchCounts) { c.Arcs++ })
}

// AddEllipse implements ports.Profile.
func (p *Profile) AddEllipse(cx, cy, major, minor, axisX, axisY float64) error {
	return p.draw(func(c *domain.SketchCounts) { c.Ellipses++ })
}

// AddSpline implements ports.Profile.
func (p *Profile) AddSpline(order int, pts []domain.Point2D) error {
	return p.draw(func(c *domain.SketchCounts) { c.Splines++ })
}

// SetAxisOfRevolution implements ports.Profile.
func (p *Profile) SetAxisOfRevolution(x1, y1, x2, y2 float64) (ports.Axis, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ended {
		return nil, errProfileFinalized
	}
	return &Axis{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// Counts implements ports.Profile.
func (p *Profile) Counts() (domain.SketchCounts, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts, nil
}

// End implements ports.Profile. A profile with no geometry fails, matching
// the kernel's validate-on-close behavior.
func (p *Profile) End() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.EndErr != nil {
		return p.EndErr
	}
	if p.counts.Total() == 0 {
		return errors.New("profile has no geometry")
	}
	p.ended = true
	return nil
}

// Axis is the fake axis handle produced by SetAxisOfRevolution.
type Axis struct {
	X1, Y1, X2, Y2 float64
}

// FeatureCall records one feature-creation invocation.
type FeatureCall struct {
	Op       string
	Profile  ports.Profile
	Path     ports.Profile
	Sections []ports.Profile
	Axis     ports.Axis
	Distance float64
	AngleRad float64
}

// FeatureRecorder implements ports.FeatureOps by recording calls. Err, when
// set, fails every call after recording it — the shape of a kernel that
// rejects the geometry only once the feature is attempted.
type FeatureRecorder struct {
	mu    sync.Mutex
	calls []FeatureCall

	Err error
}

// Calls returns the recorded invocations.
func (r *FeatureRecorder) Calls() []FeatureCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FeatureCall, len(r.calls))
	copy(out, r.calls)
	return out
}

func (r *FeatureRecorder) record(c FeatureCall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return r.Err
}

// ExtrudeAdd implements ports.FeatureOps.
func (r *FeatureRecorder) ExtrudeAdd(p ports.Profile, distance float64) error {
	return r.record(FeatureCall{Op: "extrude_add", Profile: p, Distance: distance})
}

// ExtrudeCut implements ports.FeatureOps.
func (r *FeatureRecorder) ExtrudeCut(p ports.Profile, distance float64) error {
	return r.record(FeatureCall{Op: "extrude_cut", Profile: p, Distance: distance})
}

// Revolve implements ports.FeatureOps.
func (r *FeatureRecorder) Revolve(p ports.Profile, axis ports.Axis, angleRad float64) error {
	return r.record(FeatureCall{Op: "revolve", Profile: p, Axis: axis, AngleRad: angleRad})
}

// RevolveCut implements ports.FeatureOps.
func (r *FeatureRecorder) RevolveCut(p ports.Profile, axis ports.Axis, angleRad float64) error {
	return r.record(FeatureCall{Op: "revolve_cut", Profile: p, Axis: axis, AngleRad: angleRad})
}

// Loft implements ports.FeatureOps.
func (r *FeatureRecorder) Loft(sections []ports.Profile) error {
	return r.record(FeatureCall{Op: "loft", Sections: sections})
}

// LoftCut implements ports.FeatureOps.
func (r *FeatureRecorder) LoftCut(sections []ports.Profile) error {
	return r.record(FeatureCall{Op: "loft_cut", Sections: sections})
}

// Sweep implements ports.FeatureOps.
func (r *FeatureRecorder) Sweep(path ports.Profile, sections []ports.Profile) error {
	return r.record(FeatureCall{Op: "sweep", Path: path, Sections: sections})
}

// SweepCut implements ports.FeatureOps.
func (r *FeatureRecorder) SweepCut(path ports.Profile, sections []ports.Profile) error {
	return r.record(FeatureCall{Op: "sweep_cut", Path: path, Sections: sections})
}
