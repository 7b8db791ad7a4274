package ports

import "github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"

// Profile is an open (or finalized) 2D sketch profile. Draw calls are only
// valid before End; the handle itself stays valid after End so feature
// operations can consume it.
type Profile interface {
	AddLine(x1, y1, x2, y2 float64) error
	AddCircle(cx, cy, r float64) error
	// AddArc takes the center plus explicit start and end points; angle math
	// happens above this interface.
	AddArc(cx, cy, sx, sy, ex, ey float64) error
	// AddEllipse takes center, radii, and the major-axis direction vector.
	AddEllipse(cx, cy, major, minor, axisX, axisY float64) error
	// AddSpline fits a B-spline of the given order through the points.
	AddSpline(order int, pts []domain.Point2D) error

	// SetAxisOfRevolution draws the axis line and declares it the profile's
	// axis, returning the axis handle for revolve-family features.
	SetAxisOfRevolution(x1, y1, x2, y2 float64) (Axis, error)

	// Counts reports the geometry drawn so far.
	Counts() (domain.SketchCounts, error)

	// End validates and finalizes the profile. A profile with no geometry
	// fails here, before it ever reaches the accumulator.
	End() error
}

// Axis is an opaque axis-of-revolution handle tied to one profile.
// Adapters wrap their native representation; managers only carry it.
type Axis any

// FeatureOps is the feature-creation surface of a document. These are opaque
// kernel calls; their geometric correctness is the kernel's business. Every
// variant that takes multiple profiles consumes them in slice order.
type FeatureOps interface {
	ExtrudeAdd(p Profile, distance float64) error
	ExtrudeCut(p Profile, distance float64) error
	Revolve(p Profile, axis Axis, angleRad float64) error
	RevolveCut(p Profile, axis Axis, angleRad float64) error
	Loft(sections []Profile) error
	LoftCut(sections []Profile) error
	Sweep(path Profile, sections []Profile) error
	SweepCut(path Profile, sections []Profile) error
}
