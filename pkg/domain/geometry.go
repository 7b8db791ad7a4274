package domain

// Point2D is a sketch-plane coordinate in meters.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point3D is a model-space coordinate in meters.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FaceInfo describes one face of a body as seen by a single enumeration.
// Index is only valid until the topology changes.
type FaceInfo struct {
	Index     int          `json:"index"`
	Area      float64      `json:"area,omitempty"`
	EdgeCount int          `json:"edge_count"`
	Geometry  GeometryKind `json:"geometry"`
}

// SketchCounts reports the geometry content of the open sketch.
type SketchCounts struct {
	Lines    int `json:"lines"`
	Circles  int `json:"circles"`
	Arcs     int `json:"arcs"`
	Ellipses int `json:"ellipses"`
	Splines  int `json:"splines"`
}

// Total returns the number of curves in the sketch.
func (c SketchCounts) Total() int {
	return c.Lines + c.Circles + c.Arcs + c.Ellipses + c.Splines
}
