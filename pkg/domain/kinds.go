package domain

// CollectionKind names a live kernel collection that tool calls address by
// ordinal. The kernel re-enumerates the collection on every resolution, so a
// kind plus an ordinal is the only identity a caller ever holds.
type CollectionKind string

const (
	KindFace        CollectionKind = "face"
	KindEdge        CollectionKind = "edge"   // edges of a face
	KindVertex      CollectionKind = "vertex" // vertices of an edge
	KindRefPlane    CollectionKind = "ref_plane"
	KindBody        CollectionKind = "body"
	KindShell       CollectionKind = "shell"
	KindSheet       CollectionKind = "sheet"
	KindDrawingView CollectionKind = "drawing_view"
	KindFeature     CollectionKind = "feature"
	KindProfile     CollectionKind = "profile" // accumulated sketch profiles
)

// GeometryKind labels the surface geometry of a face.
type GeometryKind string

const (
	GeometryPlane    GeometryKind = "plane"
	GeometryCylinder GeometryKind = "cylinder"
	GeometryCone     GeometryKind = "cone"
	GeometrySphere   GeometryKind = "sphere"
	GeometryTorus    GeometryKind = "torus"
	GeometrySpline   GeometryKind = "spline"
	GeometryUnknown  GeometryKind = "unknown"
)

// ClassificationOrder is the priority order used when fingerprinting faces.
// On a fingerprint collision the kind recorded last wins, so later entries
// shadow earlier ones. Known limitation, kept deliberately.
var ClassificationOrder = []GeometryKind{
	GeometryPlane,
	GeometryCylinder,
	GeometryCone,
	GeometrySphere,
	GeometryTorus,
	GeometrySpline,
}

// FaceQuery selects which faces a body enumeration returns.
type FaceQuery struct {
	// Kind filters to a single surface geometry; empty means all faces.
	Kind GeometryKind
}

// QueryAll enumerates every face regardless of geometry.
var QueryAll = FaceQuery{}

// QueryKind enumerates only faces of the given surface geometry.
func QueryKind(k GeometryKind) FaceQuery { return FaceQuery{Kind: k} }
