package topology

import (
	"math"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/ports"
)

// fingerprint is the best-effort identity used to match a face seen in the
// unfiltered enumeration against the kind-filtered sub-collections. Two
// distinct faces with equal rounded area and equal edge count collide and
// silently share a label; that is a documented limitation, not a fault.
type fingerprint struct {
	area  float64 // rounded to 12 decimals
	edges int
}

func roundArea(a float64) float64 {
	const shift = 1e12
	return math.Round(a*shift) / shift
}

func fingerprintOf(face ports.Face) (fingerprint, bool) {
	area, err := face.Area()
	if err != nil {
		return fingerprint{}, false
	}
	edges := 0
	if n, err := face.Edges().Count(); err == nil {
		edges = n
	}
	return fingerprint{area: roundArea(area), edges: edges}, true
}

// ClassifyFaces labels every face of body with a geometry kind, keyed by
// 0-based face ordinal. The kernel exposes no per-face kind property, so the
// label comes from cross-referencing kind-filtered sub-collections by
// fingerprint. A sub-collection the kernel refuses to enumerate is skipped;
// faces matching no recorded fingerprint come back as "unknown". Never fails
// per-face: a face that cannot even be fingerprinted is still listed.
func (ix *Indexer) ClassifyFaces(body ports.Body) ([]domain.FaceInfo, error) {
	table := make(map[fingerprint]domain.GeometryKind)
	for _, kind := range domain.ClassificationOrder {
		sub, err := body.Faces(domain.QueryKind(kind))
		if err != nil {
			ix.logger.Debug("skipping face kind query", "kind", kind, "err", err)
			continue
		}
		n, err := sub.Count()
		if err != nil {
			ix.logger.Debug("skipping face kind query", "kind", kind, "err", err)
			continue
		}
		for i := 1; i <= n; i++ {
			item, err := sub.Item(i)
			if err != nil {
				continue
			}
			face, ok := item.(ports.Face)
			if !ok {
				continue
			}
			if fp, ok := fingerprintOf(face); ok {
				table[fp] = kind
			}
		}
	}

	all, err := body.Faces(domain.QueryAll)
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: domain.KindFace, Err: err}
	}
	n, err := all.Count()
	if err != nil {
		return nil, &domain.StaleReferenceError{Kind: domain.KindFace, Err: err}
	}

	infos := make([]domain.FaceInfo, 0, n)
	for i := 1; i <= n; i++ {
		info := domain.FaceInfo{Index: i - 1, Geometry: domain.GeometryUnknown}
		item, err := all.Item(i)
		if err != nil {
			infos = append(infos, info)
			continue
		}
		face, ok := item.(ports.Face)
		if !ok {
			infos = append(infos, info)
			continue
		}
		if area, err := face.Area(); err == nil {
			info.Area = area
		}
		if ec, err := face.Edges().Count(); err == nil {
			info.EdgeCount = ec
		}
		if fp, ok := fingerprintOf(face); ok {
			if kind, hit := table[fp]; hit {
				info.Geometry = kind
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
