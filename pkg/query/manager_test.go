package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/query"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/topology"
)

func newQueryFixture(t *testing.T) (*query.Manager, *memory.Kernel, *memory.Document) {
	t.Helper()
	kernel := memory.NewKernel()
	doc := memory.NewDocument("Part1")
	kernel.SetDocument(doc)
	return query.NewManager(kernel, topology.NewIndexer()), kernel, doc
}

func TestBodyFaces(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	doc.AddBody(memory.NewBoxBody(0.1, 0.2, 0.3))

	infos, err := m.BodyFaces(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 6)
	assert.Equal(t, domain.GeometryPlane, infos[0].Geometry)
	assert.InDelta(t, 0.02, infos[0].Area, 1e-12)
}

func TestBodyFaces_NoGeometry(t *testing.T) {
	m, _, _ := newQueryFixture(t)

	_, err := m.BodyFaces(context.Background())
	require.Error(t, err, "an empty document has no body to enumerate")
}

func TestFaceCountAndInfo(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	doc.AddBody(memory.NewBody(
		memory.NewFace(domain.GeometryPlane, 0.01, 4),
		memory.NewFace(domain.GeometryCylinder, 0.02, 2),
	))
	ctx := context.Background()

	n, err := m.FaceCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	info, err := m.FaceInfo(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Index)
	assert.Equal(t, 0.02, info.Area)
	assert.Equal(t, 2, info.EdgeCount)

	_, err = m.FaceInfo(ctx, 2)
	var idx *domain.IndexError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, 2, idx.Observed)
}

func TestEdgeQueries(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	doc.AddBody(memory.NewBody(memory.NewFace(domain.GeometryPlane, 0.01, 4)))
	ctx := context.Background()

	n, err := m.FaceEdgeCount(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	start, end, err := m.EdgeEndpoints(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, start.X)
	assert.Equal(t, 3.0, end.X)

	length, err := m.EdgeLength(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, length)

	pt, err := m.VertexPoint(ctx, 0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, pt.X)

	_, _, err = m.EdgeEndpoints(ctx, 0, 9)
	var idx *domain.IndexError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, domain.KindEdge, idx.Kind)
}

func TestDocument(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	doc.AddBody(memory.NewBoxBody(1, 1, 1))

	info, err := m.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Part1", info.Name)
	assert.Equal(t, 3, info.Planes)
	assert.Equal(t, 1, info.Bodies)
}

func TestRefPlanes(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	doc.AddPlane("Offset1")

	names, err := m.RefPlanes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Top", "Front", "Right", "Offset1"}, names)
}

func TestBodyCount(t *testing.T) {
	m, _, doc := newQueryFixture(t)
	ctx := context.Background()

	n, err := m.BodyCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	doc.AddBody(memory.NewBoxBody(1, 1, 1))
	n, err = m.BodyCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueries_FollowActiveDocument(t *testing.T) {
	m, kernel, doc := newQueryFixture(t)
	doc.AddBody(memory.NewBoxBody(1, 1, 1))
	ctx := context.Background()

	n, err := m.FaceCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	// A window switch mid-session: the next call sees the new document.
	other := memory.NewDocument("Part2")
	other.AddBody(memory.NewBody(memory.NewFace(domain.GeometrySphere, 0.5, 1)))
	kernel.SetDocument(other)

	n, err = m.FaceCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestQueries_ResolverFailure(t *testing.T) {
	m, kernel, _ := newQueryFixture(t)
	kernel.FailResolve(errors.New("kernel connection lost"))

	_, err := m.FaceCount(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel connection lost")
}
