package features_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/features"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/sketch"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/topology"
)

type fixture struct {
	doc      *memory.Document
	sess     *session.Session
	sketch   *sketch.Manager
	features *features.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kernel := memory.NewKernel()
	doc := memory.NewDocument("Part1")
	kernel.SetDocument(doc)
	sess := session.New()
	return &fixture{
		doc:      doc,
		sess:     sess,
		sketch:   sketch.NewManager(kernel, sess, topology.NewIndexer()),
		features: features.NewManager(kernel, sess),
	}
}

// closeProfile opens a sketch on plane, draws a circle, and closes it.
func (f *fixture) closeProfile(t *testing.T, plane string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.sketch.Create(ctx, plane)
	require.NoError(t, err)
	require.NoError(t, f.sketch.DrawCircle(ctx, 0, 0, 0.01))
	_, err = f.sketch.Close(ctx)
	require.NoError(t, err)
}

func TestExtrude(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")

	require.NoError(t, f.features.Extrude(context.Background(), 0.025, false))

	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "extrude_add", calls[0].Op)
	assert.Equal(t, 0.025, calls[0].Distance)
	assert.Equal(t, 0, f.sess.ProfileCount(), "a consuming feature clears the accumulator")
}

func TestExtrudeCut(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")

	require.NoError(t, f.features.Extrude(context.Background(), 0.01, true))
	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "extrude_cut", calls[0].Op)
}

func TestExtrude_WithoutProfile(t *testing.T) {
	f := newFixture(t)

	err := f.features.Extrude(context.Background(), 0.025, false)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "close_sketch", pre.Remedy)
	assert.Empty(t, f.doc.Recorder().Calls(), "preconditions are checked before the kernel is touched")
}

func TestExtrude_KernelFailureStillConsumes(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.doc.Recorder().Err = errors.New("geometry is not closed")

	err := f.features.Extrude(context.Background(), 0.025, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumed")
	assert.Equal(t, 0, f.sess.ProfileCount(), "a failed attempt still clears the accumulator")

	// The last profile is gone too: a retry needs a fresh sketch.
	err = f.features.Extrude(context.Background(), 0.025, false)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
}

func TestRevolve(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sketch.Create(ctx, "Front")
	require.NoError(t, err)
	require.NoError(t, f.sketch.DrawRectangle(ctx, 0.01, 0, 0.03, 0.05))
	require.NoError(t, f.sketch.SetAxisOfRevolution(ctx, 0, 0, 0, 0.05))
	_, err = f.sketch.Close(ctx)
	require.NoError(t, err)

	require.NoError(t, f.features.Revolve(ctx, 360, false))

	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "revolve", calls[0].Op)
	assert.InDelta(t, 2*math.Pi, calls[0].AngleRad, 1e-12)
	require.NotNil(t, calls[0].Axis)
	assert.Equal(t, 0, f.sess.ProfileCount())
}

func TestRevolve_WithoutAxis(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Front")

	err := f.features.Revolve(context.Background(), 180, false)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "set_axis_of_revolution", pre.Remedy)
	assert.Equal(t, 1, f.sess.ProfileCount(), "a failed precondition must not consume the profile")
}

func TestRevolve_AxisFromPriorSketchDoesNotLeak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// First sketch sets an axis and is consumed by a revolve.
	_, err := f.sketch.Create(ctx, "Front")
	require.NoError(t, err)
	require.NoError(t, f.sketch.DrawCircle(ctx, 0.02, 0.02, 0.01))
	require.NoError(t, f.sketch.SetAxisOfRevolution(ctx, 0, 0, 0, 0.05))
	_, err = f.sketch.Close(ctx)
	require.NoError(t, err)
	require.NoError(t, f.features.Revolve(ctx, 360, false))

	// Second sketch never sets an axis: revolving it must fail, not silently
	// reuse the first sketch's axis.
	f.closeProfile(t, "Front")
	err = f.features.Revolve(ctx, 360, false)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "set_axis_of_revolution", pre.Remedy)
	assert.Len(t, f.doc.Recorder().Calls(), 1, "only the first revolve reached the kernel")
}

func TestLoft(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.closeProfile(t, "Front")
	f.closeProfile(t, "Right")

	n, err := f.features.Loft(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "loft", calls[0].Op)
	assert.Len(t, calls[0].Sections, 3)
	assert.Equal(t, 0, f.sess.ProfileCount())
}

func TestLoft_SubsetKeepsOrderAndDrainsAll(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.closeProfile(t, "Front")
	f.closeProfile(t, "Right")
	all := f.sess.Profiles()

	n, err := f.features.Loft(context.Background(), []int{2, 0}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "loft_cut", calls[0].Op)
	require.Len(t, calls[0].Sections, 2)
	assert.Same(t, all[2], calls[0].Sections[0])
	assert.Same(t, all[0], calls[0].Sections[1])

	// The unselected profile does not survive for a later feature.
	assert.Equal(t, 0, f.sess.ProfileCount())
}

func TestLoft_NotEnoughProfilesIsRetryable(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")

	_, err := f.features.Loft(context.Background(), nil, false)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, 2, pre.Required)
	assert.Equal(t, 1, pre.Observed)
	assert.Equal(t, 1, f.sess.ProfileCount(), "the caller can close another sketch and retry")

	f.closeProfile(t, "Front")
	_, err = f.features.Loft(context.Background(), nil, false)
	require.NoError(t, err)
}

func TestLoft_KernelFailureStillDrains(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.closeProfile(t, "Front")
	f.doc.Recorder().Err = errors.New("sections do not align")

	_, err := f.features.Loft(context.Background(), nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumed")
	assert.Equal(t, 0, f.sess.ProfileCount())
}

func TestSweep(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.closeProfile(t, "Front")
	f.closeProfile(t, "Right")
	all := f.sess.Profiles()

	n, err := f.features.Sweep(context.Background(), 1, false)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	calls := f.doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "sweep", calls[0].Op)
	assert.Same(t, all[1], calls[0].Path)
	require.Len(t, calls[0].Sections, 2)
	assert.Same(t, all[0], calls[0].Sections[0])
	assert.Same(t, all[2], calls[0].Sections[1])
	assert.Equal(t, 0, f.sess.ProfileCount())
}

func TestSweep_PathIndexOutOfRange(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")
	f.closeProfile(t, "Front")

	_, err := f.features.Sweep(context.Background(), 5, false)
	var idx *domain.IndexError
	require.ErrorAs(t, err, &idx)
	assert.Equal(t, 5, idx.Requested)
	assert.Equal(t, 2, f.sess.ProfileCount(), "a bad index must not consume the profiles")
}

func TestSweep_RequiresPathAndSection(t *testing.T) {
	f := newFixture(t)
	f.closeProfile(t, "Top")

	_, err := f.features.Sweep(context.Background(), 0, true)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, 2, pre.Required)
}
