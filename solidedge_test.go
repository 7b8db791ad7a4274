package solidedge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solidedge "github.com/tylerwagler/SolidEdge-MCP-sub001"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
)

func TestNew_RequiresResolver(t *testing.T) {
	_, err := solidedge.New(nil)
	require.Error(t, err)
}

func TestEngine_ExtrudeWorkflow(t *testing.T) {
	kernel := memory.NewKernel()
	doc := memory.NewDocument("Part1")
	kernel.SetDocument(doc)

	eng, err := solidedge.New(kernel)
	require.NoError(t, err)
	ctx := context.Background()

	// Sketch a rectangle on the Top plane and extrude it.
	_, err = eng.Sketch().Create(ctx, "Top")
	require.NoError(t, err)
	require.NoError(t, eng.Sketch().DrawRectangle(ctx, 0, 0, 0.04, 0.02))
	accumulated, err := eng.Sketch().Close(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, accumulated)

	require.NoError(t, eng.Features().Extrude(ctx, 0.01, false))

	calls := doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "extrude_add", calls[0].Op)

	// The session is back to a clean slate for the next feature.
	status := eng.Session().Status()
	assert.False(t, status.SketchOpen)
	assert.Equal(t, 0, status.AccumulatedProfiles)
}

func TestEngine_LoftWorkflow(t *testing.T) {
	kernel := memory.NewKernel()
	doc := memory.NewDocument("Part1")
	kernel.SetDocument(doc)

	eng, err := solidedge.New(kernel)
	require.NoError(t, err)
	ctx := context.Background()

	// Close three sketches on different base planes, then loft through them.
	for _, plane := range []string{"Top", "Front", "Right"} {
		_, err := eng.Sketch().Create(ctx, plane)
		require.NoError(t, err)
		require.NoError(t, eng.Sketch().DrawCircle(ctx, 0, 0, 0.01))
		_, err = eng.Sketch().Close(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, eng.Session().ProfileCount())

	n, err := eng.Features().Loft(ctx, nil, false)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, eng.Session().ProfileCount())

	calls := doc.Recorder().Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "loft", calls[0].Op)
	assert.Len(t, calls[0].Sections, 3)
}

func TestEngine_QueryAfterFeature(t *testing.T) {
	kernel := memory.NewKernel()
	doc := memory.NewDocument("Part1")
	doc.AddBody(memory.NewBoxBody(0.04, 0.02, 0.01))
	kernel.SetDocument(doc)

	eng, err := solidedge.New(kernel)
	require.NoError(t, err)

	faces, err := eng.Query().BodyFaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, faces, 6)
}
