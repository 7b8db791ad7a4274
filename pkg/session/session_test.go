package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/adapters/memory"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/domain"
	"github.com/tylerwagler/SolidEdge-MCP-sub001/pkg/session"
)

func TestSession_OpenCloseLifecycle(t *testing.T) {
	s := session.New()
	p := &memory.Profile{}

	_, err := s.ActiveProfile()
	require.Error(t, err, "no sketch should be active initially")

	require.NoError(t, s.Open(p))

	active, err := s.ActiveProfile()
	require.NoError(t, err)
	assert.Same(t, p, active)

	closed, err := s.Close()
	require.NoError(t, err)
	assert.Same(t, p, closed)

	_, err = s.ActiveProfile()
	require.Error(t, err, "close must return the session to the no-sketch state")
}

func TestSession_RejectsSecondOpen(t *testing.T) {
	s := session.New()
	first := &memory.Profile{}
	second := &memory.Profile{}

	require.NoError(t, s.Open(first))

	err := s.Open(second)
	require.Error(t, err)

	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, "close_sketch", pre.Remedy)

	// The open sketch must be untouched by the rejected open.
	active, err := s.ActiveProfile()
	require.NoError(t, err)
	assert.Same(t, first, active)
}

func TestSession_AccumulatesInInsertionOrder(t *testing.T) {
	s := session.New()
	profiles := []*memory.Profile{{}, {}, {}}

	for _, p := range profiles {
		require.NoError(t, s.Open(p))
		_, err := s.Close()
		require.NoError(t, err)
	}
	assert.Equal(t, 3, s.ProfileCount())

	drained := s.Drain()
	require.Len(t, drained, 3)
	for i, p := range profiles {
		assert.Same(t, p, drained[i], "drain order must match close order")
	}
}

func TestSession_DrainClearsEverything(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Open(&memory.Profile{}))
	_, err := s.Close()
	require.NoError(t, err)

	_, err = s.LastProfile()
	require.NoError(t, err)

	s.Drain()

	assert.Equal(t, 0, s.ProfileCount())
	assert.Empty(t, s.Drain(), "second drain must return nothing")

	_, err = s.LastProfile()
	require.Error(t, err, "the last profile is consumed with the batch")
}

func TestSession_AxisScoping(t *testing.T) {
	s := session.New()
	axis := &memory.Axis{X1: 0, Y1: 0, X2: 0, Y2: 1}

	err := s.SetAxis(axis)
	require.Error(t, err, "axis requires an open sketch")

	require.NoError(t, s.Open(&memory.Profile{}))
	require.NoError(t, s.SetAxis(axis))

	got, err := s.Axis()
	require.NoError(t, err)
	assert.Same(t, axis, got)

	// The axis survives close: revolve runs after close_sketch.
	_, err = s.Close()
	require.NoError(t, err)
	got, err = s.Axis()
	require.NoError(t, err)
	assert.Same(t, axis, got)

	// Reads do not consume it.
	_, err = s.Axis()
	require.NoError(t, err)

	// Opening the next sketch resets it.
	require.NoError(t, s.Open(&memory.Profile{}))
	_, err = s.Axis()
	require.Error(t, err, "axis must not leak into the next sketch session")
}

func TestSession_Select(t *testing.T) {
	s := session.New()
	profiles := []*memory.Profile{{}, {}, {}}
	for _, p := range profiles {
		require.NoError(t, s.Open(p))
		_, err := s.Close()
		require.NoError(t, err)
	}

	t.Run("By Position", func(t *testing.T) {
		got, err := s.Select([]int{2, 0})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Same(t, profiles[2], got[0])
		assert.Same(t, profiles[0], got[1])
		assert.Equal(t, 3, s.ProfileCount(), "select must not drain")
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := s.Select([]int{0, 5})
		var idx *domain.IndexError
		require.ErrorAs(t, err, &idx)
		assert.Equal(t, 5, idx.Requested)
		assert.Equal(t, 3, idx.Observed)
		assert.Equal(t, 3, s.ProfileCount(), "a failed select must not drain")
	})
}

func TestSession_RequireDoesNotMutate(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Open(&memory.Profile{}))
	_, err := s.Close()
	require.NoError(t, err)

	_, err = s.Require(2)
	var pre *domain.PreconditionError
	require.ErrorAs(t, err, &pre)
	assert.Equal(t, 2, pre.Required)
	assert.Equal(t, 1, pre.Observed)

	// The caller can close another sketch and retry.
	assert.Equal(t, 1, s.ProfileCount())
	require.NoError(t, s.Open(&memory.Profile{}))
	_, err = s.Close()
	require.NoError(t, err)

	got, err := s.Require(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSession_Status(t *testing.T) {
	s := session.New()
	assert.Equal(t, session.Status{}, s.Status())

	require.NoError(t, s.Open(&memory.Profile{}))
	require.NoError(t, s.SetAxis(&memory.Axis{}))
	st := s.Status()
	assert.True(t, st.SketchOpen)
	assert.True(t, st.AxisSet)
	assert.Equal(t, 0, st.AccumulatedProfiles)

	_, err := s.Close()
	require.NoError(t, err)
	st = s.Status()
	assert.False(t, st.SketchOpen)
	assert.True(t, st.AxisSet)
	assert.Equal(t, 1, st.AccumulatedProfiles)
}

func TestSession_Reset(t *testing.T) {
	s := session.New()
	require.NoError(t, s.Open(&memory.Profile{}))
	require.NoError(t, s.SetAxis(&memory.Axis{}))
	_, err := s.Close()
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, session.Status{}, s.Status())
	_, err = s.LastProfile()
	require.Error(t, err)
}
