package journal_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerwagler/SolidEdge-MCP-sub001/internal/journal"
)

func openJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open(filepath.Join(t.TempDir(), "calls.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_RecordAndRecent(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	entries := []journal.Entry{
		{Tool: "create_sketch", Args: map[string]any{"plane": "Top"}, Status: "ok", Duration: 12 * time.Millisecond},
		{Tool: "draw_circle", Status: "ok", Duration: 3 * time.Millisecond},
		{Tool: "create_loft", Status: "error", ErrorKind: "precondition", Error: "not enough accumulated profiles", Duration: time.Millisecond},
	}
	ids := make(map[string]bool)
	for _, e := range entries {
		id, err := j.Record(ctx, e)
		require.NoError(t, err)
		assert.False(t, ids[id], "IDs must be unique")
		ids[id] = true
		time.Sleep(2 * time.Millisecond) // distinct created_at ordering
	}

	got, err := j.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "create_loft", got[0].Tool)
	assert.Equal(t, "precondition", got[0].ErrorKind)
	assert.Equal(t, "create_sketch", got[2].Tool)
	assert.Equal(t, "Top", got[2].Args["plane"])
	assert.Equal(t, 12*time.Millisecond, got[2].Duration)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestJournal_FilterAndLimit(t *testing.T) {
	j := openJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := j.Record(ctx, journal.Entry{Tool: "draw_line", Status: "ok"})
		require.NoError(t, err)
	}
	_, err := j.Record(ctx, journal.Entry{Tool: "close_sketch", Status: "ok"})
	require.NoError(t, err)

	got, err := j.Recent(ctx, "draw_line", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, "draw_line", e.Tool)
	}

	got, err = j.Recent(ctx, "close_sketch", 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestJournal_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.db")
	ctx := context.Background()

	j, err := journal.Open(path)
	require.NoError(t, err)
	_, err = j.Record(ctx, journal.Entry{Tool: "create_extrude", Status: "ok"})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	j, err = journal.Open(path)
	require.NoError(t, err)
	defer j.Close()

	got, err := j.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "create_extrude", got[0].Tool)
}
