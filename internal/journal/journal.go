// Package journal persists a record of every tool call to SQLite. COM
// automation failures are notoriously hard to reconstruct from transcripts;
// the journal keeps tool name, arguments, outcome, and timing queryable
// after the fact.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Entry is one recorded tool call.
type Entry struct {
	ID        string         `json:"id"`
	Tool      string         `json:"tool"`
	Args      map[string]any `json:"args,omitempty"`
	Status    string         `json:"status"` // ok or error
	ErrorKind string         `json:"error_kind,omitempty"`
	Error     string         `json:"error,omitempty"`
	Duration  time.Duration  `json:"duration"`
	CreatedAt time.Time      `json:"created_at"`
}

// Journal is a SQLite-backed tool-call log.
type Journal struct {
	db      *sql.DB
	entropy *rand.Rand
}

// Open creates or opens the journal database at path.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	j := &Journal{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tool_calls (
		id          TEXT PRIMARY KEY,
		tool        TEXT NOT NULL,
		args        TEXT,
		status      TEXT NOT NULL,
		error_kind  TEXT,
		error       TEXT,
		duration_ms INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tool_calls_created ON tool_calls(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_tool_calls_tool ON tool_calls(tool);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record inserts one entry, assigning its ID and timestamp.
func (j *Journal) Record(ctx context.Context, e Entry) (string, error) {
	e.ID = ulid.MustNew(ulid.Timestamp(time.Now()), j.entropy).String()
	e.CreatedAt = time.Now().UTC()

	var args []byte
	if e.Args != nil {
		args, _ = json.Marshal(e.Args)
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO tool_calls (id, tool, args, status, error_kind, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Tool, string(args), e.Status, e.ErrorKind, e.Error,
		e.Duration.Milliseconds(), e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("record tool call: %w", err)
	}
	return e.ID, nil
}

// Recent returns the most recent entries, newest first. tool narrows to one
// tool name when non-empty.
func (j *Journal) Recent(ctx context.Context, tool string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	q := `SELECT id, tool, args, status, error_kind, error, duration_ms, created_at
	      FROM tool_calls`
	var argsIn []any
	if tool != "" {
		q += ` WHERE tool = ?`
		argsIn = append(argsIn, tool)
	}
	q += ` ORDER BY created_at DESC LIMIT ?`
	argsIn = append(argsIn, limit)

	rows, err := j.db.QueryContext(ctx, q, argsIn...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var args sql.NullString
		var errorKind, errorMsg sql.NullString
		var durationMS int64
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Tool, &args, &e.Status, &errorKind, &errorMsg, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		if args.Valid && args.String != "" {
			_ = json.Unmarshal([]byte(args.String), &e.Args)
		}
		e.ErrorKind = errorKind.String
		e.Error = errorMsg.String
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error { return j.db.Close() }
