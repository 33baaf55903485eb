package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

// Run is one recorded invocation of the runner.
type Run struct {
	ID         string
	Day        types.Day
	StartedAt  time.Time
	RecordedAt time.Time
	Elapsed    time.Duration
	NumRounds  int
	Entries    int // distinct language/user pairs
}

// Best is the fastest recorded mean for one language/user/part.
type Best struct {
	Language types.Language
	User     string
	Part     types.Part
	Mean     time.Duration
	RunID    string
	At       time.Time
}

// Store is a SQLite-backed run history. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time // injectable for deterministic tests
}

// Open opens (creating it and its directory if needed) the database at path
// and migrates it.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// One writer at a time; SQLite serialises them anyway.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Record stores rep and returns the id assigned to it.
func (s *Store) Record(ctx context.Context, rep *runner.Report) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("history: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, day, started_ns, recorded_ns, elapsed_ns, warmup_rounds, num_rounds)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, int(rep.Day), rep.StartedAt.UnixNano(), s.now().UnixNano(),
		rep.Elapsed.Nanoseconds(), rep.WarmupRounds, rep.NumRounds)
	if err != nil {
		return "", fmt.Errorf("history: insert run: %w", err)
	}

	for _, res := range rep.Results {
		mean := res.Mean()
		for _, p := range types.Parts {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO samples (run_id, language, user, part, mean_ns, samples)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				id, string(res.Entry.Lang), res.Entry.User, int(p),
				mean.Part(p).Nanoseconds(), len(res.Samples))
			if err != nil {
				return "", fmt.Errorf("history: insert sample: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("history: commit: %w", err)
	}
	slog.Debug("history: recorded run", "id", id, "day", rep.Day, "entries", len(rep.Results))
	return id, nil
}

// Best returns the fastest mean ever recorded per language/user/part for
// day, ordered by language, user and part.
func (s *Store) Best(ctx context.Context, day types.Day) ([]Best, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT s.language, s.user, s.part, MIN(s.mean_ns), s.run_id, r.started_ns
FROM samples s JOIN runs r ON r.id = s.run_id
WHERE r.day = ?
GROUP BY s.language, s.user, s.part
ORDER BY s.language, s.user, s.part`, int(day))
	if err != nil {
		return nil, fmt.Errorf("history: best: %w", err)
	}
	defer rows.Close()

	var out []Best
	for rows.Next() {
		var (
			b         Best
			lang      string
			part      int
			meanNS    int64
			startedNS int64
		)
		if err := rows.Scan(&lang, &b.User, &part, &meanNS, &b.RunID, &startedNS); err != nil {
			return nil, fmt.Errorf("history: best: %w", err)
		}
		b.Language = types.Language(lang)
		b.Part = types.Part(part)
		b.Mean = time.Duration(meanNS)
		b.At = fromNanos(startedNS)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: best: %w", err)
	}
	return out, nil
}

// Runs lists the most recent runs, newest first. A zero day lists every
// day; limit <= 0 means no limit.
func (s *Store) Runs(ctx context.Context, day types.Day, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT r.id, r.day, r.started_ns, r.recorded_ns, r.elapsed_ns, r.num_rounds,
       (SELECT COUNT(DISTINCT s.language || '/' || s.user) FROM samples s WHERE s.run_id = r.id)
FROM runs r
WHERE ? = 0 OR r.day = ?
ORDER BY r.started_ns DESC, r.recorded_ns DESC
LIMIT ?`, int(day), int(day), limit)
	if err != nil {
		return nil, fmt.Errorf("history: runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r                     Run
			d                     int
			startedNS, recordedNS int64
			elapsedNS             int64
		)
		if err := rows.Scan(&r.ID, &d, &startedNS, &recordedNS, &elapsedNS, &r.NumRounds, &r.Entries); err != nil {
			return nil, fmt.Errorf("history: runs: %w", err)
		}
		r.Day = types.Day(d)
		r.Elapsed = time.Duration(elapsedNS)
		r.StartedAt = fromNanos(startedNS)
		r.RecordedAt = fromNanos(recordedNS)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: runs: %w", err)
	}
	return out, nil
}

// fromNanos turns a stored unix-nanosecond timestamp back into UTC time.
func fromNanos(ns int64) time.Time { return time.Unix(0, ns).UTC() }
