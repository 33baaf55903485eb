package history

import (
	"context"
	"fmt"
)

var schema = []string{
	`PRAGMA journal_mode=WAL;`,
	`PRAGMA foreign_keys=ON;`,
	`
CREATE TABLE IF NOT EXISTS runs (
  id TEXT PRIMARY KEY,
  day INTEGER NOT NULL,
  started_ns INTEGER NOT NULL,  -- unix nanoseconds, UTC
  recorded_ns INTEGER NOT NULL,
  elapsed_ns INTEGER NOT NULL,
  warmup_rounds INTEGER NOT NULL,
  num_rounds INTEGER NOT NULL
);`,
	`CREATE INDEX IF NOT EXISTS idx_runs_day_started ON runs(day, started_ns DESC);`,
	`
CREATE TABLE IF NOT EXISTS samples (
  run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
  language TEXT NOT NULL,
  user TEXT NOT NULL,
  part INTEGER NOT NULL,
  mean_ns INTEGER NOT NULL,
  samples INTEGER NOT NULL,
  PRIMARY KEY (run_id, language, user, part)
);`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("history: migrate: %w", err)
		}
	}
	return nil
}
