package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

var t0 = time.Date(2021, 12, 1, 5, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.now = func() time.Time { return t0.Add(time.Minute) }
	return s
}

func report(day types.Day, started time.Time, goP1, rsP1 time.Duration) *runner.Report {
	return &runner.Report{
		Day:       day,
		StartedAt: started,
		Elapsed:   3 * time.Second,
		NumRounds: 1,
		Results: []runner.Result{
			{
				Entry:   runner.Entry{Day: day, Lang: types.Go, User: "ahr"},
				Samples: []runner.Sample{{Part1: goP1, Part2: 2 * goP1}},
			},
			{
				Entry:   runner.Entry{Day: day, Lang: types.Rust, User: "ukr"},
				Samples: []runner.Sample{{Part1: rsP1, Part2: 2 * rsP1}},
			},
		},
	}
}

func TestRecordAndRuns(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	id1, err := s.Record(ctx, report(1, t0, 5*time.Millisecond, time.Millisecond))
	require.NoError(t, err)
	_, err = uuid.Parse(id1)
	require.NoError(t, err)

	id2, err := s.Record(ctx, report(1, t0.Add(time.Hour), 4*time.Millisecond, 2*time.Millisecond))
	require.NoError(t, err)
	_, err = s.Record(ctx, report(2, t0.Add(2*time.Hour), time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	runs, err := s.Runs(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, id1, runs[1].ID)
	assert.Equal(t, types.Day(1), runs[1].Day)
	assert.True(t, runs[1].StartedAt.Equal(t0))
	assert.True(t, runs[1].RecordedAt.Equal(t0.Add(time.Minute)))
	assert.Equal(t, 3*time.Second, runs[1].Elapsed)
	assert.Equal(t, 2, runs[1].Entries)

	all, err := s.Runs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, types.Day(2), all[0].Day)

	limited, err := s.Runs(ctx, 0, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRunsOrderWithinOneSecond(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	older, err := s.Record(ctx, report(1, t0, time.Millisecond, time.Millisecond))
	require.NoError(t, err)
	newer, err := s.Record(ctx, report(1, t0.Add(500*time.Millisecond), time.Millisecond, time.Millisecond))
	require.NoError(t, err)

	runs, err := s.Runs(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer, runs[0].ID)
	assert.Equal(t, older, runs[1].ID)
	assert.True(t, runs[0].StartedAt.Equal(t0.Add(500*time.Millisecond)))
}

func TestBest(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	first, err := s.Record(ctx, report(1, t0, 5*time.Millisecond, time.Millisecond))
	require.NoError(t, err)
	second, err := s.Record(ctx, report(1, t0.Add(time.Hour), 4*time.Millisecond, 2*time.Millisecond))
	require.NoError(t, err)

	best, err := s.Best(ctx, 1)
	require.NoError(t, err)
	require.Len(t, best, 4)

	assert.Equal(t, Best{Language: types.Go, User: "ahr", Part: types.PartOne, Mean: 4 * time.Millisecond, RunID: second, At: t0.Add(time.Hour)}, best[0])
	assert.Equal(t, types.PartTwo, best[1].Part)
	assert.Equal(t, 8*time.Millisecond, best[1].Mean)
	assert.Equal(t, Best{Language: types.Rust, User: "ukr", Part: types.PartOne, Mean: time.Millisecond, RunID: first, At: t0}, best[2])

	none, err := s.Best(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOpenReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Record(ctx, report(1, t0, time.Millisecond, time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.Runs(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestOpenCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".aoc", "history.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, path)
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(context.Background(), t.TempDir())
	assert.Error(t, err)
}
