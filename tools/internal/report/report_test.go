package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

func sampleReport() *runner.Report {
	return &runner.Report{
		Day:       1,
		NumRounds: 2,
		Languages: []types.Language{types.Go, types.Rust},
		Results: []runner.Result{
			{
				Entry: runner.Entry{Day: 1, Lang: types.Rust, User: "ukr"},
				Samples: []runner.Sample{
					{Part1: 300 * time.Microsecond, Part2: 700 * time.Microsecond},
					{Part1: 500 * time.Microsecond, Part2: 900 * time.Microsecond},
				},
			},
			{
				Entry: runner.Entry{Day: 1, Lang: types.Go, User: "ahr"},
				Samples: []runner.Sample{
					{Part1: 1250 * time.Microsecond, Part2: 2500 * time.Microsecond},
					{Part1: 1250 * time.Microsecond, Part2: 2500 * time.Microsecond},
				},
			},
		},
	}
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.prom")
	require.NoError(t, Write(path, sampleReport()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# TYPE aoc_part_duration_seconds gauge")
	assert.Contains(t, string(raw), `aoc_part_samples{day="1",language="go",part="1",user="ahr"} 2`)

	rows, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	want := []Row{
		{Day: 1, Language: types.Go, User: "ahr", Part: types.PartOne, Mean: 1250 * time.Microsecond, Samples: 2},
		{Day: 1, Language: types.Go, User: "ahr", Part: types.PartTwo, Mean: 2500 * time.Microsecond, Samples: 2},
		{Day: 1, Language: types.Rust, User: "ukr", Part: types.PartOne, Mean: 400 * time.Microsecond, Samples: 2},
		{Day: 1, Language: types.Rust, User: "ukr", Part: types.PartTwo, Mean: 800 * time.Microsecond, Samples: 2},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIgnoresOtherFamilies(t *testing.T) {
	in := `# TYPE node_load1 gauge
node_load1 0.5
# TYPE aoc_part_duration_seconds gauge
aoc_part_duration_seconds{day="3",language="py",part="2",user="ahr"} 0.01
`
	rows, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{Day: 3, Language: types.Python, User: "ahr", Part: types.PartTwo, Mean: 10 * time.Millisecond}, rows[0])
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"garbage", "aoc_part_samples{day=\n"},
		{"bad part", `aoc_part_samples{day="1",language="go",part="3",user="ahr"} 1` + "\n"},
		{"bad day", `aoc_part_samples{day="40",language="go",part="1",user="ahr"} 1` + "\n"},
		{"missing label", `aoc_part_samples{day="1",part="1"} 1` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "aoc.prom"), sampleReport())
	assert.Error(t, err)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, []Row{
		{Day: 1, Language: types.Go, User: "ahr", Part: types.PartOne, Mean: 1250 * time.Microsecond, Samples: 5},
	}))
	assert.Equal(t, "day  1  Go          ahr       part 1        1.25ms  (n=5)\n", buf.String())
}
