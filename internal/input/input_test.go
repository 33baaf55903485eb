package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aocarchive/aoc2021/pkg/types"
)

func TestParseInts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{name: "empty", in: "", want: nil},
		{name: "single", in: "42", want: []int{42}},
		{name: "trailing newline", in: "1\n2\n3\n", want: []int{1, 2, 3}},
		{name: "blank lines", in: "\n1\n\n\n2\n\n", want: []int{1, 2}},
		{name: "crlf and padding", in: " 5\r\n-6 \r\n", want: []int{5, -6}},
		{name: "signs", in: "+7\n-0\n", want: []int{7, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInts(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInts_MalformedLineIsFatal(t *testing.T) {
	_, err := ParseInts(strings.NewReader("199\n200\n\nabc\n210\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, "abc", pe.Text)
	assert.Contains(t, err.Error(), "line 4")
}

func TestScan_StopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	var seen []int
	err := Scan(strings.NewReader("1\n2\n3\n"), func(v int) error {
		seen = append(seen, v)
		if v == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestInts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("199\n200\n208\n"), 0o644))

	got, err := Ints(path)
	require.NoError(t, err)
	assert.Equal(t, []int{199, 200, 208}, got)
}

func TestInts_MissingFile(t *testing.T) {
	_, err := Ints(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInts_ErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nx\n"), 0o644))

	_, err := Ints(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 2")
}

func TestPath(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvPath, "")
	assert.Equal(t, filepath.Join("inputs", "ukr", "day03.txt"), Path(types.Day(3), "ukr"))

	t.Setenv(EnvPath, "/tmp/custom.txt")
	assert.Equal(t, "/tmp/custom.txt", Path(types.Day(3), "ukr"))
}

func TestPathFindsArchiveInputs(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "inputs", "ahr", "day01.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(want), 0o755))
	require.NoError(t, os.WriteFile(want, []byte("1\n"), 0o644))
	entry := filepath.Join(root, "day01", "go", "ahr")
	require.NoError(t, os.MkdirAll(entry, 0o755))
	t.Setenv(EnvPath, "")

	for _, wd := range []string{root, entry} {
		t.Run(filepath.Base(wd), func(t *testing.T) {
			t.Chdir(wd)
			got := Path(types.Day(1), "ahr")
			// TempDir may sit behind a symlink (macOS /var); compare real paths.
			gotReal, err := filepath.EvalSymlinks(got)
			require.NoError(t, err)
			wantReal, err := filepath.EvalSymlinks(want)
			require.NoError(t, err)
			assert.Equal(t, wantReal, gotReal)
		})
	}
}
