package puzzle

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	tests := map[string]Selector{
		"1":  PartOne,
		"2":  PartTwo,
		"":   All,
		"3":  All,
		"01": All,
		"--": All,
	}
	for arg, want := range tests {
		assert.Equal(t, want, ParseSelector(arg), "arg %q", arg)
	}
}

func TestSelectorFromArgs(t *testing.T) {
	assert.Equal(t, All, SelectorFromArgs(nil))
	assert.Equal(t, PartTwo, SelectorFromArgs([]string{"2", "ignored"}))
	assert.Equal(t, PartOne, SelectorFromArgs([]string{"--", "1"}))
	assert.Equal(t, All, SelectorFromArgs([]string{"--"}))
}

func constant(n int) Part { return func() (int, error) { return n, nil } }

func TestRun(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{All, "Part 1\n7\nPart 2\n5\n"},
		{PartOne, "Part 1\n7\n"},
		{PartTwo, "Part 2\n5\n"},
	}
	for _, tc := range tests {
		t.Run(tc.sel.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Run(&buf, tc.sel, constant(7), constant(5)))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestRun_StopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	part2 := func() (int, error) {
		called = true
		return 0, nil
	}

	var buf bytes.Buffer
	err := Run(&buf, All, func() (int, error) { return 0, boom }, part2)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Part 1")
	assert.False(t, called, "part 2 must not run after part 1 fails")
	assert.Empty(t, buf.String())
}
