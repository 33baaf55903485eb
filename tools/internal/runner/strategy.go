package runner

import (
	"path/filepath"

	"github.com/aocarchive/aoc2021/pkg/types"
)

// strategy knows how to build and run an entry of one language. Build
// commands are not timed.
type strategy struct {
	build func(dir string) []Cmd
	run   func(dir string, p types.Part) Cmd
}

var strategies = map[types.Language]strategy{
	types.Go: {
		build: func(dir string) []Cmd {
			return []Cmd{{Dir: dir, Name: "go", Args: []string{"build", "."}}}
		},
		run: func(dir string, p types.Part) Cmd {
			return Cmd{Dir: dir, Name: "go", Args: []string{"run", ".", "--", p.Arg()}}
		},
	},
	types.Python: {
		run: func(dir string, p types.Part) Cmd {
			return Cmd{Dir: dir, Name: filepath.Join(dir, ".venv", "bin", "python3"), Args: []string{"main.py", p.Arg()}}
		},
	},
	types.JavaScript: {
		run: runNode,
	},
	types.TypeScript: {
		build: func(dir string) []Cmd {
			return []Cmd{{Dir: dir, Name: "npx", Args: []string{"tsc"}}}
		},
		run: runNode,
	},
	types.Rust: {
		build: func(dir string) []Cmd {
			return []Cmd{{Dir: dir, Name: "cargo", Args: []string{"build", "--release", "--quiet"}}}
		},
		run: func(dir string, p types.Part) Cmd {
			return Cmd{Dir: dir, Name: "cargo", Args: []string{"run", "--release", "--quiet", "--", p.Arg()}}
		},
	},
}

func runNode(dir string, p types.Part) Cmd {
	return Cmd{Dir: dir, Name: "node", Args: []string{"index.js", "--", p.Arg()}}
}

// buildCmds returns the untimed build steps for e, possibly none.
func buildCmds(e Entry) []Cmd {
	s := strategies[e.Lang]
	if s.build == nil {
		return nil
	}
	return s.build(e.Dir)
}

// runCmd returns the timed command for one part of e.
func runCmd(e Entry, p types.Part, inputPath string) Cmd {
	c := strategies[e.Lang].run(e.Dir, p)
	c.Env = append(c.Env, "AOC_INPUT="+inputPath)
	return c
}
