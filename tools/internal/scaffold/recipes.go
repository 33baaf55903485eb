package scaffold

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/aocarchive/aoc2021/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// templateData is what the entry-file templates can reference.
type templateData struct {
	Day string // "day01"

	// Input is the fallback input path used when AOC_INPUT is unset:
	// inputs/<user>/dayNN.txt at the archive root, relative to the entry
	// directory dayNN/<lang>/<user>.
	Input string
}

func newTemplateData(day types.Day, user string) templateData {
	return templateData{
		Day:   day.Dir(),
		Input: path.Join("..", "..", "..", "inputs", user, day.InputFile()),
	}
}

// command is one toolchain invocation run inside the new directory.
type command struct {
	name string
	args []string
}

// recipe describes how to initialise one language.
type recipe struct {
	commands  []command
	entry     string // file written from the template, relative to the dir
	template  string
	gitignore string
	// packageStart, when set, patches package.json's name and start script
	// after the first command (npm init) has created it.
	packageStart string
}

func recipeFor(lang types.Language, day types.Day) (recipe, error) {
	mod := day.Dir()
	switch lang {
	case types.Go:
		return recipe{
			commands: []command{{"go", []string{"mod", "init", mod}}},
			entry:    "main.go",
			template: "main.go.tmpl",
		}, nil
	case types.Python:
		return recipe{
			commands:  []command{{"python3", []string{"-m", "venv", ".venv"}}},
			entry:     "main.py",
			template:  "main.py.tmpl",
			gitignore: "/.venv\n*.pyc\n",
		}, nil
	case types.JavaScript:
		return recipe{
			commands:     []command{{"npm", []string{"init", "-y", "--silent"}}},
			entry:        "index.js",
			template:     "index.js.tmpl",
			gitignore:    "/node_modules\n",
			packageStart: "node index.js",
		}, nil
	case types.TypeScript:
		return recipe{
			commands: []command{
				{"npm", []string{"init", "-y"}},
				{"npm", []string{"install", "--save-dev", "typescript"}},
				{"npx", []string{"tsc", "--init"}},
			},
			entry:        "index.ts",
			template:     "index.ts.tmpl",
			gitignore:    "/index.js\n/node_modules\n",
			packageStart: "npx tsc && node index.js",
		}, nil
	case types.Rust:
		return recipe{
			commands:  []command{{"cargo", []string{"init", "--name", mod, "--bin", "--vcs", "none"}}},
			entry:     filepath.Join("src", "main.rs"),
			template:  "main.rs.tmpl",
			gitignore: "/target\n",
		}, nil
	default:
		return recipe{}, fmt.Errorf("scaffold: unsupported language %q", lang)
	}
}

// apply runs the recipe inside dir.
func (r recipe) apply(ctx context.Context, exec Executor, dir string, day types.Day, user string) error {
	for i, c := range r.commands {
		if err := exec.Run(ctx, dir, c.name, c.args...); err != nil {
			return fmt.Errorf("scaffold: %w", err)
		}
		if i == 0 && r.packageStart != "" {
			if err := patchPackageJSON(filepath.Join(dir, "package.json"), day.Dir(), r.packageStart); err != nil {
				return fmt.Errorf("scaffold: package.json: %w", err)
			}
		}
	}

	if r.gitignore != "" {
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(r.gitignore), 0o644); err != nil {
			return fmt.Errorf("scaffold: write .gitignore: %w", err)
		}
	}

	entry := filepath.Join(dir, r.entry)
	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		return fmt.Errorf("scaffold: %w", err)
	}
	f, err := os.Create(entry)
	if err != nil {
		return fmt.Errorf("scaffold: create %s: %w", r.entry, err)
	}
	defer f.Close()
	if err := templates.ExecuteTemplate(f, r.template, newTemplateData(day, user)); err != nil {
		return fmt.Errorf("scaffold: render %s: %w", r.entry, err)
	}
	return f.Close()
}

// patchPackageJSON sets the package name and start script, keeping every
// other field npm wrote. A missing file is treated as an empty object.
func patchPackageJSON(path, name, start string) error {
	pkg := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &pkg); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	pkg["name"] = name
	scripts, _ := pkg["scripts"].(map[string]any)
	if scripts == nil {
		scripts = map[string]any{}
	}
	scripts["start"] = start
	pkg["scripts"] = scripts

	out, err := json.MarshalIndent(pkg, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}
