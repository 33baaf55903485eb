// Package scaffold creates a new solution directory, dayNN/<lang>/<user>,
// ready to be edited and picked up by the runner.
//
// Each language has a recipe: the toolchain commands that initialise the
// project (go mod init, python venv, npm init, cargo init, ...), an entry
// file rendered from an embedded template, and a .gitignore. Commands go
// through an Executor so tests can record them instead of running them.
//
// Create refuses to touch a directory that already exists (ErrExists).
package scaffold
