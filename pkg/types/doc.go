// Package types defines the small vocabulary shared by the solution binaries
// and the aoc tooling: puzzle days, solution languages and puzzle parts.
package types
