// Package input loads puzzle input files: newline-delimited decimal integers.
//
// Blank lines (including the trailing newline every downloaded input ends
// with) are skipped. Any other line that does not parse as an integer is
// fatal and reported as a *ParseError carrying the 1-based line number.
//
// Solutions find their input through Path, which honours AOC_INPUT (set by
// the aoc runner) and falls back to inputs/<user>/dayNN.txt, the file aoc
// fetch downloads, looked up from the working directory upwards.
package input
