// Package puzzle is the dispatch shell shared by the per-day solution
// binaries. The single optional argument is decoded once into a Selector;
// Run then prints "Part N" followed by each selected answer.
package puzzle
