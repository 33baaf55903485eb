// Package history keeps every timed run in a local SQLite database so
// solutions can be compared across days and over time.
//
// The database is pure Go (modernc.org/sqlite); no cgo toolchain is needed.
package history
