// Package report exports run results in the Prometheus textfile format and
// reads them back.
//
// The files are meant for node_exporter's textfile collector, so a CI job
// can drop them next to other metrics and graph solution times per day.
// Write emits two gauges labelled by day, language, user and part:
// aoc_part_duration_seconds (mean CPU time) and aoc_part_samples.
package report
