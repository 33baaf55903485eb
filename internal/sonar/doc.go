// Package sonar solves day 1: counting how often a depth sequence increases.
//
// count.go holds the pure batch counters. Part 1 compares each reading with
// the previous one; part 2 compares sums of consecutive three-reading
// windows. Two neighbouring windows share all but one reading, so the later
// sum is larger exactly when seq[i] > seq[i-3]; CountWindowIncreases uses
// that form and CountSumIncreases keeps the direct one for comparison.
//
// tracker.go holds Tracker, which counts the same thing online while
// keeping only the last window of readings.
package sonar
