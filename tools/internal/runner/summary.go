package runner

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Summarize writes the per-language results of rep to w:
//
//	Results for day 1
//	Go:
//	  * ahr (1.25ms, 2.0ms)
//	Rust:
//	 == No Submissions ==
func Summarize(w io.Writer, rep *Report) error {
	if _, err := fmt.Fprintf(w, "Results for day %d\n", rep.Day); err != nil {
		return err
	}
	for _, lang := range rep.Languages {
		if _, err := fmt.Fprintf(w, "%s:\n", lang.Name()); err != nil {
			return err
		}
		n := 0
		for _, res := range rep.Results {
			if res.Entry.Lang != lang {
				continue
			}
			n++
			mean := res.Mean()
			if _, err := fmt.Fprintf(w, "  * %s (%sms, %sms)\n",
				res.Entry.User, Millis(mean.Part1), Millis(mean.Part2)); err != nil {
				return err
			}
		}
		if n == 0 {
			if _, err := fmt.Fprintln(w, " == No Submissions =="); err != nil {
				return err
			}
		}
	}
	return nil
}

// Millis formats d as a decimal number of milliseconds with at least one
// fractional digit: 2ms is "2.0", 1.25ms is "1.25".
func Millis(d time.Duration) string {
	s := strconv.FormatFloat(float64(d.Nanoseconds())/1e6, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
