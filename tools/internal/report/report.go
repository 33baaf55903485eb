package report

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/aocarchive/aoc2021/pkg/types"
	"github.com/aocarchive/aoc2021/tools/internal/runner"
)

// Metric names written by Write.
const (
	DurationMetric = "aoc_part_duration_seconds"
	SamplesMetric  = "aoc_part_samples"
)

var labels = []string{"day", "language", "user", "part"}

// Row is one day/language/user/part combination read back from a file.
type Row struct {
	Day      types.Day
	Language types.Language
	User     string
	Part     types.Part
	Mean     time.Duration
	Samples  int
}

// Write stores the mean CPU time and sample count of every result in rep at
// path. The file is replaced atomically.
func Write(path string, rep *runner.Report) error {
	reg := prometheus.NewRegistry()
	duration := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: DurationMetric,
		Help: "Mean CPU time of one puzzle part over the timed rounds.",
	}, labels)
	samples := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: SamplesMetric,
		Help: "Number of timed rounds behind aoc_part_duration_seconds.",
	}, labels)
	reg.MustRegister(duration, samples)

	day := strconv.Itoa(int(rep.Day))
	for _, res := range rep.Results {
		mean := res.Mean()
		for _, p := range types.Parts {
			lv := []string{day, string(res.Entry.Lang), res.Entry.User, p.Arg()}
			duration.WithLabelValues(lv...).Set(mean.Part(p).Seconds())
			samples.WithLabelValues(lv...).Set(float64(len(res.Samples)))
		}
	}

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}

// Read parses a file produced by Write. Unrelated metric families are
// ignored. Rows are sorted by day, language, user and part.
func Read(r io.Reader) ([]Row, error) {
	var parser expfmt.TextParser
	mfs, err := parser.TextToMetricFamilies(r)
	if err != nil {
		return nil, fmt.Errorf("report: parse: %w", err)
	}

	type key struct {
		day  types.Day
		lang types.Language
		user string
		part types.Part
	}
	rows := make(map[key]*Row)
	collect := func(mf *dto.MetricFamily, set func(*Row, float64)) error {
		if mf == nil {
			return nil
		}
		for _, m := range mf.GetMetric() {
			k, err := rowKey(m)
			if err != nil {
				return fmt.Errorf("report: %s: %w", mf.GetName(), err)
			}
			kk := key{k.Day, k.Language, k.User, k.Part}
			row, ok := rows[kk]
			if !ok {
				row = &k
				rows[kk] = row
			}
			set(row, m.GetGauge().GetValue())
		}
		return nil
	}

	if err := collect(mfs[DurationMetric], func(r *Row, v float64) {
		r.Mean = time.Duration(math.Round(v * float64(time.Second)))
	}); err != nil {
		return nil, err
	}
	if err := collect(mfs[SamplesMetric], func(r *Row, v float64) {
		r.Samples = int(v)
	}); err != nil {
		return nil, err
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b Row) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Language.Name(), b.Language.Name()),
			cmp.Compare(a.User, b.User),
			cmp.Compare(a.Part, b.Part),
		)
	})
	return out, nil
}

// rowKey extracts the label values of m into an otherwise empty Row.
func rowKey(m *dto.Metric) (Row, error) {
	var r Row
	for _, lp := range m.GetLabel() {
		v := lp.GetValue()
		switch lp.GetName() {
		case "day":
			d, err := types.ParseDay(v)
			if err != nil {
				return Row{}, err
			}
			r.Day = d
		case "language":
			r.Language = types.Language(v)
		case "user":
			r.User = v
		case "part":
			n, err := strconv.Atoi(v)
			if err != nil || (n != int(types.PartOne) && n != int(types.PartTwo)) {
				return Row{}, fmt.Errorf("part %q: want 1 or 2", v)
			}
			r.Part = types.Part(n)
		}
	}
	if r.Day == 0 || r.Part == 0 || r.User == "" || r.Language == "" {
		return Row{}, fmt.Errorf("missing labels in %s", m.String())
	}
	return r, nil
}

// Print writes rows as an aligned table.
func Print(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "day %2d  %-10s  %-8s  part %d  %10sms  (n=%d)\n",
			r.Day, r.Language.Name(), r.User, r.Part, runner.Millis(r.Mean), r.Samples); err != nil {
			return err
		}
	}
	return nil
}
