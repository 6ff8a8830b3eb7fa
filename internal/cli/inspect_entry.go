// internal/cli/inspect_entry.go
package benchview

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/mwiater/benchview/internal/suite"
	"github.com/mwiater/benchview/internal/units"
	"github.com/mwiater/benchview/internal/util"
)

var fastestName = color.New(color.FgGreen).SprintFunc()
var slowestName = color.New(color.FgRed).SprintFunc()

const inspectNameWidth = 48

// runInspect prints one ranked comparison table per benchmark input. The
// scenario order inside each table is ascending mean run time.
func runInspect(out io.Writer, su *suite.Suite) error {
	if len(su.Scenarios) == 0 {
		fmt.Fprintln(out, "The suite contains no scenarios.")
		return nil
	}

	for _, group := range groupByInput(su.Scenarios) {
		heading := "Benchmark Results"
		if group.input != "" {
			heading = fmt.Sprintf("Benchmark Results (%s)", group.input)
		}
		fmt.Fprintf(out, "%s\n\n", heading)

		if err := writeGroupTable(out, group.scenarios); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

type scenarioGroup struct {
	input     string
	scenarios []suite.Scenario
}

// groupByInput splits scenarios by benchmark input, preserving the order in
// which inputs first appear in the suite.
func groupByInput(scenarios []suite.Scenario) []scenarioGroup {
	index := make(map[string]int, len(scenarios))
	var groups []scenarioGroup
	for _, sc := range scenarios {
		i, ok := index[sc.Input]
		if !ok {
			i = len(groups)
			index[sc.Input] = i
			groups = append(groups, scenarioGroup{input: sc.Input})
		}
		groups[i].scenarios = append(groups[i].scenarios, sc)
	}
	return groups
}

// writeGroupTable renders the ranked table for one input group.
func writeGroupTable(out io.Writer, scenarios []suite.Scenario) error {
	ranked := make([]suite.Scenario, len(scenarios))
	copy(ranked, scenarios)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RunTimeStats.Average < ranked[j].RunTimeStats.Average
	})

	means := make([]float64, 0, len(ranked))
	ipsValues := make([]float64, 0, len(ranked))
	for _, sc := range ranked {
		means = append(means, sc.RunTimeStats.Average)
		ipsValues = append(ipsValues, sc.RunTimeStats.IPS)
	}
	durationUnit := units.BestFitDuration(means)
	countUnit := units.BestFitCount(ipsValues)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "Name\tIPS\tAverage\tDeviation\tMedian\t99th %\tMinimum\tMaximum\tSamples\tSlower\n")
	fmt.Fprint(w, "----\t---\t-------\t---------\t------\t------\t-------\t-------\t-------\t------\n")

	fastest := ranked[0].RunTimeStats.Average
	for i, sc := range ranked {
		name := util.TruncateRunes(sc.Name, inspectNameWidth)
		switch {
		case len(ranked) > 1 && i == 0:
			name = fastestName(name)
		case len(ranked) > 1 && i == len(ranked)-1:
			name = slowestName(name)
		}

		slower := "-"
		if i > 0 && fastest > 0 {
			slower = fmt.Sprintf("%.2fx", sc.RunTimeStats.Average/fastest)
		}

		st := sc.RunTimeStats
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			name,
			units.Format(st.IPS, countUnit),
			units.Format(st.Average, durationUnit),
			units.FormatPercent(st.StdDevRatio),
			units.Format(st.Median, durationUnit),
			units.Format(st.Percentile99, durationUnit),
			units.Format(st.Minimum, durationUnit),
			units.Format(st.Maximum, durationUnit),
			st.SampleSize,
			slower,
		)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
