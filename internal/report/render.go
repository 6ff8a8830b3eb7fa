// internal/report/render.go
package report

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/mwiater/benchview/internal/suite"
	"github.com/mwiater/benchview/internal/units"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var (
	inlineCSS = template.CSS(mustAsset("assets/benchview.css"))
	inlineJS  = template.JS(mustAsset("assets/charts.js"))
)

func mustAsset(name string) []byte {
	data, err := assetFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// pageChrome carries the fields shared by every page: the way back to the
// index, the asset strategy, system info, and the footer version line.
type pageChrome struct {
	Title        string
	IndexPath    string
	InlineAssets bool
	InlineCSS    template.CSS
	InlineJS     template.JS
	System       suite.SystemInfo
	Version      string
}

// navPage is one link on the index page.
type navPage struct {
	Label string
	Path  string
}

// navGroup is the index entry for one input: its comparison page followed
// by the detail pages in scenario order.
type navGroup struct {
	Label      string
	Comparison navPage
	Scenarios  []navPage
}

// indexData feeds the index template.
type indexData struct {
	pageChrome
	Groups []navGroup
}

// statsRow is one rendered line of a run-time table. All strings are
// already scaled to the group's display units.
type statsRow struct {
	Name       string
	IPS        string
	Average    string
	Deviation  string
	Median     string
	P99        string
	Minimum    string
	Maximum    string
	SampleSize int
	Slower     string
}

// memoryRow is one rendered line of a memory table.
type memoryRow struct {
	Name    string
	Average string
	Median  string
	Minimum string
	Maximum string
}

// comparisonData feeds the per-input comparison template.
type comparisonData struct {
	pageChrome
	Heading     string
	Rows        []statsRow
	MemoryRows  []memoryRow
	DetailPages []navPage
	PayloadJSON template.JS
}

// detailData feeds the per-scenario detail template.
type detailData struct {
	pageChrome
	Heading        string
	ComparisonPath string
	Row            statsRow
	MemoryRow      *memoryRow
	PayloadJSON    template.JS
}

// pagePayload is the machine-readable document embedded in comparison and
// detail pages for client-side chart rendering.
type pagePayload struct {
	Statistics map[string]suite.Stats `json:"statistics"`
	SortOrder  []string               `json:"sort_order"`
	RunTimes   map[string][]float64   `json:"run_times"`
}

// marshalPayload serializes statistics, ranking, and raw samples for the
// page's chart script. encoding/json sorts map keys, keeping the payload
// byte-stable across runs.
func marshalPayload(scenarios, ranked []suite.Scenario) (template.JS, error) {
	payload := pagePayload{
		Statistics: statisticsByName(scenarios),
		SortOrder:  sortOrder(ranked),
		RunTimes:   runTimesByName(scenarios),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("unable to marshal chart payload: %w", err)
	}
	return template.JS(data), nil
}

// groupUnits bundles the display units shared by every scenario of one
// input group.
type groupUnits struct {
	Duration units.Unit
	Count    units.Unit
	Memory   units.Unit
}

// chooseUnits applies the unit policy to one group: best-fit units are
// voted from the group's values, fixed policies resolve by name. Unknown
// unit names fall back to best-fit rather than failing the run.
func chooseUnits(group inputGroup, cfg Config) groupUnits {
	means := make([]float64, 0, len(group.Scenarios))
	ips := make([]float64, 0, len(group.Scenarios))
	var memory []float64
	for _, sc := range group.Scenarios {
		means = append(means, sc.RunTimeStats.Average)
		ips = append(ips, sc.RunTimeStats.IPS)
		if sc.MemoryStats != nil {
			memory = append(memory, sc.MemoryStats.Average)
		}
	}

	gu := groupUnits{
		Duration: units.BestFitDuration(means),
		Count:    units.BestFitCount(ips),
		Memory:   units.BestFitMemory(memory),
	}
	if cfg.TimeUnit != BestFitUnit {
		if u, ok := units.DurationUnit(cfg.TimeUnit); ok {
			gu.Duration = u
		}
	}
	if cfg.CountUnit != BestFitUnit {
		if u, ok := units.CountUnit(cfg.CountUnit); ok {
			gu.Count = u
		}
	}
	return gu
}

// buildStatsRows renders the ranked run-time table for one group. The
// fastest row has no slowdown factor; the rest show their multiple of the
// fastest mean.
func buildStatsRows(ranked []suite.Scenario, gu groupUnits) []statsRow {
	rows := make([]statsRow, 0, len(ranked))
	var fastest float64
	if len(ranked) > 0 {
		fastest = ranked[0].RunTimeStats.Average
	}
	for i, sc := range ranked {
		st := sc.RunTimeStats
		row := statsRow{
			Name:       sc.Name,
			IPS:        units.Format(st.IPS, gu.Count),
			Average:    units.Format(st.Average, gu.Duration),
			Deviation:  units.FormatPercent(st.StdDevRatio),
			Median:     units.Format(st.Median, gu.Duration),
			P99:        units.Format(st.Percentile99, gu.Duration),
			Minimum:    units.Format(st.Minimum, gu.Duration),
			Maximum:    units.Format(st.Maximum, gu.Duration),
			SampleSize: st.SampleSize,
		}
		if i > 0 && fastest > 0 {
			row.Slower = fmt.Sprintf("%.2fx", st.Average/fastest)
		}
		rows = append(rows, row)
	}
	return rows
}

// buildMemoryRows renders the memory table for the scenarios that carry
// memory statistics, in ranked order. Groups without memory measurements
// yield no rows and the template drops the section.
func buildMemoryRows(ranked []suite.Scenario, gu groupUnits) []memoryRow {
	var rows []memoryRow
	for _, sc := range ranked {
		if row := buildMemoryRow(sc, gu); row != nil {
			rows = append(rows, *row)
		}
	}
	return rows
}

func buildMemoryRow(sc suite.Scenario, gu groupUnits) *memoryRow {
	if sc.MemoryStats == nil {
		return nil
	}
	st := sc.MemoryStats
	return &memoryRow{
		Name:    sc.Name,
		Average: units.Format(st.Average, gu.Memory),
		Median:  units.Format(st.Median, gu.Memory),
		Minimum: units.Format(st.Minimum, gu.Memory),
		Maximum: units.Format(st.Maximum, gu.Memory),
	}
}

// renderPage executes one named template into a string.
func renderPage(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("unable to render %s: %w", name, err)
	}
	return buf.String(), nil
}
