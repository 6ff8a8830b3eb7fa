// internal/report/report.go

// Package report turns a benchmark suite snapshot into a set of static HTML
// pages: one index, one comparison page per input, one detail page per
// scenario. Format is the pure half (suite in, page map out); Write is the
// I/O half that puts the pages and their assets on disk.
package report

import (
	"fmt"

	"github.com/mwiater/benchview/internal/suite"
)

const (
	// DefaultFile is where reports land when the configuration does not
	// name an output file.
	DefaultFile = "benchmarks/output/results.html"
	// BestFitUnit selects per-group unit scaling. Any other policy value
	// names a fixed unit ("millisecond", "thousand", ...).
	BestFitUnit = "best_fit"
)

// Config controls one report generation run.
type Config struct {
	File         string `json:"file"`
	AutoOpen     bool   `json:"autoOpen"`
	InlineAssets bool   `json:"inlineAssets"`
	TimeUnit     string `json:"timeUnit"`
	CountUnit    string `json:"countUnit"`
}

// normalize fills configuration gaps. A missing value is never an error.
func (c Config) normalize() Config {
	if c.File == "" {
		c.File = DefaultFile
	}
	if c.TimeUnit == "" {
		c.TimeUnit = BestFitUnit
	}
	if c.CountUnit == "" {
		c.CountUnit = BestFitUnit
	}
	return c
}

// Report is Format's output: rendered pages keyed by their path relative to
// the output directory, plus the resolved configuration for Write.
type Report struct {
	Pages  map[string]string
	Config Config
}

// Format renders the full page set for a suite. version is the formatter
// version printed in page footers; callers resolve it once at startup.
//
// Format is pure: no clock, no randomness, no filesystem. Running it twice
// on the same suite, config, and version produces byte-identical pages.
// It trusts the engine's statistics shapes; validating raw engine JSON is
// the suite loader's job.
func Format(su *suite.Suite, cfg Config, version string) (*Report, error) {
	cfg = cfg.normalize()

	groups := groupScenarios(su.Scenarios)
	pages := make(map[string]string, len(su.Scenarios)+len(groups)+1)

	chrome := pageChrome{
		IndexPath:    pagePath(cfg.File),
		InlineAssets: cfg.InlineAssets,
		System:       su.System,
		Version:      version,
	}
	if cfg.InlineAssets {
		chrome.InlineCSS = inlineCSS
		chrome.InlineJS = inlineJS
	}

	nav := make([]navGroup, 0, len(groups))
	for _, group := range groups {
		gu := chooseUnits(group, cfg)
		label := inputLabel(group.Input)
		ranked := rankScenarios(group.Scenarios)

		entry := navGroup{
			Label:      label,
			Comparison: navPage{Label: label, Path: pagePath(cfg.File, label)},
		}
		for _, sc := range group.Scenarios {
			entry.Scenarios = append(entry.Scenarios, navPage{
				Label: sc.Name,
				Path:  pagePath(cfg.File, label, sc.Name),
			})
		}
		nav = append(nav, entry)

		payload, err := marshalPayload(group.Scenarios, ranked)
		if err != nil {
			return nil, err
		}
		heading := "Benchmark Results" + headingSuffix(group.Input)
		cmp := comparisonData{
			pageChrome:  chrome,
			Heading:     heading,
			Rows:        buildStatsRows(ranked, gu),
			MemoryRows:  buildMemoryRows(ranked, gu),
			DetailPages: entry.Scenarios,
			PayloadJSON: payload,
		}
		cmp.Title = "benchview: " + heading
		html, err := renderPage("comparison.html.tmpl", cmp)
		if err != nil {
			return nil, err
		}
		pages[entry.Comparison.Path] = html

		for i, sc := range group.Scenarios {
			single := []suite.Scenario{sc}
			payload, err := marshalPayload(single, single)
			if err != nil {
				return nil, err
			}
			heading := sc.Name + headingSuffix(sc.Input)
			det := detailData{
				pageChrome:     chrome,
				Heading:        heading,
				ComparisonPath: entry.Comparison.Path,
				Row:            buildStatsRows(single, gu)[0],
				MemoryRow:      buildMemoryRow(sc, gu),
				PayloadJSON:    payload,
			}
			det.Title = "benchview: " + heading
			html, err := renderPage("detail.html.tmpl", det)
			if err != nil {
				return nil, err
			}
			pages[entry.Scenarios[i].Path] = html
		}
	}

	idx := indexData{pageChrome: chrome, Groups: nav}
	idx.Title = "benchview: Benchmark Report"
	html, err := renderPage("index.html.tmpl", idx)
	if err != nil {
		return nil, err
	}
	pages[chrome.IndexPath] = html

	return &Report{Pages: pages, Config: cfg}, nil
}

// headingSuffix qualifies page headings with the input name. Scenarios that
// ran without an input get no suffix.
func headingSuffix(input string) string {
	if input == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", input)
}
