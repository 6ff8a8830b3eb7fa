// internal/report/shape.go
package report

import (
	"sort"

	"github.com/mwiater/benchview/internal/suite"
)

// rankScenarios orders scenarios by ascending mean run time. The sort is
// stable, so scenarios with equal means keep the engine's original order;
// the comparison table and the embedded sort_order payload both rely on
// this ranking.
func rankScenarios(scenarios []suite.Scenario) []suite.Scenario {
	ranked := make([]suite.Scenario, len(scenarios))
	copy(ranked, scenarios)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RunTimeStats.Average < ranked[j].RunTimeStats.Average
	})
	return ranked
}

// sortOrder lists scenario names in ranked order.
func sortOrder(ranked []suite.Scenario) []string {
	names := make([]string, len(ranked))
	for i, sc := range ranked {
		names[i] = sc.Name
	}
	return names
}

// statisticsByName keys each scenario's run-time statistics by name for the
// embedded JSON payload. Values stay raw; unit scaling is a display concern.
func statisticsByName(scenarios []suite.Scenario) map[string]suite.Stats {
	stats := make(map[string]suite.Stats, len(scenarios))
	for _, sc := range scenarios {
		stats[sc.Name] = sc.RunTimeStats
	}
	return stats
}

// runTimesByName keys each scenario's raw samples by name for client-side
// chart rendering.
func runTimesByName(scenarios []suite.Scenario) map[string][]float64 {
	samples := make(map[string][]float64, len(scenarios))
	for _, sc := range scenarios {
		samples[sc.Name] = sc.RunTimes
	}
	return samples
}
