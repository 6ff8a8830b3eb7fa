// internal/report/group.go
package report

import "github.com/mwiater/benchview/internal/suite"

// inputGroup collects the scenarios benchmarked against one input, in the
// order the engine ran them.
type inputGroup struct {
	Input     string
	Scenarios []suite.Scenario
}

// groupScenarios partitions scenarios by input name. Groups appear in
// first-appearance order and scenarios keep their original relative order
// inside each group, so page generation is deterministic end to end.
func groupScenarios(scenarios []suite.Scenario) []inputGroup {
	var groups []inputGroup
	index := make(map[string]int)
	for _, sc := range scenarios {
		i, ok := index[sc.Input]
		if !ok {
			i = len(groups)
			index[sc.Input] = i
			groups = append(groups, inputGroup{Input: sc.Input})
		}
		groups[i].Scenarios = append(groups[i].Scenarios, sc)
	}
	return groups
}
