// internal/suite/suite.go

// Package suite defines the benchmark engine's output snapshot consumed by
// the report formatter: scenario results, their statistics, and the system
// metadata shared by every generated page.
package suite

import "fmt"

// Stats holds the aggregate metrics the engine computed for one measurement
// dimension. Run-time values are nanoseconds; memory values are bytes.
type Stats struct {
	Average      float64 `json:"average"`
	IPS          float64 `json:"ips"`
	StdDev       float64 `json:"std_dev"`
	StdDevRatio  float64 `json:"std_dev_ratio"`
	Median       float64 `json:"median"`
	Percentile99 float64 `json:"percentile_99"`
	Minimum      float64 `json:"minimum"`
	Maximum      float64 `json:"maximum"`
	SampleSize   int     `json:"sample_size"`
}

// Scenario is one benchmark's outcome for one input. An empty Input means
// the scenario ran without a named input. MemoryStats is nil when the engine
// did not measure memory.
type Scenario struct {
	Name         string    `json:"name"`
	Input        string    `json:"input,omitempty"`
	RunTimes     []float64 `json:"run_times"`
	RunTimeStats Stats     `json:"run_time_statistics"`
	MemoryStats  *Stats    `json:"memory_statistics,omitempty"`
}

// HasInput reports whether the scenario ran against a named input.
func (s Scenario) HasInput() bool { return s.Input != "" }

// Label returns the scenario name, suffixed with the input name when one
// was specified.
func (s Scenario) Label() string {
	if !s.HasInput() {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Input)
}

// SystemInfo is the environment metadata captured once per suite run.
// ToolVersion identifies the engine that produced the measurements.
type SystemInfo struct {
	OS              string `json:"os"`
	CPU             string `json:"cpu"`
	CPUCount        int    `json:"cpu_count"`
	AvailableMemory string `json:"available_memory"`
	ToolVersion     string `json:"tool_version"`
}

// Suite is the full engine output: an ordered sequence of scenario results
// plus system metadata. Scenario order is meaningful; grouping and ranking
// tie-breaks preserve it.
type Suite struct {
	Scenarios []Scenario `json:"scenarios"`
	System    SystemInfo `json:"system"`
}
