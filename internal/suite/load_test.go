// internal/suite/load_test.go
package suite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSuiteJSON = `{
  "scenarios": [
    {
      "name": "flat_map",
      "input": "Bigger",
      "run_times": [7700000, 7800000, 7900000],
      "run_time_statistics": {
        "average": 7800000,
        "ips": 128.2,
        "std_dev": 100000,
        "std_dev_ratio": 0.0128,
        "median": 7800000,
        "percentile_99": 7900000,
        "minimum": 7700000,
        "maximum": 7900000,
        "sample_size": 3
      }
    },
    {
      "name": "map.flatten",
      "input": "Bigger",
      "run_times": [12000000, 12100000],
      "run_time_statistics": {
        "average": 12050000,
        "ips": 82.9,
        "std_dev": 70710,
        "std_dev_ratio": 0.0059,
        "median": 12050000,
        "percentile_99": 12100000,
        "minimum": 12000000,
        "maximum": 12100000,
        "sample_size": 2
      },
      "memory_statistics": {
        "average": 624000,
        "std_dev": 0,
        "std_dev_ratio": 0,
        "median": 624000,
        "percentile_99": 624000,
        "minimum": 624000,
        "maximum": 624000,
        "sample_size": 2
      }
    }
  ],
  "system": {
    "os": "linux",
    "cpu": "Apple M2 Pro",
    "cpu_count": 10,
    "available_memory": "16 GB",
    "tool_version": "1.4.2"
  }
}`

func TestLoad(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		su, err := Load(strings.NewReader(validSuiteJSON))
		require.NoError(t, err)
		require.Len(t, su.Scenarios, 2)

		first := su.Scenarios[0]
		assert.Equal(t, "flat_map", first.Name)
		assert.Equal(t, "Bigger", first.Input)
		assert.True(t, first.HasInput())
		assert.Equal(t, "flat_map (Bigger)", first.Label())
		assert.InDelta(t, 7800000, first.RunTimeStats.Average, 0.001)
		assert.Equal(t, 3, first.RunTimeStats.SampleSize)
		assert.Nil(t, first.MemoryStats)

		second := su.Scenarios[1]
		require.NotNil(t, second.MemoryStats)
		assert.InDelta(t, 624000, second.MemoryStats.Average, 0.001)

		assert.Equal(t, "linux", su.System.OS)
		assert.Equal(t, 10, su.System.CPUCount)
		assert.Equal(t, "1.4.2", su.System.ToolVersion)
	})

	t.Run("no input stays empty", func(t *testing.T) {
		doc := `{
  "scenarios": [
    {
      "name": "solo",
      "run_times": [100],
      "run_time_statistics": {"average": 100, "sample_size": 1}
    }
  ],
  "system": {"os": "linux"}
}`
		su, err := Load(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, su.Scenarios, 1)
		assert.False(t, su.Scenarios[0].HasInput())
		assert.Equal(t, "solo", su.Scenarios[0].Label())
	})

	t.Run("rejects missing statistics", func(t *testing.T) {
		doc := `{
  "scenarios": [
    {"name": "broken", "run_times": [1]}
  ],
  "system": {}
}`
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed validation")
		assert.Contains(t, err.Error(), "run_time_statistics")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		doc := `{
  "scenarios": [
    {"name": "", "run_times": [1], "run_time_statistics": {"average": 1, "sample_size": 1}}
  ],
  "system": {}
}`
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed validation")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"scenarios": [`))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads suite from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "suite.json")
		require.NoError(t, os.WriteFile(path, []byte(validSuiteJSON), 0o644))

		su, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, su.Scenarios, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to read suite file")
	})
}
