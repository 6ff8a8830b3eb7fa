// internal/units/units.go

// Package units scales raw benchmark magnitudes (nanosecond run times,
// iterations per second, byte sizes) into readable display units. Unit
// selection works on whole value groups so every job benchmarked against one
// input shares a unit in the comparison tables.
package units

import (
	"fmt"
	"math"
)

// Unit describes one display unit: its scale relative to the raw base
// magnitude and how it is labelled on report pages.
type Unit struct {
	Name      string
	Label     string
	Magnitude float64
}

// Duration units. Raw run times arrive in nanoseconds.
var (
	Nanosecond  = Unit{Name: "nanosecond", Label: "ns", Magnitude: 1}
	Microsecond = Unit{Name: "microsecond", Label: "μs", Magnitude: 1e3}
	Millisecond = Unit{Name: "millisecond", Label: "ms", Magnitude: 1e6}
	Second      = Unit{Name: "second", Label: "s", Magnitude: 1e9}
	Minute      = Unit{Name: "minute", Label: "min", Magnitude: 6e10}
	Hour        = Unit{Name: "hour", Label: "h", Magnitude: 3.6e12}
)

// Count units for iterations-per-second values.
var (
	One      = Unit{Name: "one", Label: "", Magnitude: 1}
	Thousand = Unit{Name: "thousand", Label: "K", Magnitude: 1e3}
	Million  = Unit{Name: "million", Label: "M", Magnitude: 1e6}
	Billion  = Unit{Name: "billion", Label: "B", Magnitude: 1e9}
)

// Memory units. Raw values arrive in bytes; the ladder is 1024-based.
var (
	Byte     = Unit{Name: "byte", Label: "B", Magnitude: 1}
	Kilobyte = Unit{Name: "kilobyte", Label: "KB", Magnitude: 1024}
	Megabyte = Unit{Name: "megabyte", Label: "MB", Magnitude: 1024 * 1024}
	Gigabyte = Unit{Name: "gigabyte", Label: "GB", Magnitude: 1024 * 1024 * 1024}
)

var (
	durationUnits = []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour}
	countUnits    = []Unit{One, Thousand, Million, Billion}
	memoryUnits   = []Unit{Byte, Kilobyte, Megabyte, Gigabyte}
)

// Scale converts a raw base-unit value into the given display unit.
func Scale(value float64, u Unit) float64 {
	return value / u.Magnitude
}

// Format renders a raw value in the given display unit, e.g. "12.35 ms".
// The bare count unit carries no label.
func Format(value float64, u Unit) string {
	scaled := Scale(value, u)
	if u.Label == "" {
		return fmt.Sprintf("%.2f", scaled)
	}
	return fmt.Sprintf("%.2f %s", scaled, u.Label)
}

// FormatPercent renders a deviation ratio as a percentage, e.g. "±12.34%".
// Deviations stay percentages no matter which unit policy is active.
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("±%.2f%%", ratio*100)
}

// bestUnit picks the largest ladder unit that keeps the scaled value at or
// above 1, so "7800000 ns" surfaces as "7.80 ms" rather than "0.0078 s".
func bestUnit(value float64, ladder []Unit) Unit {
	best := ladder[0]
	for _, u := range ladder {
		if math.Abs(value)/u.Magnitude >= 1 {
			best = u
		}
	}
	return best
}

// BestFit selects one display unit for a whole group of values: each value
// votes for its own best unit and the most frequent unit wins, ties resolved
// toward the larger unit.
func BestFit(values []float64, ladder []Unit) Unit {
	if len(values) == 0 {
		return ladder[0]
	}
	votes := make(map[string]int, len(ladder))
	byName := make(map[string]Unit, len(ladder))
	for _, u := range ladder {
		byName[u.Name] = u
	}
	for _, v := range values {
		votes[bestUnit(v, ladder).Name]++
	}
	winner := ladder[0]
	winnerVotes := 0
	for name, n := range votes {
		u := byName[name]
		if n > winnerVotes || (n == winnerVotes && u.Magnitude > winner.Magnitude) {
			winner = u
			winnerVotes = n
		}
	}
	return winner
}

// BestFitDuration returns the shared display unit for nanosecond values.
func BestFitDuration(values []float64) Unit { return BestFit(values, durationUnits) }

// BestFitCount returns the shared display unit for per-second counts.
func BestFitCount(values []float64) Unit { return BestFit(values, countUnits) }

// BestFitMemory returns the shared display unit for byte values.
func BestFitMemory(values []float64) Unit { return BestFit(values, memoryUnits) }

// DurationUnit resolves a duration unit by name ("millisecond", "second", ...).
func DurationUnit(name string) (Unit, bool) { return lookup(name, durationUnits) }

// CountUnit resolves a count unit by name ("thousand", "million", ...).
func CountUnit(name string) (Unit, bool) { return lookup(name, countUnits) }

// MemoryUnit resolves a memory unit by name ("kilobyte", "megabyte", ...).
func MemoryUnit(name string) (Unit, bool) { return lookup(name, memoryUnits) }

func lookup(name string, ladder []Unit) (Unit, bool) {
	for _, u := range ladder {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}
