// internal/units/units_test.go
package units

import "testing"

func TestBestUnitPerValue(t *testing.T) {
	cases := map[float64]string{
		0:       "nanosecond",
		450:     "nanosecond",
		4_500:   "microsecond",
		7.8e6:   "millisecond",
		2.5e9:   "second",
		9e10:    "minute",
		7.2e12:  "hour",
		-4_500:  "microsecond",
		999_999: "microsecond",
	}
	for value, expected := range cases {
		if got := bestUnit(value, durationUnits); got.Name != expected {
			t.Fatalf("bestUnit(%v) = %q, want %q", value, got.Name, expected)
		}
	}
}

func TestBestFitMostFrequentWins(t *testing.T) {
	// Two millisecond-sized values outvote one second-sized value.
	values := []float64{7.8e6, 9.2e6, 2.1e9}
	if got := BestFitDuration(values); got.Name != "millisecond" {
		t.Fatalf("BestFitDuration = %q, want millisecond", got.Name)
	}
}

func TestBestFitTieTakesLargerUnit(t *testing.T) {
	values := []float64{7.8e6, 2.1e9}
	if got := BestFitDuration(values); got.Name != "second" {
		t.Fatalf("BestFitDuration tie = %q, want second", got.Name)
	}
}

func TestBestFitEmpty(t *testing.T) {
	if got := BestFitDuration(nil); got.Name != "nanosecond" {
		t.Fatalf("BestFitDuration(nil) = %q, want nanosecond", got.Name)
	}
	if got := BestFitCount(nil); got.Name != "one" {
		t.Fatalf("BestFitCount(nil) = %q, want one", got.Name)
	}
}

func TestBestFitCount(t *testing.T) {
	values := []float64{128_000, 83_000, 1_500_000}
	if got := BestFitCount(values); got.Name != "thousand" {
		t.Fatalf("BestFitCount = %q, want thousand", got.Name)
	}
}

func TestBestFitMemory(t *testing.T) {
	values := []float64{624_000, 512_000, 2048}
	if got := BestFitMemory(values); got.Name != "kilobyte" {
		t.Fatalf("BestFitMemory = %q, want kilobyte", got.Name)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		value    float64
		unit     Unit
		expected string
	}{
		{7.8e6, Millisecond, "7.80 ms"},
		{7.8e6, Second, "0.01 s"},
		{1234.5, One, "1234.50"},
		{1_234_500, Thousand, "1234.50 K"},
		{1_234_500, Million, "1.23 M"},
		{638_976, Kilobyte, "624.00 KB"},
	}
	for _, tc := range cases {
		if got := Format(tc.value, tc.unit); got != tc.expected {
			t.Fatalf("Format(%v, %s) = %q, want %q", tc.value, tc.unit.Name, got, tc.expected)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.1234); got != "±12.34%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := FormatPercent(0); got != "±0.00%" {
		t.Fatalf("FormatPercent(0) = %q", got)
	}
}

func TestUnitLookup(t *testing.T) {
	if u, ok := DurationUnit("millisecond"); !ok || u.Label != "ms" {
		t.Fatalf("DurationUnit(millisecond) = %+v, %v", u, ok)
	}
	if u, ok := CountUnit("million"); !ok || u.Label != "M" {
		t.Fatalf("CountUnit(million) = %+v, %v", u, ok)
	}
	if u, ok := MemoryUnit("gigabyte"); !ok || u.Label != "GB" {
		t.Fatalf("MemoryUnit(gigabyte) = %+v, %v", u, ok)
	}
	if _, ok := DurationUnit("fortnight"); ok {
		t.Fatal("DurationUnit(fortnight) should not resolve")
	}
}

func TestScale(t *testing.T) {
	if got := Scale(7.8e6, Millisecond); got != 7.8 {
		t.Fatalf("Scale = %v, want 7.8", got)
	}
}
