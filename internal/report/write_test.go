// internal/report/write_test.go
package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCreatesPagesAndAssets(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{File: filepath.Join(dir, "out", "results.html")}

	rep, err := Format(testSuite(), cfg, "0.3.0")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if err := Write(rep); err != nil {
		t.Fatalf("Write: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	for _, leaf := range []string{"results.html", "bigger-results.html", "bigger-flat_map-results.html"} {
		data, err := os.ReadFile(filepath.Join(outDir, leaf))
		if err != nil {
			t.Fatalf("read page %s: %v", leaf, err)
		}
		if !strings.Contains(string(data), "<!DOCTYPE html>") {
			t.Fatalf("page %s is not HTML", leaf)
		}
	}

	css, err := os.ReadFile(filepath.Join(outDir, "assets", "benchview.css"))
	if err != nil {
		t.Fatalf("read copied stylesheet: %v", err)
	}
	if !strings.Contains(string(css), "--accent") {
		t.Fatalf("stylesheet content unexpected")
	}
	if _, err := os.Stat(filepath.Join(outDir, "assets", "charts.js")); err != nil {
		t.Fatalf("chart script not copied: %v", err)
	}
}

func TestWriteTwiceIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{File: filepath.Join(dir, "out", "results.html")}

	rep, err := Format(testSuite(), cfg, "0.3.0")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if err := Write(rep); err != nil {
		t.Fatalf("first Write: %v", err)
	}
	if err := Write(rep); err != nil {
		t.Fatalf("second Write into existing directory: %v", err)
	}
}

func TestWriteInlineSkipsAssets(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{File: filepath.Join(dir, "results.html"), InlineAssets: true}

	rep, err := Format(testSuite(), cfg, "0.3.0")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if err := Write(rep); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "assets")); !os.IsNotExist(err) {
		t.Fatalf("inline mode should not copy assets (stat err = %v)", err)
	}
}

func TestWriteDefaultsMissingFile(t *testing.T) {
	dir := t.TempDir()
	prevDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevDir) })

	rep, err := Format(testSuite(), Config{}, "0.3.0")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if err := Write(rep); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join("benchmarks", "output", "results.html")); err != nil {
		t.Fatalf("default output missing: %v", err)
	}
}
