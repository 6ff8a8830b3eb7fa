// internal/report/write.go
package report

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Write materializes a formatted report on disk: it creates the output
// directory, copies static assets unless the pages inlined them, writes
// every page, and optionally opens the index in the default viewer.
//
// Writes are not transactional; a failure partway through leaves the pages
// already written on disk. Report output is regenerable, so nothing is
// cleaned up.
func Write(rep *Report) error {
	cfg := rep.Config.normalize()
	dir := filepath.Dir(cfg.File)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("unable to create report directory %s: %w", dir, err)
	}

	if !cfg.InlineAssets {
		if err := copyAssets(dir); err != nil {
			return err
		}
	}

	for leaf, content := range rep.Pages {
		path := filepath.Join(dir, leaf)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("unable to write report page %s: %w", path, err)
		}
	}

	if cfg.AutoOpen {
		openPath(filepath.Join(dir, filepath.Base(cfg.File)))
	}
	return nil
}

// copyAssets mirrors the embedded assets directory into the output
// directory so linked pages can resolve their CSS and chart script.
func copyAssets(dir string) error {
	return fs.WalkDir(assetFS, "assets", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("unable to create asset directory %s: %w", target, err)
			}
			return nil
		}
		data, err := assetFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read embedded asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("unable to copy asset %s: %w", target, err)
		}
		return nil
	})
}

// openPath asks the OS to open the written index page in the default
// viewer. Launch problems are logged and swallowed: the report is already
// safely on disk.
func openPath(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("unable to open report %s: %v", path, err)
	}
}
