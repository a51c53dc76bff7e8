package harness

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PageComplexity describes a test page for selection and reporting. It has no
// bearing on the statistics themselves.
type PageComplexity struct {
	DOMDepth     int `json:"dom_depth"`
	ElementCount int `json:"element_count"`
	CSSRules     int `json:"css_rules"`
}

// TestPage is one entry of the corpus, loaded once and shared read-only
// across all iterations.
type TestPage struct {
	Name       string
	HTML       string
	Complexity PageComplexity
}

type manifest struct {
	Pages []manifestEntry `json:"pages"`
}

type manifestEntry struct {
	File       string         `json:"file"`
	Name       string         `json:"name"`
	Complexity PageComplexity `json:"complexity"`
}

// LoadPages reads the test-page corpus from dir. If a manifest.json is
// present it names the files, display names and complexity descriptors;
// otherwise every .html file in the directory is loaded with placeholder
// complexity values. Manifest entries pointing at missing files are skipped.
func LoadPages(dir string) ([]TestPage, error) {
	manifestPath := filepath.Join(dir, "manifest.json")
	if _, err := os.Stat(manifestPath); err == nil {
		return loadFromManifest(dir, manifestPath)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory %s: %w", dir, err)
	}

	var pages []TestPage
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		pages = append(pages, TestPage{
			Name: entry.Name(),
			HTML: string(data),
			Complexity: PageComplexity{
				DOMDepth:     10,
				ElementCount: 100,
				CSSRules:     50,
			},
		})
	}
	return pages, nil
}

func loadFromManifest(dir, manifestPath string) ([]TestPage, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest.json: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest.json: %w", err)
	}

	var pages []TestPage
	for _, entry := range m.Pages {
		pagePath := filepath.Join(dir, entry.File)
		html, err := os.ReadFile(pagePath)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Warn("manifest entry missing on disk, skipping", "file", entry.File)
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", entry.File, err)
		}
		pages = append(pages, TestPage{
			Name:       entry.Name,
			HTML:       string(html),
			Complexity: entry.Complexity,
		})
	}
	return pages, nil
}
