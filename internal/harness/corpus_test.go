package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, html string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(html), 0644))
}

func TestLoadPagesFallback(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "simple.html", "<html><body>a</body></html>")
	writePage(t, dir, "complex.html", "<html><body><div>b</div></body></html>")
	writePage(t, dir, "notes.txt", "not a page")

	pages, err := LoadPages(dir)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	names := []string{pages[0].Name, pages[1].Name}
	assert.ElementsMatch(t, []string{"simple.html", "complex.html"}, names)
	// Placeholder complexity values when there is no manifest.
	assert.Equal(t, 10, pages[0].Complexity.DOMDepth)
	assert.Equal(t, 100, pages[0].Complexity.ElementCount)
	assert.Equal(t, 50, pages[0].Complexity.CSSRules)
}

func TestLoadPagesManifest(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "a.html", "<html><body>a</body></html>")
	writePage(t, dir, "manifest.json", `{
		"pages": [
			{"file": "a.html", "name": "Simple Page", "complexity": {"dom_depth": 4, "element_count": 12, "css_rules": 3}},
			{"file": "missing.html", "name": "Gone", "complexity": {"dom_depth": 1, "element_count": 1, "css_rules": 1}}
		]
	}`)

	pages, err := LoadPages(dir)
	require.NoError(t, err)
	require.Len(t, pages, 1) // missing file skipped

	assert.Equal(t, "Simple Page", pages[0].Name)
	assert.Equal(t, 4, pages[0].Complexity.DOMDepth)
	assert.Equal(t, 12, pages[0].Complexity.ElementCount)
}

func TestLoadPagesBadManifest(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "manifest.json", "{broken")

	_, err := LoadPages(dir)
	assert.Error(t, err)
}

func TestLoadPagesEmptyDir(t *testing.T) {
	pages, err := LoadPages(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestLoadPagesMissingDir(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
