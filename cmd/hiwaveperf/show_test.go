package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	writeResultDoc(t, path, "abc1234", 42.0, 12.0)

	out, err := executeCommand(t, "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Performance Test Results")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "Renderer: hiwave")
}

func TestShowCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "show", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
