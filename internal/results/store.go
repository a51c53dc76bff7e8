package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the result document as indented JSON. encoding/json round-trips
// float64 values without loss, so reloading yields bit-identical numbers.
func (r *RunResult) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved result document.
func Load(path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results from %s: %w", path, err)
	}
	var r RunResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse results in %s: %w", path, err)
	}
	return &r, nil
}
