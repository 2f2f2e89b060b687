// Package fixture serves the static payloads used in mock mode. Payloads are
// decoded from YAML on every read, so callers always get a fresh value.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// ErrNotFound is returned when a fixture key does not exist.
var ErrNotFound = errors.New("fixture not found")

// Set is a parsed-once, decoded-per-read fixture document.
type Set struct {
	data []byte
}

// Default returns the fixtures compiled into the binary.
func Default() *Set {
	return &Set{data: defaultFixtures}
}

// Parse checks that data is a YAML mapping and wraps it.
func Parse(data []byte) (*Set, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("failed to decode fixtures: document is empty")
	}
	return &Set{data: data}, nil
}

// LoadFile reads a fixture document from disk.
func LoadFile(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read fixture file %s: %w", path, err)
	}
	return Parse(b)
}

// Read walks path through nested mappings and returns the value found. An
// explicit null is returned as nil; a missing key is ErrNotFound.
func (s *Set) Read(path ...string) (any, error) {
	var root any
	if err := yaml.Unmarshal(s.data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	cur := root
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, path)
		}
		next, ok := m[key]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, path)
		}
		cur = next
	}
	return cur, nil
}
