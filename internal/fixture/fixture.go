// Package fixture loads a JSON dataset into the mock backend. The file shape
// is one top-level object keyed by resource name, each holding an array of
// rows, the same layout a json-server db.json uses.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"crm-backoffice/internal/gateway"
)

// LoadFile reads the fixture at path and loads it into the gateway.
// It returns the number of rows loaded across all resources.
func LoadFile(gw *gateway.Gateway, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return Load(gw, f)
}

// Load reads a fixture document from r and replaces the matching gateway
// tables. Resources absent from the document keep their current contents;
// unknown resource keys are rejected so typos do not silently drop data.
func Load(gw *gateway.Gateway, r io.Reader) (int, error) {
	var doc map[string][]gateway.Row
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode fixture: %w", err)
	}

	loaded := 0
	for resource, rows := range doc {
		table, ok := gw.Table(resource)
		if !ok {
			return 0, fmt.Errorf("fixture references unknown resource %q", resource)
		}
		table.Load(rows)
		loaded += len(rows)
	}
	return loaded, nil
}
