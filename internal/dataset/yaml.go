package dataset

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCatalogYAML reads the catalog file, a top-level sequence of mappings,
// as a table. Column names are normalized by deleting the ':' artifact some
// exports leave in keys; the column order is the sorted union of keys so the
// table is deterministic regardless of map iteration.
func LoadCatalogYAML(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}

	var entries []map[string]any
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return Table{}, fmt.Errorf("decode yaml %s: %w", path, err)
	}

	seen := make(map[string]struct{})
	var columns []string
	rows := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		row := make(map[string]any, len(entry))
		for key, value := range entry {
			name := strings.ReplaceAll(key, ":", "")
			row[name] = value
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
		rows = append(rows, row)
	}
	sort.Strings(columns)

	return Table{Columns: columns, Rows: rows}, nil
}
