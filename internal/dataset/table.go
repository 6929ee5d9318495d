// Package dataset loads one folder's sales files and turns them into a
// report record.
package dataset

import (
	"strings"

	"github.com/vanshika/salesboard/internal/clean"
)

// Table is the generic row model shared by the order and catalog loaders.
// Sources declare their own column names, so cells stay untyped until the
// pipeline resolves each column's role.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// JoinKey renders an item identifier for joining orders to catalog rows.
// A trailing ".0" is stripped so IDs that went through a floating-point
// representation ("42.0") still match their integer form.
func JoinKey(v any) string {
	return strings.TrimSuffix(clean.Stringify(v), ".0")
}
