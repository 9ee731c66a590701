package driven

import "context"

// Transform rewrites a single field value before it is flattened into
// a row. A transform error aborts the whole export.
type Transform func(value string) (string, error)

// Table is the flat, ordered form handed to the exporter. Fields fixes
// the header and column order; each row maps field name to an already
// stringified value. A row missing a field referenced by a transform
// is an export error.
type Table struct {
	Fields []string
	Rows   []map[string]string
}

// TabularExporter serialises a table to a compressed delimited file at
// path, applying the named per-field transforms first. The write is
// atomic: no partial file is left behind on failure.
type TabularExporter interface {
	Export(ctx context.Context, table Table, transforms map[string]Transform, path string) error
}
