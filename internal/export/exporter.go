// Package export reshapes enriched records into flat tabular form and
// serialises them to gzip-compressed CSV files. It also owns the text
// sanitiser and the per-field transforms applied before flattening.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/dougdotcon/ghexplorer/internal/core/ports/driven"
	"github.com/dougdotcon/ghexplorer/internal/logger"
)

// Ensure CSVGzipExporter implements the interface.
var _ driven.TabularExporter = (*CSVGzipExporter)(nil)

// ExportError indicates a record could not be flattened: a field
// referenced by a transform is missing, or a transform rejected its
// value. Export errors are hard stops; no output file is left behind.
type ExportError struct {
	Field string
	Row   int
	Err   error
}

func (e *ExportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("export: row %d missing field %q", e.Row, e.Field)
	}
	return fmt.Sprintf("export: row %d field %q: %v", e.Row, e.Field, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// CSVGzipExporter writes tables as gzip-compressed CSV with a header
// row in field order. The file is written to a temporary sibling and
// renamed into place so a failed export never leaves a partial file.
type CSVGzipExporter struct{}

// NewCSVGzipExporter creates a gzip CSV exporter.
func NewCSVGzipExporter() *CSVGzipExporter {
	return &CSVGzipExporter{}
}

// Export applies the per-field transforms, flattens the table to rows
// and writes it to path.
func (e *CSVGzipExporter) Export(ctx context.Context, table driven.Table, transforms map[string]driven.Transform, path string) error {
	rows, err := flatten(table, transforms)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := writeGzipCSV(tmp, table.Fields, rows); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename export file: %w", err)
	}

	logger.Debug("exported %d row(s) to %s", len(rows), path)
	return nil
}

// flatten applies transforms and orders every record's values by the
// table's field list. A record missing a field referenced by a
// transform fails the whole export.
func flatten(table driven.Table, transforms map[string]driven.Transform) ([][]string, error) {
	rows := make([][]string, 0, len(table.Rows))

	for i, record := range table.Rows {
		row := make([]string, len(table.Fields))
		for j, field := range table.Fields {
			value, ok := record[field]
			if !ok {
				if _, required := transforms[field]; required {
					return nil, &ExportError{Field: field, Row: i}
				}
				// Untransformed absent field exports as empty.
				continue
			}
			if transform, hasTransform := transforms[field]; hasTransform {
				transformed, err := transform(value)
				if err != nil {
					return nil, &ExportError{Field: field, Row: i, Err: err}
				}
				value = transformed
			}
			row[j] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func writeGzipCSV(f *os.File, header []string, rows [][]string) error {
	zw := gzip.NewWriter(f)
	cw := csv.NewWriter(zw)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close gzip stream: %w", err)
	}
	return nil
}
