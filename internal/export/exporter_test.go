package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dougdotcon/ghexplorer/internal/core/ports/driven"
)

func readGzipCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	rows, err := csv.NewReader(zr).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVGzipExporter(t *testing.T) {
	fields := []string{"contributor_login", "contributions", "repo_name", "repo_created_at"}
	transforms := map[string]driven.Transform{
		"repo_created_at": DateDDMMYYYY,
	}

	t.Run("round trips records with date reformatting", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv.gz")
		table := driven.Table{
			Fields: fields,
			Rows: []map[string]string{
				{
					"contributor_login": "alice",
					"contributions":     "40",
					"repo_name":         "proj",
					"repo_created_at":   "2019-05-01T10:20:30Z",
				},
				{
					"contributor_login": "bob",
					"contributions":     "2",
					"repo_name":         "proj",
					"repo_created_at":   "2019-05-01T10:20:30Z",
				},
			},
		}

		err := NewCSVGzipExporter().Export(context.Background(), table, transforms, path)

		require.NoError(t, err)
		rows := readGzipCSV(t, path)
		require.Len(t, rows, 3)
		assert.Equal(t, fields, rows[0], "header must reflect field order")
		assert.Equal(t, []string{"alice", "40", "proj", "01/05/2019"}, rows[1])
		assert.Equal(t, []string{"bob", "2", "proj", "01/05/2019"}, rows[2])
	})

	t.Run("fails hard when a transformed field is missing", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv.gz")
		table := driven.Table{
			Fields: fields,
			Rows: []map[string]string{
				{"contributor_login": "alice", "contributions": "40", "repo_name": "proj"},
			},
		}

		err := NewCSVGzipExporter().Export(context.Background(), table, transforms, path)

		require.Error(t, err)
		var exportErr *ExportError
		require.ErrorAs(t, err, &exportErr)
		assert.Equal(t, "repo_created_at", exportErr.Field)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no output file on failure")
	})

	t.Run("fails hard on a date that does not parse", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv.gz")
		table := driven.Table{
			Fields: fields,
			Rows: []map[string]string{
				{
					"contributor_login": "alice",
					"contributions":     "40",
					"repo_name":         "proj",
					"repo_created_at":   "not-a-date",
				},
			},
		}

		err := NewCSVGzipExporter().Export(context.Background(), table, transforms, path)

		require.Error(t, err)
		var exportErr *ExportError
		require.ErrorAs(t, err, &exportErr)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries, "no partial or temporary files left behind")
	})

	t.Run("exports an untransformed absent field as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv.gz")
		table := driven.Table{
			Fields: []string{"name", "bio"},
			Rows: []map[string]string{
				{"name": "alice"},
			},
		}

		err := NewCSVGzipExporter().Export(context.Background(), table, nil, path)

		require.NoError(t, err)
		rows := readGzipCSV(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"alice", ""}, rows[1])
	})

	t.Run("writes a header-only file for an empty table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv.gz")
		table := driven.Table{Fields: []string{"a", "b"}}

		err := NewCSVGzipExporter().Export(context.Background(), table, nil, path)

		require.NoError(t, err)
		rows := readGzipCSV(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"a", "b"}, rows[0])
	})
}
