package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readLines reads a file and splits it into trimmed lines
func readLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimSpace(string(content)), "\n")
}

func TestNewCSVWriter(t *testing.T) {
	writer := NewCSVWriter("/tmp/out")

	assert.NotNil(t, writer)
	assert.Equal(t, "/tmp/out", writer.outputDir)
	assert.False(t, writer.bomPrefix)
}

func TestCSVWriter_FileName(t *testing.T) {
	writer := NewCSVWriter("")

	assert.Equal(t, "gold.dim_customers.csv", writer.FileName("gold.dim_customers"))
	assert.Equal(t, "fact_sales.csv", writer.FileName("fact_sales"))
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	tests := []struct {
		name        string
		filePath    string
		options     WriteOptions
		expectError bool
		validate    func(t *testing.T, filePath string)
	}{
		{
			name:     "basic write with headers",
			filePath: "basic.csv",
			options: WriteOptions{
				Headers: []string{"customer_id", "name", "city"},
				Records: [][]string{
					{"1", "John", "New York"},
					{"2", "Jane", "London"},
				},
			},
			validate: func(t *testing.T, filePath string) {
				lines := readLines(t, filePath)
				assert.Len(t, lines, 3)
				assert.Equal(t, "customer_id,name,city", lines[0])
				assert.Equal(t, "1,John,New York", lines[1])
				assert.Equal(t, "2,Jane,London", lines[2])
			},
		},
		{
			name:     "write with BOM prefix",
			filePath: "bom.csv",
			options: WriteOptions{
				Headers:   []string{"product_id", "price"},
				Records:   [][]string{{"10", "150.25"}},
				BOMPrefix: true,
			},
			validate: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				require.NoError(t, err)

				assert.True(t, bytes.HasPrefix(content, utf8BOM))
				assert.Equal(t, "product_id,price\n10,150.25\n", string(content[3:]))
			},
		},
		{
			name:     "special characters are quoted",
			filePath: "quoted.csv",
			options: WriteOptions{
				Headers: []string{"name", "note"},
				Records: [][]string{
					{"Widget, Large", `said "hi"`},
				},
			},
			validate: func(t *testing.T, filePath string) {
				file, err := os.Open(filePath)
				require.NoError(t, err)
				defer file.Close()

				records, err := csv.NewReader(file).ReadAll()
				require.NoError(t, err)
				assert.Equal(t, [][]string{
					{"name", "note"},
					{"Widget, Large", `said "hi"`},
				}, records)
			},
		},
		{
			name:     "nested relative path is created",
			filePath: filepath.Join("nested", "deep", "rows.csv"),
			options: WriteOptions{
				Headers: []string{"a"},
				Records: [][]string{{"1"}},
			},
			validate: func(t *testing.T, filePath string) {
				assert.FileExists(t, filePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writer.WriteCSV(tt.filePath, tt.options)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, filepath.Join(tempDir, tt.filePath))
			}
		})
	}
}

func TestCSVWriter_WriteCSV_Truncates(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"old", "old"}, {"old", "old"}, {"old", "old"}},
	}))

	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"a", "b"},
		Records: [][]string{{"new", "new"}},
	}))

	lines := readLines(t, filepath.Join(tempDir, "out.csv"))
	assert.Equal(t, []string{"a,b", "new,new"}, lines)
}

func TestCSVWriter_AppendToCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(tempDir)

	require.NoError(t, writer.WriteCSV("append.csv", WriteOptions{
		Headers: []string{"id"},
		Records: [][]string{{"1"}},
	}))
	require.NoError(t, writer.AppendToCSV("append.csv", [][]string{{"2"}, {"3"}}))

	lines := readLines(t, filepath.Join(tempDir, "append.csv"))
	assert.Equal(t, []string{"id", "1", "2", "3"}, lines)
}

func TestCSVWriter_WriteCSV_AbsolutePath(t *testing.T) {
	outsideDir := t.TempDir()
	writer := NewCSVWriter(t.TempDir())

	target := filepath.Join(outsideDir, "elsewhere.csv")
	require.NoError(t, writer.WriteCSV(target, WriteOptions{
		Headers: []string{"x"},
		Records: [][]string{{"1"}},
	}))

	assert.FileExists(t, target)
}

func TestCSVWriter_CreateStreamWriter(t *testing.T) {
	t.Run("header only file for zero records", func(t *testing.T) {
		tempDir := t.TempDir()
		writer := NewCSVWriter(tempDir)

		stream, err := writer.CreateStreamWriter("empty_view.csv", []string{"id", "name"})
		require.NoError(t, err)
		require.NoError(t, stream.Close())

		lines := readLines(t, filepath.Join(tempDir, "empty_view.csv"))
		assert.Equal(t, []string{"id,name"}, lines)
	})

	t.Run("records appended across chunk flushes", func(t *testing.T) {
		tempDir := t.TempDir()
		writer := NewCSVWriter(tempDir)

		stream, err := writer.CreateStreamWriter("chunked.csv", []string{"id"})
		require.NoError(t, err)

		// First chunk
		require.NoError(t, stream.WriteRecord([]string{"1"}))
		require.NoError(t, stream.WriteRecord([]string{"2"}))
		require.NoError(t, stream.Flush())

		// Rows of a flushed chunk are already on disk
		lines := readLines(t, stream.Path())
		assert.Equal(t, []string{"id", "1", "2"}, lines)

		// Second chunk
		require.NoError(t, stream.WriteRecord([]string{"3"}))
		require.NoError(t, stream.Close())

		lines = readLines(t, filepath.Join(tempDir, "chunked.csv"))
		assert.Equal(t, []string{"id", "1", "2", "3"}, lines)
	})

	t.Run("recreating truncates the previous file", func(t *testing.T) {
		tempDir := t.TempDir()
		writer := NewCSVWriter(tempDir)

		stream, err := writer.CreateStreamWriter("view.csv", []string{"id"})
		require.NoError(t, err)
		for _, id := range []string{"1", "2", "3", "4", "5"} {
			require.NoError(t, stream.WriteRecord([]string{id}))
		}
		require.NoError(t, stream.Close())

		stream, err = writer.CreateStreamWriter("view.csv", []string{"id"})
		require.NoError(t, err)
		require.NoError(t, stream.WriteRecord([]string{"9"}))
		require.NoError(t, stream.Close())

		lines := readLines(t, filepath.Join(tempDir, "view.csv"))
		assert.Equal(t, []string{"id", "9"}, lines)
	})

	t.Run("BOM prefix when enabled", func(t *testing.T) {
		tempDir := t.TempDir()
		writer := NewCSVWriter(tempDir)
		writer.SetBOMPrefix(true)

		stream, err := writer.CreateStreamWriter("bom_stream.csv", []string{"id"})
		require.NoError(t, err)
		require.NoError(t, stream.Close())

		content, err := os.ReadFile(filepath.Join(tempDir, "bom_stream.csv"))
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, utf8BOM))
	})

	t.Run("path is anchored at the output directory", func(t *testing.T) {
		tempDir := t.TempDir()
		writer := NewCSVWriter(tempDir)

		stream, err := writer.CreateStreamWriter("gold.fact_sales.csv", nil)
		require.NoError(t, err)
		defer stream.Close()

		assert.Equal(t, filepath.Join(tempDir, "gold.fact_sales.csv"), stream.Path())
	})
}
