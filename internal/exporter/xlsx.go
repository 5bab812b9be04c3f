package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet extracted rows land on
const sheetName = "Sheet1"

// XLSXWriter provides Excel export functionality rooted at one output directory
type XLSXWriter struct {
	outputDir string
}

// NewXLSXWriter creates a new Excel writer instance
func NewXLSXWriter(outputDir string) *XLSXWriter {
	return &XLSXWriter{outputDir: outputDir}
}

// FileName returns the output file name for a view
func (w *XLSXWriter) FileName(view string) string {
	return view + ".xlsx"
}

// XLSXStreamWriter streams rows into a workbook without holding the whole
// sheet in memory. The workbook only reaches disk on Close.
type XLSXStreamWriter struct {
	file   *excelize.File
	stream *excelize.StreamWriter
	path   string
	row    int
}

// CreateStreamWriter creates a new streaming Excel writer with the header
// already placed on the first row.
func (w *XLSXWriter) CreateStreamWriter(filePath string, headers []string) (*XLSXStreamWriter, error) {
	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(w.outputDir, filePath)
	}

	slog.Debug("Creating Excel stream writer",
		slog.String("full_path", fullPath),
		slog.Int("header_count", len(headers)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file := excelize.NewFile()
	stream, err := file.NewStreamWriter(sheetName)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	writer := &XLSXStreamWriter{
		file:   file,
		stream: stream,
		path:   fullPath,
	}

	if len(headers) > 0 {
		if err := writer.WriteRecord(headers); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	return writer, nil
}

// Path returns the absolute path the workbook is saved to on Close
func (s *XLSXStreamWriter) Path() string {
	return s.path
}

// WriteRecord appends one row to the sheet
func (s *XLSXStreamWriter) WriteRecord(record []string) error {
	s.row++

	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		return fmt.Errorf("failed to locate row %d: %w", s.row, err)
	}

	values := make([]interface{}, len(record))
	for i, v := range record {
		values[i] = v
	}

	return s.stream.SetRow(cell, values)
}

// Flush is a no-op between chunks; excelize buffers stream rows in a
// temporary file and only materializes the workbook when it is closed.
func (s *XLSXStreamWriter) Flush() error {
	return nil
}

// Close finalizes the stream and saves the workbook
func (s *XLSXStreamWriter) Close() error {
	defer s.file.Close()

	if err := s.stream.Flush(); err != nil {
		return fmt.Errorf("failed to flush stream: %w", err)
	}

	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
