package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"

	"dwextract/internal/exporter"
)

// streamWriter is the sink one view's rows are written into
type streamWriter interface {
	WriteRecord(record []string) error
	Flush() error
	Close() error
	Path() string
}

// sink creates one stream writer per view
type sink interface {
	FileName(view string) string
	CreateStreamWriter(filePath string, headers []string) (streamWriter, error)
}

type csvSink struct {
	writer *exporter.CSVWriter
}

func (s csvSink) FileName(view string) string {
	return s.writer.FileName(view)
}

func (s csvSink) CreateStreamWriter(filePath string, headers []string) (streamWriter, error) {
	return s.writer.CreateStreamWriter(filePath, headers)
}

type xlsxSink struct {
	writer *exporter.XLSXWriter
}

func (s xlsxSink) FileName(view string) string {
	return s.writer.FileName(view)
}

func (s xlsxSink) CreateStreamWriter(filePath string, headers []string) (streamWriter, error) {
	return s.writer.CreateStreamWriter(filePath, headers)
}

// Options configures one extraction run
type Options struct {
	// OutputDir receives one file per view
	OutputDir string
	// ChunkSize is the number of rows per write batch
	ChunkSize int
	// Format selects the output writer, csv or xlsx
	Format string
	// Views are extracted in order
	Views []string
	// Allowed restricts which views may be requested. Empty means the
	// requested views are their own allow-list.
	Allowed []string
}

// Extractor reads configured warehouse views and writes one file per view
type Extractor struct {
	db        *sqlx.DB
	logger    *slog.Logger
	outputDir string
	chunkSize int
	views     []string
	allowed   Allowlist
	sink      sink
}

// New builds an extractor for one run
func New(conn *sqlx.DB, opts Options, logger *slog.Logger) (*Extractor, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", opts.ChunkSize)
	}

	var s sink
	switch opts.Format {
	case "", "csv":
		s = csvSink{writer: exporter.NewCSVWriter(opts.OutputDir)}
	case "xlsx":
		s = xlsxSink{writer: exporter.NewXLSXWriter(opts.OutputDir)}
	default:
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}

	allowed := opts.Allowed
	if len(allowed) == 0 {
		allowed = opts.Views
	}

	return &Extractor{
		db:        conn,
		logger:    logger.With(slog.String("component", "extractor")),
		outputDir: opts.OutputDir,
		chunkSize: opts.ChunkSize,
		views:     opts.Views,
		allowed:   NewAllowlist(allowed),
		sink:      s,
	}, nil
}

// ViewResult records the outcome of one view's extraction
type ViewResult struct {
	View     string
	Rows     int64
	Path     string
	Duration time.Duration
	Err      error
}

// Summary aggregates one run's outcome. A run with failed views is still a
// completed run; callers decide what to do with the failure count.
type Summary struct {
	Views     []ViewResult
	RowsTotal int64
	Failed    int
}

// Run extracts every configured view in order. One view's failure is logged
// and contained; only an unusable output directory or a cancelled context
// aborts the run.
func (e *Extractor) Run(ctx context.Context) (*Summary, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", e.outputDir, err)
	}
	e.logger.Info("Output directory ready",
		slog.String("path", e.outputDir))

	e.logger.Info("Starting extraction of configured views",
		slog.Int("view_count", len(e.views)))

	summary := &Summary{}

	for _, view := range e.views {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		result := e.extractView(ctx, view)
		summary.Views = append(summary.Views, result)

		if result.Err != nil {
			summary.Failed++
			e.logger.Error("Extraction failed for view",
				slog.String("view", view),
				slog.String("reason", string(GetReason(result.Err))),
				slog.String("error", result.Err.Error()))
			continue
		}

		summary.RowsTotal += result.Rows
		e.logger.Info(fmt.Sprintf("Extracted %d rows from %s", result.Rows, view),
			slog.String("view", view),
			slog.Int64("rows", result.Rows),
			slog.String("path", result.Path),
			slog.Duration("duration", result.Duration))
	}

	e.logger.Info("Extraction process complete",
		slog.Int("view_count", len(summary.Views)),
		slog.Int("failed", summary.Failed),
		slog.Int64("rows_total", summary.RowsTotal))

	return summary, nil
}

// extractView streams one view into its output file
func (e *Extractor) extractView(ctx context.Context, view string) ViewResult {
	started := time.Now()
	result := ViewResult{View: view}

	e.logger.Info("Processing view",
		slog.String("view", view))

	if err := ValidateViewName(view); err != nil {
		result.Err = err
		return result
	}
	if !e.allowed.Contains(view) {
		result.Err = NewExtractError(ReasonNotAllowed, view, nil)
		return result
	}

	// View names cannot be bound as query parameters; interpolation is
	// safe only because of the shape and allow-list checks above.
	query := fmt.Sprintf("SELECT * FROM %s", view)

	rows, err := e.db.QueryxContext(ctx, query)
	if err != nil {
		result.Err = NewExtractError(ReasonQuery, view, err)
		return result
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		result.Err = NewExtractError(ReasonQuery, view, err)
		return result
	}

	// Header goes out immediately so a zero-row view still produces a
	// header-only file.
	stream, err := e.sink.CreateStreamWriter(e.sink.FileName(view), columns)
	if err != nil {
		result.Err = NewExtractError(ReasonWrite, view, err)
		return result
	}
	result.Path = stream.Path()

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var total int64
	chunkRows := 0
	chunkIndex := 0

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			stream.Close()
			result.Err = NewExtractError(ReasonScan, view, err)
			return result
		}

		if err := stream.WriteRecord(exporter.FormatRecord(values)); err != nil {
			stream.Close()
			result.Err = NewExtractError(ReasonWrite, view, err)
			return result
		}

		total++
		chunkRows++
		if chunkRows == e.chunkSize {
			if err := stream.Flush(); err != nil {
				stream.Close()
				result.Err = NewExtractError(ReasonWrite, view, err)
				return result
			}
			chunkIndex++
			e.logger.Debug("Processed chunk",
				slog.String("view", view),
				slog.Int("chunk", chunkIndex),
				slog.Int("rows", chunkRows))
			chunkRows = 0
		}
	}

	if err := rows.Err(); err != nil {
		stream.Close()
		result.Err = NewExtractError(ReasonQuery, view, err)
		return result
	}

	if chunkRows > 0 {
		chunkIndex++
		e.logger.Debug("Processed chunk",
			slog.String("view", view),
			slog.Int("chunk", chunkIndex),
			slog.Int("rows", chunkRows))
	}

	if err := stream.Close(); err != nil {
		result.Err = NewExtractError(ReasonWrite, view, err)
		return result
	}

	result.Rows = total
	result.Duration = time.Since(started)
	return result
}
