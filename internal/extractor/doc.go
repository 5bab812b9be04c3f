// Package extractor reads warehouse views and writes one output file per
// view.
//
// A run works through the configured views strictly in order over a single
// database session. Each view is read with one SELECT * cursor and streamed
// into its file in chunks of chunk_size rows; the header is written as soon
// as the columns are known, so a view with zero rows still produces a
// header-only file.
//
// Failures are contained per view: a view that cannot be validated, queried,
// scanned, or written is logged with a typed ExtractError and the run moves
// on to the next view. Only an unusable output directory or a cancelled
// context aborts the whole run. The Summary reports per-view row counts,
// paths, and errors.
//
// View names are interpolated into the query text, never bound as
// parameters. Two checks gate the interpolation: the identifier shape rule
// (bare or schema-qualified names only) and the configured allow-list.
package extractor
