// Package exporter writes extracted view data to files.
//
// This package contains two writer families:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility. Its StreamWriter
// truncates the target, writes the header once, and then appends records
// chunk by chunk with an explicit Flush between chunks.
//
// XLSXWriter: The same streaming surface on an Excel workbook, for
// deployments that feed the extracts straight into spreadsheet tooling.
//
// FormatValue/FormatRecord render the values database/sql hands back
// (NULL, []byte, time.Time, numerics) into output cells.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter("/path/to/gold_tables")
//	stream, err := writer.CreateStreamWriter(writer.FileName("gold.dim_customers"), headers)
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//
//	for _, row := range chunk {
//		if err := stream.WriteRecord(exporter.FormatRecord(row)); err != nil {
//			return err
//		}
//	}
//	err = stream.Flush()
package exporter
