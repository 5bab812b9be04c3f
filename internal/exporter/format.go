package exporter

import (
	"fmt"
	"strconv"
	"time"
)

// FormatValue renders a scanned database value as an output cell. Drivers
// hand back a narrow set of types through database/sql; anything outside it
// falls through to fmt.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	case bool:
		return formatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// FormatRecord renders one scanned row
func FormatRecord(values []any) []string {
	record := make([]string, len(values))
	for i, v := range values {
		record[i] = FormatValue(v)
	}
	return record
}

// formatBool formats a boolean value for CSV output
func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
