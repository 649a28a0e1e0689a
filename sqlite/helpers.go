package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/yweather"
)

// parseRFC3339 parses a timestamp column, naming the field on failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatTime encodes t so that stored values sort chronologically as text.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// Fixed-width nanoseconds keep stored timestamps in lexical order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashReport computes the xxHash of a report's fields as a hex string.
// Equal reports hash equal regardless of where they were recorded.
func hashReport(r yweather.WeatherReport) string {
	h := xxhash.New()
	fmt.Fprintf(h, "%d|%d|%s|%d|%d|%d|%s|%s|%s",
		r.Temperature, r.ConditionCode, r.ConditionText,
		r.ForecastCode, r.Low, r.High, r.ForecastText,
		r.Location, r.Unit,
	)
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, h.Sum64()))
}
