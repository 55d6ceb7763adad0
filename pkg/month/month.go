package month

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month, the bucket every date-stamped
// record belongs to.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Key renders the canonical YYYY-MM form used for notes and aggregation.
func (ym YearMonth) Key() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// IsZero reports whether ym was never set.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Of buckets a point in time into its calendar month.
func Of(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// FromDate parses an ISO YYYY-MM-DD local date into its month bucket.
// Unparsable input returns ok=false; records carrying such dates are simply
// excluded from every bucket rather than breaking aggregation.
func FromDate(date string) (YearMonth, bool) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return YearMonth{}, false
	}
	return Of(t), true
}

// FromKey parses a YYYY-MM month key.
func FromKey(key string) (YearMonth, bool) {
	t, err := time.ParseInLocation("2006-01", key, time.Local)
	if err != nil {
		return YearMonth{}, false
	}
	return Of(t), true
}
