package ledger

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NormalizeDate resolves a free-form transaction date string to a calendar
// date. The fallback chain is a compatibility contract and must not be made
// stricter:
//
//  1. empty or whitespace-only input resolves to today
//  2. input of length >= 10 containing a '-' is parsed from its first ten
//     characters as an ISO calendar date; on failure, fall through
//  3. the full input is parsed as an ISO calendar date
//  4. anything still unparsed resolves to today
//
// The function never fails. Malformed dates therefore collapse into the
// current month, which can distort historical buckets; callers accept this
// in exchange for aggregation that never aborts on a single bad entry.
func NormalizeDate(raw string) time.Time {
	return NormalizeDateAt(raw, time.Now())
}

// NormalizeDateAt is NormalizeDate with an explicit reference time for
// "today". The aggregator uses it so a whole pass shares one clock reading.
func NormalizeDateAt(raw string, now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if strings.TrimSpace(raw) == "" {
		return today
	}
	if len(raw) >= 10 && strings.Contains(raw, "-") {
		if d, err := time.Parse(dateLayout, raw[:10]); err == nil {
			return d
		}
	}
	if d, err := time.Parse(dateLayout, raw); err == nil {
		return d
	}
	return today
}
