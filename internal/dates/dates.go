package dates

import (
	"strings"
	"time"
)

// Upstream timestamps are UTC; the blog runs on Bangladesh time.
const bdtOffset = 6 * time.Hour

// LabelLayout is the deadline form shown to readers and stored in post labels.
const LabelLayout = "02-01-2006"

// APILayouts are the timestamp shapes the upstream feed is known to emit.
var APILayouts = []string{
	"2006-01-02T15:04:05Z",
	"1/2/2006 15:04:05",
}

var labelLayouts = []string{LabelLayout, "2006-01-02"}

// Normalize parses raw against the given layouts in order, shifts the first
// hit to Bangladesh time and renders it as DD-MM-YYYY. Sub-second precision is
// dropped before parsing. Returns "N/A" when nothing matches.
func Normalize(raw string, layouts []string) string {
	if raw == "" {
		return "N/A"
	}
	raw = strings.SplitN(raw, ".", 2)[0]
	for _, layout := range layouts {
		ts, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return ts.Add(bdtOffset).Format(LabelLayout)
	}
	return "N/A"
}

// ParseLabel turns a DD-MM-YYYY (or ISO YYYY-MM-DD) deadline label back into a
// calendar date. "N/A" and unparseable input yield ok=false; callers must keep
// such listings out of deadline-based decisions.
func ParseLabel(label string) (time.Time, bool) {
	if label == "" || label == "N/A" {
		return time.Time{}, false
	}
	for _, layout := range labelLayouts {
		if ts, err := time.Parse(layout, label); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// DateOnly truncates ts to its calendar date.
func DateOnly(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// Before reports whether a's calendar date falls before b's.
func Before(a, b time.Time) bool {
	return DateOnly(a).Before(DateOnly(b))
}

// OnOrBefore reports whether a's calendar date falls on or before b's.
func OnOrBefore(a, b time.Time) bool {
	return !DateOnly(a).After(DateOnly(b))
}
