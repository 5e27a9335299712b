package usecase

import (
	"math"
	"strings"
	"time"

	"study-tracker/internal/model"
)

// Accepted time layouts, in the order the store has historically produced
// them. All are interpreted in local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime parses a stored time string. ok=false means the value is missing
// or unparseable and the record should be excluded from time-based buckets.
func parseTime(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// taskStart resolves a task's reference time: start_time, falling back to
// the legacy timestamp field.
func taskStart(t model.StudyTask) (time.Time, bool) {
	if ts, ok := parseTime(t.StartTime); ok {
		return ts, true
	}
	return parseTime(t.Timestamp)
}

// taskDuration returns the elapsed minutes between start and end when both
// parse and the span is positive.
func taskDuration(t model.StudyTask) (float64, bool) {
	start, ok := parseTime(t.StartTime)
	if !ok {
		return 0, false
	}
	end, ok := parseTime(t.EndTime)
	if !ok {
		return 0, false
	}
	d := end.Sub(start)
	if d <= 0 {
		return 0, false
	}
	return d.Minutes(), true
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// roundPercent computes round(correct/total*100), 0 when total is 0.
func roundPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// splitCategories parses the comma-joined categories field. Empty or
// garbage values collapse to nothing; callers decide on the sentinel.
func splitCategories(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if c := strings.TrimSpace(part); c != "" {
			out = append(out, c)
		}
	}
	return out
}
