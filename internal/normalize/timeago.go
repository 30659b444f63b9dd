package normalize

import (
	"fmt"
	"time"
)

// Timestamps arrive in mildly different ISO-8601 dialects depending on
// which backend service produced them. Offset-free forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeAgo converts an ISO-8601 timestamp into a coarse relative
// description. Empty input yields "Never"; input that does not parse is
// returned unchanged.
func TimeAgo(value string) string {
	return timeAgoAt(value, time.Now())
}

func timeAgoAt(value string, now time.Time) string {
	if value == "" {
		return "Never"
	}
	parsed, ok := parseTimestamp(value)
	if !ok {
		return value
	}
	seconds := int(now.Sub(parsed).Seconds())
	switch {
	case seconds < 60:
		return "just now"
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%dd ago", seconds/86400)
	default:
		return parsed.Format("Jan 02, 2006")
	}
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
