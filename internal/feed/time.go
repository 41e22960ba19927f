package feed

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders a unix timestamp as a short relative phrase
// ("just now", "5m ago", "2h ago"). Future timestamps, which malformed
// events do produce, collapse to "just now".
func FormatRelativeTime(createdAt int64) string {
	elapsed := time.Since(time.Unix(createdAt, 0))
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	case elapsed < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(elapsed.Hours()/(24*30)))
	}
	return fmt.Sprintf("%dy ago", int(elapsed.Hours()/(24*365)))
}
