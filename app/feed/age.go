package feed

import (
	"fmt"
	"time"
)

// AgeBucket renders the coarse age of createdAt relative to now.
// Timestamps in the future clamp to "just now".
func AgeBucket(createdAt, now time.Time) string {
	d := int64(now.Sub(createdAt) / time.Second)
	switch {
	case d < 60:
		return "just now"
	case d < 3600:
		return fmt.Sprintf("%dm ago", d/60)
	case d < 86400:
		return fmt.Sprintf("%dh ago", d/3600)
	default:
		return fmt.Sprintf("%dd ago", d/86400)
	}
}
