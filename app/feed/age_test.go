package feed

import (
	"testing"
	"time"
)

func TestAgeBucket_Boundaries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "just now"},
		{59 * time.Second, "just now"},
		{59*time.Second + 999*time.Millisecond, "just now"},
		{60 * time.Second, "1m ago"},
		{3599 * time.Second, "59m ago"},
		{3600 * time.Second, "1h ago"},
		{86399 * time.Second, "23h ago"},
		{86400 * time.Second, "1d ago"},
		{400 * 24 * time.Hour, "400d ago"},
	}
	for _, tc := range tests {
		if got := AgeBucket(now.Add(-tc.ago), now); got != tc.want {
			t.Fatalf("AgeBucket(-%s) = %q, want %q", tc.ago, got, tc.want)
		}
	}
}

func TestAgeBucket_FutureClampsToJustNow(t *testing.T) {
	now := time.Now()
	if got := AgeBucket(now.Add(2*time.Hour), now); got != "just now" {
		t.Fatalf("future timestamp should clamp, got %q", got)
	}
}
