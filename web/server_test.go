package web

import (
	"testing"
	"time"
)

func TestSecondsFormatter(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0s"},
		{d: 100 * time.Millisecond, want: "0.1s"},
		{d: 200 * time.Millisecond, want: "0.2s"},
		{d: 400 * time.Millisecond, want: "0.4s"},
		{d: 1500 * time.Millisecond, want: "1.5s"},
		{d: 2 * time.Second, want: "2s"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := secondsFormatter(tc.d)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}

func TestOffsetFormatter(t *testing.T) {
	tests := []struct {
		d    time.Duration
		ms   int
		want string
	}{
		{d: 0, ms: 0, want: "0s"},
		{d: 0, ms: 300, want: "0.3s"},
		{d: 200 * time.Millisecond, ms: 300, want: "0.5s"},
		{d: 400 * time.Millisecond, ms: 500, want: "0.9s"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			got := offsetFormatter(tc.d, tc.ms)
			if tc.want != got {
				t.Errorf("expected: '%v', got: '%v'", tc.want, got)
			}
		})
	}
}
