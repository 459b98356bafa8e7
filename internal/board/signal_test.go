package board_test

import (
	"testing"
	"time"

	"github.com/designerscolony/colony/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	age := func(d time.Duration) time.Time { return now.Add(-d) }

	tests := []struct {
		name      string
		postedAt  time.Time
		clicks24h int
		want      string
	}{
		{
			name:     "expires soon beats everything",
			postedAt: age(6*24*time.Hour + 12*time.Hour), // 6.5 days
			want:     "Expires soon",
		},
		{
			name:      "expires soon even with heavy clicks",
			postedAt:  age(6*24*time.Hour + 12*time.Hour),
			clicks24h: 100,
			want:      "Expires soon",
		},
		{
			name:     "just posted under one day",
			postedAt: age(12 * time.Hour),
			want:     "Just posted",
		},
		{
			name:      "just posted beats clicks",
			postedAt:  age(12 * time.Hour),
			clicks24h: 10,
			want:      "Just posted",
		},
		{
			name:      "hot applies signal",
			postedAt:  age(3 * 24 * time.Hour),
			clicks24h: 10,
			want:      "10 applies · 24h",
		},
		{
			name:      "clicks below threshold fall through to age",
			postedAt:  age(3 * 24 * time.Hour),
			clicks24h: 2,
			want:      "Posted 3 days ago",
		},
		{
			name:     "singular day",
			postedAt: age(36 * time.Hour), // 1.5 days
			want:     "Posted 1 day ago",
		},
		{
			name:      "threshold is inclusive",
			postedAt:  age(2 * 24 * time.Hour),
			clicks24h: 8,
			want:      "8 applies · 24h",
		},
		{
			name:     "six days exactly expires soon",
			postedAt: age(6 * 24 * time.Hour),
			want:     "Expires soon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := board.Signal(tt.postedAt, now, tt.clicks24h, board.DefaultHotClickThreshold)
			assert.Equal(t, tt.want, got)
		})
	}
}
