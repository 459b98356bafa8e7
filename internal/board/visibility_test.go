package board_test

import (
	"testing"
	"time"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func TestIsVisible(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		age     time.Duration
		visible bool
	}{
		{name: "just posted", age: time.Minute, visible: true},
		{name: "six days old", age: 6 * 24 * time.Hour, visible: true},
		{name: "one second inside the window", age: 7*24*time.Hour - time.Second, visible: true},
		{name: "exactly at the boundary", age: 7 * 24 * time.Hour, visible: false},
		{name: "past the window", age: 8 * 24 * time.Hour, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := &types.Job{CreatedAt: now.Add(-tt.age)}
			assert.Equal(t, tt.visible, board.IsVisible(job, now, board.DefaultVisibleDays))
		})
	}
}

func TestVisibleFrom(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	cutoff := board.VisibleFrom(now, 7)

	assert.Equal(t, now.Add(-7*24*time.Hour), cutoff)

	// A posting created exactly at the cutoff is expired. The store query
	// (created_at > cutoff) and the predicate agree on the boundary, so
	// the total count never includes rows the page drops.
	job := &types.Job{CreatedAt: cutoff}
	assert.False(t, board.IsVisible(job, now, 7))

	justInside := &types.Job{CreatedAt: cutoff.Add(time.Second)}
	assert.True(t, board.IsVisible(justInside, now, 7))
}
