package board_test

import (
	"fmt"
	"testing"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/stretchr/testify/assert"
)

func makeJobs(n int) []*types.Job {
	jobs := make([]*types.Job, n)
	for i := range jobs {
		jobs[i] = &types.Job{ID: fmt.Sprintf("job-%d", i)}
	}

	return jobs
}

func TestPager(t *testing.T) {
	t.Parallel()

	t.Run("starts at one page", func(t *testing.T) {
		t.Parallel()

		p := board.NewPager(board.DefaultPageSize)
		assert.Equal(t, 12, p.VisibleCount())
	})

	t.Run("load more on a filtered set of 20", func(t *testing.T) {
		t.Parallel()

		jobs := makeJobs(20)
		p := board.NewPager(12)

		assert.True(t, p.HasMore(len(jobs)))
		assert.Len(t, p.Slice(jobs), 12)

		p.LoadMore()
		assert.Equal(t, 24, p.VisibleCount())
		assert.Len(t, p.Slice(jobs), 20) // clamped on slicing
		assert.False(t, p.HasMore(len(jobs)))
	})

	t.Run("reset returns to one page", func(t *testing.T) {
		t.Parallel()

		p := board.NewPager(12)
		p.LoadMore()
		p.LoadMore()
		assert.Equal(t, 36, p.VisibleCount())

		p.Reset()
		assert.Equal(t, 12, p.VisibleCount())
	})

	t.Run("cursor never decreases without a reset", func(t *testing.T) {
		t.Parallel()

		p := board.NewPager(12)
		p.LoadMore()

		// Shrinking the filtered set does not move the cursor back.
		jobs := makeJobs(5)
		assert.Equal(t, 24, p.VisibleCount())
		assert.Len(t, p.Slice(jobs), 5)
		assert.False(t, p.HasMore(len(jobs)))
	})

	t.Run("zero page size falls back to the default", func(t *testing.T) {
		t.Parallel()

		p := board.NewPager(0)
		assert.Equal(t, board.DefaultPageSize, p.VisibleCount())
	})
}
