package board_test

import (
	"testing"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJobs() []*types.Job {
	return []*types.Job{
		{ID: "1", Location: "Pune", ExperienceLevel: enum.ExperienceLevelMid, WorkMode: enum.WorkModeRemote},
		{ID: "2", Location: "Pune", ExperienceLevel: enum.ExperienceLevelSenior, WorkMode: enum.WorkModeHybrid},
		{ID: "3", Location: "Bengaluru", ExperienceLevel: enum.ExperienceLevelMid, WorkMode: enum.WorkModeOnsite},
		{ID: "4", Location: "Navi Mumbai", ExperienceLevel: enum.ExperienceLevelJunior, WorkMode: enum.WorkModeRemote},
	}
}

func TestFiltersMatch(t *testing.T) {
	t.Parallel()

	jobs := testJobs()

	t.Run("no facets match everything", func(t *testing.T) {
		t.Parallel()

		filtered := board.Apply(jobs, board.Filters{})
		assert.Len(t, filtered, len(jobs))
	})

	t.Run("location substring is case-insensitive", func(t *testing.T) {
		t.Parallel()

		filtered := board.Apply(jobs, board.Filters{Location: "pune"})
		require.Len(t, filtered, 2)
		assert.Equal(t, "1", filtered[0].ID)
		assert.Equal(t, "2", filtered[1].ID)

		// "mumbai" matches inside "Navi Mumbai"
		filtered = board.Apply(jobs, board.Filters{Location: "mumbai"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "4", filtered[0].ID)
	})

	t.Run("facets combine with AND", func(t *testing.T) {
		t.Parallel()

		filtered := board.Apply(jobs, board.Filters{Location: "pune", ExperienceLevel: "mid"})
		require.Len(t, filtered, 1)
		assert.Equal(t, "1", filtered[0].ID)
	})

	t.Run("experience and work mode are exact matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, board.Apply(jobs, board.Filters{ExperienceLevel: "internship"}))

		filtered := board.Apply(jobs, board.Filters{WorkMode: "remote"})
		assert.Len(t, filtered, 2)

		// substring of a valid value does not match
		assert.Empty(t, board.Apply(jobs, board.Filters{WorkMode: "remo"}))
	})

	t.Run("filtered set is the intersection of per-facet matches", func(t *testing.T) {
		t.Parallel()

		all := board.Filters{Location: "pune", ExperienceLevel: "senior", WorkMode: "hybrid"}
		filtered := board.Apply(jobs, all)
		require.Len(t, filtered, 1)
		assert.Equal(t, "2", filtered[0].ID)

		// Flip one facet and the intersection empties.
		all.WorkMode = "onsite"
		assert.Empty(t, board.Apply(jobs, all))
	})
}
