package board_test

import (
	"testing"
	"time"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database/types/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("snake_case row maps cleanly", func(t *testing.T) {
		t.Parallel()

		raw := map[string]any{
			"id":               "abc-123",
			"company":          "Figma",
			"role":             "Product Designer",
			"location":         "Bengaluru",
			"experience_level": "senior",
			"work_mode":        "hybrid",
			"apply_url":        "https://example.com/apply",
			"created_at":       "2026-08-18T09:00:00Z",
		}

		job := board.MapRow(raw, now)
		assert.Equal(t, "abc-123", job.ID)
		assert.Equal(t, "Figma", job.CompanyName)
		assert.Equal(t, "Product Designer", job.RoleTitle)
		assert.Equal(t, enum.ExperienceLevelSenior, job.ExperienceLevel)
		assert.Equal(t, enum.WorkModeHybrid, job.WorkMode)
		assert.Equal(t, time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC), job.CreatedAt)
	})

	t.Run("legacy field names are accepted in priority order", func(t *testing.T) {
		t.Parallel()

		raw := map[string]any{
			"id":         float64(42), // numeric IDs from older endpoints
			"company":    "Linear",
			"title":      "Brand Designer", // legacy key for role
			"workMode":   "onsite",
			"experience": "junior",
			"applyUrl":   "https://example.com",
			"createdAt":  "2026-08-19T00:00:00Z",
		}

		job := board.MapRow(raw, now)
		assert.Equal(t, "42", job.ID)
		assert.Equal(t, "Brand Designer", job.RoleTitle)
		assert.Equal(t, enum.WorkModeOnsite, job.WorkMode)
		assert.Equal(t, enum.ExperienceLevelJunior, job.ExperienceLevel)
	})

	t.Run("missing fields get declared defaults", func(t *testing.T) {
		t.Parallel()

		job := board.MapRow(map[string]any{"id": "x"}, now)
		assert.Equal(t, board.DefaultCompanyName, job.CompanyName)
		assert.Equal(t, board.DefaultRoleTitle, job.RoleTitle)
		assert.Equal(t, board.DefaultLocation, job.Location)
		assert.Equal(t, board.DefaultApplyURL, job.ApplyURL)
		assert.Equal(t, enum.ExperienceLevelMid, job.ExperienceLevel)
		assert.Equal(t, enum.WorkModeRemote, job.WorkMode)
		assert.Equal(t, now, job.CreatedAt)
	})

	t.Run("unknown enum values fall back to safe defaults", func(t *testing.T) {
		t.Parallel()

		raw := map[string]any{
			"experience_level": "rockstar",
			"work_mode":        "moon",
		}

		job := board.MapRow(raw, now)
		assert.Equal(t, enum.ExperienceLevelMid, job.ExperienceLevel)
		assert.Equal(t, enum.WorkModeRemote, job.WorkMode)
	})

	t.Run("unparseable timestamp falls back to now", func(t *testing.T) {
		t.Parallel()

		job := board.MapRow(map[string]any{"created_at": "not a date"}, now)
		assert.Equal(t, now, job.CreatedAt)
	})
}

func TestDecodeRows(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	t.Run("decodes a mixed array", func(t *testing.T) {
		t.Parallel()

		data := []byte(`[
			{"id":"a","company_name":"Notion","role_title":"UX Designer","created_at":"2026-08-19T10:00:00Z"},
			{"id":7,"title":"Visual Designer"}
		]`)

		jobs, err := board.DecodeRows(data, now)
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Notion", jobs[0].CompanyName)
		assert.Equal(t, "UX Designer", jobs[0].RoleTitle)
		assert.Equal(t, "7", jobs[1].ID)
		assert.Equal(t, board.DefaultCompanyName, jobs[1].CompanyName)
	})

	t.Run("corrupt payload is an error, not a crash", func(t *testing.T) {
		t.Parallel()

		_, err := board.DecodeRows([]byte(`{"not":"an array"`), now)
		assert.Error(t, err)
	})
}
