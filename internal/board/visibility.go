package board

import (
	"time"

	"github.com/designerscolony/colony/internal/database/types"
)

// DefaultVisibleDays is the rolling window after which a posting leaves
// the feed without being deleted.
const DefaultVisibleDays = 7

// VisibleFrom returns the cutoff instant for the rolling window; the
// store query keeps rows with created_at strictly after this value,
// matching IsVisible at the boundary.
func VisibleFrom(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// IsVisible reports whether a posting is inside the rolling window.
// The boundary is excluded: a posting exactly `days` old is gone.
func IsVisible(job *types.Job, now time.Time, days int) bool {
	return now.Sub(job.CreatedAt) < time.Duration(days)*24*time.Hour
}
