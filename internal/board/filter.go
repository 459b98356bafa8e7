package board

import (
	"strings"

	"github.com/designerscolony/colony/internal/database/types"
)

// Filters is one facet selection. An empty field imposes no restriction
// on that facet; non-empty facets combine with logical AND.
type Filters struct {
	Location        string // case-insensitive substring match
	ExperienceLevel string // exact match
	WorkMode        string // exact match
}

// IsZero reports whether no facet is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Match reports whether a posting satisfies every set facet,
// short-circuiting on the first mismatch.
func (f Filters) Match(job *types.Job) bool {
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(job.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.ExperienceLevel != "" && string(job.ExperienceLevel) != f.ExperienceLevel {
		return false
	}

	if f.WorkMode != "" && string(job.WorkMode) != f.WorkMode {
		return false
	}

	return true
}

// Apply returns the subset of postings satisfying the filters.
func Apply(jobs []*types.Job, f Filters) []*types.Job {
	if f.IsZero() {
		return jobs
	}

	filtered := make([]*types.Job, 0, len(jobs))

	for _, job := range jobs {
		if f.Match(job) {
			filtered = append(filtered, job)
		}
	}

	return filtered
}
