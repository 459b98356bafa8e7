package board

import "github.com/designerscolony/colony/internal/database/types"

// DefaultPageSize is the number of listings revealed per page.
const DefaultPageSize = 12

// Pager tracks how many filtered listings are visible. The count only
// grows via LoadMore; a filter change or data refresh resets it to one
// page.
type Pager struct {
	pageSize     int
	visibleCount int
}

// NewPager creates a pager showing one page.
func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Pager{
		pageSize:     pageSize,
		visibleCount: pageSize,
	}
}

// VisibleCount returns the current cursor.
func (p *Pager) VisibleCount() int {
	return p.visibleCount
}

// LoadMore reveals one more page. The cursor is not clamped here; Slice
// clamps against whatever the filtered set currently holds.
func (p *Pager) LoadMore() {
	p.visibleCount += p.pageSize
}

// Reset returns the cursor to one page. Called on any filter change or
// full data refresh.
func (p *Pager) Reset() {
	p.visibleCount = p.pageSize
}

// HasMore reports whether listings beyond the cursor exist.
func (p *Pager) HasMore(filteredCount int) bool {
	return p.visibleCount < filteredCount
}

// Slice returns the visible prefix of the filtered set, clamped to its
// length.
func (p *Pager) Slice(jobs []*types.Job) []*types.Job {
	if p.visibleCount >= len(jobs) {
		return jobs
	}

	return jobs[:p.visibleCount]
}
