package models

import (
	"context"
	"fmt"
	"time"

	"github.com/designerscolony/colony/internal/board"
	"github.com/designerscolony/colony/internal/database/dbretry"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// JobModel handles database operations for job postings.
type JobModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewJob creates a new job model.
func NewJob(db *bun.DB, logger *zap.Logger) *JobModel {
	return &JobModel{
		db:     db,
		logger: logger.Named("db_job"),
	}
}

// Search retrieves postings created strictly after the given instant
// that satisfy all non-empty facets, newest first. The facet semantics
// are board.Filters', translated to SQL. The visibility window is
// always part of the query; expired postings never leave the store.
func (r *JobModel) Search(
	ctx context.Context, visibleFrom time.Time, filters board.Filters, limit, offset int,
) ([]*types.Job, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Job, error) {
		var jobs []*types.Job

		q := r.searchQuery(&jobs, visibleFrom, filters).
			Order("created_at DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		if offset > 0 {
			q = q.Offset(offset)
		}

		if err := q.Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to search jobs: %w", err)
		}

		return jobs, nil
	})
}

// CountSearch returns the total number of postings matching the same
// window and facets as Search, for pagination bookkeeping.
func (r *JobModel) CountSearch(
	ctx context.Context, visibleFrom time.Time, filters board.Filters,
) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := r.searchQuery(nil, visibleFrom, filters).Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count jobs: %w", err)
		}

		return count, nil
	})
}

func (r *JobModel) searchQuery(
	dest *[]*types.Job, visibleFrom time.Time, filters board.Filters,
) *bun.SelectQuery {
	var q *bun.SelectQuery
	if dest != nil {
		q = r.db.NewSelect().Model(dest)
	} else {
		q = r.db.NewSelect().Model((*types.Job)(nil))
	}

	// Strictly greater: a posting exactly at the cutoff is expired, and
	// the count must agree with the visibility predicate.
	q = q.Where("created_at > ?", visibleFrom)

	if filters.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filters.Location+"%")
	}

	if filters.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", filters.ExperienceLevel)
	}

	if filters.WorkMode != "" {
		q = q.Where("work_mode = ?", filters.WorkMode)
	}

	return q
}

// GetByID retrieves a single posting regardless of visibility.
func (r *JobModel) GetByID(ctx context.Context, id string) (*types.Job, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Job, error) {
		job := new(types.Job)

		err := r.db.NewSelect().
			Model(job).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if isNoRows(err) {
				return nil, types.ErrJobNotFound
			}

			return nil, fmt.Errorf("failed to get job: %w", err)
		}

		return job, nil
	})
}

// Create inserts a new posting. The ID and creation time are assigned
// here; created_at is immutable afterwards.
func (r *JobModel) Create(ctx context.Context, job *types.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	job.CreatedAt = time.Now().UTC()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(job).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		r.logger.Debug("Created job posting",
			zap.String("id", job.ID),
			zap.String("company", job.CompanyName))

		return nil
	})
}
