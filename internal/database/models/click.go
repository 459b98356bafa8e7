package models

import (
	"context"
	"fmt"
	"time"

	"github.com/designerscolony/colony/internal/database/dbretry"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ClickModel handles database operations for apply clicks.
type ClickModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewClick creates a new click model.
func NewClick(db *bun.DB, logger *zap.Logger) *ClickModel {
	return &ClickModel{
		db:     db,
		logger: logger.Named("db_click"),
	}
}

// Record stores a single apply click for a posting.
func (r *ClickModel) Record(ctx context.Context, jobID string) error {
	click := &types.ApplyClick{
		JobID:     jobID,
		ClickedAt: time.Now().UTC(),
	}

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(click).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to record apply click: %w", err)
		}

		return nil
	})
}

// jobClickCount is the scan target for the grouped count query.
type jobClickCount struct {
	JobID string `bun:"job_id"`
	Count int    `bun:"count"`
}

// CountsSince returns per-posting click counts for clicks recorded on
// or after the given instant, keyed by job ID. Postings with no clicks
// are simply absent from the map.
func (r *ClickModel) CountsSince(ctx context.Context, since time.Time) (map[string]int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[string]int, error) {
		var rows []jobClickCount

		err := r.db.NewSelect().
			Model((*types.ApplyClick)(nil)).
			ColumnExpr("job_id, count(*) AS count").
			Where("clicked_at >= ?", since).
			GroupExpr("job_id").
			Scan(ctx, &rows)
		if err != nil {
			return nil, fmt.Errorf("failed to count apply clicks: %w", err)
		}

		counts := make(map[string]int, len(rows))
		for _, row := range rows {
			counts[row.JobID] = row.Count
		}

		return counts, nil
	})
}
