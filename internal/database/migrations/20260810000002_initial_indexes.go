package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// The feed query is always a created_at window ordered newest
		// first, so every listing table gets a created_at index.
		indexes := []string{
			"CREATE INDEX IF NOT EXISTS idx_jobs_created_at ON jobs (created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_apply_clicks_job_clicked ON apply_clicks (job_id, clicked_at)",
			"CREATE INDEX IF NOT EXISTS idx_internal_roles_created_at ON internal_roles (created_at DESC)",
			"CREATE INDEX IF NOT EXISTS idx_chai_talks_created_at ON chai_talks (created_at DESC)",
		}

		for _, idx := range indexes {
			if _, err := db.NewRaw(idx).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index: %w", err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		indexes := []string{
			"DROP INDEX IF EXISTS idx_jobs_created_at",
			"DROP INDEX IF EXISTS idx_apply_clicks_job_clicked",
			"DROP INDEX IF EXISTS idx_internal_roles_created_at",
			"DROP INDEX IF EXISTS idx_chai_talks_created_at",
		}

		for _, idx := range indexes {
			if _, err := db.NewRaw(idx).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index: %w", err)
			}
		}

		return nil
	})
}
