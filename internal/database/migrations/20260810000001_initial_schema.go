package migrations

import (
	"context"
	"fmt"

	"github.com/designerscolony/colony/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		tables := []struct {
			model any
			name  string
		}{
			{(*types.Job)(nil), "jobs"},
			{(*types.ApplyClick)(nil), "apply_clicks"},
			{(*types.InternalRole)(nil), "internal_roles"},
			{(*types.ChaiTalk)(nil), "chai_talks"},
		}

		for _, table := range tables {
			_, err := db.NewCreateTable().
				Model(table.model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		models := []any{
			(*types.ChaiTalk)(nil),
			(*types.InternalRole)(nil),
			(*types.ApplyClick)(nil),
			(*types.Job)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}

		return nil
	})
}
