package models

import (
	"context"
	"fmt"
	"time"

	"github.com/designerscolony/colony/internal/database/dbretry"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TalkModel handles database operations for chai talk listings.
type TalkModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTalk creates a new talk model.
func NewTalk(db *bun.DB, logger *zap.Logger) *TalkModel {
	return &TalkModel{
		db:     db,
		logger: logger.Named("db_talk"),
	}
}

// List retrieves all talks, newest first.
func (r *TalkModel) List(ctx context.Context) ([]*types.ChaiTalk, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.ChaiTalk, error) {
		var talks []*types.ChaiTalk

		err := r.db.NewSelect().
			Model(&talks).
			Order("created_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list talks: %w", err)
		}

		return talks, nil
	})
}

// GetByID retrieves a single talk.
func (r *TalkModel) GetByID(ctx context.Context, id string) (*types.ChaiTalk, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.ChaiTalk, error) {
		talk := new(types.ChaiTalk)

		err := r.db.NewSelect().
			Model(talk).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if isNoRows(err) {
				return nil, types.ErrTalkNotFound
			}

			return nil, fmt.Errorf("failed to get talk: %w", err)
		}

		return talk, nil
	})
}

// Create inserts a new talk.
func (r *TalkModel) Create(ctx context.Context, talk *types.ChaiTalk) error {
	if talk.ID == "" {
		talk.ID = uuid.NewString()
	}

	talk.CreatedAt = time.Now().UTC()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(talk).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create talk: %w", err)
		}

		r.logger.Debug("Created chai talk",
			zap.String("id", talk.ID),
			zap.String("title", talk.Title))

		return nil
	})
}

// Update rewrites a talk's host-editable fields. The ID and creation
// time never change.
func (r *TalkModel) Update(ctx context.Context, talk *types.ChaiTalk) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		res, err := r.db.NewUpdate().
			Model(talk).
			Column("title", "type", "city", "date", "time", "about", "hosted_by", "location_or_join_link").
			Where("id = ?", talk.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update talk: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check updated rows: %w", err)
		}

		if affected == 0 {
			return types.ErrTalkNotFound
		}

		return nil
	})
}

// Delete removes a talk.
func (r *TalkModel) Delete(ctx context.Context, id string) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		res, err := r.db.NewDelete().
			Model((*types.ChaiTalk)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete talk: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}

		if affected == 0 {
			return types.ErrTalkNotFound
		}

		r.logger.Info("Deleted chai talk", zap.String("id", id))

		return nil
	})
}
