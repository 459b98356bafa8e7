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

// ReferralModel handles database operations for community referrals.
type ReferralModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewReferral creates a new referral model.
func NewReferral(db *bun.DB, logger *zap.Logger) *ReferralModel {
	return &ReferralModel{
		db:     db,
		logger: logger.Named("db_referral"),
	}
}

// List retrieves all non-reported referrals, newest first. Reported
// rows stay in the store for out-of-band review but leave the listing.
func (r *ReferralModel) List(ctx context.Context) ([]*types.InternalRole, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.InternalRole, error) {
		var roles []*types.InternalRole

		err := r.db.NewSelect().
			Model(&roles).
			Where("is_reported = false").
			Order("created_at DESC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list referrals: %w", err)
		}

		return roles, nil
	})
}

// Create inserts a new referral. Referrals are never updated afterwards.
func (r *ReferralModel) Create(ctx context.Context, role *types.InternalRole) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}

	role.CreatedAt = time.Now().UTC()

	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		_, err := r.db.NewInsert().
			Model(role).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create referral: %w", err)
		}

		r.logger.Debug("Created referral",
			zap.String("id", role.ID),
			zap.String("company", role.Company))

		return nil
	})
}

// Report flags a referral for out-of-band review. The row itself is
// untouched otherwise; deletion is a moderation decision, not an API one.
func (r *ReferralModel) Report(ctx context.Context, id string) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		res, err := r.db.NewUpdate().
			Model((*types.InternalRole)(nil)).
			Set("is_reported = true").
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to report referral: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check reported rows: %w", err)
		}

		if affected == 0 {
			return types.ErrReferralNotFound
		}

		r.logger.Info("Referral reported", zap.String("id", id))

		return nil
	})
}
