package database

import (
	"github.com/designerscolony/colony/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	job      *models.JobModel
	click    *models.ClickModel
	referral *models.ReferralModel
	talk     *models.TalkModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		job:      models.NewJob(db, logger),
		click:    models.NewClick(db, logger),
		referral: models.NewReferral(db, logger),
		talk:     models.NewTalk(db, logger),
	}
}

// Job returns the job model repository.
func (r *Repository) Job() *models.JobModel {
	return r.job
}

// Click returns the apply click model repository.
func (r *Repository) Click() *models.ClickModel {
	return r.click
}

// Referral returns the internal role model repository.
func (r *Repository) Referral() *models.ReferralModel {
	return r.referral
}

// Talk returns the chai talk model repository.
func (r *Repository) Talk() *models.TalkModel {
	return r.talk
}
