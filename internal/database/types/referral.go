package types

import (
	"errors"
	"time"

	"github.com/designerscolony/colony/internal/database/types/enum"
)

var ErrReferralNotFound = errors.New("referral not found")

// InternalRole represents a referral shared by a community member.
// Rows are created once and never updated; removal happens out-of-band
// after a report, so the API only ever sets the reported flag.
type InternalRole struct {
	ID              string        `bun:",pk,type:uuid"`
	Company         string        `bun:",notnull"`
	Role            string        `bun:",notnull"`
	Location        string        `bun:",notnull"`
	WorkMode        enum.WorkMode `bun:",notnull"`
	ExperienceRange string        `bun:",nullzero"`
	HowToApply      string        `bun:",notnull,type:text"`
	ShortNote       string        `bun:",nullzero,type:text"`
	SharedBy        string        `bun:",notnull"`
	CreatedAt       time.Time     `bun:",notnull"`
	IsVerified      bool          `bun:",notnull,default:false"`
	IsReported      bool          `bun:",notnull,default:false"`
}
