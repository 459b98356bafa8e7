package types

import (
	"errors"
	"time"

	"github.com/designerscolony/colony/internal/database/types/enum"
)

var ErrJobNotFound = errors.New("job not found")

// Job represents a design job posting on the board.
// CreatedAt is set once on insert and never updated; visibility is a
// derived, time-based property and is not stored.
type Job struct {
	ID              string               `bun:",pk,type:uuid"`
	CompanyName     string               `bun:",notnull"`
	RoleTitle       string               `bun:",notnull"`
	Location        string               `bun:",notnull"`
	ExperienceLevel enum.ExperienceLevel `bun:",notnull"`
	WorkMode        enum.WorkMode        `bun:",notnull"`
	ApplyURL        string               `bun:",notnull"`
	CreatedAt       time.Time            `bun:",notnull"`
}

// ApplyClick represents a single click on a posting's apply button.
// Rows are only ever inserted; the 24h count feeds the signal label.
type ApplyClick struct {
	ID        int64     `bun:",pk,autoincrement"`
	JobID     string    `bun:",notnull,type:uuid"`
	ClickedAt time.Time `bun:",notnull"`
}
