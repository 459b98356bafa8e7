// Package convert maps database records to REST API wire types.
package convert

import (
	"time"

	"github.com/designerscolony/colony/internal/database/types"
	restTypes "github.com/designerscolony/colony/internal/rest/types"
	"github.com/designerscolony/colony/internal/tracker"
)

// Job converts a database job to its wire shape. The signal label is
// computed by the caller, which knows the click counts.
func Job(job *types.Job, signal string) restTypes.Job {
	return restTypes.Job{
		ID:              job.ID,
		CompanyName:     job.CompanyName,
		RoleTitle:       job.RoleTitle,
		Location:        job.Location,
		ExperienceLevel: string(job.ExperienceLevel),
		WorkMode:        string(job.WorkMode),
		ApplyURL:        job.ApplyURL,
		PostedAt:        job.CreatedAt.UTC().Format(time.RFC3339),
		Signal:          signal,
	}
}

// Referral converts a database referral to its wire shape.
func Referral(role *types.InternalRole) restTypes.Referral {
	return restTypes.Referral{
		ID:              role.ID,
		Company:         role.Company,
		Role:            role.Role,
		Location:        role.Location,
		WorkMode:        string(role.WorkMode),
		ExperienceRange: role.ExperienceRange,
		HowToApply:      role.HowToApply,
		ShortNote:       role.ShortNote,
		SharedBy:        role.SharedBy,
		CreatedAt:       role.CreatedAt.UTC().Format(time.RFC3339),
		IsVerified:      role.IsVerified,
	}
}

// Referrals converts a slice of database referrals.
func Referrals(roles []*types.InternalRole) []restTypes.Referral {
	result := make([]restTypes.Referral, len(roles))
	for i, role := range roles {
		result[i] = Referral(role)
	}

	return result
}

// Talk converts a database talk to its wire shape.
func Talk(talk *types.ChaiTalk) restTypes.Talk {
	return restTypes.Talk{
		ID:                 talk.ID,
		Title:              talk.Title,
		Type:               string(talk.Type),
		City:               talk.City,
		Date:               talk.Date,
		Time:               talk.Time,
		About:              talk.About,
		HostedBy:           talk.HostedBy,
		LocationOrJoinLink: talk.LocationOrJoinLink,
		CreatedAt:          talk.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Talks converts a slice of database talks.
func Talks(talks []*types.ChaiTalk) []restTypes.Talk {
	result := make([]restTypes.Talk, len(talks))
	for i, talk := range talks {
		result[i] = Talk(talk)
	}

	return result
}

// Application converts a tracker row to its wire shape.
func Application(app *tracker.Application) restTypes.Application {
	return restTypes.Application{
		ID:             app.ID,
		Company:        app.Company,
		Role:           app.Role,
		AppliedOn:      app.AppliedOn,
		CurrentStage:   string(app.CurrentStage),
		InterviewNotes: app.InterviewNotes,
		Outcome:        string(app.Outcome),
		WhatILearned:   app.WhatILearned,
	}
}

// Applications converts a slice of tracker rows.
func Applications(apps []tracker.Application) []restTypes.Application {
	result := make([]restTypes.Application, len(apps))
	for i := range apps {
		result[i] = Application(&apps[i])
	}

	return result
}
