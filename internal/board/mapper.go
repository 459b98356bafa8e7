// Package board holds the feed-assembly logic for the job board: the
// defensive row mapper, the visibility window, facet filtering,
// pagination, and the per-listing signal label.
package board

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/designerscolony/colony/internal/database/types"
	"github.com/designerscolony/colony/internal/database/types/enum"
)

// Fallback defaults for rows missing a field entirely.
const (
	DefaultCompanyName = "Unknown company"
	DefaultRoleTitle   = "Untitled role"
	DefaultLocation    = "Location not specified"
	DefaultApplyURL    = "#"
)

// fieldRule declares, for one canonical field, the raw keys accepted in
// priority order and the default used when none is present. Store
// endpoints have shipped both snake_case and legacy names; every
// accepted variant is listed here so missing-field behavior stays
// auditable in one place.
type fieldRule struct {
	keys []string
	def  string
}

var jobFieldRules = map[string]fieldRule{
	"company":    {keys: []string{"company", "company_name", "companyName"}, def: DefaultCompanyName},
	"role":       {keys: []string{"role", "title", "role_title", "roleTitle"}, def: DefaultRoleTitle},
	"location":   {keys: []string{"location"}, def: DefaultLocation},
	"experience": {keys: []string{"experience_level", "experience", "experienceLevel"}, def: string(enum.ExperienceLevelMid)},
	"work_mode":  {keys: []string{"work_mode", "workMode"}, def: string(enum.WorkModeRemote)},
	"apply_url":  {keys: []string{"apply_url", "applyUrl"}, def: DefaultApplyURL},
	"created_at": {keys: []string{"created_at", "createdAt", "posted_at", "postedAt"}, def: ""},
}

// MapRow normalizes one loosely-typed store row into a Job. It is the
// only place that handles backend naming differences and safe fallbacks.
func MapRow(raw map[string]any, now time.Time) *types.Job {
	job := &types.Job{
		ID:          stringValue(raw["id"]),
		CompanyName: ruleValue(raw, "company"),
		RoleTitle:   ruleValue(raw, "role"),
		Location:    ruleValue(raw, "location"),
		ApplyURL:    ruleValue(raw, "apply_url"),
	}

	job.ExperienceLevel = enum.ExperienceLevel(ruleValue(raw, "experience"))
	if !job.ExperienceLevel.IsValid() {
		job.ExperienceLevel = enum.ExperienceLevel(jobFieldRules["experience"].def)
	}

	job.WorkMode = enum.WorkMode(ruleValue(raw, "work_mode"))
	if !job.WorkMode.IsValid() {
		job.WorkMode = enum.WorkMode(jobFieldRules["work_mode"].def)
	}

	job.CreatedAt = timeValue(ruleValue(raw, "created_at"), now)

	return job
}

// DecodeRows decodes a raw JSON array of store rows and maps each one.
func DecodeRows(data []byte, now time.Time) ([]*types.Job, error) {
	var raws []map[string]any
	if err := sonic.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to decode job rows: %w", err)
	}

	jobs := make([]*types.Job, len(raws))
	for i, raw := range raws {
		jobs[i] = MapRow(raw, now)
	}

	return jobs, nil
}

// ruleValue resolves a canonical field through its declared rule.
func ruleValue(raw map[string]any, field string) string {
	rule := jobFieldRules[field]

	for _, key := range rule.keys {
		if v, ok := raw[key]; ok {
			if s := stringValue(v); s != "" {
				return s
			}
		}
	}

	return rule.def
}

// stringValue renders a raw scalar as a string. Store IDs arrive as
// either strings or numbers depending on the endpoint.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers; IDs are integral
		return fmt.Sprintf("%.0f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// timeValue parses a stored timestamp, falling back to now when the
// field is absent or unparseable.
func timeValue(s string, now time.Time) time.Time {
	if s == "" {
		return now
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return now
}
