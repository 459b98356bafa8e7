// Package types defines the wire shapes of the REST API.
package types

// Job represents one visible posting as the feed renders it.
type Job struct {
	ID              string `json:"id"`
	CompanyName     string `json:"companyName"`
	RoleTitle       string `json:"roleTitle"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	WorkMode        string `json:"workMode"`
	ApplyURL        string `json:"applyUrl"`
	PostedAt        string `json:"postedAt"`
	// Signal is the derived freshness/popularity label, recomputed per
	// request and never stored.
	Signal string `json:"signal"`
}

// JobsResponse is the legacy feed envelope. Jobs, total, and hasMore
// are always present: an empty feed is a normal outcome of the rolling
// visibility window, not an omitted section.
type JobsResponse struct {
	Success bool   `json:"success"`
	Jobs    []Job  `json:"jobs"`
	Total   int    `json:"total"`
	HasMore bool   `json:"hasMore"`
	Error   string `json:"error,omitempty"`
}

// CreateJobRequest creates a posting.
type CreateJobRequest struct {
	CompanyName     string `json:"companyName"`
	RoleTitle       string `json:"roleTitle"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experienceLevel"`
	WorkMode        string `json:"workMode"`
	ApplyURL        string `json:"applyUrl"`
}

// ApplyResponse acknowledges an apply click and carries the target URL.
type ApplyResponse struct {
	ApplyURL string `json:"applyUrl"`
}

// Referral represents one community-shared role.
type Referral struct {
	ID              string `json:"id"`
	Company         string `json:"company"`
	Role            string `json:"role"`
	Location        string `json:"location"`
	WorkMode        string `json:"workMode"`
	ExperienceRange string `json:"experienceRange,omitempty"`
	HowToApply      string `json:"howToApply"`
	ShortNote       string `json:"shortNote,omitempty"`
	SharedBy        string `json:"sharedBy"`
	CreatedAt       string `json:"createdAt"`
	IsVerified      bool   `json:"isVerified"`
}

// CreateReferralRequest shares a role with the community.
type CreateReferralRequest struct {
	Company         string `json:"company"`
	Role            string `json:"role"`
	Location        string `json:"location"`
	WorkMode        string `json:"workMode"`
	ExperienceRange string `json:"experienceRange"`
	HowToApply      string `json:"howToApply"`
	ShortNote       string `json:"shortNote"`
	SharedBy        string `json:"sharedBy"`
}

// Talk represents one chai talk listing.
type Talk struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Type               string `json:"type"`
	City               string `json:"city,omitempty"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	About              string `json:"about"`
	HostedBy           string `json:"hostedBy"`
	LocationOrJoinLink string `json:"locationOrJoinLink"`
	CreatedAt          string `json:"createdAt"`
}

// TalkRequest creates or fully replaces a talk's host-editable fields.
type TalkRequest struct {
	Title              string `json:"title"`
	Type               string `json:"type"`
	City               string `json:"city"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	About              string `json:"about"`
	HostedBy           string `json:"hostedBy"`
	LocationOrJoinLink string `json:"locationOrJoinLink"`
}

// Application represents one tracker row on the wire.
type Application struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	AppliedOn      string `json:"appliedOn"`
	CurrentStage   string `json:"currentStage"`
	InterviewNotes string `json:"interviewNotes"`
	Outcome        string `json:"outcome"`
	WhatILearned   string `json:"whatILearned"`
}

// UpdateApplicationRequest sets one field on one tracker row.
type UpdateApplicationRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SessionResponse reports the authentication flag for an owner.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// ErrorResponse is the generic failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field messages for a rejected
// submission. No partial write happens alongside it.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}
