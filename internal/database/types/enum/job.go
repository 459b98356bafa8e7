package enum

// ExperienceLevel represents the seniority band of a posting.
type ExperienceLevel string

const (
	ExperienceLevelInternship ExperienceLevel = "internship"
	ExperienceLevelJunior     ExperienceLevel = "junior"
	ExperienceLevelMid        ExperienceLevel = "mid"
	ExperienceLevelSenior     ExperienceLevel = "senior"
)

// IsValid checks whether the value is one of the known levels.
func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceLevelInternship, ExperienceLevelJunior, ExperienceLevelMid, ExperienceLevelSenior:
		return true
	default:
		return false
	}
}

// WorkMode represents where the role is performed.
type WorkMode string

const (
	WorkModeRemote WorkMode = "remote"
	WorkModeHybrid WorkMode = "hybrid"
	WorkModeOnsite WorkMode = "onsite"
)

// IsValid checks whether the value is one of the known modes.
func (w WorkMode) IsValid() bool {
	switch w {
	case WorkModeRemote, WorkModeHybrid, WorkModeOnsite:
		return true
	default:
		return false
	}
}
