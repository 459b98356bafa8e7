package enum

// Stage represents where an application currently sits in the funnel.
type Stage string

const (
	StageApplied        Stage = "Applied"
	StageShortlisted    Stage = "Shortlisted"
	StageInterviewR1    Stage = "Interview – R1"
	StageInterviewR2    Stage = "Interview – R2"
	StageInterviewFinal Stage = "Interview – Final"
	StageRejected       Stage = "Rejected"
	StageOffer          Stage = "Offer"
)

// IsValid checks whether the value is one of the known stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageShortlisted, StageInterviewR1, StageInterviewR2,
		StageInterviewFinal, StageRejected, StageOffer:
		return true
	default:
		return false
	}
}

// Outcome represents how an application ended, or that it hasn't yet.
type Outcome string

const (
	OutcomeWaiting       Outcome = "Waiting"
	OutcomeRejected      Outcome = "Rejected"
	OutcomeOfferReceived Outcome = "Offer received"
	OutcomeOfferAccepted Outcome = "Offer accepted"
	OutcomeDroppedByMe   Outcome = "Dropped by me"
)

// IsValid checks whether the value is one of the known outcomes.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeWaiting, OutcomeRejected, OutcomeOfferReceived,
		OutcomeOfferAccepted, OutcomeDroppedByMe:
		return true
	default:
		return false
	}
}
