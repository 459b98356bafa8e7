package enum

// TalkType represents how a chai talk is held.
type TalkType string

const (
	TalkTypeOffline TalkType = "Offline"
	TalkTypeOnline  TalkType = "Online"
	TalkTypeHybrid  TalkType = "Hybrid"
)

// IsValid checks whether the value is one of the known types.
func (t TalkType) IsValid() bool {
	switch t {
	case TalkTypeOffline, TalkTypeOnline, TalkTypeHybrid:
		return true
	default:
		return false
	}
}

// RequiresCity reports whether a talk of this type needs a city.
// Offline meetups happen somewhere; online ones do not.
func (t TalkType) RequiresCity() bool {
	return t == TalkTypeOffline
}
