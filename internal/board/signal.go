package board

import (
	"fmt"
	"time"
)

// DefaultHotClickThreshold is the 24h click count at which the applies
// signal shows instead of the posting age.
const DefaultHotClickThreshold = 8

const (
	hoursPerDay      = 24
	expiresSoonFrom  = 6 // days; anticipates the 7-day visibility cutoff
	expiresSoonUntil = 7
)

// Signal derives the single display label for a posting. Rules are
// evaluated in fixed priority order; exactly one label applies:
//
//  1. age in [6,7) days: "Expires soon"
//  2. age < 1 day:       "Just posted"
//  3. clicks24h at or above the threshold: "<n> applies · 24h"
//  4. otherwise:         "Posted <n> day(s) ago"
//
// The label is derived per request and never stored.
func Signal(postedAt, now time.Time, clicks24h, hotThreshold int) string {
	if hotThreshold <= 0 {
		hotThreshold = DefaultHotClickThreshold
	}

	ageDays := now.Sub(postedAt).Hours() / hoursPerDay

	switch {
	case ageDays >= expiresSoonFrom && ageDays < expiresSoonUntil:
		return "Expires soon"
	case ageDays < 1:
		return "Just posted"
	case clicks24h >= hotThreshold:
		return fmt.Sprintf("%d applies · 24h", clicks24h)
	default:
		days := int(ageDays)
		if days == 1 {
			return "Posted 1 day ago"
		}

		return fmt.Sprintf("Posted %d days ago", days)
	}
}
