package finance

import (
	"sort"
	"time"
)

// Activity feed entry types.
const (
	ActivityToRApproved          = "tor_approved"
	ActivityAssignmentMobilised  = "assignment_mobilised"
	ActivityDeliverableSubmitted = "deliverable_submitted"
	ActivityRiskRaised           = "risk_raised"
)

// Actor fallbacks when the related user/consultant row is absent.
const (
	ActorSystem  = "System"
	ActorUnknown = "Unknown"
)

type Activity struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
}

// MergeActivities flattens the source lists into one feed, newest first,
// truncated to max entries. The sort is stable so entries with equal
// timestamps keep their insertion order across category boundaries.
func MergeActivities(max int, lists ...[]Activity) []Activity {
	merged := []Activity{}
	for _, list := range lists {
		merged = append(merged, list...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	if len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
