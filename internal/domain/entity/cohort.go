package entity

// Cohort is the set of users whose local notification times map to the
// same UTC minute. All members are notified in a single dispatch.
type Cohort struct {
	UTCTime     string   // "HH:MM" in UTC, the grouping key
	MemberIDs   []string // deduplicated slack user IDs
	DebugLabels []string // "{local_time} {timezone}" per member, logs only
}
