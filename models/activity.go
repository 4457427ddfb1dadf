// api/models/activity.go
package models

// DateFormat is the layout for the day keys of the persisted activity map.
const DateFormat = "2006-01-02"

// ActivityEvent represents a single tracked browsing interval reported by a
// client: how long one user spent on one URL.
type ActivityEvent struct {
	URL      string `json:"url"`
	Duration int64  `json:"duration"`
	User     string `json:"user"`
}

// DayUserRecord accumulates one user's seconds for one calendar day.
// Productive and Unproductive hold classified seconds; Sites holds seconds
// per host regardless of classification, so its sum is at least the sum of
// the other two.
type DayUserRecord struct {
	Productive   int64            `json:"productive"`
	Unproductive int64            `json:"unproductive"`
	Sites        map[string]int64 `json:"sites"`
}

// ActivityData is the whole durable state: day ("2006-01-02") -> user ->
// accumulated record.
type ActivityData map[string]map[string]*DayUserRecord
