package domain

import "time"

// ActivityType tags the source of an activity feed entry.
type ActivityType string

const (
	ActivityLetter       ActivityType = "letter"
	ActivityDistribution ActivityType = "distribution"
	ActivityFiling       ActivityType = "filing"
	ActivityEvent        ActivityType = "event"
	ActivityAction       ActivityType = "action"
	ActivityStatus       ActivityType = "status_change"
	ActivityLanguage     ActivityType = "language_change"
)

// ActivityItem is one entry in a case's activity feed.
type ActivityItem struct {
	ID        string
	Type      ActivityType
	Title     string
	Subtitle  string
	Timestamp time.Time
	Icon      string // presentational hint only
}
