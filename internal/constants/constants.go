package constants

import "time"

const (
	// DateFormat is the canonical calendar-day key (local time).
	DateFormat = "2006-01-02"
	// TimeFormat is the HH:MM clock format used by schedule entries.
	TimeFormat = "15:04"
)

// Storage keys. Day records live under DayKeyPrefix + date.
const (
	KeyMedications = "medications"
	KeySettings    = "settings"
	DayKeyPrefix   = "day:"
)

const (
	// DemoMissWindow keeps the actionable window short enough to demo the
	// reminder flow without waiting.
	DemoMissWindow = 5 * time.Second
	// DefaultMissWindow is the clinical grace period after the scheduled time.
	DefaultMissWindow = 30 * time.Minute

	// NavigationWindowDays bounds date browsing around today.
	NavigationWindowDays = 7

	// HistoryFillRate is the probability a dose on a never-visited past date
	// is recorded as taken when its history is synthesized.
	HistoryFillRate = 0.85
)

const (
	DefaultRobotDataURL    = "http://10.217.173.75:5001"
	DefaultRobotCommandURL = "http://10.217.173.75:5002"

	// RobotTimeout caps every robot call so a hung network call never blocks
	// the confirmation flow.
	RobotTimeout = 3 * time.Second
)
