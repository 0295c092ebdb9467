package domain

import "time"

// Hold represents a short-lived soft reservation on one contractor's window
type Hold struct {
	Token           string
	ContractorID    string
	ContractorName  string
	Date            time.Time
	TimeWindow      TimeWindow
	DurationMinutes int
	ExpiresAt       time.Time
	Synthetic       bool // true для degraded mode (зона без контракторов)
}

// IsExpired returns true if the hold is no longer honored
func (h *Hold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}
