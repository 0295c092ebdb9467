package domain

import "time"

// TimeWindow represents one of the three fixed daily booking windows
type TimeWindow string

const (
	WindowMorning   TimeWindow = "morning"
	WindowAfternoon TimeWindow = "afternoon"
	WindowEvening   TimeWindow = "evening"
)

// AllTimeWindows перечисляет окна в хронологическом порядке.
// Порядок важен: nextAvailable выбирается по нему.
var AllTimeWindows = []TimeWindow{WindowMorning, WindowAfternoon, WindowEvening}

// IsValid returns true if the window is one of morning/afternoon/evening
func (w TimeWindow) IsValid() bool {
	switch w {
	case WindowMorning, WindowAfternoon, WindowEvening:
		return true
	}
	return false
}

// Label returns the fixed human-readable label for the window.
// Это презентационные константы, никакой таймзонной логики за ними нет.
func (w TimeWindow) Label() string {
	switch w {
	case WindowMorning:
		return "9:00 AM - 12:00 PM"
	case WindowAfternoon:
		return "1:00 PM - 4:00 PM"
	case WindowEvening:
		return "4:00 PM - 7:00 PM"
	}
	return ""
}

// WindowState represents the booking state of a single time window
type WindowState struct {
	Available     bool
	Booked        bool
	Held          bool
	HoldToken     *string
	HoldExpiresAt *time.Time
}

// IsBookable returns true if the window can be held right now.
// Просроченный hold не считается: окно снова доступно (lazy expiry).
func (s *WindowState) IsBookable(now time.Time) bool {
	if !s.Available || s.Booked {
		return false
	}
	if !s.Held {
		return true
	}
	return s.HoldExpiresAt != nil && !s.HoldExpiresAt.After(now)
}

// HasActiveHold returns true if the window carries an unexpired hold
func (s *WindowState) HasActiveHold(now time.Time) bool {
	return s.Held && s.HoldExpiresAt != nil && s.HoldExpiresAt.After(now)
}

// TimeWindows holds the state of all three windows of one day
type TimeWindows struct {
	Morning   WindowState
	Afternoon WindowState
	Evening   WindowState
}

// Window returns the state of the requested window
func (t *TimeWindows) Window(w TimeWindow) *WindowState {
	switch w {
	case WindowMorning:
		return &t.Morning
	case WindowAfternoon:
		return &t.Afternoon
	case WindowEvening:
		return &t.Evening
	}
	return nil
}

// AvailabilityRecord represents one contractor's availability for one calendar day.
// One record per (contractor, date); mutated only by the hold manager
// (held/holdToken) and the downstream confirmation step (booked).
type AvailabilityRecord struct {
	ID           int64
	ContractorID string
	Date         time.Time // calendar day, time part is zero
	Windows      TimeWindows

	CreatedAt time.Time
	UpdatedAt time.Time
}
