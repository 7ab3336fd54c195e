package model

import "time"

// TemporalStatus classifies an event against the current wall-clock time.
// Derived on every read, never persisted.
type TemporalStatus string

const (
	StatusPast     TemporalStatus = "past"
	StatusCurrent  TemporalStatus = "current"
	StatusUpcoming TemporalStatus = "upcoming"
)

// OrderPolicy selects how classified events are reordered for display.
type OrderPolicy string

const (
	// PolicyRotate sorts chronologically but moves events that started
	// earlier today and are not yet over ahead of everything still to come.
	PolicyRotate OrderPolicy = "rotate"
	// PolicyPromote sorts chronologically, then splices the current event
	// (if any) to the front.
	PolicyPromote OrderPolicy = "promote"
)

// ScheduleEvent is one time-boxed entry parsed from a schedule text block.
// Title may contain embedded newlines from description continuation lines;
// the first line is the display title. An empty EndTime means open-ended.
type ScheduleEvent struct {
	StartTime string // "HH:MM", always present
	EndTime   string // "HH:MM" or "" (open-ended)
	Title     string
	Ordinal   int // position in parse order, stable key for completion flags
}

// ClassifiedEvent is a ScheduleEvent annotated for display.
type ClassifiedEvent struct {
	ScheduleEvent
	Status TemporalStatus
	Done   bool
}

// DaySchedule is the raw generated text for one user-day.
type DaySchedule struct {
	UserID      string
	DayKey      string // "YYMMDD"
	Text        string
	GeneratedAt time.Time
}

// CompletionSet maps parser-assigned ordinals to done flags for one user-day.
type CompletionSet map[int]bool
