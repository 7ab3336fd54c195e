package schedule

import (
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/timeline"
)

// --- UseCase Inputs ---

type GenerateInput struct {
	Date         time.Time
	Appointments []model.Appointment
	Tasks        []model.PendingTask
	UseCalendar  bool // pull the day's Google Calendar events as extra appointments
}

type DayInput struct {
	Date   time.Time
	Policy model.OrderPolicy
}

type ToggleInput struct {
	Date    time.Time
	Ordinal int
}

type ExportICSInput struct {
	Date time.Time
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	DayKey string
	Text   string
	Events []model.ScheduleEvent
}

type DayOutput struct {
	DayKey string
	Events []model.ClassifiedEvent
	Stats  timeline.Stats
}

// ToggleOutput reports the in-memory state after the flip. Persisted is
// false when the write failed; the flag is kept optimistically and Message
// carries the surfaced error.
type ToggleOutput struct {
	Ordinal   int
	Done      bool
	Persisted bool
	Message   string
}

type ExportICSOutput struct {
	DayKey   string
	Calendar string // serialized iCalendar document
}
