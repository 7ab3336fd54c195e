package model

import "time"

// Motivation is the user-selected energy level fed into schedule generation.
type Motivation string

const (
	MotivationLow    Motivation = "low"
	MotivationMedium Motivation = "medium"
	MotivationHigh   Motivation = "high"
)

// BathSlot is a preferred time-of-day for bathing.
type BathSlot string

const (
	BathMorning BathSlot = "morning"
	BathNoon    BathSlot = "noon"
	BathNight   BathSlot = "night"
)

// Profile holds the onboarding answers that drive schedule generation.
type Profile struct {
	UserID              string
	BathSlots           []BathSlot
	LaundryIntervalDays int // 1, 2 or 3
	SleepHours          float64
	CigarettesPerDay    int
	Motivation          Motivation
	UpdatedAt           time.Time
}

// Appointment is a fixed commitment for a given day, supplied by the caller
// or pulled from an external calendar.
type Appointment struct {
	Title string
	Start time.Time
	End   time.Time
}

// PendingTask is a deadline-bearing to-do item included in generation input.
type PendingTask struct {
	Title    string
	Deadline time.Time
}
