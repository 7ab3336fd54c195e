package repository

import "github.com/tsukasa1111/BurgerLendar/internal/model"

// UpsertProfileOptions holds parameters for inserting or replacing a profile.
type UpsertProfileOptions struct {
	UserID              string
	BathSlots           []model.BathSlot
	LaundryIntervalDays int
	SleepHours          float64
	CigarettesPerDay    int
	Motivation          model.Motivation
}

// GetProfileOptions holds filter parameters for fetching a single profile.
type GetProfileOptions struct {
	UserID string
}
