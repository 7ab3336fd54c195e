package profile

import "github.com/tsukasa1111/BurgerLendar/internal/model"

// --- UseCase Inputs ---

type SaveInput struct {
	BathSlots           []model.BathSlot
	LaundryIntervalDays int
	SleepHours          float64
	CigarettesPerDay    int
	Motivation          model.Motivation
}

// --- UseCase Outputs ---

type SaveOutput struct {
	Profile model.Profile
}

type GetOutput struct {
	Profile model.Profile
}
