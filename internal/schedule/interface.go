package schedule

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate builds a day schedule from the user's profile and constraints,
	// persists the raw text and returns the parsed events.
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)

	// Day returns a day's events classified against the current time, with
	// completion flags applied and the requested display ordering.
	Day(ctx context.Context, sc model.Scope, input DayInput) (DayOutput, error)

	// Toggle flips one event's done flag and persists it.
	Toggle(ctx context.Context, sc model.Scope, input ToggleInput) (ToggleOutput, error)

	// ExportICS serializes a day's events as an iCalendar document.
	ExportICS(ctx context.Context, sc model.Scope, input ExportICSInput) (ExportICSOutput, error)

	// RegenerateAll generates today's schedule for every stored profile.
	RegenerateAll(ctx context.Context) error
}
