package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/gcalendar"
	"github.com/tsukasa1111/BurgerLendar/pkg/llmprovider"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

const (
	generateTemperature = 0.7
	generateMaxTokens   = 1024
)

// Generate builds a day schedule from the user's profile and constraints,
// persists the raw text and returns the parsed events.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input schedule.GenerateInput) (schedule.GenerateOutput, error) {
	got, err := uc.profiles.Get(ctx, sc)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return schedule.GenerateOutput{}, schedule.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "uc.Generate profiles.Get: %v", err)
		return schedule.GenerateOutput{}, err
	}

	date := input.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}
	dayKey := timeutil.DayKey(date)

	appointments := append([]model.Appointment(nil), input.Appointments...)
	if input.UseCalendar && uc.calendar != nil {
		appointments = append(appointments, uc.calendarAppointments(ctx, date)...)
	}

	prompt := buildPrompt(got.Profile, date, appointments, input.Tasks, uc.expandObligations(ctx, got.Profile, date))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: systemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate GenerateContent: %v", err)
		return schedule.GenerateOutput{}, err
	}

	text := uc.tl.Normalize(resp.Text())
	events := uc.tl.Parse(text)
	if len(events) == 0 {
		uc.l.Warnf(ctx, "uc.Generate: provider returned no parseable events: %q", text)
		return schedule.GenerateOutput{}, schedule.ErrEmptyGeneration
	}

	if _, err := uc.repo.SaveDaySchedule(ctx, repo.SaveDayScheduleOptions{
		UserID: sc.UserID,
		DayKey: dayKey,
		Text:   text,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Generate SaveDaySchedule: %v", err)
		return schedule.GenerateOutput{}, err
	}

	uc.l.Infof(ctx, "generated schedule: user=%s day=%s events=%d", sc.UserID, dayKey, len(events))

	return schedule.GenerateOutput{
		DayKey: dayKey,
		Text:   text,
		Events: events,
	}, nil
}

// calendarAppointments pulls the day's Google Calendar events as extra fixed
// appointments. Calendar failures degrade to an empty list: generation must
// not fail because an optional source is down.
func (uc *implUseCase) calendarAppointments(ctx context.Context, date time.Time) []model.Appointment {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: dayStart,
		TimeMax: dayStart.Add(24 * time.Hour),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Generate ListEvents: %v", err)
		return nil
	}

	appointments := make([]model.Appointment, 0, len(events))
	for _, ev := range events {
		appointments = append(appointments, model.Appointment{
			Title: ev.Summary,
			Start: ev.StartTime,
			End:   ev.EndTime,
		})
	}
	return appointments
}
