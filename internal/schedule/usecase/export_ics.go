package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// ExportICS serializes a day's events as an iCalendar document. Events
// whose start time fails to parse cannot be placed on the calendar and are
// skipped; an open-ended event runs to end of day.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, input schedule.ExportICSInput) (schedule.ExportICSOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}
	dayKey := timeutil.DayKey(date)

	stored, err := uc.repo.GetDaySchedule(ctx, repo.GetDayScheduleOptions{UserID: sc.UserID, DayKey: dayKey})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS GetDaySchedule: %v", err)
		return schedule.ExportICSOutput{}, err
	}
	if stored.DayKey == "" {
		return schedule.ExportICSOutput{}, schedule.ErrScheduleNotFound
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//BurgerLendar//Day Schedule//EN")

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for _, ev := range uc.tl.Parse(stored.Text) {
		startMin, err := timeutil.ToMinutes(ev.StartTime)
		if err != nil {
			uc.l.Warnf(ctx, "uc.ExportICS skipping event %d: %v", ev.Ordinal, err)
			continue
		}
		endMin := timeutil.MinutesPerDay
		if ev.EndTime != "" {
			if parsed, err := timeutil.ToMinutes(ev.EndTime); err == nil {
				endMin = parsed
			}
		}

		title, description := splitTitle(ev.Title)

		vev := cal.AddEvent(fmt.Sprintf("%s-%s-%d@burgerlendar", sc.UserID, dayKey, ev.Ordinal))
		vev.SetDtStampTime(stored.GeneratedAt)
		vev.SetStartAt(dayStart.Add(time.Duration(startMin) * time.Minute))
		vev.SetEndAt(dayStart.Add(time.Duration(endMin) * time.Minute))
		vev.SetSummary(title)
		if description != "" {
			vev.SetDescription(description)
		}
	}

	return schedule.ExportICSOutput{
		DayKey:   dayKey,
		Calendar: cal.Serialize(),
	}, nil
}

// splitTitle separates the display title from accumulated description lines.
func splitTitle(title string) (string, string) {
	head, rest, found := strings.Cut(title, "\n")
	if !found {
		return title, ""
	}
	return head, strings.TrimSpace(rest)
}
