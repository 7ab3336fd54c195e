package usecase

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// Day returns a day's events classified against the current time, with
// completion flags applied and the requested display ordering.
func (uc *implUseCase) Day(ctx context.Context, sc model.Scope, input schedule.DayInput) (schedule.DayOutput, error) {
	policy := input.Policy
	switch policy {
	case "":
		policy = model.PolicyRotate
	case model.PolicyRotate, model.PolicyPromote:
	default:
		return schedule.DayOutput{}, schedule.ErrInvalidPolicy
	}

	date := input.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}
	dayKey := timeutil.DayKey(date)

	stored, err := uc.repo.GetDaySchedule(ctx, repo.GetDayScheduleOptions{UserID: sc.UserID, DayKey: dayKey})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Day GetDaySchedule: %v", err)
		return schedule.DayOutput{}, err
	}
	if stored.DayKey == "" {
		return schedule.DayOutput{}, schedule.ErrScheduleNotFound
	}

	// A read failure on the flags degrades to an empty set: the schedule is
	// still displayed, completion catches up on the next fetch.
	done, err := uc.repo.GetCompletionSet(ctx, repo.GetCompletionSetOptions{UserID: sc.UserID, DayKey: dayKey})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Day GetCompletionSet: %v", err)
		done = model.CompletionSet{}
	}

	events := uc.tl.Parse(stored.Text)
	overlaid := uc.tl.Overlay(events, done)
	classified := uc.tl.Classify(overlaid, uc.nowMinutesFor(dayKey), policy)

	return schedule.DayOutput{
		DayKey: dayKey,
		Events: classified,
		Stats:  uc.tl.GetStats(overlaid),
	}, nil
}

// nowMinutesFor positions "now" for classification. Today uses the wall
// clock; past days classify everything as past and future days as upcoming.
func (uc *implUseCase) nowMinutesFor(dayKey string) int {
	now := uc.clock.Now()
	today := timeutil.DayKey(now)
	switch {
	case dayKey == today:
		return timeutil.MinutesOfDay(now)
	case dayKey < today:
		return timeutil.MinutesPerDay
	default:
		return -1
	}
}
