package usecase

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// Toggle flips one event's done flag and persists it. The flip is
// optimistic: when the write fails the new state is still reported, with
// Persisted=false and the error surfaced in Message so the caller can
// retry or reconcile.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, input schedule.ToggleInput) (schedule.ToggleOutput, error) {
	date := input.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}
	dayKey := timeutil.DayKey(date)

	stored, err := uc.repo.GetDaySchedule(ctx, repo.GetDayScheduleOptions{UserID: sc.UserID, DayKey: dayKey})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetDaySchedule: %v", err)
		return schedule.ToggleOutput{}, err
	}
	if stored.DayKey == "" {
		return schedule.ToggleOutput{}, schedule.ErrScheduleNotFound
	}

	events := uc.tl.Parse(stored.Text)
	if input.Ordinal < 0 || input.Ordinal >= len(events) {
		return schedule.ToggleOutput{}, schedule.ErrOrdinalOutOfRange
	}

	done, err := uc.repo.GetCompletionSet(ctx, repo.GetCompletionSetOptions{UserID: sc.UserID, DayKey: dayKey})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Toggle GetCompletionSet: %v", err)
		done = model.CompletionSet{}
	}

	newState := !done[input.Ordinal]

	out := schedule.ToggleOutput{
		Ordinal:   input.Ordinal,
		Done:      newState,
		Persisted: true,
	}

	if err := uc.repo.SetCompletionFlag(ctx, repo.SetCompletionFlagOptions{
		UserID:  sc.UserID,
		DayKey:  dayKey,
		Ordinal: input.Ordinal,
		Done:    newState,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Toggle SetCompletionFlag: %v", err)
		out.Persisted = false
		out.Message = err.Error()
	}

	return out, nil
}
