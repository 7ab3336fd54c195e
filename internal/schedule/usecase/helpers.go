package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

const systemInstruction = `You are a personal day planner. Reply with a plain-text schedule only, one entry per line, in the format "hh:mm - Schedule Title" with an optional description on the following lines. Do not add headings or commentary around the schedule.`

// laundryAnchor fixes the recurrence epoch so "every N days" yields the same
// days for a user regardless of when generation runs.
var laundryAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// buildPrompt assembles the generation prompt from the profile, the day's
// fixed appointments, pending tasks and expanded daily obligations.
func buildPrompt(p model.Profile, date time.Time, appointments []model.Appointment, tasks []model.PendingTask, obligations []obligation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Given the following schedule items and tasks with their respective start and end times, and considering the motivation level for the day (%s), organize a schedule for %s in the specified format.\n\n",
		p.Motivation, date.Format("Monday, 2006-01-02"))

	sb.WriteString("Schedule Items:\n")
	if len(appointments) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, a := range appointments {
		fmt.Fprintf(&sb, "Start: %s, End: %s, Description: %s\n",
			a.Start.Format("15:04"), a.End.Format("15:04"), a.Title)
	}

	sb.WriteString("\nTasks (To be done at any time during the day):\n")
	if len(tasks) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, t := range tasks {
		fmt.Fprintf(&sb, "- %s (deadline %s)\n", t.Title, t.Deadline.Format("2006-01-02"))
	}

	if len(obligations) > 0 {
		sb.WriteString("\nDaily obligations:\n")
		for _, o := range obligations {
			fmt.Fprintf(&sb, "- %s (%s)\n", o.Title, o.Hint)
		}
	}

	fmt.Fprintf(&sb, "\nThe user aims for %.1f hours of sleep.", p.SleepHours)
	if p.CigarettesPerDay > 0 {
		fmt.Fprintf(&sb, " Allow for about %d short smoke breaks spread over the day.", p.CigarettesPerDay)
	}

	sb.WriteString(`

Please organize the schedule, followed by a description if available and Schedule title in one word.
Use the format:
hh:mm - Schedule Title
Description

If there is no task, do not write anything about the task.

Generate a schedule considering the best times to fit the tasks around the fixed schedule items, optimizing productivity based on the motivation level.`)

	return sb.String()
}

// expandObligations derives the day's recurring duties from the profile:
// bath slots every day, laundry on its recurrence days.
func (uc *implUseCase) expandObligations(ctx context.Context, p model.Profile, date time.Time) []obligation {
	var out []obligation

	for _, slot := range p.BathSlots {
		switch slot {
		case model.BathMorning:
			out = append(out, obligation{Title: "Take a bath", Hint: "in the morning"})
		case model.BathNoon:
			out = append(out, obligation{Title: "Take a bath", Hint: "around noon"})
		case model.BathNight:
			out = append(out, obligation{Title: "Take a bath", Hint: "at night"})
		}
	}

	if p.LaundryIntervalDays > 0 {
		due, err := laundryDue(p.LaundryIntervalDays, date)
		if err != nil {
			uc.l.Warnf(ctx, "obligation expansion: %v", err)
		} else if due {
			out = append(out, obligation{Title: "Do the laundry", Hint: "any time during the day"})
		}
	}

	return out
}

// laundryDue reports whether the laundry recurrence has an occurrence on the
// given calendar day.
func laundryDue(intervalDays int, date time.Time) (bool, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: intervalDays,
		Dtstart:  laundryAnchor,
	})
	if err != nil {
		return false, fmt.Errorf("laundry rrule: %w", err)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)
	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}
