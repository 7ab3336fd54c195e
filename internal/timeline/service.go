package timeline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

const (
	// Regex pattern: captures start time and opening title
	// Example: "07:30 - Breakfast" → groups: ["07:30", "Breakfast"]
	TimestampPattern = `^\s*(\d{1,2}:\d{2}) - (.+)$`
	// Generated text often runs several entries together on one line,
	// separated by sentence-ending periods. This pattern reinserts the
	// line breaks the parser needs.
	SentencePattern = `(\d{2}:\d{2}) - ([^.]+\.) `
)

type Service interface {
	// Normalize rewrites run-on generated text so each timed entry
	// starts on its own line
	Normalize(text string) string

	// Parse extracts ordered events from a schedule text block
	Parse(text string) []model.ScheduleEvent

	// Overlay attaches done flags keyed by parser-assigned ordinal
	Overlay(events []model.ScheduleEvent, done model.CompletionSet) []model.ClassifiedEvent

	// Classify assigns each event a temporal status against nowMinutes and
	// reorders the list for display under the given policy
	Classify(events []model.ClassifiedEvent, nowMinutes int, policy model.OrderPolicy) []model.ClassifiedEvent

	// GetStats calculates completion statistics
	GetStats(events []model.ClassifiedEvent) Stats
}

type service struct {
	timestamp *regexp.Regexp
	sentence  *regexp.Regexp
}

func New() Service {
	return &service{
		timestamp: regexp.MustCompile(TimestampPattern),
		sentence:  regexp.MustCompile(SentencePattern),
	}
}

// Normalize rewrites run-on generated text so each timed entry starts on
// its own line
func (s *service) Normalize(text string) string {
	return s.sentence.ReplaceAllString(text, "$1 - $2\n")
}

// Parse extracts ordered events from a schedule text block.
//
// Single pass over the lines, carrying at most one open event. A line
// matching the timestamp pattern closes the open event (its end time is the
// new line's start time) and opens a new one. Any other line is appended to
// the open event's title as a description continuation; lines before the
// first timestamp are discarded. The final event is closed with an empty
// end time, meaning open-ended.
func (s *service) Parse(text string) []model.ScheduleEvent {
	events := []model.ScheduleEvent{}

	var open *model.ScheduleEvent
	for _, line := range strings.Split(text, "\n") {
		matches := s.timestamp.FindStringSubmatch(line)
		if len(matches) == 3 {
			if open != nil {
				open.EndTime = matches[1]
				events = append(events, *open)
			}
			open = &model.ScheduleEvent{
				StartTime: matches[1],
				Title:     matches[2],
				Ordinal:   len(events),
			}
			continue
		}

		if open != nil {
			// Whitespace-only lines still append an empty continuation line
			open.Title += "\n" + strings.TrimSpace(line)
		}
	}

	if open != nil {
		open.EndTime = ""
		events = append(events, *open)
	}

	return events
}

// Overlay attaches done flags keyed by parser-assigned ordinal. The flags
// must be joined before any display reordering so they cannot attach to the
// wrong event. A fresh list is produced, so re-applying with the same set
// yields identical output.
func (s *service) Overlay(events []model.ScheduleEvent, done model.CompletionSet) []model.ClassifiedEvent {
	classified := make([]model.ClassifiedEvent, 0, len(events))
	for _, ev := range events {
		classified = append(classified, model.ClassifiedEvent{
			ScheduleEvent: ev,
			Status:        model.StatusUpcoming,
			Done:          done[ev.Ordinal],
		})
	}
	return classified
}

// Classify assigns each event a temporal status against nowMinutes and
// reorders the list for display under the given policy.
//
// An event is current when start <= now < end, past when end <= now, and
// upcoming otherwise. An empty end time is treated as end-of-day, so an
// open-ended final event is never past because its end is missing. A start
// time that fails to parse leaves the event upcoming rather than dropping
// it.
func (s *service) Classify(events []model.ClassifiedEvent, nowMinutes int, policy model.OrderPolicy) []model.ClassifiedEvent {
	out := make([]model.ClassifiedEvent, len(events))
	copy(out, events)

	starts := make([]int, len(out))
	for i := range out {
		start, err := timeutil.ToMinutes(out[i].StartTime)
		if err != nil {
			// Malformed start: best-effort display, sorted after timed events
			out[i].Status = model.StatusUpcoming
			starts[i] = timeutil.MinutesPerDay
			continue
		}
		starts[i] = start

		end := timeutil.MinutesPerDay
		if out[i].EndTime != "" {
			if parsed, err := timeutil.ToMinutes(out[i].EndTime); err == nil {
				end = parsed
			}
		}

		switch {
		case start <= nowMinutes && nowMinutes < end:
			out[i].Status = model.StatusCurrent
		case end <= nowMinutes:
			out[i].Status = model.StatusPast
		default:
			out[i].Status = model.StatusUpcoming
		}
	}

	startOf := make(map[int]int, len(out))
	for i := range out {
		startOf[out[i].Ordinal] = starts[i]
	}

	switch policy {
	case model.PolicyPromote:
		sort.SliceStable(out, func(i, j int) bool {
			return startOf[out[i].Ordinal] < startOf[out[j].Ordinal]
		})
		for i := range out {
			if out[i].Status == model.StatusCurrent {
				current := out[i]
				copy(out[1:i+1], out[:i])
				out[0] = current
				break
			}
		}
	default: // model.PolicyRotate
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := rotateRank(out[i], startOf[out[i].Ordinal], nowMinutes), rotateRank(out[j], startOf[out[j].Ordinal], nowMinutes)
			if ri != rj {
				return ri < rj
			}
			return startOf[out[i].Ordinal] < startOf[out[j].Ordinal]
		})
	}

	return out
}

// rotateRank buckets events so that entries already started but not yet
// over lead the display, followed by everything still to come, with
// finished entries last.
func rotateRank(ev model.ClassifiedEvent, start, nowMinutes int) int {
	switch {
	case start < nowMinutes && ev.Status != model.StatusPast:
		return 0
	case ev.Status == model.StatusPast:
		return 2
	default:
		return 1
	}
}

// GetStats calculates completion statistics
func (s *service) GetStats(events []model.ClassifiedEvent) Stats {
	total := len(events)
	if total == 0 {
		return Stats{}
	}

	completed := 0
	for _, ev := range events {
		if ev.Done {
			completed++
		}
	}

	return Stats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}
