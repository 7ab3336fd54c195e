package timeline

import (
	"reflect"
	"testing"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

func TestParse(t *testing.T) {
	s := New()

	t.Run("single timestamp line", func(t *testing.T) {
		events := s.Parse("09:00 - Meeting")
		want := []model.ScheduleEvent{
			{StartTime: "09:00", EndTime: "", Title: "Meeting", Ordinal: 0},
		}
		if !reflect.DeepEqual(events, want) {
			t.Errorf("got %+v, want %+v", events, want)
		}
	})

	t.Run("end time inferred from next start", func(t *testing.T) {
		events := s.Parse("09:00 - A\n10:30 - B")
		want := []model.ScheduleEvent{
			{StartTime: "09:00", EndTime: "10:30", Title: "A", Ordinal: 0},
			{StartTime: "10:30", EndTime: "", Title: "B", Ordinal: 1},
		}
		if !reflect.DeepEqual(events, want) {
			t.Errorf("got %+v, want %+v", events, want)
		}
	})

	t.Run("description lines accumulate under preceding event", func(t *testing.T) {
		events := s.Parse("09:00 - A\nnote\n10:30 - B")
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Title != "A\nnote" {
			t.Errorf("expected title %q, got %q", "A\nnote", events[0].Title)
		}
	})

	t.Run("whitespace-only line appends empty continuation", func(t *testing.T) {
		events := s.Parse("09:00 - A\n   \nmore")
		if events[0].Title != "A\n\nmore" {
			t.Errorf("expected title %q, got %q", "A\n\nmore", events[0].Title)
		}
	})

	t.Run("text before first timestamp is discarded", func(t *testing.T) {
		events := s.Parse("Good morning!\nHere is your plan.\n08:00 - Wake up")
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0].Title != "Wake up" {
			t.Errorf("unexpected title: %q", events[0].Title)
		}
	})

	t.Run("no timestamp lines yields empty list", func(t *testing.T) {
		events := s.Parse("just some prose\nwith no times at all")
		if len(events) != 0 {
			t.Errorf("expected empty list, got %d events", len(events))
		}
	})

	t.Run("out-of-order timestamps preserved in parse order", func(t *testing.T) {
		events := s.Parse("14:00 - Late\n09:00 - Early")
		if events[0].StartTime != "14:00" || events[1].StartTime != "09:00" {
			t.Errorf("parser must not sort: got %q then %q", events[0].StartTime, events[1].StartTime)
		}
		if events[0].Ordinal != 0 || events[1].Ordinal != 1 {
			t.Errorf("ordinals must follow parse order: %d, %d", events[0].Ordinal, events[1].Ordinal)
		}
	})

	t.Run("one-digit hour accepted", func(t *testing.T) {
		events := s.Parse("9:05 - Standup")
		if len(events) != 1 || events[0].StartTime != "9:05" {
			t.Fatalf("expected one event starting 9:05, got %+v", events)
		}
	})

	t.Run("leading whitespace before timestamp accepted", func(t *testing.T) {
		events := s.Parse("  09:00 - Indented")
		if len(events) != 1 || events[0].Title != "Indented" {
			t.Fatalf("expected indented timestamp line to parse, got %+v", events)
		}
	})
}

func TestNormalize(t *testing.T) {
	s := New()

	in := "07:00 - Wake up and stretch. 08:00 - Eat breakfast. 09:00 - Study"
	out := s.Normalize(in)

	events := s.Parse(out)
	if len(events) != 3 {
		t.Fatalf("expected 3 events after normalization, got %d: %q", len(events), out)
	}
	if events[1].StartTime != "08:00" {
		t.Errorf("unexpected second event: %+v", events[1])
	}
}

func TestClassify_Status(t *testing.T) {
	s := New()

	now := 10 * 60 // 10:00

	tcs := []struct {
		name  string
		event model.ScheduleEvent
		want  model.TemporalStatus
	}{
		{"window containing now is current", model.ScheduleEvent{StartTime: "09:00", EndTime: "11:00"}, model.StatusCurrent},
		{"window ending before now is past", model.ScheduleEvent{StartTime: "08:00", EndTime: "09:00"}, model.StatusPast},
		{"window ending exactly now is past", model.ScheduleEvent{StartTime: "09:00", EndTime: "10:00"}, model.StatusPast},
		{"window starting exactly now is current", model.ScheduleEvent{StartTime: "10:00", EndTime: "11:00"}, model.StatusCurrent},
		{"future window is upcoming", model.ScheduleEvent{StartTime: "12:00", EndTime: "13:00"}, model.StatusUpcoming},
		{"open-ended past start is current not past", model.ScheduleEvent{StartTime: "09:30", EndTime: ""}, model.StatusCurrent},
		{"open-ended future start is upcoming", model.ScheduleEvent{StartTime: "22:00", EndTime: ""}, model.StatusUpcoming},
		{"malformed start is upcoming", model.ScheduleEvent{StartTime: "9x:00", EndTime: "11:00"}, model.StatusUpcoming},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			in := s.Overlay([]model.ScheduleEvent{tc.event}, nil)
			out := s.Classify(in, now, model.PolicyRotate)
			if out[0].Status != tc.want {
				t.Errorf("status = %s, want %s", out[0].Status, tc.want)
			}
		})
	}
}

func TestClassify_RotateOrdering(t *testing.T) {
	s := New()

	// now = 10:00. Started-but-unfinished events lead, then the future,
	// finished events last, chronological within each group.
	in := s.Overlay([]model.ScheduleEvent{
		{StartTime: "07:00", EndTime: "08:00", Title: "Breakfast", Ordinal: 0},
		{StartTime: "09:30", EndTime: "12:00", Title: "Study", Ordinal: 1},
		{StartTime: "12:00", EndTime: "13:00", Title: "Lunch", Ordinal: 2},
		{StartTime: "08:00", EndTime: "09:30", Title: "Laundry", Ordinal: 3},
	}, nil)

	out := s.Classify(in, 10*60, model.PolicyRotate)

	var titles []string
	for _, ev := range out {
		titles = append(titles, ev.Title)
	}
	want := []string{"Study", "Lunch", "Breakfast", "Laundry"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("rotate order = %v, want %v", titles, want)
	}
}

func TestClassify_PromoteOrdering(t *testing.T) {
	s := New()

	in := s.Overlay([]model.ScheduleEvent{
		{StartTime: "12:00", EndTime: "13:00", Title: "Lunch", Ordinal: 0},
		{StartTime: "07:00", EndTime: "08:00", Title: "Breakfast", Ordinal: 1},
		{StartTime: "09:30", EndTime: "12:00", Title: "Study", Ordinal: 2},
	}, nil)

	out := s.Classify(in, 10*60, model.PolicyPromote)

	var titles []string
	for _, ev := range out {
		titles = append(titles, ev.Title)
	}
	// Chronological would be Breakfast, Study, Lunch; the current event is
	// spliced to the front.
	want := []string{"Study", "Breakfast", "Lunch"}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("promote order = %v, want %v", titles, want)
	}
}

func TestClassify_StableForEqualStarts(t *testing.T) {
	s := New()

	in := s.Overlay([]model.ScheduleEvent{
		{StartTime: "09:00", EndTime: "10:00", Title: "First", Ordinal: 0},
		{StartTime: "09:00", EndTime: "10:00", Title: "Second", Ordinal: 1},
		{StartTime: "09:00", EndTime: "10:00", Title: "Third", Ordinal: 2},
	}, nil)

	for _, policy := range []model.OrderPolicy{model.PolicyRotate, model.PolicyPromote} {
		out := s.Classify(in, 8*60, policy)
		if out[0].Title != "First" || out[1].Title != "Second" || out[2].Title != "Third" {
			t.Errorf("policy %s reordered equal starts: %+v", policy, out)
		}
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	s := New()

	in := s.Overlay([]model.ScheduleEvent{
		{StartTime: "12:00", EndTime: "13:00", Title: "B", Ordinal: 0},
		{StartTime: "07:00", EndTime: "08:00", Title: "A", Ordinal: 1},
	}, nil)

	_ = s.Classify(in, 10*60, model.PolicyPromote)

	if in[0].Title != "B" || in[1].Title != "A" {
		t.Errorf("input slice was reordered: %+v", in)
	}
}

func TestOverlay(t *testing.T) {
	s := New()

	events := []model.ScheduleEvent{
		{StartTime: "07:00", Title: "A", Ordinal: 0},
		{StartTime: "08:00", Title: "B", Ordinal: 1},
		{StartTime: "09:00", Title: "C", Ordinal: 2},
	}
	done := model.CompletionSet{0: true, 2: true}

	t.Run("flags attach by ordinal", func(t *testing.T) {
		out := s.Overlay(events, done)
		if !out[0].Done || out[1].Done || !out[2].Done {
			t.Errorf("unexpected done flags: %+v", out)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first := s.Overlay(events, done)
		second := s.Overlay(events, done)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("overlay is not idempotent:\n%+v\n%+v", first, second)
		}
	})

	t.Run("flags survive display reordering", func(t *testing.T) {
		overlaid := s.Overlay([]model.ScheduleEvent{
			{StartTime: "12:00", Title: "Late", Ordinal: 0},
			{StartTime: "07:00", EndTime: "08:00", Title: "Early", Ordinal: 1},
		}, model.CompletionSet{1: true})

		out := s.Classify(overlaid, 10*60, model.PolicyPromote)
		for _, ev := range out {
			if ev.Title == "Early" && !ev.Done {
				t.Error("done flag lost after reordering")
			}
			if ev.Title == "Late" && ev.Done {
				t.Error("done flag attached to wrong event after reordering")
			}
		}
	})

	t.Run("nil set leaves everything pending", func(t *testing.T) {
		out := s.Overlay(events, nil)
		for _, ev := range out {
			if ev.Done {
				t.Errorf("event %q unexpectedly done", ev.Title)
			}
		}
	})
}

func TestGetStats(t *testing.T) {
	s := New()

	t.Run("empty", func(t *testing.T) {
		stats := s.GetStats(nil)
		if stats.Total != 0 || stats.Progress != 0 {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})

	t.Run("partial completion", func(t *testing.T) {
		events := s.Overlay([]model.ScheduleEvent{
			{Title: "A", Ordinal: 0},
			{Title: "B", Ordinal: 1},
			{Title: "C", Ordinal: 2},
			{Title: "D", Ordinal: 3},
		}, model.CompletionSet{1: true})

		stats := s.GetStats(events)
		if stats.Total != 4 || stats.Completed != 1 || stats.Pending != 3 {
			t.Errorf("unexpected stats: %+v", stats)
		}
		if stats.Progress != 25 {
			t.Errorf("progress = %f, want 25", stats.Progress)
		}
	})
}
