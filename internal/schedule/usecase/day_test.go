package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/llmprovider"
	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

// seedSchedule stores raw text for the test user at the clock's current day.
func seedSchedule(t *testing.T, uc *implUseCase, text string) {
	t.Helper()
	_, err := uc.repo.SaveDaySchedule(context.Background(), repo.SaveDayScheduleOptions{
		UserID: "u1",
		DayKey: timeutil.DayKey(uc.clock.Now()),
		Text:   text,
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
}

func newSeededUseCase(t *testing.T, now time.Time, text string) *implUseCase {
	t.Helper()
	gen := &fakeGenerator{
		generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
			return textResponse(text), nil
		},
	}
	uc := newTestUseCase(gen, nil)
	uc.clock = timeutil.FixedClock{T: now}
	seedSchedule(t, uc, text)
	return uc
}

func TestDay(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	// 10:00 on the seeded day
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	text := "07:00 - Breakfast\n09:30 - Study\nread chapter 3\n12:00 - Lunch"

	t.Run("classifies against wall clock", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)

		out, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DayKey != "260314" {
			t.Errorf("day key = %q", out.DayKey)
		}
		// Rotate policy: current Study first, upcoming Lunch, past Breakfast last
		titles := make([]string, 0, len(out.Events))
		for _, ev := range out.Events {
			titles = append(titles, strings.SplitN(ev.Title, "\n", 2)[0])
		}
		want := []string{"Study", "Lunch", "Breakfast"}
		for i := range want {
			if titles[i] != want[i] {
				t.Fatalf("order = %v, want %v", titles, want)
			}
		}
		if out.Events[0].Status != model.StatusCurrent {
			t.Errorf("first event status = %s, want current", out.Events[0].Status)
		}
	})

	t.Run("promote policy", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)

		out, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now, Policy: model.PolicyPromote})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Events[0].Title, "Study") {
			t.Errorf("current event not promoted: %+v", out.Events[0])
		}
		if !strings.HasPrefix(out.Events[1].Title, "Breakfast") {
			t.Errorf("rest not chronological: %+v", out.Events)
		}
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)

		_, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now, Policy: "shuffled"})
		if !errors.Is(err, schedule.ErrInvalidPolicy) {
			t.Errorf("expected ErrInvalidPolicy, got %v", err)
		}
	})

	t.Run("no schedule stored", func(t *testing.T) {
		gen := &fakeGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(""), nil
			},
		}
		uc := newTestUseCase(gen, nil)

		_, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now})
		if !errors.Is(err, schedule.ErrScheduleNotFound) {
			t.Errorf("expected ErrScheduleNotFound, got %v", err)
		}
	})

	t.Run("past day is all past", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)
		// Move the clock a day forward; the seeded day is now yesterday
		uc.clock = timeutil.FixedClock{T: now.Add(24 * time.Hour)}

		out, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, ev := range out.Events {
			if ev.Status != model.StatusPast {
				t.Errorf("event %q status = %s, want past", ev.Title, ev.Status)
			}
		}
	})

	t.Run("future day is all upcoming", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)
		uc.clock = timeutil.FixedClock{T: now.Add(-24 * time.Hour)}

		out, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, ev := range out.Events {
			if ev.Status != model.StatusUpcoming {
				t.Errorf("event %q status = %s, want upcoming", ev.Title, ev.Status)
			}
		}
	})

	t.Run("stats reflect completion flags", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)
		err := uc.repo.SetCompletionFlag(context.Background(), repo.SetCompletionFlagOptions{
			UserID: "u1", DayKey: "260314", Ordinal: 0, Done: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := uc.Day(context.Background(), sc, schedule.DayInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Stats.Total != 3 || out.Stats.Completed != 1 {
			t.Errorf("unexpected stats: %+v", out.Stats)
		}
		for _, ev := range out.Events {
			if strings.HasPrefix(ev.Title, "Breakfast") && !ev.Done {
				t.Error("done flag lost for ordinal 0")
			}
		}
	})
}

func TestToggle(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	text := "07:00 - Breakfast\n09:30 - Study"

	t.Run("flips on then off", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)

		out, err := uc.Toggle(context.Background(), sc, schedule.ToggleInput{Date: now, Ordinal: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Done || !out.Persisted {
			t.Errorf("unexpected output: %+v", out)
		}

		out, err = uc.Toggle(context.Background(), sc, schedule.ToggleInput{Date: now, Ordinal: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Done {
			t.Errorf("second toggle should flip back off: %+v", out)
		}
	})

	t.Run("ordinal out of range", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)

		for _, ordinal := range []int{-1, 2} {
			_, err := uc.Toggle(context.Background(), sc, schedule.ToggleInput{Date: now, Ordinal: ordinal})
			if !errors.Is(err, schedule.ErrOrdinalOutOfRange) {
				t.Errorf("ordinal %d: expected ErrOrdinalOutOfRange, got %v", ordinal, err)
			}
		}
	})

	t.Run("write failure keeps optimistic state", func(t *testing.T) {
		uc := newSeededUseCase(t, now, text)
		uc.repo = &flakyRepo{Repository: uc.repo, flagErr: errors.New("store down")}

		out, err := uc.Toggle(context.Background(), sc, schedule.ToggleInput{Date: now, Ordinal: 0})
		if err != nil {
			t.Fatalf("write failure must not fail the toggle: %v", err)
		}
		if !out.Done {
			t.Error("optimistic flip lost")
		}
		if out.Persisted {
			t.Error("Persisted should be false on write failure")
		}
		if out.Message == "" {
			t.Error("write failure should be surfaced in Message")
		}
	})

	t.Run("no schedule stored", func(t *testing.T) {
		gen := &fakeGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(""), nil
			},
		}
		uc := newTestUseCase(gen, nil)

		_, err := uc.Toggle(context.Background(), sc, schedule.ToggleInput{Date: now, Ordinal: 0})
		if !errors.Is(err, schedule.ErrScheduleNotFound) {
			t.Errorf("expected ErrScheduleNotFound, got %v", err)
		}
	})
}

func TestExportICS(t *testing.T) {
	sc := model.Scope{UserID: "u1"}
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	t.Run("serializes events", func(t *testing.T) {
		uc := newSeededUseCase(t, now, "07:00 - Breakfast\n09:30 - Study\nread chapter 3")

		out, err := uc.ExportICS(context.Background(), sc, schedule.ExportICSInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.Calendar, "BEGIN:VCALENDAR") {
			t.Error("missing calendar envelope")
		}
		if got := strings.Count(out.Calendar, "BEGIN:VEVENT"); got != 2 {
			t.Errorf("expected 2 VEVENTs, got %d", got)
		}
		if !strings.Contains(out.Calendar, "SUMMARY:Breakfast") {
			t.Error("missing summary")
		}
		if !strings.Contains(out.Calendar, "DESCRIPTION:read chapter 3") {
			t.Error("description lines should become the VEVENT description")
		}
	})

	t.Run("skips events with malformed start", func(t *testing.T) {
		uc := newSeededUseCase(t, now, "07:00 - Breakfast\n99:99 - Broken\n09:30 - Study")

		out, err := uc.ExportICS(context.Background(), sc, schedule.ExportICSInput{Date: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.Count(out.Calendar, "BEGIN:VEVENT"); got != 2 {
			t.Errorf("expected malformed event to be skipped, got %d VEVENTs", got)
		}
	})

	t.Run("no schedule stored", func(t *testing.T) {
		gen := &fakeGenerator{
			generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return textResponse(""), nil
			},
		}
		uc := newTestUseCase(gen, nil)

		_, err := uc.ExportICS(context.Background(), sc, schedule.ExportICSInput{Date: now})
		if !errors.Is(err, schedule.ErrScheduleNotFound) {
			t.Errorf("expected ErrScheduleNotFound, got %v", err)
		}
	})
}
