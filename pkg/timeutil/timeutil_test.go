package timeutil_test

import (
	"errors"
	"testing"
	"time"

	"github.com/tsukasa1111/BurgerLendar/pkg/timeutil"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "Midnight", in: "00:00", want: 0},
		{name: "Morning", in: "09:00", want: 540},
		{name: "Single digit hour", in: "9:05", want: 545},
		{name: "Last minute of day", in: "23:59", want: 1439},
		{name: "Hour out of range", in: "24:00", wantErr: true},
		{name: "Minute out of range", in: "12:60", wantErr: true},
		{name: "No colon", in: "1200", wantErr: true},
		{name: "Single digit minute", in: "12:5", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
		{name: "Garbage", in: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timeutil.ToMinutes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, timeutil.ErrMalformedTime) {
					t.Errorf("error should wrap ErrMalformedTime, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2024, 6, 15, 10, 30, 59, 0, time.Local)
	if got := timeutil.MinutesOfDay(at); got != 630 {
		t.Errorf("MinutesOfDay() = %d, want 630", got)
	}
}

func TestDayKey(t *testing.T) {
	d1 := time.Date(2024, 6, 5, 23, 59, 0, 0, time.Local)
	d2 := time.Date(2024, 6, 5, 0, 1, 0, 0, time.Local)
	d3 := time.Date(2024, 6, 6, 0, 1, 0, 0, time.Local)

	if got := timeutil.DayKey(d1); got != "240605" {
		t.Errorf("DayKey() = %q, want %q", got, "240605")
	}
	if timeutil.DayKey(d1) != timeutil.DayKey(d2) {
		t.Errorf("same calendar date must yield the same key")
	}
	if timeutil.DayKey(d2) == timeutil.DayKey(d3) {
		t.Errorf("different calendar dates must not collide")
	}
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := timeutil.FixedClock{T: at}
	if !c.Now().Equal(at) {
		t.Errorf("FixedClock.Now() = %v, want %v", c.Now(), at)
	}
}
