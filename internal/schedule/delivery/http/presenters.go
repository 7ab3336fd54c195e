package http

import (
	"fmt"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
)

// --- Request DTOs ---

type appointmentReq struct {
	Title string    `json:"title" binding:"required"`
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end"   binding:"required"`
}

type taskReq struct {
	Title    string    `json:"title"    binding:"required"`
	Deadline time.Time `json:"deadline" binding:"required"`
}

type generateReq struct {
	Date         string           `json:"date"` // YYYY-MM-DD, defaults to today
	Appointments []appointmentReq `json:"appointments"`
	Tasks        []taskReq        `json:"tasks"`
	UseCalendar  bool             `json:"use_calendar"`

	date time.Time
}

func (r *generateReq) validate() error {
	if r.Date == "" {
		return nil
	}
	date, err := time.ParseInLocation(datePathLayout, r.Date, time.Local)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	r.date = date
	return nil
}

func (r generateReq) toInput() schedule.GenerateInput {
	appointments := make([]model.Appointment, 0, len(r.Appointments))
	for _, a := range r.Appointments {
		appointments = append(appointments, model.Appointment{
			Title: a.Title,
			Start: a.Start,
			End:   a.End,
		})
	}
	tasks := make([]model.PendingTask, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		tasks = append(tasks, model.PendingTask{
			Title:    t.Title,
			Deadline: t.Deadline,
		})
	}
	return schedule.GenerateInput{
		Date:         r.date,
		Appointments: appointments,
		Tasks:        tasks,
		UseCalendar:  r.UseCalendar,
	}
}

// ---

type dayReq struct {
	Policy string `form:"policy" binding:"omitempty,oneof=rotate promote"`

	date time.Time
}

func (r dayReq) toInput() schedule.DayInput {
	return schedule.DayInput{
		Date:   r.date,
		Policy: model.OrderPolicy(r.Policy),
	}
}

type toggleReq struct {
	date    time.Time
	ordinal int
}

func (r toggleReq) toInput() schedule.ToggleInput {
	return schedule.ToggleInput{
		Date:    r.date,
		Ordinal: r.ordinal,
	}
}

// --- Response DTOs ---

type eventResp struct {
	Ordinal   int    `json:"ordinal"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	Status    string `json:"status,omitempty"`
	Done      bool   `json:"done"`
}

type statsResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

type generateResp struct {
	DayKey string      `json:"day_key"`
	Text   string      `json:"text"`
	Events []eventResp `json:"events"`
}

func (h *handler) newGenerateResp(out schedule.GenerateOutput) generateResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, eventResp{
			Ordinal:   ev.Ordinal,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Title:     ev.Title,
		})
	}
	return generateResp{
		DayKey: out.DayKey,
		Text:   out.Text,
		Events: events,
	}
}

type dayResp struct {
	DayKey string      `json:"day_key"`
	Events []eventResp `json:"events"`
	Stats  statsResp   `json:"stats"`
}

func (h *handler) newDayResp(out schedule.DayOutput) dayResp {
	events := make([]eventResp, 0, len(out.Events))
	for _, ev := range out.Events {
		events = append(events, eventResp{
			Ordinal:   ev.Ordinal,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Title:     ev.Title,
			Status:    string(ev.Status),
			Done:      ev.Done,
		})
	}
	return dayResp{
		DayKey: out.DayKey,
		Events: events,
		Stats: statsResp{
			Total:     out.Stats.Total,
			Completed: out.Stats.Completed,
			Pending:   out.Stats.Pending,
			Progress:  out.Stats.Progress,
		},
	}
}

type toggleResp struct {
	Ordinal   int    `json:"ordinal"`
	Done      bool   `json:"done"`
	Persisted bool   `json:"persisted"`
	Message   string `json:"message,omitempty"`
}

func (h *handler) newToggleResp(out schedule.ToggleOutput) toggleResp {
	return toggleResp{
		Ordinal:   out.Ordinal,
		Done:      out.Done,
		Persisted: out.Persisted,
		Message:   out.Message,
	}
}
