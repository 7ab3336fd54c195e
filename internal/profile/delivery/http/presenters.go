package http

import (
	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	"github.com/tsukasa1111/BurgerLendar/pkg/response"
)

type saveReq struct {
	BathSlots           []string `json:"bath_slots" binding:"required,min=1,dive,oneof=morning noon night"`
	LaundryIntervalDays int      `json:"laundry_interval_days" binding:"required,min=1,max=3"`
	SleepHours          float64  `json:"sleep_hours" binding:"required,gt=0,max=12"`
	CigarettesPerDay    int      `json:"cigarettes_per_day" binding:"min=0"`
	Motivation          string   `json:"motivation" binding:"required,oneof=low medium high"`
}

func (req saveReq) toInput() profile.SaveInput {
	slots := make([]model.BathSlot, 0, len(req.BathSlots))
	for _, s := range req.BathSlots {
		slots = append(slots, model.BathSlot(s))
	}
	return profile.SaveInput{
		BathSlots:           slots,
		LaundryIntervalDays: req.LaundryIntervalDays,
		SleepHours:          req.SleepHours,
		CigarettesPerDay:    req.CigarettesPerDay,
		Motivation:          model.Motivation(req.Motivation),
	}
}

type profileResp struct {
	UserID              string            `json:"user_id"`
	BathSlots           []string          `json:"bath_slots"`
	LaundryIntervalDays int               `json:"laundry_interval_days"`
	SleepHours          float64           `json:"sleep_hours"`
	CigarettesPerDay    int               `json:"cigarettes_per_day"`
	Motivation          string            `json:"motivation"`
	UpdatedAt           response.DateTime `json:"updated_at"`
}

func (h *handler) newProfileResp(p model.Profile) profileResp {
	slots := make([]string, 0, len(p.BathSlots))
	for _, s := range p.BathSlots {
		slots = append(slots, string(s))
	}
	return profileResp{
		UserID:              p.UserID,
		BathSlots:           slots,
		LaundryIntervalDays: p.LaundryIntervalDays,
		SleepHours:          p.SleepHours,
		CigarettesPerDay:    p.CigarettesPerDay,
		Motivation:          string(p.Motivation),
		UpdatedAt:           response.DateTime(p.UpdatedAt),
	}
}
