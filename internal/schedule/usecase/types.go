package usecase

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	"github.com/tsukasa1111/BurgerLendar/pkg/gcalendar"
	"github.com/tsukasa1111/BurgerLendar/pkg/llmprovider"
)

// ProfileReader is the slice of the profile domain this usecase needs.
// Satisfied by the profile UseCase.
type ProfileReader interface {
	Get(ctx context.Context, sc model.Scope) (profile.GetOutput, error)
	ListAll(ctx context.Context) ([]model.Profile, error)
}

// Generator produces schedule text from a prompt. Satisfied by
// *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// CalendarSource lists a day's external calendar events. Satisfied by
// *gcalendar.Client.
type CalendarSource interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// obligation is a recurring daily duty expanded from the user's profile.
type obligation struct {
	Title string
	Hint  string // when during the day it should land
}
