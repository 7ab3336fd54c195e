package usecase

import (
	"context"
	"time"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
	"github.com/tsukasa1111/BurgerLendar/pkg/gcalendar"
	"github.com/tsukasa1111/BurgerLendar/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeProfiles is a function-field ProfileReader fake.
type fakeProfiles struct {
	getFunc  func(ctx context.Context, sc model.Scope) (profile.GetOutput, error)
	listFunc func(ctx context.Context) ([]model.Profile, error)
}

func (f *fakeProfiles) Get(ctx context.Context, sc model.Scope) (profile.GetOutput, error) {
	return f.getFunc(ctx, sc)
}

func (f *fakeProfiles) ListAll(ctx context.Context) ([]model.Profile, error) {
	return f.listFunc(ctx)
}

// fakeGenerator is a function-field Generator fake that records requests.
type fakeGenerator struct {
	generateFunc func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	requests     []*llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.requests = append(f.requests, req)
	return f.generateFunc(ctx, req)
}

// fakeCalendar is a function-field CalendarSource fake.
type fakeCalendar struct {
	listFunc func(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

func (f *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return f.listFunc(ctx, req)
}

// flakyRepo wraps a Repository and forces SetCompletionFlag to fail.
type flakyRepo struct {
	repo.Repository
	flagErr error
}

func (f *flakyRepo) SetCompletionFlag(ctx context.Context, opt repo.SetCompletionFlagOptions) error {
	if f.flagErr != nil {
		return f.flagErr
	}
	return f.Repository.SetCompletionFlag(ctx, opt)
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Content: llmprovider.Message{
			Role:  "assistant",
			Parts: []llmprovider.Part{{Text: text}},
		},
		ProviderName: "fake",
		ModelName:    "fake-model",
		Usage:        &llmprovider.Usage{},
	}
}

func defaultProfile() model.Profile {
	return model.Profile{
		UserID:              "u1",
		BathSlots:           []model.BathSlot{model.BathNight},
		LaundryIntervalDays: 1,
		SleepHours:          7,
		CigarettesPerDay:    0,
		Motivation:          model.MotivationHigh,
		UpdatedAt:           time.Now(),
	}
}
