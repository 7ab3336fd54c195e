package profile

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Save upserts the user's onboarding answers.
	Save(ctx context.Context, sc model.Scope, input SaveInput) (SaveOutput, error)

	// Get returns the user's stored answers.
	Get(ctx context.Context, sc model.Scope) (GetOutput, error)

	// ListAll returns every stored profile, for batch regeneration.
	ListAll(ctx context.Context) ([]model.Profile, error)
}
