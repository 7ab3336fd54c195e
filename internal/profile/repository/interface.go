package repository

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
)

// Repository defines data access for user profiles.
type Repository interface {
	// UpsertProfile inserts or replaces the profile for a user.
	UpsertProfile(ctx context.Context, opt UpsertProfileOptions) (model.Profile, error)
	// GetProfile returns the stored profile, zero-value (empty UserID) when
	// not found.
	GetProfile(ctx context.Context, opt GetProfileOptions) (model.Profile, error)
	// ListProfiles returns every stored profile.
	ListProfiles(ctx context.Context) ([]model.Profile, error)
}
