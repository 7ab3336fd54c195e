package usecase

import (
	"context"
	"fmt"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/profile"
	repo "github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
)

// Save upserts the user's onboarding answers after validation.
func (uc *implUseCase) Save(ctx context.Context, sc model.Scope, input profile.SaveInput) (profile.SaveOutput, error) {
	if err := validateAnswers(input); err != nil {
		return profile.SaveOutput{}, err
	}

	p, err := uc.repo.UpsertProfile(ctx, repo.UpsertProfileOptions{
		UserID:              sc.UserID,
		BathSlots:           input.BathSlots,
		LaundryIntervalDays: input.LaundryIntervalDays,
		SleepHours:          input.SleepHours,
		CigarettesPerDay:    input.CigarettesPerDay,
		Motivation:          input.Motivation,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Save UpsertProfile: %v", err)
		return profile.SaveOutput{}, err
	}

	return profile.SaveOutput{Profile: p}, nil
}

// Get returns the user's stored answers.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (profile.GetOutput, error) {
	p, err := uc.repo.GetProfile(ctx, repo.GetProfileOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetProfile: %v", err)
		return profile.GetOutput{}, err
	}
	if p.UserID == "" {
		return profile.GetOutput{}, profile.ErrProfileNotFound
	}

	return profile.GetOutput{Profile: p}, nil
}

// ListAll returns every stored profile, for batch regeneration.
func (uc *implUseCase) ListAll(ctx context.Context) ([]model.Profile, error) {
	profiles, err := uc.repo.ListProfiles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll ListProfiles: %v", err)
		return nil, err
	}
	return profiles, nil
}

func validateAnswers(input profile.SaveInput) error {
	for _, slot := range input.BathSlots {
		switch slot {
		case model.BathMorning, model.BathNoon, model.BathNight:
		default:
			return fmt.Errorf("%w: bath slot %q", profile.ErrInvalidAnswers, slot)
		}
	}
	if input.LaundryIntervalDays < 1 || input.LaundryIntervalDays > 3 {
		return fmt.Errorf("%w: laundry interval must be 1-3 days", profile.ErrInvalidAnswers)
	}
	if input.SleepHours < 0 || input.SleepHours > 12 {
		return fmt.Errorf("%w: sleep hours must be 0-12", profile.ErrInvalidAnswers)
	}
	if input.CigarettesPerDay < 0 {
		return fmt.Errorf("%w: cigarettes per day must not be negative", profile.ErrInvalidAnswers)
	}
	switch input.Motivation {
	case model.MotivationLow, model.MotivationMedium, model.MotivationHigh:
	default:
		return fmt.Errorf("%w: motivation %q", profile.ErrInvalidAnswers, input.Motivation)
	}
	return nil
}
