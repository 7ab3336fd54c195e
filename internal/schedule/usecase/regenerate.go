package usecase

import (
	"context"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	"github.com/tsukasa1111/BurgerLendar/internal/schedule"
)

// RegenerateAll generates today's schedule for every stored profile.
// Per-user failures are logged and skipped so one bad profile cannot stall
// the whole batch.
func (uc *implUseCase) RegenerateAll(ctx context.Context) error {
	profiles, err := uc.profiles.ListAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RegenerateAll ListAll: %v", err)
		return err
	}

	generated := 0
	for _, p := range profiles {
		sc := model.Scope{UserID: p.UserID}
		if _, err := uc.Generate(ctx, sc, schedule.GenerateInput{Date: uc.clock.Now()}); err != nil {
			uc.l.Warnf(ctx, "uc.RegenerateAll: user=%s: %v", p.UserID, err)
			continue
		}
		generated++
	}

	uc.l.Infof(ctx, "regenerated schedules: %d/%d users", generated, len(profiles))
	return nil
}
