package postgre

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
)

type completionRow struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  string `gorm:"size:128;uniqueIndex:idx_completions_user_day_ordinal"`
	DayKey  string `gorm:"size:6;uniqueIndex:idx_completions_user_day_ordinal"`
	Ordinal int    `gorm:"uniqueIndex:idx_completions_user_day_ordinal"`
	Done    bool
}

func (completionRow) TableName() string { return "completions" }

// GetCompletionSet reads all done flags for a user-day.
func (r *implRepository) GetCompletionSet(ctx context.Context, opt repo.GetCompletionSetOptions) (model.CompletionSet, error) {
	var rows []completionRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_key = ?", opt.UserID, opt.DayKey).
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCompletionSet"), err)
		return nil, repo.ErrFailedToRead
	}

	set := make(model.CompletionSet, len(rows))
	for _, row := range rows {
		set[row.Ordinal] = row.Done
	}
	return set, nil
}

// SetCompletionFlag upserts one done flag. No transaction is needed: flags
// are independent and the caller never writes more than one at a time.
func (r *implRepository) SetCompletionFlag(ctx context.Context, opt repo.SetCompletionFlagOptions) error {
	row := completionRow{
		UserID:  opt.UserID,
		DayKey:  opt.DayKey,
		Ordinal: opt.Ordinal,
		Done:    opt.Done,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}, {Name: "ordinal"}},
			DoUpdates: clause.AssignmentColumns([]string{"done"}),
		}).
		Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCompletionFlag"), err)
		return repo.ErrFailedToFlag
	}
	return nil
}
