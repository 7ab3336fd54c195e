package postgre

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	repo "github.com/tsukasa1111/BurgerLendar/internal/schedule/repository"
)

type dayScheduleRow struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"size:128;uniqueIndex:idx_day_schedules_user_day"`
	DayKey      string `gorm:"size:6;uniqueIndex:idx_day_schedules_user_day"`
	Text        string `gorm:"type:text"`
	GeneratedAt time.Time
}

func (dayScheduleRow) TableName() string { return "day_schedules" }

func (row dayScheduleRow) toModel() model.DaySchedule {
	return model.DaySchedule{
		UserID:      row.UserID,
		DayKey:      row.DayKey,
		Text:        row.Text,
		GeneratedAt: row.GeneratedAt,
	}
}

// SaveDaySchedule upserts the raw text for a (user, dayKey) pair.
func (r *implRepository) SaveDaySchedule(ctx context.Context, opt repo.SaveDayScheduleOptions) (model.DaySchedule, error) {
	row := dayScheduleRow{
		UserID:      opt.UserID,
		DayKey:      opt.DayKey,
		Text:        opt.Text,
		GeneratedAt: time.Now(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "generated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveDaySchedule"), err)
		return model.DaySchedule{}, repo.ErrFailedToSave
	}
	return row.toModel(), nil
}

// GetDaySchedule returns the stored schedule for (user, dayKey).
// Returns zero-value (DayKey == "") when not found — no error for not-found.
func (r *implRepository) GetDaySchedule(ctx context.Context, opt repo.GetDayScheduleOptions) (model.DaySchedule, error) {
	var row dayScheduleRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_key = ?", opt.UserID, opt.DayKey).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DaySchedule{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDaySchedule"), err)
		return model.DaySchedule{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}
