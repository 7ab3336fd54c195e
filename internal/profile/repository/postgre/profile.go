package postgre

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tsukasa1111/BurgerLendar/internal/model"
	repo "github.com/tsukasa1111/BurgerLendar/internal/profile/repository"
)

type profileRow struct {
	UserID              string `gorm:"primaryKey;size:128"`
	BathSlots           string `gorm:"size:64"` // comma-separated slots
	LaundryIntervalDays int
	SleepHours          float64
	CigarettesPerDay    int
	Motivation          string `gorm:"size:16"`
	UpdatedAt           time.Time
}

func (profileRow) TableName() string { return "profiles" }

func (row profileRow) toModel() model.Profile {
	var slots []model.BathSlot
	if row.BathSlots != "" {
		for _, s := range strings.Split(row.BathSlots, ",") {
			slots = append(slots, model.BathSlot(s))
		}
	}
	return model.Profile{
		UserID:              row.UserID,
		BathSlots:           slots,
		LaundryIntervalDays: row.LaundryIntervalDays,
		SleepHours:          row.SleepHours,
		CigarettesPerDay:    row.CigarettesPerDay,
		Motivation:          model.Motivation(row.Motivation),
		UpdatedAt:           row.UpdatedAt,
	}
}

func joinSlots(slots []model.BathSlot) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ",")
}

// UpsertProfile inserts or replaces the profile for a user.
func (r *implRepository) UpsertProfile(ctx context.Context, opt repo.UpsertProfileOptions) (model.Profile, error) {
	row := profileRow{
		UserID:              opt.UserID,
		BathSlots:           joinSlots(opt.BathSlots),
		LaundryIntervalDays: opt.LaundryIntervalDays,
		SleepHours:          opt.SleepHours,
		CigarettesPerDay:    opt.CigarettesPerDay,
		Motivation:          string(opt.Motivation),
		UpdatedAt:           time.Now(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bath_slots", "laundry_interval_days", "sleep_hours", "cigarettes_per_day", "motivation", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertProfile"), err)
		return model.Profile{}, repo.ErrFailedToUpsert
	}
	return row.toModel(), nil
}

// GetProfile returns the stored profile for a user.
// Returns zero-value (UserID == "") when not found — no error for not-found.
func (r *implRepository) GetProfile(ctx context.Context, opt repo.GetProfileOptions) (model.Profile, error) {
	var row profileRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", opt.UserID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListProfiles returns every stored profile.
func (r *implRepository) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var rows []profileRow
	err := r.db.WithContext(ctx).
		Order("user_id ASC").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProfiles"), err)
		return nil, repo.ErrFailedToList
	}

	profiles := make([]model.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.toModel())
	}
	return profiles, nil
}
