package repository

// SaveDayScheduleOptions holds parameters for upserting a day's raw text.
type SaveDayScheduleOptions struct {
	UserID string
	DayKey string
	Text   string
}

// GetDayScheduleOptions holds filter parameters for fetching one schedule.
type GetDayScheduleOptions struct {
	UserID string
	DayKey string
}

// GetCompletionSetOptions holds filter parameters for reading a user-day's
// done flags.
type GetCompletionSetOptions struct {
	UserID string
	DayKey string
}

// SetCompletionFlagOptions holds parameters for writing a single done flag.
type SetCompletionFlagOptions struct {
	UserID  string
	DayKey  string
	Ordinal int
	Done    bool
}
