package timeline

// Stats represents completion progress for a day's events
type Stats struct {
	Total     int     // Total events
	Completed int     // Events marked done
	Pending   int     // Events not yet done
	Progress  float64 // Completion percentage (0-100)
}
