package attendance

// Entry is one user's attendance record for one day, unique per (user, date).
type Entry struct {
	ID           int64  `json:"id"`
	UserID       string `json:"userId"`
	Date         string `json:"date"`
	ClockIn      string `json:"clockIn,omitempty"`
	ClockOut     string `json:"clockOut,omitempty"`
	BreakMinutes int    `json:"breakMinutes"`
	Status       string `json:"status"`
}

// Patch carries a partial attendance update; nil fields keep stored values.
type Patch struct {
	ClockIn      *string
	ClockOut     *string
	BreakMinutes *int
	Status       *string
}
