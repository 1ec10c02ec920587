package model

import "time"

// SolveDateLayout is the day-granularity date format used by the local
// store and the streak state.
const SolveDateLayout = "2006-01-02"

// StreakState counts the distinct calendar days with at least one solve.
// Note this never resets on a skipped day; see AdvanceStreak.
type StreakState struct {
	// LastSolvedDate is a SolveDateLayout string, empty before the
	// first recorded solve.
	LastSolvedDate string `json:"lastSolvedDate,omitempty"`
	CurrentStreak  int    `json:"currentStreak"`
}

// SolveDay formats a timestamp as the device-local calendar day.
func SolveDay(t time.Time) string {
	return t.Format(SolveDateLayout)
}
