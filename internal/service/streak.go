package service

import "github.com/AdityaANS/dsa-progress-tracker/internal/model"

// AdvanceStreak advances the streak state for a solve on the given
// calendar day (model.SolveDateLayout). A repeat solve on the same day
// leaves the state unchanged; a solve on any other day moves
// LastSolvedDate and bumps the counter by exactly one.
//
// The counter never resets after a skipped day. It counts distinct
// active days rather than consecutive ones, which is the behavior the
// product shipped with; callers wanting a strict streak must reset it
// themselves.
func AdvanceStreak(state model.StreakState, day string) model.StreakState {
	if state.LastSolvedDate == day {
		return state
	}
	return model.StreakState{
		LastSolvedDate: day,
		CurrentStreak:  state.CurrentStreak + 1,
	}
}
