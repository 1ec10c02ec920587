package service

import (
	"testing"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
)

func TestStreakFirstSolve(t *testing.T) {
	state := AdvanceStreak(model.StreakState{}, "2026-08-28")

	if state.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", state.CurrentStreak)
	}
	if state.LastSolvedDate != "2026-08-28" {
		t.Errorf("expected last solved date 2026-08-28, got %q", state.LastSolvedDate)
	}
}

func TestStreakSameDayUnchanged(t *testing.T) {
	state := AdvanceStreak(model.StreakState{}, "2026-08-28")
	again := AdvanceStreak(state, "2026-08-28")

	if again != state {
		t.Errorf("same-day solve changed state: %+v -> %+v", state, again)
	}
}

func TestStreakDistinctDaysEachCountOnce(t *testing.T) {
	state := model.StreakState{}
	days := []string{"2026-08-25", "2026-08-25", "2026-08-26", "2026-08-26", "2026-08-27"}
	for _, day := range days {
		state = AdvanceStreak(state, day)
	}

	if state.CurrentStreak != 3 {
		t.Errorf("expected 3 distinct active days, got %d", state.CurrentStreak)
	}
	if state.LastSolvedDate != "2026-08-27" {
		t.Errorf("expected last solved date 2026-08-27, got %q", state.LastSolvedDate)
	}
}

// The counter is a distinct-active-days count, not a consecutive-day
// streak: a gap between solve days must not reset it.
func TestStreakDoesNotResetAfterGap(t *testing.T) {
	state := AdvanceStreak(model.StreakState{}, "2026-08-01")
	state = AdvanceStreak(state, "2026-08-20")

	if state.CurrentStreak != 2 {
		t.Errorf("expected streak 2 after gap, got %d", state.CurrentStreak)
	}
}
