package model

import "testing"

func TestOverallPercent(t *testing.T) {
	topics := []Topic{
		{Name: "Arrays", Target: 25, Solved: 5},
		{Name: "Strings", Target: 20, Solved: 10},
		{Name: "Trees", Target: 5, Solved: 0},
	}

	if got := TotalTarget(topics); got != 50 {
		t.Errorf("expected total target 50, got %d", got)
	}
	if got := TotalSolved(topics); got != 15 {
		t.Errorf("expected total solved 15, got %d", got)
	}
	if got := OverallPercent(topics); got != 30 {
		t.Errorf("expected 30%%, got %d%%", got)
	}
}

func TestOverallPercentZeroWhenNothingPlanned(t *testing.T) {
	if got := OverallPercent(nil); got != 0 {
		t.Errorf("expected 0%% with no topics, got %d%%", got)
	}
}

func TestOverallPercentRounds(t *testing.T) {
	topics := []Topic{{Name: "Arrays", Target: 3, Solved: 1}}
	if got := OverallPercent(topics); got != 33 {
		t.Errorf("expected 33%%, got %d%%", got)
	}

	topics[0].Solved = 2
	if got := OverallPercent(topics); got != 67 {
		t.Errorf("expected 67%%, got %d%%", got)
	}
}

func TestDefaultTopicsPlan(t *testing.T) {
	topics := DefaultTopics()

	if len(topics) != 8 {
		t.Fatalf("expected 8 default topics, got %d", len(topics))
	}
	if got := TotalTarget(topics); got != 160 {
		t.Errorf("expected default plan of 160 problems, got %d", got)
	}
	for _, topic := range topics {
		if topic.Solved != 0 {
			t.Errorf("default topic %q should start unsolved", topic.Name)
		}
		if topic.Target < 1 {
			t.Errorf("default topic %q has target %d", topic.Name, topic.Target)
		}
	}
}

func TestTopicRemaining(t *testing.T) {
	if got := (Topic{Target: 10, Solved: 4}).Remaining(); got != 6 {
		t.Errorf("expected 6 remaining, got %d", got)
	}
	// Solved stranded above a lowered target still reads as done.
	if got := (Topic{Target: 5, Solved: 10}).Remaining(); got != 0 {
		t.Errorf("expected 0 remaining, got %d", got)
	}
}
