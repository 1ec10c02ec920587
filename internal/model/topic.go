package model

import (
	"math"
	"time"
)

// Topic is the local progress of one practice category.
// swagger:model Topic
type Topic struct {
	Name   string `json:"name"`
	Target int    `json:"target"`
	Solved int    `json:"solved"`
}

// Remaining returns how many problems are still open for the topic.
func (t Topic) Remaining() int {
	if t.Solved >= t.Target {
		return 0
	}
	return t.Target - t.Solved
}

// Percent returns the completion percentage of a single topic.
func (t Topic) Percent() int {
	if t.Target <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(t.Solved) / float64(t.Target)))
}

// DefaultTopics is the topic plan a fresh device starts from.
func DefaultTopics() []Topic {
	return []Topic{
		{Name: "Arrays", Target: 25},
		{Name: "Strings", Target: 20},
		{Name: "Hashing", Target: 15},
		{Name: "Linked Lists", Target: 15},
		{Name: "Stacks & Queues", Target: 15},
		{Name: "Trees", Target: 20},
		{Name: "Graphs", Target: 20},
		{Name: "Dynamic Programming", Target: 30},
	}
}

// TotalTarget sums the planned problem count over all topics.
func TotalTarget(topics []Topic) int {
	total := 0
	for _, t := range topics {
		total += t.Target
	}
	return total
}

// TotalSolved sums the solved count over all topics.
func TotalSolved(topics []Topic) int {
	total := 0
	for _, t := range topics {
		total += t.Solved
	}
	return total
}

// OverallPercent is the rounded overall completion percentage.
// It is 0 when no problems are planned at all.
func OverallPercent(topics []Topic) int {
	target := TotalTarget(topics)
	if target == 0 {
		return 0
	}
	return int(math.Round(100 * float64(TotalSolved(topics)) / float64(target)))
}

// TopicRecord is the remote replica of a topic, merge-written
// per (user_id, name).
// swagger:model TopicRecord
type TopicRecord struct {
	UserID    string    `gorm:"primaryKey;size:64" json:"userId"`
	Name      string    `gorm:"primaryKey;size:191" json:"name"`
	Target    int       `gorm:"not null" json:"target"`
	Solved    int       `gorm:"not null;default:0" json:"solved"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (TopicRecord) TableName() string {
	return "topic_records"
}
