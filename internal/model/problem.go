package model

import "time"

// DefaultProblemName is recorded when a solve arrives without a name.
const DefaultProblemName = "Untitled problem"

// SolveEvent is one recorded solve. It is consumed immediately by the
// sync engine and never stored in this shape.
type SolveEvent struct {
	TopicName   string
	ProblemName string
	Link        string
	ImageURL    *string
	OccurredAt  time.Time
}

// ProblemRecord is the append-only remote record of a solve. The id and
// creation timestamp are assigned server-side.
// swagger:model ProblemRecord
type ProblemRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"index:idx_problem_user_topic;size:64;not null" json:"userId"`
	TopicName   string    `gorm:"index:idx_problem_user_topic;size:191;not null" json:"topicName"`
	ProblemName string    `gorm:"size:255;not null" json:"problemName"`
	Link        string    `gorm:"size:512" json:"link"`
	ImageURL    *string   `gorm:"size:512" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (ProblemRecord) TableName() string {
	return "problem_records"
}
