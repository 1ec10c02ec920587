package repository

import (
	"context"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"gorm.io/gorm"
)

type ProblemRecordRepository struct {
	DB *gorm.DB
}

func NewProblemRecordRepository(db *gorm.DB) *ProblemRecordRepository {
	return &ProblemRecordRepository{DB: db}
}

// AppendProblem inserts a new problem record under a user's topic. The
// id is auto-assigned and the timestamp is set server-side; there is no
// update or delete path.
func (r *ProblemRecordRepository) AppendProblem(ctx context.Context, userID, topicName string, record model.ProblemRecord) error {
	record.ID = 0
	record.UserID = userID
	record.TopicName = topicName
	record.CreatedAt = time.Now()
	return r.DB.WithContext(ctx).Create(&record).Error
}
