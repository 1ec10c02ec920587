package repository

import (
	"context"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRecordRepository struct {
	DB *gorm.DB
}

func NewTopicRecordRepository(db *gorm.DB) *TopicRecordRepository {
	return &TopicRecordRepository{DB: db}
}

// UpsertTopic merge-writes a topic keyed by (user_id, name). Only the
// carried fields are assigned on conflict, so columns absent from the
// payload are never blanked.
func (r *TopicRecordRepository) UpsertTopic(ctx context.Context, userID string, topic model.Topic) error {
	record := model.TopicRecord{
		UserID:    userID,
		Name:      topic.Name,
		Target:    topic.Target,
		Solved:    topic.Solved,
		UpdatedAt: time.Now(),
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"target", "solved", "updated_at"}),
		}).
		Create(&record).Error
}
