package repository

import (
	"context"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// RemoteRepository bundles the per-user remote replica: the user
// marker, the topic documents keyed by name and the append-only
// problem log underneath them.
type RemoteRepository struct {
	Users    *UserRecordRepository
	Topics   *TopicRecordRepository
	Problems *ProblemRecordRepository
}

func NewRemoteRepository(db *gorm.DB, rdb *redis.Client) *RemoteRepository {
	return &RemoteRepository{
		Users:    NewUserRecordRepository(db, rdb),
		Topics:   NewTopicRecordRepository(db),
		Problems: NewProblemRecordRepository(db),
	}
}

func (r *RemoteRepository) EnsureUserRecord(ctx context.Context, userID, displayName string) error {
	return r.Users.EnsureUserRecord(ctx, userID, displayName)
}

func (r *RemoteRepository) UpsertTopic(ctx context.Context, userID string, topic model.Topic) error {
	return r.Topics.UpsertTopic(ctx, userID, topic)
}

func (r *RemoteRepository) AppendProblem(ctx context.Context, userID, topicName string, record model.ProblemRecord) error {
	return r.Problems.AppendProblem(ctx, userID, topicName, record)
}
