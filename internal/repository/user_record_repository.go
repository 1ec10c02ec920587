package repository

import (
	"context"
	"time"

	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRecordRepository manages the remote "user exists" marker. A redis
// flag short-circuits repeated ensures for the same user; redis is
// optional and its absence only costs the extra database round trip.
type UserRecordRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserRecordRepository(db *gorm.DB, rdb *redis.Client) *UserRecordRepository {
	return &UserRecordRepository{DB: db, Redis: rdb}
}

const userExistsTTL = 12 * time.Hour

func userExistsKey(userID string) string {
	return "tracker:user_exists:" + userID
}

// EnsureUserRecord creates the marker record if absent. Idempotent:
// ensuring an existing user changes nothing, including CreatedAt.
func (r *UserRecordRepository) EnsureUserRecord(ctx context.Context, userID, displayName string) error {
	if r.Redis != nil {
		if ok, err := r.Redis.Exists(ctx, userExistsKey(userID)).Result(); err == nil && ok > 0 {
			return nil
		}
	}

	record := model.UserRecord{
		UserID:      userID,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
	if err != nil {
		return err
	}

	if r.Redis != nil {
		r.Redis.Set(ctx, userExistsKey(userID), "1", userExistsTTL)
	}
	return nil
}
