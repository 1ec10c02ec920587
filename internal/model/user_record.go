package model

import "time"

// UserRecord marks that a user exists in the remote store. Creation is
// idempotent: ensuring an existing user is a no-op.
// swagger:model UserRecord
type UserRecord struct {
	UserID      string    `gorm:"primaryKey;size:64" json:"userId"`
	DisplayName string    `gorm:"size:191" json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (UserRecord) TableName() string {
	return "user_records"
}
