package models

import (
	"time"
)

// JobUpdate is an append-only audit entry. Rows are never edited or deleted.
type JobUpdate struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	JobID      uint       `gorm:"index;not null;column:job_id" json:"job_id"`
	UserID     uint       `gorm:"not null;column:user_id" json:"user_id"`
	Stage      Stage      `gorm:"size:16" json:"stage"`
	UpdateType UpdateType `gorm:"size:32;column:update_type" json:"update_type"`
	Message    string     `gorm:"size:255" json:"message"`
	OldValue   string     `gorm:"size:255;column:old_value" json:"old_value"`
	NewValue   string     `gorm:"size:255;column:new_value" json:"new_value"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (JobUpdate) TableName() string {
	return "job_updates"
}
