package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash" json:"-"`
	Designation  string    `gorm:"size:50;not null" json:"designation"`
	Role         Role      `gorm:"size:32;not null;default:stage1_employee" json:"role"`
	Email        string    `gorm:"size:255" json:"email"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
