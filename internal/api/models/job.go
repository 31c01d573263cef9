package models

import (
	"time"
)

// Job is the top-level unit of work tracked through the four-stage clearance
// pipeline. current_stage only ever moves forward.
type Job struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	JobNo             string    `gorm:"uniqueIndex;size:64;not null;column:job_no" json:"job_no"`
	CurrentStage      Stage     `gorm:"size:16;not null;default:stage1;column:current_stage" json:"current_stage"`
	Status            string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedBy         uint      `gorm:"not null;column:created_by" json:"created_by"`
	NotificationEmail string    `gorm:"size:255;column:notification_email" json:"notification_email"`
	CreatedAt         time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`

	Stage1           *Stage1Data       `gorm:"foreignKey:JobID" json:"stage1,omitempty"`
	Stage1Containers []Stage1Container `gorm:"foreignKey:JobID" json:"stage1_containers,omitempty"`
	Stage2           *Stage2Data       `gorm:"foreignKey:JobID" json:"stage2,omitempty"`
	Stage3           *Stage3Data       `gorm:"foreignKey:JobID" json:"stage3,omitempty"`
	Stage3Containers []Stage3Container `gorm:"foreignKey:JobID" json:"stage3_containers,omitempty"`
	Stage4           *Stage4Data       `gorm:"foreignKey:JobID" json:"stage4,omitempty"`
	Updates          []JobUpdate       `gorm:"foreignKey:JobID" json:"updates,omitempty"`
	Files            []JobFile         `gorm:"foreignKey:JobID" json:"files,omitempty"`
}

func (Job) TableName() string {
	return "pipeline_jobs"
}
