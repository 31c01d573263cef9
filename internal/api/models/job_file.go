package models

import (
	"time"
)

// JobFile is the metadata row for an uploaded attachment; the blob lives on
// disk under the configured upload directory.
type JobFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	JobID        uint      `gorm:"index;not null;column:job_id" json:"job_id"`
	Stage        Stage     `gorm:"size:16" json:"stage"`
	UploadedBy   uint      `gorm:"not null;column:uploaded_by" json:"uploaded_by"`
	FileName     string    `gorm:"size:255;column:file_name" json:"file_name"`
	OriginalName string    `gorm:"size:255;column:original_name" json:"original_name"`
	FilePath     string    `gorm:"size:512;column:file_path" json:"file_path"`
	FileSize     int64     `gorm:"column:file_size" json:"file_size"`
	FileType     string    `gorm:"size:128;column:file_type" json:"file_type"`
	Description  string    `gorm:"size:255" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;column:updated_at" json:"-"`

	Uploader *User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (JobFile) TableName() string {
	return "job_files"
}
