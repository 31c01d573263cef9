package response

import (
	"freightflow/internal/api/models"
	"time"
)

// Job is the listing row; the detail endpoint returns the full aggregate.
type Job struct {
	ID                uint         `json:"id"`
	JobNo             string       `json:"job_no"`
	CurrentStage      models.Stage `json:"current_stage"`
	CurrentStageLabel string       `json:"current_stage_label"`
	Status            string       `json:"status"`
	CreatedBy         uint         `json:"created_by"`
	NotificationEmail string       `json:"notification_email"`
	Consignee         string       `json:"consignee"`
	Shipper           string       `json:"shipper"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type JobNumber struct {
	JobNo  string `json:"job_no"`
	Exists bool   `json:"exists"`
}
