package request

import (
	"time"

	"freightflow/internal/api/models"
)

type CreateTask struct {
	JobID       string              `json:"job_id" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Priority    models.TaskPriority `json:"priority" validate:"required"`
	Deadline    time.Time           `json:"deadline" validate:"required"`
	AssigneeIDs []uint              `json:"assignee_ids" validate:"required,min=1"`
}

type UpdateTaskStatus struct {
	Status  models.TaskStatus `json:"status" validate:"required"`
	Comment string            `json:"comment"`
}
