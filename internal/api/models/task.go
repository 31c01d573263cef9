package models

import (
	"time"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type TaskStatus string

const (
	TaskAssigned   TaskStatus = "Assigned"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	return s == TaskAssigned || s == TaskInProgress || s == TaskCompleted
}

// Task is the generic side-channel work item, independent of the pipeline.
type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	JobID       string       `gorm:"size:50;not null;column:job_id" json:"job_id"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Priority    TaskPriority `gorm:"size:16;not null" json:"priority"`
	Deadline    time.Time    `gorm:"not null" json:"deadline"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`

	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"assignments,omitempty"`
	StatusLog   []TaskUpdate     `gorm:"foreignKey:TaskID" json:"status_log,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

type TaskAssignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TaskID     uint      `gorm:"index;not null;column:task_id" json:"task_id"`
	UserID     uint      `gorm:"index;not null;column:user_id" json:"user_id"`
	AssignedAt time.Time `gorm:"autoCreateTime;column:assigned_at" json:"assigned_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// TaskUpdate is an append-only status history row; the newest row per task is
// its effective status.
type TaskUpdate struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TaskID    uint       `gorm:"index;not null;column:task_id" json:"task_id"`
	UserID    uint       `gorm:"not null;column:user_id" json:"user_id"`
	Status    TaskStatus `gorm:"size:16;not null" json:"status"`
	Comment   string     `gorm:"type:text" json:"comment"`
	CreatedAt time.Time  `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (TaskUpdate) TableName() string {
	return "task_updates"
}
