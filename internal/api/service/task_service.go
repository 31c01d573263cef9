package service

import (
	"errors"
	"fmt"
	"time"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type TaskService struct {
	taskRepo *repo.TaskRepository
	userRepo *repo.UserRepository
	logger   zerolog.Logger
}

func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo: repo.NewTaskRepository(),
		userRepo: repo.NewUserRepository(),
		logger:   freightflow.Logger,
	}
}

// Create opens a task, assigns it to the given users and seeds the status
// log with an Assigned entry, all in one transaction.
func (slf *TaskService) Create(jobID, description string, priority models.TaskPriority, deadline time.Time, assigneeIDs []uint, actor models.User) (*models.Task, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not create tasks: %w", actor.Role, ErrForbidden)
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q: %w", priority, ErrValidation)
	}
	if len(assigneeIDs) == 0 {
		return nil, fmt.Errorf("at least one assignee is required: %w", ErrValidation)
	}

	for _, id := range assigneeIDs {
		if _, err := slf.userRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("assignee %d: %w", id, ErrNotFound)
			}
			return nil, err
		}
	}

	task := models.Task{
		JobID:       jobID,
		Description: description,
		Priority:    priority,
		Deadline:    deadline,
	}
	err := slf.taskRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		for _, id := range assigneeIDs {
			if err := tx.Create(&models.TaskAssignment{TaskID: task.ID, UserID: id}).Error; err != nil {
				return err
			}
		}
		return tx.Create(&models.TaskUpdate{
			TaskID: task.ID,
			UserID: actor.ID,
			Status: models.TaskAssigned,
		}).Error
	})
	if err != nil {
		slf.logger.Error().Err(err).Str("jobId", jobID).Msg("Error creating task")
		return nil, err
	}

	full, err := slf.taskRepo.FindByID(task.ID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// FindForUser lists tasks: managers see all, everyone else only their
// assignments.
func (slf *TaskService) FindForUser(user models.User) ([]models.Task, error) {
	if user.Role.IsManager() {
		return slf.taskRepo.FindAll()
	}
	return slf.taskRepo.FindByAssignee(user.ID)
}

func (slf *TaskService) GetByID(id uint, user models.User) (*models.Task, error) {
	task, err := slf.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if !user.Role.IsManager() && !assignedTo(task, user.ID) {
		return nil, fmt.Errorf("task %d: %w", id, ErrForbidden)
	}
	return &task, nil
}

// UpdateStatus appends a status-log row. Assignees and managers only.
func (slf *TaskService) UpdateStatus(id uint, status models.TaskStatus, comment string, actor models.User) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, ErrValidation)
	}

	task, err := slf.GetByID(id, actor)
	if err != nil {
		return nil, err
	}

	err = slf.taskRepo.Db.Create(&models.TaskUpdate{
		TaskID:  task.ID,
		UserID:  actor.ID,
		Status:  status,
		Comment: comment,
	}).Error
	if err != nil {
		slf.logger.Error().Err(err).Uint("taskId", id).Msg("Error updating task status")
		return nil, err
	}

	full, err := slf.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

func (slf *TaskService) Delete(id uint, actor models.User) error {
	if !actor.Role.IsManager() {
		return fmt.Errorf("role %s may not delete tasks: %w", actor.Role, ErrForbidden)
	}
	if _, err := slf.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return err
	}
	return slf.taskRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskUpdate{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

func assignedTo(task models.Task, userID uint) bool {
	for _, a := range task.Assignments {
		if a.UserID == userID {
			return true
		}
	}
	return false
}
