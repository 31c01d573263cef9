package repo

import (
	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type TaskRepository struct {
	Db *gorm.DB
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{Db: freightflow.DB}
}

func (slf *TaskRepository) FindByID(id uint) (models.Task, error) {
	var task models.Task
	err := slf.Db.
		Preload("Assignments.User").
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.id DESC")
		}).
		First(&task, id).Error
	return task, err
}

func (slf *TaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	err := slf.Db.
		Preload("Assignments.User").
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.id DESC")
		}).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// FindByAssignee returns tasks the user is assigned to.
func (slf *TaskRepository) FindByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := slf.Db.
		Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
		Where("task_assignments.user_id = ?", userID).
		Preload("StatusLog", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_updates.id DESC")
		}).
		Order("tasks.created_at DESC").
		Find(&tasks).Error
	return tasks, err
}
