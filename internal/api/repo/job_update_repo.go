package repo

import (
	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type JobUpdateRepository struct {
	Db *gorm.DB
}

func NewJobUpdateRepository() *JobUpdateRepository {
	return &JobUpdateRepository{Db: freightflow.DB}
}

func (slf *JobUpdateRepository) Create(update *models.JobUpdate) error {
	return slf.Db.Create(update).Error
}

func (slf *JobUpdateRepository) FindByJob(jobID uint) ([]models.JobUpdate, error) {
	var updates []models.JobUpdate
	err := slf.Db.Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Preload("User").
		Find(&updates).Error
	return updates, err
}

// FindRecentByJob returns the newest limit entries for a job.
func (slf *JobUpdateRepository) FindRecentByJob(jobID uint, limit int) ([]models.JobUpdate, error) {
	var updates []models.JobUpdate
	err := slf.Db.Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Preload("User").
		Find(&updates).Error
	return updates, err
}
