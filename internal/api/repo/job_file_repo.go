package repo

import (
	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type JobFileRepository struct {
	Db *gorm.DB
}

func NewJobFileRepository() *JobFileRepository {
	return &JobFileRepository{Db: freightflow.DB}
}

func (slf *JobFileRepository) FindByID(id uint) (models.JobFile, error) {
	var file models.JobFile
	err := slf.Db.Preload("Uploader").First(&file, id).Error
	return file, err
}

func (slf *JobFileRepository) FindByJobAndStage(jobID uint, stage models.Stage) ([]models.JobFile, error) {
	var files []models.JobFile
	err := slf.Db.Where("job_id = ? AND stage = ?", jobID, stage).
		Order("created_at DESC").
		Preload("Uploader").
		Find(&files).Error
	return files, err
}

func (slf *JobFileRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.JobFile{}, id).Error
}
