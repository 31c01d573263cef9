package repo

import (
	"errors"

	"freightflow"
	"freightflow/internal/api/models"

	"gorm.io/gorm"
)

type JobRepository struct {
	Db *gorm.DB
}

func NewJobRepository() *JobRepository {
	return &JobRepository{Db: freightflow.DB}
}

// FindByID retrieves the bare job row without any stage data.
func (slf *JobRepository) FindByID(id uint) (models.Job, error) {
	var job models.Job
	err := slf.Db.First(&job, id).Error
	return job, err
}

// withAggregate preloads every stage record, container set and the audit
// trail (newest first, with the acting user) onto a job query.
func (slf *JobRepository) withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Stage1").
		Preload("Stage1Containers").
		Preload("Stage2").
		Preload("Stage3").
		Preload("Stage3Containers").
		Preload("Stage4").
		Preload("Updates", func(db *gorm.DB) *gorm.DB {
			return db.Order("job_updates.created_at DESC, job_updates.id DESC").Preload("User")
		}).
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("job_files.created_at DESC").Preload("Uploader")
		})
}

// FindByIDFull retrieves the fully rehydrated job aggregate.
func (slf *JobRepository) FindByIDFull(id uint) (models.Job, error) {
	var job models.Job
	err := slf.withAggregate(slf.Db).First(&job, id).Error
	return job, err
}

func (slf *JobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := slf.withAggregate(slf.Db).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (slf *JobRepository) FindByCurrentStage(stage models.Stage) ([]models.Job, error) {
	var jobs []models.Job
	err := slf.withAggregate(slf.Db).
		Where("current_stage = ?", stage).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (slf *JobRepository) FindByCreator(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := slf.withAggregate(slf.Db).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (slf *JobRepository) ExistsByJobNo(jobNo string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.Job{}).Where("job_no = ?", jobNo).Count(&count).Error
	return count > 0, err
}

// LastJobNo returns the most recently created job number, or "" when the
// table is empty.
func (slf *JobRepository) LastJobNo() (string, error) {
	var job models.Job
	err := slf.Db.Order("id DESC").First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return job.JobNo, nil
}
