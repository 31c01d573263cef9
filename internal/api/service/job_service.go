package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type JobService struct {
	jobRepo    *repo.JobRepository
	updateRepo *repo.JobUpdateRepository
	logger     zerolog.Logger
}

func NewJobService() *JobService {
	return &JobService{
		jobRepo:    repo.NewJobRepository(),
		updateRepo: repo.NewJobUpdateRepository(),
		logger:     freightflow.Logger,
	}
}

// Create opens a new job: the job row, its stage-1 intake record, any intake
// containers and the "Job created" audit entry land in one transaction. A
// duplicate job number fails with ErrConflict and persists nothing.
func (slf *JobService) Create(job models.Job, stage1 models.Stage1Data, containers []models.Stage1Container, actor models.User) (*models.Job, error) {
	if !CanCreateJob(actor.Role) {
		return nil, fmt.Errorf("role %s may not create jobs: %w", actor.Role, ErrForbidden)
	}
	if strings.TrimSpace(job.JobNo) == "" {
		return nil, fmt.Errorf("job number is required: %w", ErrValidation)
	}

	job.CurrentStage = models.StageOne
	job.Status = "active"
	job.CreatedBy = actor.ID

	err := slf.jobRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&job).Error; err != nil {
			return err
		}

		stage1.JobID = job.ID
		stage1.JobNo = job.JobNo
		stage1.CreatedBy = &actor.ID
		if err := tx.Create(&stage1).Error; err != nil {
			return err
		}

		for i := range containers {
			containers[i].ID = 0
			containers[i].JobID = job.ID
			if containers[i].ContainerSize == "" {
				containers[i].ContainerSize = "20"
			}
		}
		if len(containers) > 0 {
			if err := tx.Create(&containers).Error; err != nil {
				return err
			}
		}

		return tx.Create(&models.JobUpdate{
			JobID:      job.ID,
			UserID:     actor.ID,
			Stage:      models.StageOne,
			UpdateType: models.UpdateStatusChange,
			Message:    "Job created",
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("job number %s: %w", job.JobNo, ErrConflict)
		}
		slf.logger.Error().Err(err).Str("jobNo", job.JobNo).Msg("Error creating job")
		return nil, err
	}

	full, err := slf.jobRepo.FindByIDFull(job.ID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// Update edits the job-level fields and stage-1 intake data (admin path).
// Containers, when supplied, replace the existing stage-1 set.
func (slf *JobService) Update(jobID uint, jobPatch map[string]any, stage1Patch map[string]any, containers []models.Stage1Container, actor models.User) (*models.Job, error) {
	if !actor.Role.IsManager() {
		return nil, fmt.Errorf("role %s may not edit jobs: %w", actor.Role, ErrForbidden)
	}

	if _, err := slf.findJob(jobID); err != nil {
		return nil, err
	}

	err := slf.jobRepo.Db.Transaction(func(tx *gorm.DB) error {
		if len(jobPatch) > 0 {
			if err := tx.Model(&models.Job{}).Where("id = ?", jobID).Updates(jobPatch).Error; err != nil {
				return err
			}
		}

		if len(stage1Patch) > 0 {
			var data models.Stage1Data
			err := tx.Where("job_id = ?", jobID).First(&data).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				data = models.Stage1Data{JobID: jobID, CreatedBy: &actor.ID}
				if err := tx.Create(&data).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			if err := applyPatch(tx.Model(&data), stage1Patch, actor.ID); err != nil {
				return err
			}
		}

		if containers != nil {
			if err := tx.Where("job_id = ?", jobID).Delete(&models.Stage1Container{}).Error; err != nil {
				return err
			}
			for i := range containers {
				containers[i].ID = 0
				containers[i].JobID = jobID
				if containers[i].ContainerSize == "" {
					containers[i].ContainerSize = "20"
				}
			}
			if len(containers) > 0 {
				if err := tx.Create(&containers).Error; err != nil {
					return err
				}
			}
		}

		return tx.Create(&models.JobUpdate{
			JobID:      jobID,
			UserID:     actor.ID,
			Stage:      models.StageOne,
			UpdateType: models.UpdateDataUpdate,
			Message:    "Job data updated",
		}).Error
	})
	if err != nil {
		slf.logger.Error().Err(err).Uint("jobId", jobID).Msg("Error updating job")
		return nil, err
	}

	full, err := slf.jobRepo.FindByIDFull(jobID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// FindForUser returns the rehydrated aggregate after the access check.
func (slf *JobService) FindForUser(jobID uint, user models.User) (*models.Job, error) {
	job, err := slf.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !CanAccessJob(user, *job) {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrForbidden)
	}
	full, err := slf.jobRepo.FindByIDFull(jobID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// FindAll returns every job; caller enforces the manager gate.
func (slf *JobService) FindAll() ([]models.Job, error) {
	return slf.jobRepo.FindAll()
}

// FindForRole implements the "my jobs" listing: managers see everything,
// stage-1 employees their own jobs, the other roles the jobs currently in
// their stage.
func (slf *JobService) FindForRole(user models.User) ([]models.Job, error) {
	if user.Role.IsManager() {
		return slf.jobRepo.FindAll()
	}
	switch user.Role {
	case models.RoleStage1Employee:
		return slf.jobRepo.FindByCreator(user.ID)
	case models.RoleStage2Employee:
		return slf.jobRepo.FindByCurrentStage(models.StageTwo)
	case models.RoleStage3Employee:
		return slf.jobRepo.FindByCurrentStage(models.StageThree)
	case models.RoleCustomer:
		return slf.jobRepo.FindByCurrentStage(models.StageFour)
	default:
		return nil, fmt.Errorf("role %s: %w", user.Role, ErrForbidden)
	}
}

// Updates returns the audit timeline, newest first.
func (slf *JobService) Updates(jobID uint, user models.User) ([]models.JobUpdate, error) {
	job, err := slf.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !CanAccessJob(user, *job) {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrForbidden)
	}
	return slf.updateRepo.FindByJob(jobID)
}

// StageHistory returns the two most recent audit entries.
func (slf *JobService) StageHistory(jobID uint, user models.User) ([]models.JobUpdate, error) {
	job, err := slf.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if !CanAccessJob(user, *job) {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrForbidden)
	}
	return slf.updateRepo.FindRecentByJob(jobID, 2)
}

func (slf *JobService) JobNumberExists(jobNo string) (bool, error) {
	return slf.jobRepo.ExistsByJobNo(jobNo)
}

// NextJobNumber proposes the next job number by incrementing the numeric
// suffix of the most recent one, preserving prefix and zero padding.
func (slf *JobService) NextJobNumber() (string, error) {
	last, err := slf.jobRepo.LastJobNo()
	if err != nil {
		return "", err
	}
	if last == "" {
		return "JOB-0001", nil
	}

	i := len(last)
	for i > 0 && last[i-1] >= '0' && last[i-1] <= '9' {
		i--
	}
	if i == len(last) {
		return last + "-0001", nil
	}

	n, err := strconv.Atoi(last[i:])
	if err != nil {
		return "", err
	}
	width := len(last) - i
	return fmt.Sprintf("%s%0*d", last[:i], width, n+1), nil
}

func (slf *JobService) findJob(jobID uint) (*models.Job, error) {
	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("jobId", jobID).Msg("Error finding job")
		return nil, err
	}
	return &job, nil
}
