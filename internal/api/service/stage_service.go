package service

import (
	"errors"
	"fmt"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// StageService is the stage transition engine: it applies a stage's data
// update, advances the job's stage pointer forward-only and appends exactly
// one audit entry, all inside a single transaction.
type StageService struct {
	jobRepo *repo.JobRepository
	logger  zerolog.Logger
}

func NewStageService() *StageService {
	return &StageService{
		jobRepo: repo.NewJobRepository(),
		logger:  freightflow.Logger,
	}
}

// ApplyStageUpdate merges patch into the stage's data record (creating it on
// first write), replaces stage-3 containers wholesale, advances
// current_stage and records the change. Returns the rehydrated aggregate.
//
// The patch holds only the columns present in the request body; absent
// fields are left untouched. A stage-4 patch containing acknowledge_date
// moves the job to completed.
func (slf *StageService) ApplyStageUpdate(jobID uint, stage models.Stage, patch map[string]any, containers []models.Stage3Container, actor models.User) (*models.Job, error) {
	if stage != models.StageTwo && stage != models.StageThree && stage != models.StageFour {
		return nil, fmt.Errorf("%w: stage %q cannot be updated directly", ErrValidation, stage)
	}

	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("jobId", jobID).Msg("Error finding job")
		return nil, err
	}

	if !CanWriteStage(actor.Role, stage) {
		return nil, fmt.Errorf("role %s may not write %s: %w", actor.Role, stage, ErrForbidden)
	}

	completed := false
	err = slf.jobRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := slf.writeStageData(tx, jobID, stage, patch, actor); err != nil {
			return err
		}

		if stage == models.StageThree {
			if err := replaceStage3Containers(tx, jobID, containers); err != nil {
				return err
			}
		}

		target := stage
		if stage == models.StageFour && patchHasValue(patch, "acknowledge_date") {
			target = models.StageCompleted
		}

		previous := job.CurrentStage
		if previous.Before(target) {
			if err := tx.Model(&models.Job{}).Where("id = ?", jobID).
				Update("current_stage", target).Error; err != nil {
				return err
			}
			completed = target == models.StageCompleted
		}

		update := models.JobUpdate{
			JobID:      jobID,
			UserID:     actor.ID,
			Stage:      stage,
			UpdateType: models.UpdateDataUpdate,
			Message:    fmt.Sprintf("%s data updated", stage.Label()),
		}
		if completed {
			update.UpdateType = models.UpdateStageCompletion
			update.Message = "Job completed"
		}
		return tx.Create(&update).Error
	})
	if err != nil {
		slf.logger.Error().Err(err).Uint("jobId", jobID).Str("stage", string(stage)).Msg("Stage update failed")
		return nil, err
	}

	full, err := slf.jobRepo.FindByIDFull(jobID)
	if err != nil {
		return nil, err
	}
	return &full, nil
}

// writeStageData find-or-creates the per-stage record and merge-updates it.
func (slf *StageService) writeStageData(tx *gorm.DB, jobID uint, stage models.Stage, patch map[string]any, actor models.User) error {
	switch stage {
	case models.StageTwo:
		var data models.Stage2Data
		err := tx.Where("job_id = ?", jobID).First(&data).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			data = models.Stage2Data{JobID: jobID, CreatedBy: &actor.ID}
			if err := tx.Create(&data).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return applyPatch(tx.Model(&data), patch, actor.ID)
	case models.StageThree:
		var data models.Stage3Data
		err := tx.Where("job_id = ?", jobID).First(&data).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			data = models.Stage3Data{JobID: jobID, CreatedBy: &actor.ID}
			if err := tx.Create(&data).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		return applyPatch(tx.Model(&data), patch, actor.ID)
	case models.StageFour:
		var data models.Stage4Data
		err := tx.Where("job_id = ?", jobID).First(&data).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			data = models.Stage4Data{JobID: jobID}
			if err := tx.Create(&data).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if len(patch) == 0 {
			return nil
		}
		// stage4_data carries no updated_by column
		return tx.Model(&data).Updates(patch).Error
	default:
		return fmt.Errorf("%w: stage %q cannot be updated directly", ErrValidation, stage)
	}
}

func applyPatch(db *gorm.DB, patch map[string]any, actorID uint) error {
	merged := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		merged[k] = v
	}
	merged["updated_by"] = actorID
	return db.Updates(merged).Error
}

// replaceStage3Containers implements total replacement: every existing row
// goes, the supplied set comes in.
func replaceStage3Containers(tx *gorm.DB, jobID uint, containers []models.Stage3Container) error {
	if err := tx.Where("job_id = ?", jobID).Delete(&models.Stage3Container{}).Error; err != nil {
		return err
	}
	if len(containers) == 0 {
		return nil
	}
	for i := range containers {
		containers[i].ID = 0
		containers[i].JobID = jobID
	}
	return tx.Create(&containers).Error
}

func patchHasValue(patch map[string]any, key string) bool {
	v, ok := patch[key]
	return ok && v != nil
}
