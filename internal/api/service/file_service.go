package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type FileService struct {
	fileRepo *repo.JobFileRepository
	jobRepo  *repo.JobRepository
	logger   zerolog.Logger
}

func NewFileService() *FileService {
	return &FileService{
		fileRepo: repo.NewJobFileRepository(),
		jobRepo:  repo.NewJobRepository(),
		logger:   freightflow.Logger,
	}
}

// Upload stores the blob under the upload directory and records the metadata
// row plus a file-upload audit entry in one transaction. A failed transaction
// removes the blob again.
func (slf *FileService) Upload(jobID uint, stage models.Stage, src io.Reader, originalName, contentType, description string, actor models.User) (*models.JobFile, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("unknown stage %q: %w", stage, ErrValidation)
	}

	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return nil, err
	}
	if !CanAccessJob(actor, job) {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrForbidden)
	}

	uploadDir := freightflow.GetConfig().UploadDir
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedName := uuid.NewString() + filepath.Ext(originalName)
	fullPath := filepath.Join(uploadDir, storedName)

	size, err := writeBlob(fullPath, src)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	file := models.JobFile{
		JobID:        jobID,
		Stage:        stage,
		UploadedBy:   actor.ID,
		FileName:     storedName,
		OriginalName: originalName,
		FilePath:     fullPath,
		FileSize:     size,
		FileType:     contentType,
		Description:  description,
	}

	err = slf.fileRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&file).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobUpdate{
			JobID:      jobID,
			UserID:     actor.ID,
			Stage:      stage,
			UpdateType: models.UpdateFileUpload,
			Message:    fmt.Sprintf("File uploaded: %s", originalName),
			NewValue:   storedName,
		}).Error
	})
	if err != nil {
		os.Remove(fullPath)
		slf.logger.Error().Err(err).Uint("jobId", jobID).Msg("Error recording file upload")
		return nil, err
	}

	slf.logger.Info().Uint("jobId", jobID).Str("file", storedName).Msg("File uploaded")
	return &file, nil
}

// List returns the attachments of one stage of a job, newest first.
func (slf *FileService) List(jobID uint, stage models.Stage, actor models.User) ([]models.JobFile, error) {
	job, err := slf.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return nil, err
	}
	if !CanAccessJob(actor, job) {
		return nil, fmt.Errorf("job %d: %w", jobID, ErrForbidden)
	}
	return slf.fileRepo.FindByJobAndStage(jobID, stage)
}

// Download resolves the metadata row and verifies the blob still exists.
func (slf *FileService) Download(fileID uint, actor models.User) (*models.JobFile, error) {
	file, err := slf.fileRepo.FindByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file %d: %w", fileID, ErrNotFound)
		}
		return nil, err
	}

	job, err := slf.jobRepo.FindByID(file.JobID)
	if err != nil {
		return nil, err
	}
	if !CanAccessJob(actor, job) {
		return nil, fmt.Errorf("file %d: %w", fileID, ErrForbidden)
	}

	if _, err := os.Stat(file.FilePath); err != nil {
		slf.logger.Warn().Str("path", file.FilePath).Msg("File missing on disk")
		return nil, fmt.Errorf("file %d: %w", fileID, ErrNotFound)
	}
	return &file, nil
}

// Delete removes the blob and the metadata row. Only the uploader or a
// manager may delete.
func (slf *FileService) Delete(fileID uint, actor models.User) error {
	file, err := slf.fileRepo.FindByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("file %d: %w", fileID, ErrNotFound)
		}
		return err
	}
	if file.UploadedBy != actor.ID && !actor.Role.IsManager() {
		return fmt.Errorf("file %d: %w", fileID, ErrForbidden)
	}

	if err := os.Remove(file.FilePath); err != nil && !os.IsNotExist(err) {
		slf.logger.Warn().Err(err).Str("path", file.FilePath).Msg("Failed to remove file from disk")
	}

	return slf.fileRepo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.JobFile{}, fileID).Error; err != nil {
			return err
		}
		return tx.Create(&models.JobUpdate{
			JobID:      file.JobID,
			UserID:     actor.ID,
			Stage:      file.Stage,
			UpdateType: models.UpdateDataUpdate,
			Message:    fmt.Sprintf("File deleted: %s", file.OriginalName),
			OldValue:   file.FileName,
		}).Error
	})
}

func writeBlob(path string, src io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	size, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}
	return size, nil
}
