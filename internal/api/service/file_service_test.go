package service

import (
	"os"
	"strings"
	"testing"

	"freightflow"
	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_UploadAndDownload(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	job := createTestJob(t, "JOB-F001", admin)
	service := NewFileService()

	file, err := service.Upload(job.ID, models.StageTwo,
		strings.NewReader("%PDF-1.4 dummy"), "checklist.pdf", "application/pdf", "Checklist copy", admin)
	require.NoError(t, err)
	require.NotZero(t, file.ID)

	assert.Equal(t, "checklist.pdf", file.OriginalName)
	assert.NotEqual(t, "checklist.pdf", file.FileName, "Stored name must be generated")
	assert.True(t, strings.HasSuffix(file.FileName, ".pdf"))
	assert.EqualValues(t, len("%PDF-1.4 dummy"), file.FileSize)

	// The blob exists on disk under the configured upload dir.
	data, err := os.ReadFile(file.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 dummy", string(data))

	// Upload appends a file_upload audit entry.
	var update models.JobUpdate
	require.NoError(t, freightflow.DB.
		Where("job_id = ? AND update_type = ?", job.ID, models.UpdateFileUpload).
		First(&update).Error)
	assert.Contains(t, update.Message, "checklist.pdf")
	assert.Equal(t, file.FileName, update.NewValue)

	got, err := service.Download(file.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, file.FilePath, got.FilePath)
}

func TestFile_List(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	job := createTestJob(t, "JOB-F002", admin)
	service := NewFileService()

	_, err := service.Upload(job.ID, models.StageTwo, strings.NewReader("a"), "a.txt", "text/plain", "", admin)
	require.NoError(t, err)
	_, err = service.Upload(job.ID, models.StageThree, strings.NewReader("b"), "b.txt", "text/plain", "", admin)
	require.NoError(t, err)

	files, err := service.List(job.ID, models.StageTwo, admin)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", files[0].OriginalName)
}

func TestFile_DeleteOwnerOrManagerOnly(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	stage2 := createTestUser(t, models.RoleStage2Employee)
	job := createTestJob(t, "JOB-F003", admin)
	service := NewFileService()

	// Move the job into stage 2 so the stage-2 employee can touch it.
	_, err := NewStageService().ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471"}, nil, admin)
	require.NoError(t, err)

	file, err := service.Upload(job.ID, models.StageTwo, strings.NewReader("x"), "x.txt", "text/plain", "", admin)
	require.NoError(t, err)

	err = service.Delete(file.ID, stage2)
	assert.ErrorIs(t, err, ErrForbidden, "Only the uploader or a manager may delete")

	require.NoError(t, service.Delete(file.ID, admin))

	_, err = os.Stat(file.FilePath)
	assert.True(t, os.IsNotExist(err), "Blob must be removed from disk")

	_, err = service.Download(file.ID, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFile_UploadAccessChecked(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	customer := createTestUser(t, models.RoleCustomer)
	job := createTestJob(t, "JOB-F004", admin)

	_, err := NewFileService().Upload(job.ID, models.StageOne,
		strings.NewReader("x"), "x.txt", "text/plain", "", customer)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = NewFileService().Upload(job.ID, models.Stage("stage9"),
		strings.NewReader("x"), "x.txt", "text/plain", "", admin)
	assert.ErrorIs(t, err, ErrValidation)
}
