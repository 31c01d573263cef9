package service

import (
	"testing"

	"freightflow"
	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJob_Create(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	created, err := service.Create(
		models.Job{JobNo: "JOB-1001", NotificationEmail: "ops@example.com"},
		models.Stage1Data{Consignee: "Acme Imports", HblNo: "HBL-9"},
		[]models.Stage1Container{
			{ContainerNo: "MSKU1234567"},
			{ContainerNo: "MSKU7654321", ContainerSize: "40"},
		},
		admin,
	)
	require.NoError(t, err, "Failed to create job")
	require.NotZero(t, created.ID)

	assert.Equal(t, "JOB-1001", created.JobNo)
	assert.Equal(t, models.StageOne, created.CurrentStage)
	assert.Equal(t, "active", created.Status)
	assert.Equal(t, admin.ID, created.CreatedBy)

	require.NotNil(t, created.Stage1)
	assert.Equal(t, "Acme Imports", created.Stage1.Consignee)
	assert.Equal(t, "JOB-1001", created.Stage1.JobNo)

	require.Len(t, created.Stage1Containers, 2)
	assert.Equal(t, "20", created.Stage1Containers[0].ContainerSize, "Container size should default to 20")
	assert.Equal(t, "40", created.Stage1Containers[1].ContainerSize)

	require.Len(t, created.Updates, 1)
	assert.Equal(t, models.UpdateStatusChange, created.Updates[0].UpdateType)
	assert.Equal(t, "Job created", created.Updates[0].Message)
}

func TestJob_Create_DuplicateJobNoRollsBack(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	createTestJob(t, "JOB-2001", admin)

	_, err := service.Create(
		models.Job{JobNo: "JOB-2001"},
		models.Stage1Data{Consignee: "Duplicate Co"},
		nil,
		admin,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	// Nothing from the failed attempt may persist.
	var stage1Count int64
	require.NoError(t, freightflow.DB.Model(&models.Stage1Data{}).
		Where("consignee = ?", "Duplicate Co").Count(&stage1Count).Error)
	assert.Zero(t, stage1Count)

	var jobCount int64
	require.NoError(t, freightflow.DB.Model(&models.Job{}).
		Where("job_no = ?", "JOB-2001").Count(&jobCount).Error)
	assert.EqualValues(t, 1, jobCount)
}

func TestJob_Create_RoleGate(t *testing.T) {
	setupTestDB(t)

	service := NewJobService()

	for _, role := range []models.Role{models.RoleStage2Employee, models.RoleStage3Employee, models.RoleCustomer} {
		user := createTestUser(t, role)
		_, err := service.Create(models.Job{JobNo: "JOB-" + string(role)}, models.Stage1Data{}, nil, user)
		assert.ErrorIs(t, err, ErrForbidden, "role %s must not create jobs", role)
	}

	intake := createTestUser(t, models.RoleStage1Employee)
	_, err := service.Create(models.Job{JobNo: "JOB-3001"}, models.Stage1Data{}, nil, intake)
	assert.NoError(t, err, "intake staff must be able to create jobs")
}

func TestJob_Create_MissingJobNo(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	_, err := NewJobService().Create(models.Job{JobNo: "  "}, models.Stage1Data{}, nil, admin)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestJob_Update_ReplacesContainers(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	job := createTestJob(t, "JOB-4001", admin)
	require.Len(t, job.Stage1Containers, 1)

	updated, err := service.Update(job.ID,
		map[string]any{"notification_email": "new@example.com"},
		map[string]any{"consignee": "Updated Imports"},
		[]models.Stage1Container{
			{ContainerNo: "TCLU0000001"},
			{ContainerNo: "TCLU0000002"},
		},
		admin,
	)
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.NotificationEmail)
	require.NotNil(t, updated.Stage1)
	assert.Equal(t, "Updated Imports", updated.Stage1.Consignee)

	require.Len(t, updated.Stage1Containers, 2)
	nos := []string{updated.Stage1Containers[0].ContainerNo, updated.Stage1Containers[1].ContainerNo}
	assert.NotContains(t, nos, "MSKU1234567", "Old containers must be replaced")
}

func TestJob_Update_ManagerOnly(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	intake := createTestUser(t, models.RoleStage1Employee)

	job := createTestJob(t, "JOB-4002", admin)

	_, err := NewJobService().Update(job.ID, nil, map[string]any{"consignee": "X"}, nil, intake)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestJob_FindForRole(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	intake := createTestUser(t, models.RoleStage1Employee)
	stage2 := createTestUser(t, models.RoleStage2Employee)
	service := NewJobService()

	mine := createTestJob(t, "JOB-5001", intake)
	other := createTestJob(t, "JOB-5002", admin)

	// Push the admin's job into stage 2.
	_, err := NewStageService().ApplyStageUpdate(other.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471"}, nil, admin)
	require.NoError(t, err)

	adminJobs, err := service.FindForRole(admin)
	require.NoError(t, err)
	assert.Len(t, adminJobs, 2, "Managers see everything")

	intakeJobs, err := service.FindForRole(intake)
	require.NoError(t, err)
	require.Len(t, intakeJobs, 1)
	assert.Equal(t, mine.ID, intakeJobs[0].ID, "Intake staff see only their own jobs")

	stage2Jobs, err := service.FindForRole(stage2)
	require.NoError(t, err)
	require.Len(t, stage2Jobs, 1)
	assert.Equal(t, other.ID, stage2Jobs[0].ID, "Stage staff see the jobs sitting in their stage")
}

func TestJob_FindForUser_AccessDenied(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	customer := createTestUser(t, models.RoleCustomer)
	service := NewJobService()

	job := createTestJob(t, "JOB-6001", admin)

	_, err := service.FindForUser(job.ID, customer)
	assert.ErrorIs(t, err, ErrForbidden, "Customers cannot see jobs before stage 4")

	_, err = service.FindForUser(99999, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJob_NextJobNumber(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	next, err := service.NextJobNumber()
	require.NoError(t, err)
	assert.Equal(t, "JOB-0001", next, "Empty table starts the default sequence")

	createTestJob(t, "JOB-9001", admin)

	next, err = service.NextJobNumber()
	require.NoError(t, err)
	assert.Equal(t, "JOB-9002", next)

	createTestJob(t, "IMP/25/0099", admin)

	next, err = service.NextJobNumber()
	require.NoError(t, err)
	assert.Equal(t, "IMP/25/0100", next, "Zero padding is preserved")
}

func TestJob_JobNumberExists(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	createTestJob(t, "JOB-7001", admin)

	exists, err := service.JobNumberExists("JOB-7001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = service.JobNumberExists("JOB-7002")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestJob_Updates_Timeline(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewJobService()

	job := createTestJob(t, "JOB-8001", admin)
	_, err := NewStageService().ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471"}, nil, admin)
	require.NoError(t, err)

	updates, err := service.Updates(job.ID, admin)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, models.UpdateDataUpdate, updates[0].UpdateType, "Newest entry first")

	history, err := service.StageHistory(job.ID, admin)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
