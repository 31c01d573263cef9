package service

import (
	"testing"

	"freightflow"
	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_AdvanceThroughPipeline(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1101", admin)
	assert.Equal(t, models.StageOne, job.CurrentStage)

	job2, err := service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471", "bill_of_entry_no": "BOE-77"}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageTwo, job2.CurrentStage)
	require.NotNil(t, job2.Stage2)
	assert.Equal(t, "8471", job2.Stage2.HsnCode)
	assert.Equal(t, "BOE-77", job2.Stage2.BillOfEntryNo)

	job3, err := service.ApplyStageUpdate(job.ID, models.StageThree,
		map[string]any{"custodian": "CFS West"}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageThree, job3.CurrentStage)

	job4, err := service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"bill_no": "INV-1"}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageFour, job4.CurrentStage, "Billing without acknowledgement stays in stage 4")
}

func TestStage_AcknowledgeCompletesJob(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1102", admin)

	done, err := service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"bill_no": "INV-9", "acknowledge_date": datePtr(t, "2025-03-01")}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, done.CurrentStage)

	require.NotEmpty(t, done.Updates)
	assert.Equal(t, models.UpdateStageCompletion, done.Updates[0].UpdateType)
	assert.Equal(t, "Job completed", done.Updates[0].Message)
}

func TestStage_NeverMovesBackward(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1103", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"acknowledge_date": datePtr(t, "2025-03-01")}, nil, admin)
	require.NoError(t, err)

	// A later stage-2 correction must not regress the pointer.
	after, err := service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "9999"}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, after.CurrentStage)
	require.NotNil(t, after.Stage2)
	assert.Equal(t, "9999", after.Stage2.HsnCode, "The data edit itself still lands")
}

func TestStage_CompletionIsIdempotent(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1104", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"acknowledge_date": datePtr(t, "2025-03-01")}, nil, admin)
	require.NoError(t, err)

	again, err := service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"acknowledge_date": datePtr(t, "2025-03-02")}, nil, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, again.CurrentStage)

	// The repeat is recorded as a plain data update, not a second completion.
	var completions int64
	require.NoError(t, freightflow.DB.Model(&models.JobUpdate{}).
		Where("job_id = ? AND update_type = ?", job.ID, models.UpdateStageCompletion).
		Count(&completions).Error)
	assert.EqualValues(t, 1, completions)
}

func TestStage_ExactlyOneAuditEntryPerUpdate(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1105", admin)

	before := int64(0)
	require.NoError(t, freightflow.DB.Model(&models.JobUpdate{}).
		Where("job_id = ?", job.ID).Count(&before).Error)

	_, err := service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471", "drn_no": "DRN-1", "irn_no": "IRN-1"}, nil, admin)
	require.NoError(t, err)

	var after int64
	require.NoError(t, freightflow.DB.Model(&models.JobUpdate{}).
		Where("job_id = ?", job.ID).Count(&after).Error)
	assert.Equal(t, before+1, after, "A multi-field patch writes exactly one audit entry")
}

func TestStage_Stage3ContainersReplacedWholesale(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1106", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageThree,
		map[string]any{"custodian": "CFS West"},
		[]models.Stage3Container{
			{ContainerNo: "MSKU0000001", Size: "20"},
			{ContainerNo: "MSKU0000002", Size: "40"},
		}, admin)
	require.NoError(t, err)

	updated, err := service.ApplyStageUpdate(job.ID, models.StageThree,
		map[string]any{},
		[]models.Stage3Container{
			{ContainerNo: "TCLU0000009", Size: "40", VehicleNo: "MH-04-AB-1234"},
		}, admin)
	require.NoError(t, err)

	require.Len(t, updated.Stage3Containers, 1)
	assert.Equal(t, "TCLU0000009", updated.Stage3Containers[0].ContainerNo)
	assert.Equal(t, "MH-04-AB-1234", updated.Stage3Containers[0].VehicleNo)
}

func TestStage_PartialPatchLeavesOtherFields(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1107", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "8471", "drn_no": "DRN-5"}, nil, admin)
	require.NoError(t, err)

	updated, err := service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"drn_no": "DRN-6"}, nil, admin)
	require.NoError(t, err)

	require.NotNil(t, updated.Stage2)
	assert.Equal(t, "DRN-6", updated.Stage2.DrnNo)
	assert.Equal(t, "8471", updated.Stage2.HsnCode, "Absent fields stay untouched")
}

func TestStage_RoleGates(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	stage2 := createTestUser(t, models.RoleStage2Employee)
	stage3 := createTestUser(t, models.RoleStage3Employee)
	customer := createTestUser(t, models.RoleCustomer)
	service := NewStageService()

	job := createTestJob(t, "JOB-1108", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageThree,
		map[string]any{"custodian": "X"}, nil, stage2)
	assert.ErrorIs(t, err, ErrForbidden, "Stage-2 staff cannot write stage 3")

	_, err = service.ApplyStageUpdate(job.ID, models.StageTwo,
		map[string]any{"hsn_code": "1"}, nil, customer)
	assert.ErrorIs(t, err, ErrForbidden, "Customers cannot write stage 2")

	_, err = service.ApplyStageUpdate(job.ID, models.StageThree,
		map[string]any{"custodian": "CFS"}, nil, stage3)
	assert.NoError(t, err, "Stage-3 staff write their own stage")

	_, err = service.ApplyStageUpdate(job.ID, models.StageFour,
		map[string]any{"bill_no": "INV-2"}, nil, customer)
	assert.NoError(t, err, "Customers write the billing stage")
}

func TestStage_InvalidTargets(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	service := NewStageService()

	job := createTestJob(t, "JOB-1109", admin)

	_, err := service.ApplyStageUpdate(job.ID, models.StageOne, map[string]any{}, nil, admin)
	assert.ErrorIs(t, err, ErrValidation, "Stage 1 is edited through the job update path")

	_, err = service.ApplyStageUpdate(job.ID, models.Stage("stage9"), map[string]any{}, nil, admin)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.ApplyStageUpdate(99999, models.StageTwo, map[string]any{}, nil, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}
