package service

import (
	"testing"

	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func TestAccess_CanWriteStage(t *testing.T) {
	assert.True(t, CanWriteStage(models.RoleAdmin, models.StageTwo))
	assert.True(t, CanWriteStage(models.RoleSubadmin, models.StageFour))

	assert.True(t, CanWriteStage(models.RoleStage2Employee, models.StageTwo))
	assert.False(t, CanWriteStage(models.RoleStage2Employee, models.StageThree))

	assert.True(t, CanWriteStage(models.RoleStage3Employee, models.StageThree))
	assert.False(t, CanWriteStage(models.RoleStage3Employee, models.StageFour))

	assert.True(t, CanWriteStage(models.RoleCustomer, models.StageFour))
	assert.False(t, CanWriteStage(models.RoleCustomer, models.StageTwo))
}

func TestAccess_CanAccessJob(t *testing.T) {
	creator := models.User{ID: 7, Role: models.RoleStage1Employee}
	stranger := models.User{ID: 8, Role: models.RoleStage1Employee}
	stage2 := models.User{ID: 9, Role: models.RoleStage2Employee}
	customer := models.User{ID: 10, Role: models.RoleCustomer}
	subadmin := models.User{ID: 11, Role: models.RoleSubadmin}

	job := models.Job{ID: 1, CreatedBy: creator.ID, CurrentStage: models.StageTwo}

	assert.True(t, CanAccessJob(subadmin, job), "Managers see every job")
	assert.True(t, CanAccessJob(creator, job), "Intake staff see their own jobs in any stage")
	assert.False(t, CanAccessJob(stranger, job), "Intake staff do not see others' jobs")
	assert.True(t, CanAccessJob(stage2, job), "Stage staff see jobs currently in their stage")
	assert.False(t, CanAccessJob(customer, job), "Customers wait for stage 4")

	job.CurrentStage = models.StageFour
	assert.False(t, CanAccessJob(stage2, job))
	assert.True(t, CanAccessJob(customer, job))
}

func TestAccess_CanCreateJob(t *testing.T) {
	assert.True(t, CanCreateJob(models.RoleAdmin))
	assert.True(t, CanCreateJob(models.RoleSubadmin))
	assert.True(t, CanCreateJob(models.RoleStage1Employee))
	assert.False(t, CanCreateJob(models.RoleStage2Employee))
	assert.False(t, CanCreateJob(models.RoleCustomer))
}
