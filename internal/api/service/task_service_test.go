package service

import (
	"testing"
	"time"

	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_CreateSeedsStatusLog(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	worker := createTestUser(t, models.RoleStage2Employee)
	service := NewTaskService()

	task, err := service.Create("JOB-T001", "Verify bill of entry", models.PriorityHigh,
		time.Now().Add(48*time.Hour), []uint{worker.ID}, admin)
	require.NoError(t, err)
	require.NotZero(t, task.ID)

	require.Len(t, task.Assignments, 1)
	assert.Equal(t, worker.ID, task.Assignments[0].UserID)

	require.Len(t, task.StatusLog, 1)
	assert.Equal(t, models.TaskAssigned, task.StatusLog[0].Status)
}

func TestTask_CreateValidation(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	worker := createTestUser(t, models.RoleStage2Employee)
	service := NewTaskService()

	_, err := service.Create("JOB-T002", "x", models.TaskPriority("Urgent"),
		time.Now(), []uint{worker.ID}, admin)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Create("JOB-T002", "x", models.PriorityLow, time.Now(), nil, admin)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.Create("JOB-T002", "x", models.PriorityLow, time.Now(), []uint{99999}, admin)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Create("JOB-T002", "x", models.PriorityLow, time.Now(), []uint{worker.ID}, worker)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTask_AssigneeVisibility(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	assignee := createTestUser(t, models.RoleStage2Employee)
	other := createTestUser(t, models.RoleStage3Employee)
	service := NewTaskService()

	task, err := service.Create("JOB-T003", "Follow up with CFS", models.PriorityMedium,
		time.Now().Add(24*time.Hour), []uint{assignee.ID}, admin)
	require.NoError(t, err)

	mine, err := service.FindForUser(assignee)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, task.ID, mine[0].ID)

	none, err := service.FindForUser(other)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = service.GetByID(task.ID, other)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTask_StatusLogAppendOnly(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	assignee := createTestUser(t, models.RoleStage2Employee)
	service := NewTaskService()

	task, err := service.Create("JOB-T004", "Arrange transport", models.PriorityLow,
		time.Now().Add(24*time.Hour), []uint{assignee.ID}, admin)
	require.NoError(t, err)

	updated, err := service.UpdateStatus(task.ID, models.TaskInProgress, "Started", assignee)
	require.NoError(t, err)
	require.Len(t, updated.StatusLog, 2)
	assert.Equal(t, models.TaskInProgress, updated.StatusLog[0].Status, "Newest entry is the effective status")
	assert.Equal(t, "Started", updated.StatusLog[0].Comment)

	_, err = service.UpdateStatus(task.ID, models.TaskStatus("Paused"), "", assignee)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTask_Delete(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	assignee := createTestUser(t, models.RoleStage2Employee)
	service := NewTaskService()

	task, err := service.Create("JOB-T005", "Cleanup", models.PriorityLow,
		time.Now().Add(24*time.Hour), []uint{assignee.ID}, admin)
	require.NoError(t, err)

	assert.ErrorIs(t, service.Delete(task.ID, assignee), ErrForbidden)
	require.NoError(t, service.Delete(task.ID, admin))
	assert.ErrorIs(t, service.Delete(task.ID, admin), ErrNotFound)
}
