package service

import (
	"testing"

	"freightflow"
	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_RecipientChain(t *testing.T) {
	setupTestDB(t)

	dispatcher := NewDispatcher()

	// Job-specific address wins.
	job := models.Job{NotificationEmail: "customer@example.com"}
	assert.Equal(t, "customer@example.com", dispatcher.resolveRecipient(job))

	// Then the configured admin address.
	cfg := freightflow.GetConfig()
	cfg.NotifyConfig.AdminEmail = "configured@example.com"
	freightflow.SetConfig(cfg)
	dispatcher = NewDispatcher()
	assert.Equal(t, "configured@example.com", dispatcher.resolveRecipient(models.Job{}))

	// Then the first admin user with an email on file.
	cfg.NotifyConfig.AdminEmail = ""
	freightflow.SetConfig(cfg)
	dispatcher = NewDispatcher()

	admin := createTestUser(t, models.RoleAdmin)
	assert.Equal(t, admin.Email, dispatcher.resolveRecipient(models.Job{}))
}

func TestNotifier_FallbackRecipient(t *testing.T) {
	setupTestDB(t)

	// No job address, no configured admin, no admin users.
	createTestUser(t, models.RoleCustomer)

	dispatcher := NewDispatcher()
	assert.Equal(t, "fallback@freightflow.local", dispatcher.resolveRecipient(models.Job{}))
}

func TestNotifier_UnconfiguredSMTPNeverSends(t *testing.T) {
	setupTestDB(t)

	admin := createTestUser(t, models.RoleAdmin)
	job := createTestJob(t, "JOB-N001", admin)

	dispatcher := NewDispatcher()
	err := dispatcher.dispatch(notifyEvent{kind: notifyJobCreated, jobID: job.ID, userID: admin.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP not configured")
}

func TestNotifier_QueueNeverBlocks(t *testing.T) {
	setupTestDB(t)

	dispatcher := NewDispatcher()
	size := cap(dispatcher.events)

	for i := 0; i < size+10; i++ {
		dispatcher.NotifyJobCreation(uint(i+1), 1)
	}
	assert.Equal(t, size, len(dispatcher.events), "Overflow events are dropped, not queued")
}

func TestNotifier_StageBodyNamesNextStage(t *testing.T) {
	body := stageCompletionBody("JOB-9", models.StageTwo, "operator1", datePtr(t, "2025-03-01").UTC())
	assert.Contains(t, body, "JOB-9")
	assert.Contains(t, body, models.StageTwo.Label())
	assert.Contains(t, body, models.StageTwo.NextLabel())
}
