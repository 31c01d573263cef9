package service

import (
	"fmt"
	"testing"
	"time"

	"freightflow"
	"freightflow/internal/api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB backs the global DB with a fresh in-memory sqlite store and
// migrates the full schema. Each test gets its own database.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to open test database")

	conn, err := db.DB()
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Stage1Data{},
		&models.Stage1Container{},
		&models.Stage2Data{},
		&models.Stage3Data{},
		&models.Stage3Container{},
		&models.Stage4Data{},
		&models.JobUpdate{},
		&models.JobFile{},
		&models.Task{},
		&models.TaskAssignment{},
		&models.TaskUpdate{},
		&models.Shipper{},
		&models.Consignee{},
	)
	require.NoError(t, err, "Failed to migrate test schema")

	freightflow.DB = db
	freightflow.Redis = nil

	var cfg freightflow.AppConfig
	cfg.Mode = "test"
	cfg.UploadDir = t.TempDir()
	cfg.JWTConfig.Secret = "test-secret"
	cfg.JWTConfig.Expiration = 60
	cfg.NotifyConfig.FallbackEmail = "fallback@freightflow.local"
	cfg.NotifyConfig.QueueSize = 8
	freightflow.SetConfig(cfg)
}

var testUserSeq int

func createTestUser(t *testing.T, role models.Role) models.User {
	t.Helper()

	testUserSeq++
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     fmt.Sprintf("%s_%d", role, testUserSeq),
		PasswordHash: string(hashed),
		Designation:  "Test",
		Role:         role,
		Email:        fmt.Sprintf("%s_%d@example.com", role, testUserSeq),
	}
	require.NoError(t, freightflow.DB.Create(&user).Error)
	return user
}

// createTestJob opens a job through the service so stage-1 data and the
// creation audit entry exist.
func createTestJob(t *testing.T, jobNo string, actor models.User) *models.Job {
	t.Helper()

	job, err := NewJobService().Create(
		models.Job{JobNo: jobNo, NotificationEmail: ""},
		models.Stage1Data{Consignee: "Acme Imports", Shipper: "Globex"},
		[]models.Stage1Container{{ContainerNo: "MSKU1234567"}},
		actor,
	)
	require.NoError(t, err)
	return job
}

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &ts
}
