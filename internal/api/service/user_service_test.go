package service

import (
	"testing"

	"freightflow/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_CreateAndLogin(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()

	created, err := service.Create("operator1", "s3cret-pass", "Clearance Officer", "op1@example.com", models.RoleStage2Employee)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, models.RoleStage2Employee, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.PasswordHash, "Password must be hashed")

	user, token, err := service.Login("operator1", "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)
}

func TestUser_LoginWrongPassword(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()

	_, err := service.Create("operator2", "correct-pass", "", "", models.RoleCustomer)
	require.NoError(t, err)

	_, _, err = service.Login("operator2", "wrong-pass")
	assert.Error(t, err)

	_, _, err = service.Login("nobody", "whatever")
	assert.Error(t, err)
}

func TestUser_CreateDuplicateUsername(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()

	_, err := service.Create("duplicate", "password-1", "", "", models.RoleAdmin)
	require.NoError(t, err)

	_, err = service.Create("duplicate", "password-2", "", "", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUser_CreateUnknownRole(t *testing.T) {
	setupTestDB(t)

	_, err := NewUserService().Create("badrole", "password-1", "", "", models.Role("superuser"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUser_Delete(t *testing.T) {
	setupTestDB(t)

	service := NewUserService()

	created, err := service.Create("deleteme", "password-1", "", "", models.RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, service.Delete(created.ID))

	_, err = service.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(99999), ErrNotFound)
}
