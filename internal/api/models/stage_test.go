package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStage_Ordering(t *testing.T) {
	assert.True(t, StageOne.Before(StageTwo))
	assert.True(t, StageFour.Before(StageCompleted))
	assert.False(t, StageCompleted.Before(StageFour))
	assert.False(t, StageTwo.Before(StageTwo))

	assert.False(t, Stage("stage9").Valid())
	assert.True(t, StageCompleted.Valid())
}

func TestRole_OwnStage(t *testing.T) {
	assert.Equal(t, StageTwo, RoleStage2Employee.OwnStage())
	assert.Equal(t, StageFour, RoleCustomer.OwnStage())
	assert.Equal(t, Stage(""), RoleAdmin.OwnStage())

	assert.True(t, RoleSubadmin.IsManager())
	assert.False(t, RoleSubadmin.IsAdmin())
	assert.False(t, Role("superuser").Valid())
}
