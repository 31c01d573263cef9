package service

import (
	"freightflow/internal/api/models"
)

// Access control predicates. Pure functions over the closed role/stage enums;
// job existence is checked by the caller before these run.

// CanWriteStage reports whether a role may write the given stage's data on
// any job. Managers write everything; each stage employee writes their own
// stage; customers write the stage-4 billing acknowledgement.
func CanWriteStage(role models.Role, stage models.Stage) bool {
	if role.IsManager() {
		return true
	}
	own := role.OwnStage()
	return own != "" && own == stage
}

// CanAccessJob reports whether a user may read a job. Stage-1 employees see
// the jobs they created; stage-2/3 employees and customers see jobs currently
// sitting in their stage. Unknown roles are denied.
func CanAccessJob(user models.User, job models.Job) bool {
	if user.Role.IsManager() {
		return true
	}
	switch user.Role {
	case models.RoleStage1Employee:
		return job.CreatedBy == user.ID
	case models.RoleStage2Employee:
		return job.CurrentStage == models.StageTwo
	case models.RoleStage3Employee:
		return job.CurrentStage == models.StageThree
	case models.RoleCustomer:
		return job.CurrentStage == models.StageFour
	default:
		return false
	}
}

// CanCreateJob limits job creation to managers and stage-1 intake staff.
func CanCreateJob(role models.Role) bool {
	return role.IsManager() || role == models.RoleStage1Employee
}
