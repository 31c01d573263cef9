package models

// Role is the closed set of user roles. It is the single source of truth for
// capabilities; there is no separate admin flag.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleSubadmin       Role = "subadmin"
	RoleStage1Employee Role = "stage1_employee"
	RoleStage2Employee Role = "stage2_employee"
	RoleStage3Employee Role = "stage3_employee"
	RoleCustomer       Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSubadmin, RoleStage1Employee, RoleStage2Employee, RoleStage3Employee, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsAdmin reports full administrative capability.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsManager reports whether the role bypasses all job-level access checks.
func (r Role) IsManager() bool {
	return r == RoleAdmin || r == RoleSubadmin
}

// OwnStage returns the pipeline stage a non-manager role acts on, or "" when
// the role has no stage of its own.
func (r Role) OwnStage() Stage {
	switch r {
	case RoleStage1Employee:
		return StageOne
	case RoleStage2Employee:
		return StageTwo
	case RoleStage3Employee:
		return StageThree
	case RoleCustomer:
		// Customers own the billing acknowledgement step.
		return StageFour
	default:
		return ""
	}
}
