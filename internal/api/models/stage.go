package models

// Stage is the closed set of pipeline phases a job moves through.
type Stage string

const (
	StageOne       Stage = "stage1"
	StageTwo       Stage = "stage2"
	StageThree     Stage = "stage3"
	StageFour      Stage = "stage4"
	StageCompleted Stage = "completed"
)

var stageOrder = map[Stage]int{
	StageOne:       1,
	StageTwo:       2,
	StageThree:     3,
	StageFour:      4,
	StageCompleted: 5,
}

// Order returns the position of the stage in the pipeline, or 0 for an
// unknown value.
func (s Stage) Order() int {
	return stageOrder[s]
}

func (s Stage) Valid() bool {
	return s.Order() > 0
}

// Before reports whether s comes strictly earlier in the pipeline than other.
func (s Stage) Before(other Stage) bool {
	return s.Order() < other.Order()
}

// Label is the human-readable name used in notification emails and the UI.
func (s Stage) Label() string {
	switch s {
	case StageOne:
		return "Stage 1 - Initial Setup"
	case StageTwo:
		return "Stage 2 - Customs & Documentation"
	case StageThree:
		return "Stage 3 - Clearance & Logistics"
	case StageFour:
		return "Stage 4 - Billing & Completion"
	case StageCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// NextLabel names the stage that follows s, for "next stage" email fields.
func (s Stage) NextLabel() string {
	switch s {
	case StageOne:
		return "Stage 2 - Customs & Documentation"
	case StageTwo:
		return "Stage 3 - Clearance & Logistics"
	case StageThree:
		return "Stage 4 - Billing & Completion"
	case StageFour, StageCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// UpdateType classifies an audit entry.
type UpdateType string

const (
	UpdateStatusChange    UpdateType = "status_change"
	UpdateDataUpdate      UpdateType = "data_update"
	UpdateFileUpload      UpdateType = "file_upload"
	UpdateStageCompletion UpdateType = "stage_completion"
)
