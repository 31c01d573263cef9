package models

import (
	"time"
)

// Stage3Data holds clearance & logistics details. Several billing fields were
// migrated here from stage 2 in the final schema revision and stay owned by
// stage 3.
type Stage3Data struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	JobID                uint       `gorm:"uniqueIndex;not null;column:job_id" json:"job_id"`
	ExamDate             *time.Time `gorm:"column:exam_date" json:"exam_date"`
	OutOfCharge          *time.Time `gorm:"column:out_of_charge" json:"out_of_charge"`
	ClearanceExps        *float64   `gorm:"column:clearance_exps" json:"clearance_exps"`
	StampDuty            *float64   `gorm:"column:stamp_duty" json:"stamp_duty"`
	Custodian            string     `gorm:"size:128" json:"custodian"`
	OffloadingCharges    *float64   `gorm:"column:offloading_charges" json:"offloading_charges"`
	TransportDetention   *float64   `gorm:"column:transport_detention" json:"transport_detention"`
	DispatchInfo         string     `gorm:"size:255;column:dispatch_info" json:"dispatch_info"`
	OceanFreight         *float64   `gorm:"column:ocean_freight" json:"ocean_freight"`
	EdiJobNo             string     `gorm:"size:64;column:edi_job_no" json:"edi_job_no"`
	EdiDate              *time.Time `gorm:"column:edi_date" json:"edi_date"`
	OriginalDoctRecdDate *time.Time `gorm:"column:original_doct_recd_date" json:"original_doct_recd_date"`
	DebitNote            string     `gorm:"size:64;column:debit_note" json:"debit_note"`
	DebitPaidBy          string     `gorm:"size:128;column:debit_paid_by" json:"debit_paid_by"`
	DutyAmount           *float64   `gorm:"column:duty_amount" json:"duty_amount"`
	DutyPaidBy           string     `gorm:"size:128;column:duty_paid_by" json:"duty_paid_by"`
	DestinationCharges   *float64   `gorm:"column:destination_charges" json:"destination_charges"`
	FilingRequirement    string     `gorm:"type:text;column:filing_requirement" json:"filing_requirement"`
	ChecklistSentDate    *time.Time `gorm:"column:checklist_sent_date" json:"checklist_sent_date"`
	BillOfEntryNo        string     `gorm:"size:64;column:bill_of_entry_no" json:"bill_of_entry_no"`
	BillOfEntryDate      *time.Time `gorm:"column:bill_of_entry_date" json:"bill_of_entry_date"`
	BillOfEntryUpload    string     `gorm:"size:255;column:bill_of_entry_upload" json:"bill_of_entry_upload"`
	CreatedBy            *uint      `gorm:"column:created_by" json:"created_by"`
	UpdatedBy            *uint      `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (Stage3Data) TableName() string {
	return "stage3_data"
}

// Stage3Container rows are replaced wholesale on every stage-3 update; there
// is no incremental container editing.
type Stage3Container struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	JobID            uint       `gorm:"index;not null;column:job_id" json:"job_id"`
	ContainerNo      string     `gorm:"size:64;column:container_no" json:"container_no"`
	Size             string     `gorm:"size:16" json:"size"`
	VehicleNo        string     `gorm:"size:64;column:vehicle_no" json:"vehicle_no"`
	DateOfOffloading *time.Time `gorm:"column:date_of_offloading" json:"date_of_offloading"`
	EmptyReturnDate  *time.Time `gorm:"column:empty_return_date" json:"empty_return_date"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
}

func (Stage3Container) TableName() string {
	return "stage3_containers"
}
