package models

import (
	"time"
)

// Stage2Data holds the customs & documentation details: HSN classification,
// bill of entry, duty and filing references.
type Stage2Data struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	JobID                uint       `gorm:"uniqueIndex;not null;column:job_id" json:"job_id"`
	HsnCode              string     `gorm:"size:32;column:hsn_code" json:"hsn_code"`
	FilingRequirement    string     `gorm:"type:text;column:filing_requirement" json:"filing_requirement"`
	ChecklistSentDate    *time.Time `gorm:"column:checklist_sent_date" json:"checklist_sent_date"`
	ApprovalDate         *time.Time `gorm:"column:approval_date" json:"approval_date"`
	BillOfEntryNo        string     `gorm:"size:64;column:bill_of_entry_no" json:"bill_of_entry_no"`
	BillOfEntryDate      *time.Time `gorm:"column:bill_of_entry_date" json:"bill_of_entry_date"`
	DebitNote            string     `gorm:"size:64;column:debit_note" json:"debit_note"`
	DebitPaidBy          string     `gorm:"size:128;column:debit_paid_by" json:"debit_paid_by"`
	DutyAmount           *float64   `gorm:"column:duty_amount" json:"duty_amount"`
	DutyPaidBy           string     `gorm:"size:128;column:duty_paid_by" json:"duty_paid_by"`
	OceanFreight         *float64   `gorm:"column:ocean_freight" json:"ocean_freight"`
	DestinationCharges   *float64   `gorm:"column:destination_charges" json:"destination_charges"`
	OriginalDoctRecdDate *time.Time `gorm:"column:original_doct_recd_date" json:"original_doct_recd_date"`
	DrnNo                string     `gorm:"size:64;column:drn_no" json:"drn_no"`
	IrnNo                string     `gorm:"size:64;column:irn_no" json:"irn_no"`
	DocumentsType        string     `gorm:"size:64;column:documents_type" json:"documents_type"`
	Document1            string     `gorm:"size:255;column:document_1" json:"document_1"`
	Document2            string     `gorm:"size:255;column:document_2" json:"document_2"`
	Document3            string     `gorm:"size:255;column:document_3" json:"document_3"`
	Document4            string     `gorm:"size:255;column:document_4" json:"document_4"`
	Document5            string     `gorm:"size:255;column:document_5" json:"document_5"`
	Document6            string     `gorm:"size:255;column:document_6" json:"document_6"`
	QueryUpload          string     `gorm:"size:255;column:query_upload" json:"query_upload"`
	ReplyUpload          string     `gorm:"size:255;column:reply_upload" json:"reply_upload"`
	CreatedBy            *uint      `gorm:"column:created_by" json:"created_by"`
	UpdatedBy            *uint      `gorm:"column:updated_by" json:"updated_by"`
	CreatedAt            time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (Stage2Data) TableName() string {
	return "stage2_data"
}
