package models

import (
	"time"
)

// Stage4Data holds the billing details. A set acknowledge_date marks the job
// as completed.
type Stage4Data struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	JobID           uint       `gorm:"uniqueIndex;not null;column:job_id" json:"job_id"`
	BillNo          string     `gorm:"size:64;column:bill_no" json:"bill_no"`
	BillDate        *time.Time `gorm:"column:bill_date" json:"bill_date"`
	AmountTaxable   *float64   `gorm:"column:amount_taxable" json:"amount_taxable"`
	Gst5Percent     *float64   `gorm:"column:gst_5_percent" json:"gst_5_percent"`
	Gst18Percent    *float64   `gorm:"column:gst_18_percent" json:"gst_18_percent"`
	BillMail        string     `gorm:"size:255;column:bill_mail" json:"bill_mail"`
	BillCourier     string     `gorm:"size:128;column:bill_courier" json:"bill_courier"`
	CourierDate     *time.Time `gorm:"column:courier_date" json:"courier_date"`
	AcknowledgeDate *time.Time `gorm:"column:acknowledge_date" json:"acknowledge_date"`
	AcknowledgeName string     `gorm:"size:128;column:acknowledge_name" json:"acknowledge_name"`
	BillCopyUpload  string     `gorm:"size:255;column:bill_copy_upload" json:"bill_copy_upload"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;column:created_at" json:"-"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime;column:updated_at" json:"-"`
}

func (Stage4Data) TableName() string {
	return "stage4_data"
}
